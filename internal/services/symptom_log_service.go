package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/florette/internal/models"
)

const (
	DefaultHistoryDays = 30
	MaxHistoryDays     = 365
)

var (
	ErrInvalidHistoryDays        = errors.New("invalid history days")
	ErrFutureSymptomDate         = errors.New("symptom date is in the future")
	ErrSymptomRecordNotFound     = errors.New("symptom record not found")
	ErrSymptomRecordLoadFailed   = errors.New("load symptom record failed")
	ErrSymptomRecordCreateFailed = errors.New("create symptom record failed")
	ErrSymptomRecordUpdateFailed = errors.New("update symptom record failed")
	ErrSymptomRecordDeleteFailed = errors.New("delete symptom record failed")
)

type SymptomRecordRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomRecord, bool, error)
	Create(record *models.SymptomRecord) error
	Save(record *models.SymptomRecord) error
	DeleteByIDForUser(recordID uint, userID uint) (bool, error)
}

type SymptomLogService struct {
	records SymptomRecordRepository
}

func NewSymptomLogService(records SymptomRecordRepository) *SymptomLogService {
	return &SymptomLogService{records: records}
}

func (service *SymptomLogService) GetTodaySymptoms(userID uint, now time.Time, location *time.Location) (models.SymptomRecord, bool, error) {
	return service.GetSymptomsForDate(userID, now, location)
}

func (service *SymptomLogService) GetSymptomsForDate(userID uint, day time.Time, location *time.Location) (models.SymptomRecord, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	record, found, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.SymptomRecord{}, false, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}
	return record, found, nil
}

// GetSymptomHistory returns the records of the last days calendar days,
// today included, oldest first.
func (service *SymptomLogService) GetSymptomHistory(userID uint, days int, now time.Time, location *time.Location) ([]models.SymptomRecord, error) {
	if days < 1 || days > MaxHistoryDays {
		return nil, ErrInvalidHistoryDays
	}

	today, tomorrow := DayRange(now, location)
	from := today.AddDate(0, 0, -(days - 1))
	records, err := service.records.ListByUserRange(userID, &from, &tomorrow)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}
	return records, nil
}

func (service *SymptomLogService) SaveTodaySymptoms(userID uint, input SymptomInput, now time.Time, location *time.Location) (models.SymptomRecord, bool, error) {
	return service.SaveSymptomsForDate(userID, now, input, now, location)
}

// SaveSymptomsForDate creates or overwrites the user's record for day. The
// boolean result reports whether a new record was created.
func (service *SymptomLogService) SaveSymptomsForDate(userID uint, day time.Time, input SymptomInput, now time.Time, location *time.Location) (models.SymptomRecord, bool, error) {
	normalized, err := NormalizeSymptomInput(input)
	if err != nil {
		return models.SymptomRecord{}, false, err
	}
	if IsFutureDay(day, now, location) {
		return models.SymptomRecord{}, false, ErrFutureSymptomDate
	}

	dayStart, dayEnd := DayRange(day, location)
	record, found, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.SymptomRecord{}, false, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}
	if found {
		return service.overwrite(record, normalized)
	}

	record = models.SymptomRecord{UserID: userID, Date: dayStart}
	normalized.ApplyTo(&record)
	if err := service.records.Create(&record); err != nil {
		// A concurrent save for the same day may have won the unique index.
		existing, found, findErr := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
		if findErr != nil || !found {
			return models.SymptomRecord{}, false, fmt.Errorf("%w: %v", ErrSymptomRecordCreateFailed, err)
		}
		return service.overwrite(existing, normalized)
	}
	return record, true, nil
}

func (service *SymptomLogService) DeleteSymptom(userID uint, recordID uint) error {
	deleted, err := service.records.DeleteByIDForUser(recordID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomRecordDeleteFailed, err)
	}
	if !deleted {
		return ErrSymptomRecordNotFound
	}
	return nil
}

func (service *SymptomLogService) overwrite(record models.SymptomRecord, input SymptomInput) (models.SymptomRecord, bool, error) {
	input.ApplyTo(&record)
	if err := service.records.Save(&record); err != nil {
		return models.SymptomRecord{}, false, fmt.Errorf("%w: %v", ErrSymptomRecordUpdateFailed, err)
	}
	return record, false, nil
}
