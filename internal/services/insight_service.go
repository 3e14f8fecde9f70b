package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/florette/internal/models"
	"github.com/terraincognita07/florette/internal/predictor"
)

// PredictionHistoryDays covers the predictor's widest window.
const PredictionHistoryDays = 30

type InsightRecordRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomRecord, bool, error)
}

type PredictionReport struct {
	TargetDate time.Time
	Prediction predictor.Prediction
}

type SuggestionReport struct {
	TargetDate  time.Time
	Current     *models.SymptomRecord
	Prediction  predictor.Prediction
	Suggestions predictor.SuggestionSet
}

type InsightService struct {
	records InsightRecordRepository
}

func NewInsightService(records InsightRecordRepository) *InsightService {
	return &InsightService{records: records}
}

func (service *InsightService) PredictForUser(userID uint, targetDate time.Time, now time.Time, location *time.Location) (PredictionReport, error) {
	target := resolveTargetDate(targetDate, now, location)

	today, tomorrow := DayRange(now, location)
	from := today.AddDate(0, 0, -PredictionHistoryDays)
	history, err := service.records.ListByUserRange(userID, &from, &tomorrow)
	if err != nil {
		return PredictionReport{}, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}

	return PredictionReport{
		TargetDate: target,
		Prediction: predictor.PredictTomorrowSymptoms(history, target, now),
	}, nil
}

// SuggestForUser combines today's record, which may be missing, with the
// prediction for targetDate.
func (service *InsightService) SuggestForUser(userID uint, targetDate time.Time, now time.Time, location *time.Location) (SuggestionReport, error) {
	report, err := service.PredictForUser(userID, targetDate, now, location)
	if err != nil {
		return SuggestionReport{}, err
	}

	dayStart, dayEnd := DayRange(now, location)
	record, found, err := service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return SuggestionReport{}, fmt.Errorf("%w: %v", ErrSymptomRecordLoadFailed, err)
	}

	var current *models.SymptomRecord
	if found {
		current = &record
	}
	return SuggestionReport{
		TargetDate:  report.TargetDate,
		Current:     current,
		Prediction:  report.Prediction,
		Suggestions: predictor.GenerateSuggestions(current, report.Prediction.PredictedSymptoms),
	}, nil
}

func resolveTargetDate(targetDate time.Time, now time.Time, location *time.Location) time.Time {
	if targetDate.IsZero() {
		return DateAtLocation(now, location).AddDate(0, 0, 1)
	}
	return DateAtLocation(targetDate, location)
}
