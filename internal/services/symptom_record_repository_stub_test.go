package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/florette/internal/models"
)

var errStubStorage = errors.New("stub storage failure")

type symptomRecordRepositoryStub struct {
	records     map[uint]models.SymptomRecord
	nextID      uint
	listErr     error
	findErr     error
	createErr   error
	saveErr     error
	deleteErr   error
	createCalls int
	saveCalls   int
}

func newSymptomRecordRepositoryStub() *symptomRecordRepositoryStub {
	return &symptomRecordRepositoryStub{
		records: make(map[uint]models.SymptomRecord),
		nextID:  1,
	}
}

func (stub *symptomRecordRepositoryStub) seed(record models.SymptomRecord) models.SymptomRecord {
	record.ID = stub.nextID
	stub.nextID++
	stub.records[record.ID] = record
	return record
}

func (stub *symptomRecordRepositoryStub) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomRecord, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	records := make([]models.SymptomRecord, 0)
	for _, record := range stub.records {
		if record.UserID != userID {
			continue
		}
		if fromStart != nil && record.Date.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !record.Date.Before(*toEnd) {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date.Equal(records[j].Date) {
			return records[i].ID < records[j].ID
		}
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (stub *symptomRecordRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomRecord, bool, error) {
	if stub.findErr != nil {
		return models.SymptomRecord{}, false, stub.findErr
	}
	for _, record := range stub.records {
		if record.UserID == userID && !record.Date.Before(dayStart) && record.Date.Before(dayEnd) {
			return record, true, nil
		}
	}
	return models.SymptomRecord{}, false, nil
}

func (stub *symptomRecordRepositoryStub) Create(record *models.SymptomRecord) error {
	stub.createCalls++
	if stub.createErr != nil {
		return stub.createErr
	}
	*record = stub.seed(*record)
	return nil
}

func (stub *symptomRecordRepositoryStub) Save(record *models.SymptomRecord) error {
	stub.saveCalls++
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.records[record.ID] = *record
	return nil
}

func (stub *symptomRecordRepositoryStub) DeleteByIDForUser(recordID uint, userID uint) (bool, error) {
	if stub.deleteErr != nil {
		return false, stub.deleteErr
	}
	record, ok := stub.records[recordID]
	if !ok || record.UserID != userID {
		return false, nil
	}
	delete(stub.records, recordID)
	return true, nil
}

func (stub *symptomRecordRepositoryStub) countForUser(userID uint) int {
	count := 0
	for _, record := range stub.records {
		if record.UserID == userID {
			count++
		}
	}
	return count
}

func boolPtr(value bool) *bool {
	return &value
}

func moodPtr(value models.Mood) *models.Mood {
	return &value
}

func crampPtr(value models.CrampLevel) *models.CrampLevel {
	return &value
}
