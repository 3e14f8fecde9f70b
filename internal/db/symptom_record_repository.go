package db

import (
	"time"

	"github.com/terraincognita07/florette/internal/models"
	"gorm.io/gorm"
)

type SymptomRecordRepository struct {
	database *gorm.DB
}

func NewSymptomRecordRepository(database *gorm.DB) *SymptomRecordRepository {
	return &SymptomRecordRepository{database: database}
}

func (repo *SymptomRecordRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.SymptomRecord, error) {
	query := repo.database.Model(&models.SymptomRecord{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	records := make([]models.SymptomRecord, 0)
	if err := query.Order("date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SymptomRecordRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.SymptomRecord, bool, error) {
	record := models.SymptomRecord{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.SymptomRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *SymptomRecordRepository) Create(record *models.SymptomRecord) error {
	return repo.database.Create(record).Error
}

func (repo *SymptomRecordRepository) Save(record *models.SymptomRecord) error {
	return repo.database.Save(record).Error
}

func (repo *SymptomRecordRepository) DeleteByIDForUser(recordID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", recordID, userID).Delete(&models.SymptomRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
