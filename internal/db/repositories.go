package db

import "gorm.io/gorm"

type Repositories struct {
	Users          *UserRepository
	SymptomRecords *SymptomRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(database),
		SymptomRecords: NewSymptomRecordRepository(database),
	}
}
