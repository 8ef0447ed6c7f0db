package database

import (
	"homeledger-go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.Household{},
		&models.User{},
		&models.UserLogin{},
		&models.HouseholdMember{},
		&models.Category{},
		&models.Subcategory{},
		&models.Budget{},
		&models.Vendor{},
		&models.Expense{},
		&models.Income{},
		&models.Fund{},
		&models.Deposit{},
		&models.ApiCall{},
		&models.AuditLog{},
		&models.AuditChange{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
