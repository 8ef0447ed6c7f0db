package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is the planned amount for one subcategory in one calendar month.
type Budget struct {
	ID            uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID   uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	SubcategoryID uuid.UUID      `json:"subcategory_uuid" gorm:"type:uuid;column:subcategory_uuid;not null;index"`
	Subcategory   *Subcategory   `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Year          int            `json:"year" gorm:"not null"`
	Month         int            `json:"month" gorm:"not null"`
	Amount        Cents          `json:"amount" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (b *Budget) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Budget) AuditTable() string { return "budgets" }

func (b *Budget) AuditRow() uuid.UUID { return b.ID }

func (b *Budget) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":             b.ID.String(),
		"household_uuid":   b.HouseholdID.String(),
		"subcategory_uuid": b.SubcategoryID.String(),
	}
	if b.Year != 0 {
		vals["year"] = strconv.Itoa(b.Year)
	}
	if b.Month != 0 {
		vals["month"] = strconv.Itoa(b.Month)
	}
	if b.Amount != 0 {
		vals["amount"] = b.Amount.String()
	}
	if b.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(b.DeletedAt.Time)
	}
	return vals
}

type BudgetRequest struct {
	SubcategoryID string `json:"subcategory_uuid" validate:"required,uuid4"`
	Year          int    `json:"year" validate:"required,min=1970,max=9999"`
	Month         int    `json:"month" validate:"required,min=1,max=12"`
	Amount        string `json:"amount" validate:"required"`
}
