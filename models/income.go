package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Income struct {
	ID                uuid.UUID        `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID       uuid.UUID        `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	HouseholdMemberID uuid.UUID        `json:"household_member_uuid" gorm:"type:uuid;column:household_member_uuid;not null;index"`
	HouseholdMember   *HouseholdMember `json:"household_member,omitempty" gorm:"foreignKey:HouseholdMemberID"`
	Date              time.Time        `json:"date" gorm:"not null"`
	Amount            Cents            `json:"amount" gorm:"not null"`
	Description       string           `json:"description"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}

func (i *Income) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i *Income) AuditTable() string { return "incomes" }

func (i *Income) AuditRow() uuid.UUID { return i.ID }

func (i *Income) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":                  i.ID.String(),
		"household_uuid":        i.HouseholdID.String(),
		"household_member_uuid": i.HouseholdMemberID.String(),
	}
	if !i.Date.IsZero() {
		vals["date"] = auditTime(i.Date)
	}
	if i.Amount != 0 {
		vals["amount"] = i.Amount.String()
	}
	if i.Description != "" {
		vals["description"] = i.Description
	}
	if i.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(i.DeletedAt.Time)
	}
	return vals
}

type IncomeRequest struct {
	HouseholdMemberID string `json:"household_member_uuid" validate:"required,uuid4"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount            string `json:"amount" validate:"required"`
	Description       string `json:"description"`
}
