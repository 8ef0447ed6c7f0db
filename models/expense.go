package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID                uuid.UUID        `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID       uuid.UUID        `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	SubcategoryID     uuid.UUID        `json:"subcategory_uuid" gorm:"type:uuid;column:subcategory_uuid;not null;index"`
	Subcategory       *Subcategory     `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	VendorID          uuid.UUID        `json:"vendor_uuid" gorm:"type:uuid;column:vendor_uuid;not null;index"`
	Vendor            *Vendor          `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	HouseholdMemberID uuid.UUID        `json:"household_member_uuid" gorm:"type:uuid;column:household_member_uuid;not null;index"`
	HouseholdMember   *HouseholdMember `json:"household_member,omitempty" gorm:"foreignKey:HouseholdMemberID"`
	Date              time.Time        `json:"date" gorm:"not null"`
	Amount            Cents            `json:"amount" gorm:"not null"`
	ReimbursedAmount  Cents            `json:"reimbursed_amount" gorm:"default:0"`
	Description       string           `json:"description"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}

func (e *Expense) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *Expense) AuditTable() string { return "expenses" }

func (e *Expense) AuditRow() uuid.UUID { return e.ID }

func (e *Expense) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":                  e.ID.String(),
		"household_uuid":        e.HouseholdID.String(),
		"subcategory_uuid":      e.SubcategoryID.String(),
		"vendor_uuid":           e.VendorID.String(),
		"household_member_uuid": e.HouseholdMemberID.String(),
	}
	if !e.Date.IsZero() {
		vals["date"] = auditTime(e.Date)
	}
	if e.Amount != 0 {
		vals["amount"] = e.Amount.String()
	}
	if e.ReimbursedAmount != 0 {
		vals["reimbursed_amount"] = e.ReimbursedAmount.String()
	}
	if e.Description != "" {
		vals["description"] = e.Description
	}
	if e.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(e.DeletedAt.Time)
	}
	return vals
}

type ExpenseRequest struct {
	SubcategoryID     string `json:"subcategory_uuid" validate:"required,uuid4"`
	VendorID          string `json:"vendor_uuid" validate:"required,uuid4"`
	HouseholdMemberID string `json:"household_member_uuid" validate:"required,uuid4"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount            string `json:"amount" validate:"required"`
	ReimbursedAmount  string `json:"reimbursed_amount"`
	Description       string `json:"description"`
}
