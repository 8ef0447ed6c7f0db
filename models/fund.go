package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fund is a savings goal deposits accumulate into.
type Fund struct {
	ID           uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID  uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	TargetAmount Cents          `json:"target_amount" gorm:"default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (f *Fund) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *Fund) AuditTable() string { return "funds" }

func (f *Fund) AuditRow() uuid.UUID { return f.ID }

func (f *Fund) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           f.ID.String(),
		"household_uuid": f.HouseholdID.String(),
	}
	if f.Name != "" {
		vals["name"] = f.Name
	}
	if f.TargetAmount != 0 {
		vals["target_amount"] = f.TargetAmount.String()
	}
	if f.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(f.DeletedAt.Time)
	}
	return vals
}

type Deposit struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	FundID      uuid.UUID      `json:"fund_uuid" gorm:"type:uuid;column:fund_uuid;not null;index"`
	Fund        *Fund          `json:"fund,omitempty" gorm:"foreignKey:FundID"`
	IncomeID    *uuid.UUID     `json:"income_uuid" gorm:"type:uuid;column:income_uuid;index"`
	Income      *Income        `json:"income,omitempty" gorm:"foreignKey:IncomeID"`
	Date        time.Time      `json:"date" gorm:"not null"`
	Amount      Cents          `json:"amount" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (d *Deposit) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d *Deposit) AuditTable() string { return "deposits" }

func (d *Deposit) AuditRow() uuid.UUID { return d.ID }

func (d *Deposit) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           d.ID.String(),
		"household_uuid": d.HouseholdID.String(),
		"fund_uuid":      d.FundID.String(),
	}
	if d.IncomeID != nil {
		vals["income_uuid"] = d.IncomeID.String()
	}
	if !d.Date.IsZero() {
		vals["date"] = auditTime(d.Date)
	}
	if d.Amount != 0 {
		vals["amount"] = d.Amount.String()
	}
	if d.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(d.DeletedAt.Time)
	}
	return vals
}

type FundRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	TargetAmount string `json:"target_amount"`
}

type DepositRequest struct {
	FundID   string `json:"fund_uuid" validate:"required,uuid4"`
	IncomeID string `json:"income_uuid" validate:"omitempty,uuid4"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount   string `json:"amount" validate:"required"`
}
