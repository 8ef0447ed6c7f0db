package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vendor struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (v *Vendor) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (v *Vendor) AuditTable() string { return "vendors" }

func (v *Vendor) AuditRow() uuid.UUID { return v.ID }

func (v *Vendor) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           v.ID.String(),
		"household_uuid": v.HouseholdID.String(),
	}
	if v.Name != "" {
		vals["name"] = v.Name
	}
	if v.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(v.DeletedAt.Time)
	}
	return vals
}

type VendorRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}
