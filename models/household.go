package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Household is the multi-tenant scoping boundary; every audited entity except
// users and households themselves carries a household_uuid foreign key.
type Household struct {
	ID        uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	Name      string         `json:"name" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (h *Household) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (h *Household) AuditTable() string { return "households" }

func (h *Household) AuditRow() uuid.UUID { return h.ID }

func (h *Household) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid": h.ID.String(),
	}
	if h.Name != "" {
		vals["name"] = h.Name
	}
	if h.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(h.DeletedAt.Time)
	}
	return vals
}

// HouseholdMember is a person expenses and incomes are attributed to. Members
// are household-scoped and distinct from login users.
type HouseholdMember struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m *HouseholdMember) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *HouseholdMember) AuditTable() string { return "household_members" }

func (m *HouseholdMember) AuditRow() uuid.UUID { return m.ID }

func (m *HouseholdMember) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           m.ID.String(),
		"household_uuid": m.HouseholdID.String(),
	}
	if m.Name != "" {
		vals["name"] = m.Name
	}
	if m.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(m.DeletedAt.Time)
	}
	return vals
}

type HouseholdRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type HouseholdMemberRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}
