package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) AuditTable() string { return "categories" }

func (c *Category) AuditRow() uuid.UUID { return c.ID }

func (c *Category) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           c.ID.String(),
		"household_uuid": c.HouseholdID.String(),
	}
	if c.Name != "" {
		vals["name"] = c.Name
	}
	if c.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(c.DeletedAt.Time)
	}
	return vals
}

type Subcategory struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	CategoryID  uuid.UUID      `json:"category_uuid" gorm:"type:uuid;column:category_uuid;not null;index"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name        string         `json:"name" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Subcategory) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Subcategory) AuditTable() string { return "subcategories" }

func (s *Subcategory) AuditRow() uuid.UUID { return s.ID }

func (s *Subcategory) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           s.ID.String(),
		"household_uuid": s.HouseholdID.String(),
		"category_uuid":  s.CategoryID.String(),
	}
	if s.Name != "" {
		vals["name"] = s.Name
	}
	if s.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(s.DeletedAt.Time)
	}
	return vals
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type SubcategoryRequest struct {
	CategoryID string `json:"category_uuid" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1"`
}
