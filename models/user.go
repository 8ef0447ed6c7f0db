package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	HouseholdID uuid.UUID      `json:"household_uuid" gorm:"type:uuid;column:household_uuid;not null;index"`
	Household   *Household     `json:"household,omitempty" gorm:"foreignKey:HouseholdID"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	FirstName   string         `json:"first_name" gorm:"not null"`
	LastName    string         `json:"last_name" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) AuditTable() string { return "users" }

func (u *User) AuditRow() uuid.UUID { return u.ID }

func (u *User) AuditValues() map[string]string {
	vals := map[string]string{
		"uuid":           u.ID.String(),
		"household_uuid": u.HouseholdID.String(),
	}
	if u.Email != "" {
		vals["email"] = u.Email
	}
	if u.FirstName != "" {
		vals["first_name"] = u.FirstName
	}
	if u.LastName != "" {
		vals["last_name"] = u.LastName
	}
	if u.DeletedAt.Valid {
		vals["deleted_at"] = auditTime(u.DeletedAt.Time)
	}
	return vals
}

// UserLogin holds a user's credential hash. It is a hard table: rows are
// never soft-deleted and never audited.
type UserLogin struct {
	ID           uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	UserID       uuid.UUID `json:"user_uuid" gorm:"type:uuid;column:user_uuid;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (l *UserLogin) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type RegisterRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"first_name" validate:"required,min=2"`
	LastName      string `json:"last_name" validate:"required,min=2"`
	HouseholdName string `json:"household_name" validate:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
}
