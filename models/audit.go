package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApiCall is the persisted record of one inbound HTTP request. It is created
// by middleware before any controller logic runs and is never mutated or
// deleted afterwards; audit logs reference it for attribution.
type ApiCall struct {
	ID        uuid.UUID  `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	UserID    *uuid.UUID `json:"user_uuid" gorm:"type:uuid;column:user_uuid;index"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	UserAgent *string    `json:"user_agent"`
	IPAddress *string    `json:"ip_address"`
	Method    *string    `json:"http_method" gorm:"column:http_method"`
	Route     *string    `json:"route"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c *ApiCall) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AuditLog is one logical mutation unit. A single API call may produce
// several audit logs; each audit log owns the change rows written in the
// same database transaction as the entity mutation itself.
type AuditLog struct {
	ID        uuid.UUID     `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	ApiCallID *uuid.UUID    `json:"api_call_uuid" gorm:"type:uuid;column:api_call_uuid;index"`
	ApiCall   *ApiCall      `json:"api_call,omitempty" gorm:"foreignKey:ApiCallID"`
	Changes   []AuditChange `json:"changes,omitempty" gorm:"foreignKey:AuditLogID"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// AuditChange is a single attribute-level delta. At least one of OldValue
// and NewValue is always set; a no-op delta is never recorded.
type AuditChange struct {
	ID         uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey;column:uuid"`
	AuditLogID uuid.UUID `json:"audit_log_uuid" gorm:"type:uuid;column:audit_log_uuid;not null;index"`
	Table      string    `json:"table" gorm:"column:table_name;not null"`
	RowID      uuid.UUID `json:"row_uuid" gorm:"type:uuid;column:row_uuid;not null;index"`
	Attribute  string    `json:"attribute" gorm:"not null"`
	OldValue   *string   `json:"old_value"`
	NewValue   *string   `json:"new_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *AuditChange) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// auditTime is the canonical timestamp serialization for audit values.
func auditTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
