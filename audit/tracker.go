package audit

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/models"
)

// Tracker persists one ApiCall row per inbound HTTP request. It writes with
// its own database handle, outside any mutation transaction: the call must
// stay recorded even when the mutation it correlates with later fails.
type Tracker struct {
	db *gorm.DB
}

func NewTracker(db *gorm.DB) *Tracker {
	return &Tracker{db: db}
}

// CallInfo is the request metadata captured by the HTTP layer.
type CallInfo struct {
	UserID    *uuid.UUID
	Method    string
	Route     string
	IPAddress string
	UserAgent string
}

// RecordCall persists the ApiCall and returns its id for correlation.
func (t *Tracker) RecordCall(info CallInfo) (uuid.UUID, error) {
	call := models.ApiCall{
		UserID:    info.UserID,
		Method:    optional(info.Method),
		Route:     optional(info.Route),
		IPAddress: optional(info.IPAddress),
		UserAgent: optional(info.UserAgent),
	}
	if err := t.db.Create(&call).Error; err != nil {
		return uuid.Nil, fmt.Errorf("record API call: %w", err)
	}
	return call.ID, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
