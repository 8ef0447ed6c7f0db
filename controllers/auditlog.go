package controllers

import (
	"github.com/google/uuid"

	"homeledger-go/models"
)

// ListAuditLogs returns the audit trail visible to one household: logs whose
// originating API call was made by one of the household's users.
func (c *Controllers) ListAuditLogs(householdID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := c.db.
		Joins("JOIN api_calls ON api_calls.uuid = audit_logs.api_call_uuid").
		Joins("JOIN users ON users.uuid = api_calls.user_uuid").
		Where("users.household_uuid = ?", householdID).
		Preload("Changes").
		Preload("ApiCall").
		Order("audit_logs.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// ListApiCalls returns the household's request history, newest first.
func (c *Controllers) ListApiCalls(householdID uuid.UUID, limit, offset int) ([]models.ApiCall, error) {
	var calls []models.ApiCall
	err := c.db.
		Joins("JOIN users ON users.uuid = api_calls.user_uuid").
		Where("users.household_uuid = ?", householdID).
		Order("api_calls.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}
