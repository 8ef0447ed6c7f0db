package controllers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeledger-go/models"
)

func TestListAuditLogsScopedToHousehold(t *testing.T) {
	c, db := setupTest(t)
	user := registerTestUser(t, c, db)
	other := registerTestUser(t, c, db)

	_, err := c.CreateCategory(callFor(t, db, user), models.CategoryRequest{Name: "Groceries"})
	require.NoError(t, err)
	_, err = c.CreateCategory(callFor(t, db, other), models.CategoryRequest{Name: "Utilities"})
	require.NoError(t, err)

	// Only logs from attributed calls are visible; the registration
	// bootstrap ran on an anonymous call and stays out of the listing.
	logs, err := c.ListAuditLogs(user.HouseholdID, 50, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	for _, l := range logs {
		require.NotNil(t, l.ApiCallID)
		assert.NotEmpty(t, l.Changes)
		for _, ch := range l.Changes {
			assert.Equal(t, l.ID, ch.AuditLogID)
			assert.NotEqual(t, "user_logins", ch.Table)
		}
	}

	otherLogs, err := c.ListAuditLogs(other.HouseholdID, 50, 0)
	require.NoError(t, err)
	require.Len(t, otherLogs, 1)
	for _, l := range otherLogs {
		for _, ch := range l.Changes {
			if ch.Table == "categories" && ch.Attribute == "name" {
				assert.Equal(t, "Utilities", *ch.NewValue)
			}
		}
	}
}

func TestListApiCallsScopedToHousehold(t *testing.T) {
	c, db := setupTest(t)
	user := registerTestUser(t, c, db)
	other := registerTestUser(t, c, db)

	for i := 0; i < 3; i++ {
		callFor(t, db, user)
	}
	callFor(t, db, other)

	calls, err := c.ListApiCalls(user.HouseholdID, 50, 0)
	require.NoError(t, err)
	for _, call := range calls {
		require.NotNil(t, call.UserID)
		assert.Equal(t, user.ID, *call.UserID)
	}
	assert.Len(t, calls, 3)
}

// Every audit log written during a realistic session points at a recorded
// ApiCall and every change row points at its log.
func TestAuditCorrelationIntegrity(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	exp, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)
	req := f.request()
	req.Description = "monthly shop"
	_, err = c.UpdateExpense(callFor(t, db, f.user), exp.ID, req)
	require.NoError(t, err)
	require.NoError(t, c.DeleteExpense(callFor(t, db, f.user), exp.ID))

	var logs []models.AuditLog
	require.NoError(t, db.Preload("Changes").Find(&logs).Error)
	require.NotEmpty(t, logs)

	for _, l := range logs {
		require.NotNil(t, l.ApiCallID)
		var call models.ApiCall
		require.NoError(t, db.First(&call, "uuid = ?", *l.ApiCallID).Error)
		require.NotEmpty(t, l.Changes)
		for _, ch := range l.Changes {
			assert.Equal(t, l.ID, ch.AuditLogID)
			assert.NotEqual(t, uuid.Nil, ch.RowID)
		}
	}

	// No dangling change rows either.
	var orphans int64
	require.NoError(t, db.Model(&models.AuditChange{}).
		Where("audit_log_uuid NOT IN (?)", db.Model(&models.AuditLog{}).Select("uuid")).
		Count(&orphans).Error)
	assert.Zero(t, orphans)
}
