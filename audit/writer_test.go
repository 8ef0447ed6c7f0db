package audit

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homeledger-go/models"
)

func recordTestCall(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	id, err := NewTracker(db).RecordCall(CallInfo{Method: "POST", Route: "/api/categories"})
	require.NoError(t, err)
	return id
}

func TestTrackChangesRequiresTransaction(t *testing.T) {
	err := TrackChanges(nil, TrackParams{ApiCallID: uuid.New()})
	assert.ErrorIs(t, err, ErrMissingTransaction)
}

func TestTrackChangesMissingApiCall(t *testing.T) {
	db := setupTestDB(t)

	cat := &models.Category{ID: uuid.New(), HouseholdID: uuid.New(), Name: "Groceries"}
	err := db.Transaction(func(tx *gorm.DB) error {
		return TrackChanges(tx, TrackParams{
			ApiCallID: uuid.New(), // never recorded
			New:       []Auditable{cat},
		})
	})
	assert.ErrorIs(t, err, ErrMissingAuditCall)

	var logs int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&logs).Error)
	assert.Zero(t, logs)
}

func TestTrackChangesEmptyIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	callID := recordTestCall(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return TrackChanges(tx, TrackParams{ApiCallID: callID})
	})
	require.NoError(t, err)

	var logs int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&logs).Error)
	assert.Zero(t, logs, "nothing to record must not create an empty audit log")
}

func TestTrackChangesCreate(t *testing.T) {
	db := setupTestDB(t)
	callID := recordTestCall(t, db)

	cat := &models.Category{ID: uuid.New(), HouseholdID: uuid.New(), Name: "Groceries"}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		return TrackChanges(tx, TrackParams{ApiCallID: callID, New: []Auditable{cat}})
	})
	require.NoError(t, err)

	var auditLog models.AuditLog
	require.NoError(t, db.Preload("Changes").First(&auditLog).Error)
	require.NotNil(t, auditLog.ApiCallID)
	assert.Equal(t, callID, *auditLog.ApiCallID)

	// One change row per set attribute, all with no old value.
	require.Len(t, auditLog.Changes, 3)
	attrs := map[string]string{}
	for _, ch := range auditLog.Changes {
		assert.Equal(t, "categories", ch.Table)
		assert.Equal(t, cat.ID, ch.RowID)
		assert.Nil(t, ch.OldValue)
		require.NotNil(t, ch.NewValue)
		attrs[ch.Attribute] = *ch.NewValue
	}
	assert.Equal(t, map[string]string{
		"uuid":           cat.ID.String(),
		"household_uuid": cat.HouseholdID.String(),
		"name":           "Groceries",
	}, attrs)
}

func TestTrackChangesRollbackLeavesNothing(t *testing.T) {
	db := setupTestDB(t)
	callID := recordTestCall(t, db)

	boom := errors.New("boom")
	cat := &models.Category{ID: uuid.New(), HouseholdID: uuid.New(), Name: "Groceries"}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cat).Error; err != nil {
			return err
		}
		if err := TrackChanges(tx, TrackParams{ApiCallID: callID, New: []Auditable{cat}}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// Entity and audit state roll back together.
	var cats, logs, changes int64
	require.NoError(t, db.Model(&models.Category{}).Count(&cats).Error)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&logs).Error)
	require.NoError(t, db.Model(&models.AuditChange{}).Count(&changes).Error)
	assert.Zero(t, cats)
	assert.Zero(t, logs)
	assert.Zero(t, changes)

	// The ApiCall row was written outside the transaction and survives.
	var calls int64
	require.NoError(t, db.Model(&models.ApiCall{}).Count(&calls).Error)
	assert.EqualValues(t, 1, calls)
}

func TestTrackerRecordCall(t *testing.T) {
	db := setupTestDB(t)

	userID := uuid.New()
	id, err := NewTracker(db).RecordCall(CallInfo{
		UserID:    &userID,
		Method:    "PUT",
		Route:     "/api/categories/{uuid}",
		IPAddress: "203.0.113.7",
		UserAgent: "test-agent",
	})
	require.NoError(t, err)

	var call models.ApiCall
	require.NoError(t, db.First(&call, "uuid = ?", id).Error)
	require.NotNil(t, call.UserID)
	assert.Equal(t, userID, *call.UserID)
	assert.Equal(t, "PUT", *call.Method)
	assert.Equal(t, "/api/categories/{uuid}", *call.Route)
	assert.Equal(t, "203.0.113.7", *call.IPAddress)
	assert.Equal(t, "test-agent", *call.UserAgent)
}

func TestTrackerRecordCallAnonymous(t *testing.T) {
	db := setupTestDB(t)

	id, err := NewTracker(db).RecordCall(CallInfo{Method: "POST", Route: "/api/register"})
	require.NoError(t, err)

	var call models.ApiCall
	require.NoError(t, db.First(&call, "uuid = ?", id).Error)
	assert.Nil(t, call.UserID)
	assert.Nil(t, call.IPAddress)
	assert.Nil(t, call.UserAgent)
}
