package audit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/models"
)

// TrackParams carries one logical mutation unit: the originating API call
// and the instances created, changed and soft-deleted by the operation.
type TrackParams struct {
	ApiCallID uuid.UUID
	New       []Auditable
	Changed   []Change
	Deleted   []Auditable
}

func (p TrackParams) empty() bool {
	return len(p.New) == 0 && len(p.Changed) == 0 && len(p.Deleted) == 0
}

// TrackChanges creates one AuditLog row referencing the originating ApiCall
// and records an AuditChange row per attribute-level delta, all inside tx.
// Either the audit log and every change row commit together with the
// caller's entity mutation, or none of them do.
//
// Calling with nothing to record is a no-op: no AuditLog row is created.
func TrackChanges(tx *gorm.DB, p TrackParams) error {
	if tx == nil {
		return ErrMissingTransaction
	}
	if p.ApiCallID == uuid.Nil {
		return ErrMissingAuditCall
	}
	if p.empty() {
		return nil
	}

	var call models.ApiCall
	if err := tx.First(&call, "uuid = ?", p.ApiCallID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMissingAuditCall
		}
		return fmt.Errorf("look up audit API call: %w", err)
	}

	auditLog := models.AuditLog{ApiCallID: &call.ID}
	if err := tx.Create(&auditLog).Error; err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}

	return recordChanges(tx, auditLog.ID, p)
}
