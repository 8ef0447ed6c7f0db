// Package audit implements the change-tracking core: one ApiCall row per
// inbound request, one AuditLog row per logical mutation, and one AuditChange
// row per attribute-level delta, all written inside the caller's transaction.
package audit

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/models"
)

// Auditable is implemented by every model whose mutations are recorded in
// the audit trail. Each model declares its table name, row key and attribute
// serialization statically; excluded tables (user logins, api calls, the
// audit tables themselves) simply do not implement the interface.
type Auditable interface {
	AuditTable() string
	AuditRow() uuid.UUID

	// AuditValues returns the currently set persisted attributes as stable
	// strings: RFC3339 UTC for timestamps, canonical uuid strings, two-digit
	// decimals for amounts. Unset or default attributes are omitted.
	AuditValues() map[string]string
}

// Change pairs a mutated instance with the attribute snapshot taken before
// the mutation, so the recorder can diff without ORM dirty tracking.
type Change struct {
	Instance Auditable
	Before   map[string]string
}

// Delta is one attribute-level difference between two snapshots.
type Delta struct {
	Attribute string
	Old       *string
	New       *string
}

// Diff compares two attribute snapshots and returns a delta per attribute
// that was added, changed or cleared. Identical attributes produce nothing,
// which is what makes no-op suppression possible.
func Diff(before, after map[string]string) []Delta {
	var deltas []Delta
	for attr, newVal := range after {
		oldVal, ok := before[attr]
		if !ok {
			v := newVal
			deltas = append(deltas, Delta{Attribute: attr, New: &v})
			continue
		}
		if oldVal != newVal {
			o, n := oldVal, newVal
			deltas = append(deltas, Delta{Attribute: attr, Old: &o, New: &n})
		}
	}
	for attr, oldVal := range before {
		if _, ok := after[attr]; !ok {
			v := oldVal
			deltas = append(deltas, Delta{Attribute: attr, Old: &v})
		}
	}
	return deltas
}

// recordChanges materializes AuditChange rows for a batch of created,
// changed and soft-deleted instances. Every row is written through tx so the
// changes commit or roll back together with the entity mutation.
func recordChanges(tx *gorm.DB, auditLogID uuid.UUID, p TrackParams) error {
	if tx == nil {
		return ErrMissingTransaction
	}
	if auditLogID == uuid.Nil {
		return ErrMissingAuditLog
	}

	var rows []models.AuditChange

	for _, inst := range p.New {
		if inst == nil {
			return ErrInvalidInstance
		}
		for attr, val := range inst.AuditValues() {
			v := val
			rows = append(rows, models.AuditChange{
				AuditLogID: auditLogID,
				Table:      inst.AuditTable(),
				RowID:      inst.AuditRow(),
				Attribute:  attr,
				NewValue:   &v,
			})
		}
	}

	for _, ch := range p.Changed {
		if ch.Instance == nil {
			return ErrInvalidInstance
		}
		for _, d := range Diff(ch.Before, ch.Instance.AuditValues()) {
			rows = append(rows, models.AuditChange{
				AuditLogID: auditLogID,
				Table:      ch.Instance.AuditTable(),
				RowID:      ch.Instance.AuditRow(),
				Attribute:  d.Attribute,
				OldValue:   d.Old,
				NewValue:   d.New,
			})
		}
	}

	for _, inst := range p.Deleted {
		if inst == nil {
			return ErrInvalidInstance
		}
		ts, ok := inst.AuditValues()["deleted_at"]
		if !ok {
			// Callers must soft-delete before recording the deletion.
			return ErrInvalidInstance
		}
		v := ts
		rows = append(rows, models.AuditChange{
			AuditLogID: auditLogID,
			Table:      inst.AuditTable(),
			RowID:      inst.AuditRow(),
			Attribute:  "deleted_at",
			NewValue:   &v,
		})
	}

	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
