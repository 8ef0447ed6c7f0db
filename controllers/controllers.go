// Package controllers holds the entity business logic. Every mutating
// operation follows the same contract: resolve the acting user from the
// originating ApiCall, run all reads and writes inside one database
// transaction, and track the resulting changes through the audit package in
// that same transaction. A mutation that changes nothing observable writes
// neither entity state nor audit rows.
package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/models"
)

var (
	// ErrNotFound covers both genuinely missing rows and rows owned by a
	// different household, so existence never leaks across tenants.
	ErrNotFound = errors.New("record not found")

	// ErrMissingAuditCall means the mutation cannot be attributed: the
	// ApiCall id does not exist or carries no acting user.
	ErrMissingAuditCall = errors.New("missing audit API call")

	// ErrConflict marks precondition failures like deleting a category that
	// still has subcategories.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput marks semantic validation failures the struct
	// validator cannot express, e.g. malformed amounts.
	ErrInvalidInput = errors.New("invalid input")
)

// Controllers is the dependency context constructed once at startup and
// passed into the HTTP layer explicitly.
type Controllers struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controllers {
	return &Controllers{db: db}
}

// resolveCall loads the ApiCall a mutation correlates with. Operations that
// run before any user exists (registration) use this directly.
func (c *Controllers) resolveCall(apiCallID uuid.UUID) (*models.ApiCall, error) {
	if apiCallID == uuid.Nil {
		return nil, ErrMissingAuditCall
	}
	var call models.ApiCall
	if err := c.db.First(&call, "uuid = ?", apiCallID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingAuditCall
		}
		return nil, err
	}
	return &call, nil
}

// resolveCaller loads the ApiCall and its attributed user. Every
// household-scoped mutation requires both.
func (c *Controllers) resolveCaller(apiCallID uuid.UUID) (*models.User, error) {
	call, err := c.resolveCall(apiCallID)
	if err != nil {
		return nil, err
	}
	if call.UserID == nil {
		return nil, ErrMissingAuditCall
	}
	var user models.User
	if err := c.db.First(&user, "uuid = ?", *call.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingAuditCall
		}
		return nil, err
	}
	return &user, nil
}

// notFound maps a missing row to the tenant-safe error kind.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func parseAmount(s string) (models.Cents, error) {
	amount, err := models.ParseCents(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q", ErrInvalidInput, s)
	}
	return amount, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, s)
	}
	return t.UTC(), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: uuid %q", ErrInvalidInput, s)
	}
	return id, nil
}

// softDelete marks the row deleted through tx. gorm fills the struct's
// DeletedAt, which the audit recorder then serializes as the single
// deleted_at change row.
func softDelete(tx *gorm.DB, instance interface{}) error {
	return tx.Delete(instance).Error
}
