package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

func (c *Controllers) CreateVendor(apiCallID uuid.UUID, req models.VendorRequest) (*models.Vendor, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	vendor := models.Vendor{
		HouseholdID: user.HouseholdID,
		Name:        utils.SanitizeString(req.Name),
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vendor).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&vendor},
		})
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Controllers) UpdateVendor(apiCallID, vendorID uuid.UUID, req models.VendorRequest) (*models.Vendor, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	var vendor models.Vendor
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vendor, "uuid = ? AND household_uuid = ?", vendorID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		before := vendor.AuditValues()
		vendor.Name = utils.SanitizeString(req.Name)
		if len(audit.Diff(before, vendor.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&vendor).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &vendor, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *Controllers) DeleteVendor(apiCallID, vendorID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	var n int64
	if err := c.db.Model(&models.Expense{}).Where("vendor_uuid = ? AND household_uuid = ?", vendorID, user.HouseholdID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: vendor still has expenses", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.First(&vendor, "uuid = ? AND household_uuid = ?", vendorID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &vendor); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&vendor},
		})
	})
}

func (c *Controllers) GetVendor(householdID, vendorID uuid.UUID) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := c.db.First(&vendor, "uuid = ? AND household_uuid = ?", vendorID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &vendor, nil
}

func (c *Controllers) ListVendors(householdID uuid.UUID) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := c.db.Where("household_uuid = ?", householdID).Order("name").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
