package controllers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

func (c *Controllers) GetHousehold(householdID uuid.UUID) (*models.Household, error) {
	var household models.Household
	if err := c.db.First(&household, "uuid = ?", householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &household, nil
}

func (c *Controllers) UpdateHousehold(apiCallID uuid.UUID, req models.HouseholdRequest) (*models.Household, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	var household models.Household
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&household, "uuid = ?", user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		before := household.AuditValues()
		household.Name = utils.SanitizeString(req.Name)
		if len(audit.Diff(before, household.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&household).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &household, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &household, nil
}
