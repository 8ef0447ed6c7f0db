package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

func (c *Controllers) CreateHouseholdMember(apiCallID uuid.UUID, req models.HouseholdMemberRequest) (*models.HouseholdMember, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	member := models.HouseholdMember{
		HouseholdID: user.HouseholdID,
		Name:        utils.SanitizeString(req.Name),
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&member},
		})
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Controllers) UpdateHouseholdMember(apiCallID, memberID uuid.UUID, req models.HouseholdMemberRequest) (*models.HouseholdMember, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	var member models.HouseholdMember
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&member, "uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		before := member.AuditValues()
		member.Name = utils.SanitizeString(req.Name)
		if len(audit.Diff(before, member.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&member).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &member, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Controllers) DeleteHouseholdMember(apiCallID, memberID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	var expenses int64
	if err := c.db.Model(&models.Expense{}).Where("household_member_uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Count(&expenses).Error; err != nil {
		return err
	}
	if expenses > 0 {
		return fmt.Errorf("%w: household member still has expenses", ErrConflict)
	}
	var incomes int64
	if err := c.db.Model(&models.Income{}).Where("household_member_uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Count(&incomes).Error; err != nil {
		return err
	}
	if incomes > 0 {
		return fmt.Errorf("%w: household member still has incomes", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var member models.HouseholdMember
		if err := tx.First(&member, "uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &member); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&member},
		})
	})
}

func (c *Controllers) GetHouseholdMember(householdID, memberID uuid.UUID) (*models.HouseholdMember, error) {
	var member models.HouseholdMember
	if err := c.db.First(&member, "uuid = ? AND household_uuid = ?", memberID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (c *Controllers) ListHouseholdMembers(householdID uuid.UUID) ([]models.HouseholdMember, error) {
	var members []models.HouseholdMember
	if err := c.db.Where("household_uuid = ?", householdID).Order("name").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
