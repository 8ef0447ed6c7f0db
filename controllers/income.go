package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
)

func (c *Controllers) CreateIncome(apiCallID uuid.UUID, req models.IncomeRequest) (*models.Income, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseUUID(req.HouseholdMemberID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var income models.Income
	err = c.db.Transaction(func(tx *gorm.DB) error {
		var member models.HouseholdMember
		if err := tx.First(&member, "uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		income = models.Income{
			HouseholdID:       user.HouseholdID,
			HouseholdMemberID: member.ID,
			Date:              date,
			Amount:            amount,
			Description:       req.Description,
		}
		if err := tx.Create(&income).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&income},
		})
	})
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (c *Controllers) UpdateIncome(apiCallID, incomeID uuid.UUID, req models.IncomeRequest) (*models.Income, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseUUID(req.HouseholdMemberID)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var income models.Income
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&income, "uuid = ? AND household_uuid = ?", incomeID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if memberID != income.HouseholdMemberID {
			var member models.HouseholdMember
			if err := tx.First(&member, "uuid = ? AND household_uuid = ?", memberID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}

		before := income.AuditValues()
		income.HouseholdMemberID = memberID
		income.Date = date
		income.Amount = amount
		income.Description = req.Description
		if len(audit.Diff(before, income.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&income).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &income, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &income, nil
}

func (c *Controllers) DeleteIncome(apiCallID, incomeID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	var n int64
	if err := c.db.Model(&models.Deposit{}).Where("income_uuid = ? AND household_uuid = ?", incomeID, user.HouseholdID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: income still has deposits", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var income models.Income
		if err := tx.First(&income, "uuid = ? AND household_uuid = ?", incomeID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &income); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&income},
		})
	})
}

func (c *Controllers) GetIncome(householdID, incomeID uuid.UUID) (*models.Income, error) {
	var income models.Income
	if err := c.db.Preload("HouseholdMember").First(&income, "uuid = ? AND household_uuid = ?", incomeID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &income, nil
}

func (c *Controllers) ListIncomes(householdID uuid.UUID) ([]models.Income, error) {
	var incomes []models.Income
	if err := c.db.Where("household_uuid = ?", householdID).Order("date DESC").Find(&incomes).Error; err != nil {
		return nil, err
	}
	return incomes, nil
}
