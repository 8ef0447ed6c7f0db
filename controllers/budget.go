package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
)

func (c *Controllers) CreateBudget(apiCallID uuid.UUID, req models.BudgetRequest) (*models.Budget, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	subcategoryID, err := parseUUID(req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = c.db.Transaction(func(tx *gorm.DB) error {
		var sub models.Subcategory
		if err := tx.First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		var n int64
		if err := tx.Model(&models.Budget{}).
			Where("subcategory_uuid = ? AND year = ? AND month = ?", sub.ID, req.Year, req.Month).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: budget already exists for that month", ErrConflict)
		}

		budget = models.Budget{
			HouseholdID:   user.HouseholdID,
			SubcategoryID: sub.ID,
			Year:          req.Year,
			Month:         req.Month,
			Amount:        amount,
		}
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&budget},
		})
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Controllers) UpdateBudget(apiCallID, budgetID uuid.UUID, req models.BudgetRequest) (*models.Budget, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	subcategoryID, err := parseUUID(req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&budget, "uuid = ? AND household_uuid = ?", budgetID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if subcategoryID != budget.SubcategoryID {
			var sub models.Subcategory
			if err := tx.First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}

		before := budget.AuditValues()
		budget.SubcategoryID = subcategoryID
		budget.Year = req.Year
		budget.Month = req.Month
		budget.Amount = amount
		if len(audit.Diff(before, budget.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&budget).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &budget, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Controllers) DeleteBudget(apiCallID, budgetID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.First(&budget, "uuid = ? AND household_uuid = ?", budgetID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &budget); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&budget},
		})
	})
}

func (c *Controllers) GetBudget(householdID, budgetID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := c.db.Preload("Subcategory").First(&budget, "uuid = ? AND household_uuid = ?", budgetID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &budget, nil
}

func (c *Controllers) ListBudgets(householdID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.db.Where("household_uuid = ?", householdID).Order("year DESC, month DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}
