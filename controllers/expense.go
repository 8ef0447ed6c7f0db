package controllers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
)

// expenseRefs resolves and ownership-checks the rows an expense points at.
// It runs inside the caller's transaction so concurrent deletes of the
// referenced rows cannot race the expense write.
func expenseRefs(tx *gorm.DB, householdID uuid.UUID, subcategoryID, vendorID, memberID uuid.UUID) error {
	var sub models.Subcategory
	if err := tx.First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, householdID).Error; err != nil {
		return notFound(err)
	}
	var vendor models.Vendor
	if err := tx.First(&vendor, "uuid = ? AND household_uuid = ?", vendorID, householdID).Error; err != nil {
		return notFound(err)
	}
	var member models.HouseholdMember
	if err := tx.First(&member, "uuid = ? AND household_uuid = ?", memberID, householdID).Error; err != nil {
		return notFound(err)
	}
	return nil
}

func (c *Controllers) CreateExpense(apiCallID uuid.UUID, req models.ExpenseRequest) (*models.Expense, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	subcategoryID, err := parseUUID(req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	vendorID, err := parseUUID(req.VendorID)
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
	var reimbursed models.Cents
	if req.ReimbursedAmount != "" {
		if reimbursed, err = parseAmount(req.ReimbursedAmount); err != nil {
			return nil, err
		}
	}

	var expense models.Expense
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := expenseRefs(tx, user.HouseholdID, subcategoryID, vendorID, memberID); err != nil {
			return err
		}

		expense = models.Expense{
			HouseholdID:       user.HouseholdID,
			SubcategoryID:     subcategoryID,
			VendorID:          vendorID,
			HouseholdMemberID: memberID,
			Date:              date,
			Amount:            amount,
			ReimbursedAmount:  reimbursed,
			Description:       req.Description,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&expense},
		})
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Controllers) UpdateExpense(apiCallID, expenseID uuid.UUID, req models.ExpenseRequest) (*models.Expense, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	subcategoryID, err := parseUUID(req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	vendorID, err := parseUUID(req.VendorID)
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
	var reimbursed models.Cents
	if req.ReimbursedAmount != "" {
		if reimbursed, err = parseAmount(req.ReimbursedAmount); err != nil {
			return nil, err
		}
	}

	var expense models.Expense
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&expense, "uuid = ? AND household_uuid = ?", expenseID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := expenseRefs(tx, user.HouseholdID, subcategoryID, vendorID, memberID); err != nil {
			return err
		}

		before := expense.AuditValues()
		expense.SubcategoryID = subcategoryID
		expense.VendorID = vendorID
		expense.HouseholdMemberID = memberID
		expense.Date = date
		expense.Amount = amount
		expense.ReimbursedAmount = reimbursed
		expense.Description = req.Description
		if len(audit.Diff(before, expense.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&expense).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &expense, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *Controllers) DeleteExpense(apiCallID, expenseID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, "uuid = ? AND household_uuid = ?", expenseID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &expense); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&expense},
		})
	})
}

func (c *Controllers) GetExpense(householdID, expenseID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := c.db.Preload("Subcategory").Preload("Vendor").Preload("HouseholdMember").
		First(&expense, "uuid = ? AND household_uuid = ?", expenseID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &expense, nil
}

func (c *Controllers) ListExpenses(householdID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.db.Where("household_uuid = ?", householdID).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
