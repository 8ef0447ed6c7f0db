package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homeledger-go/models"
)

type expenseFixtures struct {
	user        *models.User
	subcategory *models.Subcategory
	vendor      *models.Vendor
	member      *models.HouseholdMember
}

func seedExpenseFixtures(t *testing.T, c *Controllers, db *gorm.DB) expenseFixtures {
	t.Helper()
	user := registerTestUser(t, c, db)

	cat, err := c.CreateCategory(callFor(t, db, user), models.CategoryRequest{Name: "Groceries"})
	require.NoError(t, err)
	sub, err := c.CreateSubcategory(callFor(t, db, user), models.SubcategoryRequest{
		CategoryID: cat.ID.String(),
		Name:       "Produce",
	})
	require.NoError(t, err)
	vendor, err := c.CreateVendor(callFor(t, db, user), models.VendorRequest{Name: "Corner Market"})
	require.NoError(t, err)
	member, err := c.CreateHouseholdMember(callFor(t, db, user), models.HouseholdMemberRequest{Name: "Sam"})
	require.NoError(t, err)

	return expenseFixtures{user: user, subcategory: sub, vendor: vendor, member: member}
}

func (f expenseFixtures) request() models.ExpenseRequest {
	return models.ExpenseRequest{
		SubcategoryID:     f.subcategory.ID.String(),
		VendorID:          f.vendor.ID.String(),
		HouseholdMemberID: f.member.ID.String(),
		Date:              "2026-08-15",
		Amount:            "42.50",
		Description:       "weekly shop",
	}
}

func TestExpenseCreateAuditedAttributes(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	exp, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)
	assert.Equal(t, models.Cents(4250), exp.Amount)
	assert.Equal(t, models.Cents(0), exp.ReimbursedAmount)

	_, changes := latestLogChanges(t, db)
	byAttr := map[string]models.AuditChange{}
	for _, ch := range changes {
		assert.Equal(t, "expenses", ch.Table)
		assert.Equal(t, exp.ID, ch.RowID)
		assert.Nil(t, ch.OldValue)
		byAttr[ch.Attribute] = ch
	}
	// One row per populated attribute, nothing for the zero reimbursement
	// and nothing for deleted_at.
	require.Len(t, changes, 8)
	assert.Equal(t, exp.ID.String(), *byAttr["uuid"].NewValue)
	assert.Equal(t, f.user.HouseholdID.String(), *byAttr["household_uuid"].NewValue)
	assert.Equal(t, "42.50", *byAttr["amount"].NewValue)
	assert.Equal(t, "2026-08-15T00:00:00Z", *byAttr["date"].NewValue)
	assert.Equal(t, "weekly shop", *byAttr["description"].NewValue)
	assert.Equal(t, f.subcategory.ID.String(), *byAttr["subcategory_uuid"].NewValue)
	assert.Equal(t, f.vendor.ID.String(), *byAttr["vendor_uuid"].NewValue)
	assert.Equal(t, f.member.ID.String(), *byAttr["household_member_uuid"].NewValue)
	assert.NotContains(t, byAttr, "reimbursed_amount")
	assert.NotContains(t, byAttr, "deleted_at")
}

func TestExpenseUpdateAuditsOnlyChangedAttributes(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	exp, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)

	req := f.request()
	req.Amount = "50.00"
	req.ReimbursedAmount = "10.00"
	updated, err := c.UpdateExpense(callFor(t, db, f.user), exp.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(5000), updated.Amount)
	assert.Equal(t, models.Cents(1000), updated.ReimbursedAmount)

	_, changes := latestLogChanges(t, db)
	require.Len(t, changes, 2)
	byAttr := map[string]models.AuditChange{}
	for _, ch := range changes {
		byAttr[ch.Attribute] = ch
	}
	require.Contains(t, byAttr, "amount")
	assert.Equal(t, "42.50", *byAttr["amount"].OldValue)
	assert.Equal(t, "50.00", *byAttr["amount"].NewValue)
	require.Contains(t, byAttr, "reimbursed_amount")
	assert.Nil(t, byAttr["reimbursed_amount"].OldValue)
	assert.Equal(t, "10.00", *byAttr["reimbursed_amount"].NewValue)
}

func TestExpenseRejectsReferencesFromOtherHousehold(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)
	other := registerTestUser(t, c, db)

	logsBefore := countAuditLogs(t, db)

	_, err := c.CreateExpense(callFor(t, db, other), f.request())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, logsBefore, countAuditLogs(t, db))
}

func TestExpenseInvalidAmount(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	for _, amount := range []string{"abc", "-5.00", "1.234", ""} {
		req := f.request()
		req.Amount = amount
		_, err := c.CreateExpense(callFor(t, db, f.user), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "amount %q", amount)
	}
}

func TestExpenseDeleteAudited(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	exp, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)

	require.NoError(t, c.DeleteExpense(callFor(t, db, f.user), exp.ID))

	_, changes := latestLogChanges(t, db)
	require.Len(t, changes, 1)
	assert.Equal(t, "expenses", changes[0].Table)
	assert.Equal(t, "deleted_at", changes[0].Attribute)

	_, err = c.GetExpense(f.user.HouseholdID, exp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
