package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homeledger-go/models"
)

// Delete guards must fail before anything is written, leaving both the
// entity and the audit trail untouched.

func assertNothingWritten(t *testing.T, db *gorm.DB, logsBefore int64) {
	t.Helper()
	assert.Equal(t, logsBefore, countAuditLogs(t, db))
}

func TestVendorDeleteGuard(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	_, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)

	logsBefore := countAuditLogs(t, db)
	err = c.DeleteVendor(callFor(t, db, f.user), f.vendor.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assertNothingWritten(t, db, logsBefore)

	// After the expense is gone the vendor can be deleted.
	expenses, err := c.ListExpenses(f.user.HouseholdID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	require.NoError(t, c.DeleteExpense(callFor(t, db, f.user), expenses[0].ID))
	assert.NoError(t, c.DeleteVendor(callFor(t, db, f.user), f.vendor.ID))
}

func TestSubcategoryDeleteGuards(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	_, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)

	logsBefore := countAuditLogs(t, db)
	err = c.DeleteSubcategory(callFor(t, db, f.user), f.subcategory.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assertNothingWritten(t, db, logsBefore)
}

func TestHouseholdMemberDeleteGuards(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	_, err := c.CreateExpense(callFor(t, db, f.user), f.request())
	require.NoError(t, err)

	err = c.DeleteHouseholdMember(callFor(t, db, f.user), f.member.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// A member with incomes is equally protected.
	earner, err := c.CreateHouseholdMember(callFor(t, db, f.user), models.HouseholdMemberRequest{Name: "Robin"})
	require.NoError(t, err)
	_, err = c.CreateIncome(callFor(t, db, f.user), models.IncomeRequest{
		HouseholdMemberID: earner.ID.String(),
		Date:              "2026-08-01",
		Amount:            "2500.00",
		Description:       "salary",
	})
	require.NoError(t, err)

	err = c.DeleteHouseholdMember(callFor(t, db, f.user), earner.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestIncomeAndFundDeleteGuards(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	income, err := c.CreateIncome(callFor(t, db, f.user), models.IncomeRequest{
		HouseholdMemberID: f.member.ID.String(),
		Date:              "2026-08-01",
		Amount:            "2500.00",
	})
	require.NoError(t, err)

	fund, err := c.CreateFund(callFor(t, db, f.user), models.FundRequest{
		Name:         "Vacation",
		TargetAmount: "1000.00",
	})
	require.NoError(t, err)

	deposit, err := c.CreateDeposit(callFor(t, db, f.user), models.DepositRequest{
		FundID:   fund.ID.String(),
		IncomeID: income.ID.String(),
		Date:     "2026-08-02",
		Amount:   "200.00",
	})
	require.NoError(t, err)

	logsBefore := countAuditLogs(t, db)

	err = c.DeleteIncome(callFor(t, db, f.user), income.ID)
	assert.ErrorIs(t, err, ErrConflict)

	err = c.DeleteFund(callFor(t, db, f.user), fund.ID)
	assert.ErrorIs(t, err, ErrConflict)

	assertNothingWritten(t, db, logsBefore)

	// Removing the deposit unblocks both.
	require.NoError(t, c.DeleteDeposit(callFor(t, db, f.user), deposit.ID))
	assert.NoError(t, c.DeleteIncome(callFor(t, db, f.user), income.ID))
	assert.NoError(t, c.DeleteFund(callFor(t, db, f.user), fund.ID))
}

func TestDepositWithoutIncome(t *testing.T) {
	c, db := setupTest(t)
	f := seedExpenseFixtures(t, c, db)

	fund, err := c.CreateFund(callFor(t, db, f.user), models.FundRequest{Name: "Rainy Day"})
	require.NoError(t, err)

	deposit, err := c.CreateDeposit(callFor(t, db, f.user), models.DepositRequest{
		FundID: fund.ID.String(),
		Date:   "2026-08-02",
		Amount: "50.00",
	})
	require.NoError(t, err)
	assert.Nil(t, deposit.IncomeID)

	_, changes := latestLogChanges(t, db)
	for _, ch := range changes {
		assert.NotEqual(t, "income_uuid", ch.Attribute)
	}
}

func TestHouseholdRenameAudited(t *testing.T) {
	c, db := setupTest(t)
	user := registerTestUser(t, c, db)

	logsBefore := countAuditLogs(t, db)

	// Renaming to the current name writes nothing.
	current, err := c.GetHousehold(user.HouseholdID)
	require.NoError(t, err)
	_, err = c.UpdateHousehold(callFor(t, db, user), models.HouseholdRequest{Name: current.Name})
	require.NoError(t, err)
	assert.Equal(t, logsBefore, countAuditLogs(t, db))

	renamed, err := c.UpdateHousehold(callFor(t, db, user), models.HouseholdRequest{Name: "New Nest"})
	require.NoError(t, err)
	assert.Equal(t, "New Nest", renamed.Name)

	_, changes := latestLogChanges(t, db)
	require.Len(t, changes, 1)
	assert.Equal(t, "households", changes[0].Table)
	assert.Equal(t, "name", changes[0].Attribute)
	assert.Equal(t, current.Name, *changes[0].OldValue)
	assert.Equal(t, "New Nest", *changes[0].NewValue)
}
