package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeledger-go/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	require.NoError(t, InitializeJWT("test-secret-that-is-long-enough-for-hs256"))

	userID := uuid.New()
	householdID := uuid.New()

	token, err := GenerateToken(userID, householdID, "avery@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, householdID, claims.HouseholdID)
	assert.Equal(t, "avery@example.com", claims.Email)
	assert.Equal(t, "homeledger-go", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	require.NoError(t, InitializeJWT("test-secret-that-is-long-enough-for-hs256"))

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	// Token signed with a different secret.
	require.NoError(t, InitializeJWT("another-secret-that-is-long-enough-zzz"))
	token, err := GenerateToken(uuid.New(), uuid.New(), "avery@example.com")
	require.NoError(t, err)
	require.NoError(t, InitializeJWT("test-secret-that-is-long-enough-for-hs256"))
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestFormatValidationError(t *testing.T) {
	err := ValidateStruct(models.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Equal(t, "password must be at least 8", fields["password"])
	assert.Contains(t, fields, "firstname")
	assert.Contains(t, fields, "lastname")
	assert.Contains(t, fields, "householdname")
}

func TestValidateStructExpenseRequest(t *testing.T) {
	valid := models.ExpenseRequest{
		SubcategoryID:     uuid.New().String(),
		VendorID:          uuid.New().String(),
		HouseholdMemberID: uuid.New().String(),
		Date:              "2026-08-15",
		Amount:            "42.50",
	}
	assert.NoError(t, ValidateStruct(valid))

	invalid := valid
	invalid.SubcategoryID = "not-a-uuid"
	invalid.Date = "15/08/2026"
	err := ValidateStruct(invalid)
	require.Error(t, err)
	fields := FormatValidationError(err)
	assert.Equal(t, "subcategoryid must be a valid uuid", fields["subcategoryid"])
	assert.Equal(t, "date must be a date in YYYY-MM-DD format", fields["date"])
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Groceries", SanitizeString("  Groceries \n"))
}
