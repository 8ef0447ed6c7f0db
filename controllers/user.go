package controllers

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

// Register bootstraps a household: household, user, the user's household
// member and the login credential are created atomically with one audit log
// covering the three audited rows. The credential row is never audited.
//
// Registration runs before any user exists, so the ApiCall carries no acting
// user; it still must exist for correlation.
func (c *Controllers) Register(apiCallID uuid.UUID, req models.RegisterRequest) (*models.User, error) {
	if _, err := c.resolveCall(apiCallID); err != nil {
		return nil, err
	}

	var existing models.User
	err := c.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user models.User
	err = c.db.Transaction(func(tx *gorm.DB) error {
		household := models.Household{Name: utils.SanitizeString(req.HouseholdName)}
		if err := tx.Create(&household).Error; err != nil {
			return err
		}

		user = models.User{
			HouseholdID: household.ID,
			Email:       req.Email,
			FirstName:   utils.SanitizeString(req.FirstName),
			LastName:    utils.SanitizeString(req.LastName),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		member := models.HouseholdMember{
			HouseholdID: household.ID,
			Name:        utils.SanitizeString(req.FirstName),
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		login := models.UserLogin{
			UserID:       user.ID,
			PasswordHash: hash,
		}
		if err := tx.Create(&login).Error; err != nil {
			return err
		}

		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&household, &user, &member},
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Controllers) UpdateProfile(apiCallID uuid.UUID, req models.ProfileRequest) (*models.User, error) {
	caller, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "uuid = ?", caller.ID).Error; err != nil {
			return notFound(err)
		}

		before := user.AuditValues()
		user.FirstName = utils.SanitizeString(req.FirstName)
		user.LastName = utils.SanitizeString(req.LastName)
		if len(audit.Diff(before, user.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &user, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Controllers) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.db.Preload("Household").First(&user, "uuid = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// Authenticate verifies a credential pair and returns the user on success.
// Login is not a mutation and leaves no audit trail beyond its ApiCall row.
func (c *Controllers) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := c.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	var login models.UserLogin
	if err := c.db.Where("user_uuid = ?", user.ID).First(&login).Error; err != nil {
		return nil, notFound(err)
	}
	if !utils.CheckPasswordHash(password, login.PasswordHash) {
		return nil, ErrNotFound
	}
	return &user, nil
}
