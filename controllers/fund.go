package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

func (c *Controllers) CreateFund(apiCallID uuid.UUID, req models.FundRequest) (*models.Fund, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	var target models.Cents
	if req.TargetAmount != "" {
		if target, err = parseAmount(req.TargetAmount); err != nil {
			return nil, err
		}
	}

	fund := models.Fund{
		HouseholdID:  user.HouseholdID,
		Name:         utils.SanitizeString(req.Name),
		TargetAmount: target,
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&fund).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&fund},
		})
	})
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

func (c *Controllers) UpdateFund(apiCallID, fundID uuid.UUID, req models.FundRequest) (*models.Fund, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	var target models.Cents
	if req.TargetAmount != "" {
		if target, err = parseAmount(req.TargetAmount); err != nil {
			return nil, err
		}
	}

	var fund models.Fund
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fund, "uuid = ? AND household_uuid = ?", fundID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		before := fund.AuditValues()
		fund.Name = utils.SanitizeString(req.Name)
		fund.TargetAmount = target
		if len(audit.Diff(before, fund.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&fund).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &fund, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

func (c *Controllers) DeleteFund(apiCallID, fundID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	var n int64
	if err := c.db.Model(&models.Deposit{}).Where("fund_uuid = ? AND household_uuid = ?", fundID, user.HouseholdID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: fund still has deposits", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var fund models.Fund
		if err := tx.First(&fund, "uuid = ? AND household_uuid = ?", fundID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &fund); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&fund},
		})
	})
}

func (c *Controllers) GetFund(householdID, fundID uuid.UUID) (*models.Fund, error) {
	var fund models.Fund
	if err := c.db.First(&fund, "uuid = ? AND household_uuid = ?", fundID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &fund, nil
}

func (c *Controllers) ListFunds(householdID uuid.UUID) ([]models.Fund, error) {
	var funds []models.Fund
	if err := c.db.Where("household_uuid = ?", householdID).Order("name").Find(&funds).Error; err != nil {
		return nil, err
	}
	return funds, nil
}

func (c *Controllers) CreateDeposit(apiCallID uuid.UUID, req models.DepositRequest) (*models.Deposit, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	fundID, err := parseUUID(req.FundID)
	if err != nil {
		return nil, err
	}
	var incomeID *uuid.UUID
	if req.IncomeID != "" {
		id, err := parseUUID(req.IncomeID)
		if err != nil {
			return nil, err
		}
		incomeID = &id
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var deposit models.Deposit
	err = c.db.Transaction(func(tx *gorm.DB) error {
		var fund models.Fund
		if err := tx.First(&fund, "uuid = ? AND household_uuid = ?", fundID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if incomeID != nil {
			var income models.Income
			if err := tx.First(&income, "uuid = ? AND household_uuid = ?", *incomeID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}

		deposit = models.Deposit{
			HouseholdID: user.HouseholdID,
			FundID:      fund.ID,
			IncomeID:    incomeID,
			Date:        date,
			Amount:      amount,
		}
		if err := tx.Create(&deposit).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&deposit},
		})
	})
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

func (c *Controllers) UpdateDeposit(apiCallID, depositID uuid.UUID, req models.DepositRequest) (*models.Deposit, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	fundID, err := parseUUID(req.FundID)
	if err != nil {
		return nil, err
	}
	var incomeID *uuid.UUID
	if req.IncomeID != "" {
		id, err := parseUUID(req.IncomeID)
		if err != nil {
			return nil, err
		}
		incomeID = &id
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var deposit models.Deposit
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deposit, "uuid = ? AND household_uuid = ?", depositID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if fundID != deposit.FundID {
			var fund models.Fund
			if err := tx.First(&fund, "uuid = ? AND household_uuid = ?", fundID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}
		if incomeID != nil {
			var income models.Income
			if err := tx.First(&income, "uuid = ? AND household_uuid = ?", *incomeID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}

		before := deposit.AuditValues()
		deposit.FundID = fundID
		deposit.IncomeID = incomeID
		deposit.Date = date
		deposit.Amount = amount
		if len(audit.Diff(before, deposit.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&deposit).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &deposit, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &deposit, nil
}

func (c *Controllers) DeleteDeposit(apiCallID, depositID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var deposit models.Deposit
		if err := tx.First(&deposit, "uuid = ? AND household_uuid = ?", depositID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &deposit); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&deposit},
		})
	})
}

func (c *Controllers) GetDeposit(householdID, depositID uuid.UUID) (*models.Deposit, error) {
	var deposit models.Deposit
	if err := c.db.Preload("Fund").First(&deposit, "uuid = ? AND household_uuid = ?", depositID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &deposit, nil
}

func (c *Controllers) ListDeposits(householdID uuid.UUID) ([]models.Deposit, error) {
	var deposits []models.Deposit
	if err := c.db.Where("household_uuid = ?", householdID).Order("date DESC").Find(&deposits).Error; err != nil {
		return nil, err
	}
	return deposits, nil
}
