package controllers

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homeledger-go/audit"
	"homeledger-go/models"
	"homeledger-go/utils"
)

func (c *Controllers) CreateCategory(apiCallID uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	cat := models.Category{
		HouseholdID: user.HouseholdID,
		Name:        utils.SanitizeString(req.Name),
	}
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cat).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&cat},
		})
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Controllers) UpdateCategory(apiCallID, categoryID uuid.UUID, req models.CategoryRequest) (*models.Category, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}

	var cat models.Category
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, "uuid = ? AND household_uuid = ?", categoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		before := cat.AuditValues()
		cat.Name = utils.SanitizeString(req.Name)
		if len(audit.Diff(before, cat.AuditValues())) == 0 {
			// Nothing changed: no entity write, no audit rows.
			return nil
		}

		if err := tx.Save(&cat).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &cat, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Controllers) DeleteCategory(apiCallID, categoryID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	// This guard runs before any transaction opens: a category with live
	// subcategories fails without touching entity or audit state.
	var n int64
	if err := c.db.Model(&models.Subcategory{}).Where("category_uuid = ? AND household_uuid = ?", categoryID, user.HouseholdID).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: category still has subcategories", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, "uuid = ? AND household_uuid = ?", categoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &cat); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&cat},
		})
	})
}

func (c *Controllers) GetCategory(householdID, categoryID uuid.UUID) (*models.Category, error) {
	var cat models.Category
	if err := c.db.First(&cat, "uuid = ? AND household_uuid = ?", categoryID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &cat, nil
}

func (c *Controllers) ListCategories(householdID uuid.UUID) ([]models.Category, error) {
	var cats []models.Category
	if err := c.db.Where("household_uuid = ?", householdID).Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Controllers) CreateSubcategory(apiCallID uuid.UUID, req models.SubcategoryRequest) (*models.Subcategory, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	var sub models.Subcategory
	err = c.db.Transaction(func(tx *gorm.DB) error {
		// Parent ownership is verified inside the transaction so a
		// concurrent category delete cannot slip between check and write.
		var cat models.Category
		if err := tx.First(&cat, "uuid = ? AND household_uuid = ?", categoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}

		sub = models.Subcategory{
			HouseholdID: user.HouseholdID,
			CategoryID:  cat.ID,
			Name:        utils.SanitizeString(req.Name),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			New:       []audit.Auditable{&sub},
		})
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Controllers) UpdateSubcategory(apiCallID, subcategoryID uuid.UUID, req models.SubcategoryRequest) (*models.Subcategory, error) {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseUUID(req.CategoryID)
	if err != nil {
		return nil, err
	}

	var sub models.Subcategory
	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if categoryID != sub.CategoryID {
			var cat models.Category
			if err := tx.First(&cat, "uuid = ? AND household_uuid = ?", categoryID, user.HouseholdID).Error; err != nil {
				return notFound(err)
			}
		}

		before := sub.AuditValues()
		sub.CategoryID = categoryID
		sub.Name = utils.SanitizeString(req.Name)
		if len(audit.Diff(before, sub.AuditValues())) == 0 {
			return nil
		}

		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Changed:   []audit.Change{{Instance: &sub, Before: before}},
		})
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Controllers) DeleteSubcategory(apiCallID, subcategoryID uuid.UUID) error {
	user, err := c.resolveCaller(apiCallID)
	if err != nil {
		return err
	}

	var expenses int64
	if err := c.db.Model(&models.Expense{}).Where("subcategory_uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Count(&expenses).Error; err != nil {
		return err
	}
	if expenses > 0 {
		return fmt.Errorf("%w: subcategory still has expenses", ErrConflict)
	}
	var budgets int64
	if err := c.db.Model(&models.Budget{}).Where("subcategory_uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Count(&budgets).Error; err != nil {
		return err
	}
	if budgets > 0 {
		return fmt.Errorf("%w: subcategory still has budgets", ErrConflict)
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		var sub models.Subcategory
		if err := tx.First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, user.HouseholdID).Error; err != nil {
			return notFound(err)
		}
		if err := softDelete(tx, &sub); err != nil {
			return err
		}
		return audit.TrackChanges(tx, audit.TrackParams{
			ApiCallID: apiCallID,
			Deleted:   []audit.Auditable{&sub},
		})
	})
}

func (c *Controllers) GetSubcategory(householdID, subcategoryID uuid.UUID) (*models.Subcategory, error) {
	var sub models.Subcategory
	if err := c.db.Preload("Category").First(&sub, "uuid = ? AND household_uuid = ?", subcategoryID, householdID).Error; err != nil {
		return nil, notFound(err)
	}
	return &sub, nil
}

func (c *Controllers) ListSubcategories(householdID uuid.UUID) ([]models.Subcategory, error) {
	var subs []models.Subcategory
	if err := c.db.Where("household_uuid = ?", householdID).Order("name").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
