package repository

import (
	"context"

	"storefront/models"

	"gorm.io/gorm"
)

type ProductCategoryRepository struct {
	*Repository[models.ProductCategory]
}

func NewProductCategoryRepository(db *gorm.DB) *ProductCategoryRepository {
	return &ProductCategoryRepository{Repository: New[models.ProductCategory](db)}
}

func (r *ProductCategoryRepository) List(ctx context.Context) ([]models.ProductCategory, error) {
	categories := []models.ProductCategory{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

// ListWithActiveProducts returns the active categories, each with its active
// products preloaded.
func (r *ProductCategoryRepository) ListWithActiveProducts(ctx context.Context) ([]models.ProductCategory, error) {
	categories := []models.ProductCategory{}
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("created_at DESC")
		}).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// DeleteWithSubcategories soft deletes the category together with its
// subcategories.
func (r *ProductCategoryRepository) DeleteWithSubcategories(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.ProductCategory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("product_category_id = ?", id).Delete(&models.Subcategory{}).Error
	})
}
