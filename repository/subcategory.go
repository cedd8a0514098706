package repository

import (
	"context"

	"storefront/models"

	"gorm.io/gorm"
)

type SubcategoryRepository struct {
	*Repository[models.Subcategory]
}

func NewSubcategoryRepository(db *gorm.DB) *SubcategoryRepository {
	return &SubcategoryRepository{Repository: New[models.Subcategory](db)}
}

func (r *SubcategoryRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	subcategories := []models.Subcategory{}
	err := r.db.WithContext(ctx).
		Where("product_category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error
	return subcategories, err
}

// CountLinkedProducts counts the live products linked to the subcategory.
func (r *SubcategoryRepository) CountLinkedProducts(ctx context.Context, id string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Joins("JOIN product_subcategories ON product_subcategories.product_id = products.id").
		Where("product_subcategories.subcategory_id = ?", id).
		Count(&n).Error
	return n, err
}
