package repository

import (
	"context"
	"strings"

	"storefront/dto"
	"storefront/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	*Repository[models.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{Repository: New[models.Product](db)}
}

// Create inserts the product and its subcategory links. The subcategories
// themselves must already exist.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("ProductCategory", "Subcategories.*").Create(p).Error
	})
}

// Update rewrites the product columns and replaces its subcategory links with
// p.Subcategories.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subcategories := p.Subcategories
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if len(subcategories) == 0 {
			return tx.Model(p).Association("Subcategories").Clear()
		}
		return tx.Model(p).Association("Subcategories").Replace(subcategories)
	})
}

func (r *ProductRepository) Paginate(ctx context.Context, opts dto.PaginationOptions) ([]models.Product, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if opts.Search != "" {
			like := "%" + strings.ToLower(opts.Search) + "%"
			db = db.Where("(LOWER(name) LIKE ? OR LOWER(short_description) LIKE ?)", like, like)
		}
		if opts.CategoryID != "" {
			db = db.Where("product_category_id = ?", opts.CategoryID)
		}
		if opts.SubcategoryID != "" {
			linked := r.db.WithContext(ctx).Table("product_subcategories").Select("product_id").Where("subcategory_id = ?", opts.SubcategoryID)
			db = db.Where("id IN (?)", linked)
		}
		if opts.Active != nil {
			db = db.Where("active = ?", *opts.Active)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := r.db.WithContext(ctx).Scopes(filter).
		Preload("Subcategories").
		Order(opts.OrderClause()).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Launches lists active products flagged as launches, newest first.
func (r *ProductRepository) Launches(ctx context.Context) ([]models.Product, error) {
	return r.activeWhere(ctx, "launches = ?", true)
}

// BestSellers lists active products flagged as best sellers, newest first.
func (r *ProductRepository) BestSellers(ctx context.Context) ([]models.Product, error) {
	return r.activeWhere(ctx, "best_seller = ?", true)
}

func (r *ProductRepository) activeWhere(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Where("active = ?", true).
		Where(query, args...).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) CountActiveByCategory(ctx context.Context, categoryID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("product_category_id = ? AND active = ?", categoryID, true).
		Count(&n).Error
	return n, err
}
