package usecases

import (
	"context"
	"errors"
	"fmt"

	"storefront/dto"
	"storefront/models"

	"go.uber.org/zap"
)

type ProductCategoryRepository interface {
	Create(ctx context.Context, c *models.ProductCategory) error
	Update(ctx context.Context, c *models.ProductCategory) error
	GetByID(ctx context.Context, id string, preloads ...string) (*models.ProductCategory, error)
	List(ctx context.Context) ([]models.ProductCategory, error)
	ListWithActiveProducts(ctx context.Context) ([]models.ProductCategory, error)
	DeleteWithSubcategories(ctx context.Context, id string) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, s *models.Subcategory) error
	Update(ctx context.Context, s *models.Subcategory) error
	GetByID(ctx context.Context, id string, preloads ...string) (*models.Subcategory, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error)
	CountLinkedProducts(ctx context.Context, id string) (int64, error)
	DeleteWithTimestamp(ctx context.Context, id string) error
}

type activeProductCounter interface {
	CountActiveByCategory(ctx context.Context, categoryID string) (int64, error)
}

type ProductCategoryUseCases struct {
	categories    ProductCategoryRepository
	subcategories SubcategoryRepository
	products      activeProductCounter
	logger        *zap.Logger
}

func NewProductCategoryUseCases(
	categories ProductCategoryRepository,
	subcategories SubcategoryRepository,
	products activeProductCounter,
	log *zap.Logger,
) *ProductCategoryUseCases {
	return &ProductCategoryUseCases{
		categories:    categories,
		subcategories: subcategories,
		products:      products,
		logger:        log,
	}
}

func (uc *ProductCategoryUseCases) Create(ctx context.Context, in dto.ProductCategoryDto) (*models.ProductCategory, error) {
	c := &models.ProductCategory{
		Name:        in.Name,
		Description: in.Description,
		Active:      boolOr(in.Active, true),
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create product category: %w", err)
	}

	uc.logger.Info("product category created", zap.String("category_id", c.ID))
	return c, nil
}

func (uc *ProductCategoryUseCases) Update(ctx context.Context, id string, in dto.ProductCategoryDto) (*models.ProductCategory, error) {
	c, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Description = in.Description
	c.Active = boolOr(in.Active, c.Active)
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update product category %s: %w", id, err)
	}
	return c, nil
}

func (uc *ProductCategoryUseCases) List(ctx context.Context) ([]models.ProductCategory, error) {
	return uc.categories.List(ctx)
}

func (uc *ProductCategoryUseCases) GetByID(ctx context.Context, id string) (*models.ProductCategory, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product category %s: %w", id, err)
	}
	return c, nil
}

func (uc *ProductCategoryUseCases) GetSubcategoriesByCategoryID(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	return uc.subcategories.ListByCategory(ctx, categoryID)
}

// Delete soft deletes the category and its subcategories. Categories still
// used by active products cannot be deleted.
func (uc *ProductCategoryUseCases) Delete(ctx context.Context, id string) error {
	n, err := uc.products.CountActiveByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: product category %s has %d active products", ErrConflict, id, n)
	}

	if err := uc.categories.DeleteWithSubcategories(ctx, id); err != nil {
		return fmt.Errorf("delete product category %s: %w", id, err)
	}

	uc.logger.Info("product category deleted", zap.String("category_id", id))
	return nil
}

func (uc *ProductCategoryUseCases) CreateSubcategory(ctx context.Context, in dto.SubcategoryDto) (*models.Subcategory, error) {
	if err := uc.checkCategory(ctx, in.ProductCategoryID); err != nil {
		return nil, err
	}

	s := &models.Subcategory{
		Name:              in.Name,
		ProductCategoryID: in.ProductCategoryID,
		Active:            boolOr(in.Active, true),
	}
	if err := uc.subcategories.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}
	return s, nil
}

func (uc *ProductCategoryUseCases) UpdateSubcategory(ctx context.Context, id string, in dto.SubcategoryDto) (*models.Subcategory, error) {
	s, err := uc.subcategories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("subcategory %s: %w", id, err)
	}
	if err := uc.checkCategory(ctx, in.ProductCategoryID); err != nil {
		return nil, err
	}
	// Linked products must stay in the category of their subcategories.
	if in.ProductCategoryID != s.ProductCategoryID {
		n, err := uc.subcategories.CountLinkedProducts(ctx, id)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, fmt.Errorf("%w: subcategory %s is linked to %d products", ErrConflict, id, n)
		}
	}

	s.Name = in.Name
	s.ProductCategoryID = in.ProductCategoryID
	s.Active = boolOr(in.Active, s.Active)
	if err := uc.subcategories.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update subcategory %s: %w", id, err)
	}
	return s, nil
}

func (uc *ProductCategoryUseCases) DeleteSubcategory(ctx context.Context, id string) error {
	if err := uc.subcategories.DeleteWithTimestamp(ctx, id); err != nil {
		return fmt.Errorf("delete subcategory %s: %w", id, err)
	}
	return nil
}

func (uc *ProductCategoryUseCases) checkCategory(ctx context.Context, id string) error {
	if _, err := uc.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: product category %s does not exist", ErrInvalidReference, id)
		}
		return err
	}
	return nil
}
