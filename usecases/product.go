package usecases

import (
	"context"
	"errors"
	"fmt"

	"storefront/dto"
	"storefront/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id string, preloads ...string) (*models.Product, error)
	Paginate(ctx context.Context, opts dto.PaginationOptions) ([]models.Product, int64, error)
	Launches(ctx context.Context) ([]models.Product, error)
	BestSellers(ctx context.Context) ([]models.Product, error)
	CountActiveByCategory(ctx context.Context, categoryID string) (int64, error)
	DeleteWithTimestamp(ctx context.Context, id string) error
}

type ProductUseCases struct {
	products      ProductRepository
	categories    ProductCategoryRepository
	subcategories SubcategoryRepository
	factory       ProductFactory
	notifier      Notifier
	maxPageLimit  int
	logger        *zap.Logger
}

func NewProductUseCases(
	products ProductRepository,
	categories ProductCategoryRepository,
	subcategories SubcategoryRepository,
	notifier Notifier,
	maxPageLimit int,
	log *zap.Logger,
) *ProductUseCases {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ProductUseCases{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		notifier:      notifier,
		maxPageLimit:  maxPageLimit,
		logger:        log,
	}
}

func (uc *ProductUseCases) Create(ctx context.Context, in dto.CreateProductDto) (*models.Product, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p := uc.factory.Create(in)

	subcategories, err := uc.resolveReferences(ctx, p.ProductCategoryID, p.SubcategoryIDs())
	if err != nil {
		return nil, err
	}
	p.Subcategories = subcategories

	if err := uc.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	uc.logger.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	uc.notifier.Notify(EventProductCreated, p.ID)
	return p, nil
}

func (uc *ProductUseCases) Update(ctx context.Context, id string, in dto.UpdateProductDto) (*models.Product, error) {
	existing, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	p := uc.factory.Update(*existing, in)

	subcategories, err := uc.resolveReferences(ctx, p.ProductCategoryID, p.SubcategoryIDs())
	if err != nil {
		return nil, err
	}
	p.Subcategories = subcategories

	if err := uc.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	uc.logger.Info("product updated", zap.String("product_id", p.ID))
	uc.notifier.Notify(EventProductUpdated, p.ID)
	return p, nil
}

func (uc *ProductUseCases) Pagination(ctx context.Context, opts dto.PaginationOptions) (dto.PaginatedResult[models.Product], error) {
	opts = opts.Normalize(uc.maxPageLimit)

	products, total, err := uc.products.Paginate(ctx, opts)
	if err != nil {
		return dto.PaginatedResult[models.Product]{}, fmt.Errorf("paginate products: %w", err)
	}
	return dto.NewPaginatedResult(products, total, opts), nil
}

func (uc *ProductUseCases) GetProductLaunches(ctx context.Context) ([]models.Product, error) {
	return uc.products.Launches(ctx)
}

func (uc *ProductUseCases) GetProductBestSeller(ctx context.Context) ([]models.Product, error) {
	return uc.products.BestSellers(ctx)
}

// GetLaunchesAndBestSellers loads both showcase lists concurrently.
func (uc *ProductUseCases) GetLaunchesAndBestSellers(ctx context.Context) (launches, bestSellers []models.Product, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		launches, err = uc.GetProductLaunches(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bestSellers, err = uc.GetProductBestSeller(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return launches, bestSellers, nil
}

// ListAll returns the active categories with their active products.
func (uc *ProductUseCases) ListAll(ctx context.Context) ([]models.ProductCategory, error) {
	return uc.categories.ListWithActiveProducts(ctx)
}

func (uc *ProductUseCases) GetByID(ctx context.Context, id string) (*models.Product, error) {
	p, err := uc.products.GetByID(ctx, id, "Subcategories")
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	return p, nil
}

func (uc *ProductUseCases) DeleteWithTimestamp(ctx context.Context, id string) error {
	if err := uc.products.DeleteWithTimestamp(ctx, id); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	uc.logger.Info("product deleted", zap.String("product_id", id))
	uc.notifier.Notify(EventProductDeleted, id)
	return nil
}

// resolveReferences checks that the category exists and loads the requested
// subcategories, all of which must belong to that category.
func (uc *ProductUseCases) resolveReferences(ctx context.Context, categoryID string, subcategoryIDs []string) ([]models.Subcategory, error) {
	if _, err := uc.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: product category %s does not exist", ErrInvalidReference, categoryID)
		}
		return nil, err
	}

	ids := uniqueIDs(subcategoryIDs)
	found, err := uc.subcategories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Subcategory, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	subcategories := make([]models.Subcategory, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: subcategory %s does not exist", ErrInvalidReference, id)
		}
		if s.ProductCategoryID != categoryID {
			return nil, fmt.Errorf("%w: subcategory %s does not belong to category %s", ErrInvalidReference, id, categoryID)
		}
		subcategories = append(subcategories, s)
	}
	return subcategories, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
