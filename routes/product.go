package routes

import (
	"errors"

	"storefront/dto"
	"storefront/models"
	"storefront/usecases"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type productController struct {
	products   *usecases.ProductUseCases
	categories *usecases.ProductCategoryUseCases
	log        *zap.Logger
}

// POST /products
func (h *productController) create(c *fiber.Ctx) error {
	var in dto.CreateProductDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	if _, err := h.products.Create(c.UserContext(), in); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false})
}

// PUT /products/:id
func (h *productController) update(c *fiber.Ctx) error {
	var in dto.UpdateProductDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	if _, err := h.products.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false})
}

// POST /products/pagination
func (h *productController) pagination(c *fiber.Ctx) error {
	var opts dto.PaginationOptions
	if err := parseBody(c, &opts); err != nil {
		return err
	}

	res, err := h.products.Pagination(c.UserContext(), opts)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /products/launchesAndBestSeller answers failures itself instead of
// going through the error handler.
func (h *productController) launchesAndBestSeller(c *fiber.Ctx) error {
	launches, bestSellers, err := h.products.GetLaunchesAndBestSellers(c.UserContext())
	if err != nil {
		h.log.Error("Error fetching product", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"error":             false,
		"productLaunches":   launches,
		"productBestSeller": bestSellers,
	})
}

// GET /products/listAll
func (h *productController) listAll(c *fiber.Ctx) error {
	categories, err := h.products.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	launches, err := h.products.GetProductLaunches(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"error":             false,
		"productCategories": categories,
		"launches":          launches,
	})
}

// GET /products/:id
func (h *productController) getByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	product, err := h.products.GetByID(ctx, c.Params("id"))
	if err != nil {
		return err
	}

	// Inactive products may outlive their category.
	var category *models.ProductCategory
	category, err = h.categories.GetByID(ctx, product.ProductCategoryID)
	if err != nil && !errors.Is(err, usecases.ErrNotFound) {
		return err
	}

	subcategories, err := h.categories.GetSubcategoriesByCategoryID(ctx, product.ProductCategoryID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"error":           false,
		"Product":         product,
		"ProductCategory": category,
		"Subcategories":   subcategories,
	})
}

// DELETE /products/:id
func (h *productController) delete(c *fiber.Ctx) error {
	if err := h.products.DeleteWithTimestamp(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false})
}
