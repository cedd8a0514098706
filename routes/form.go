package routes

import (
	"errors"

	"storefront/dto"
	"storefront/models"
	"storefront/productform"
	"storefront/usecases"

	"github.com/gofiber/fiber/v2"
)

const (
	newProductID    = "new"
	productListPage = "/system/produto"
)

// formController serves the state behind the admin product form page.
type formController struct {
	products   *usecases.ProductUseCases
	categories *usecases.ProductCategoryUseCases
}

// GET /system/produto/form/:id
func (h *formController) show(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var product *models.Product
	if id != newProductID {
		p, err := h.products.GetByID(ctx, id)
		if errors.Is(err, usecases.ErrNotFound) {
			return c.Redirect(productListPage, fiber.StatusFound)
		}
		if err != nil {
			return err
		}
		product = p
	}

	categories, err := h.categories.List(ctx)
	if err != nil {
		return err
	}

	var body interface{} = fiber.Map{}
	if product != nil {
		body = product
	}
	return c.JSON(fiber.Map{
		"product":           body,
		"productCategories": categories,
		"form":              productform.Defaults(product, categories),
	})
}

// POST /system/produto/form/:id creates the product when id is "new" and
// updates it otherwise.
func (h *formController) submit(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var in productform.Input
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to parse request body")
	}
	if errs := productform.Validate(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Validation failed",
			"details": errs,
		})
	}

	if id == newProductID {
		p, err := h.products.Create(ctx, in.CreateDto())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "id": p.ID})
	}

	existing, err := h.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p, err := h.products.Update(ctx, id, in.UpdateDto(*existing))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "id": p.ID})
}

// POST /api/list-subcategories-by-category
func (h *formController) listSubcategories(c *fiber.Ctx) error {
	var in dto.IDDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	subcategories, err := h.categories.GetSubcategoriesByCategoryID(c.UserContext(), in.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subcategories": subcategories})
}
