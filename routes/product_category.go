package routes

import (
	"storefront/dto"
	"storefront/usecases"

	"github.com/gofiber/fiber/v2"
)

type categoryController struct {
	categories *usecases.ProductCategoryUseCases
}

func (h *categoryController) create(c *fiber.Ctx) error {
	var in dto.ProductCategoryDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	category, err := h.categories.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "productCategory": category})
}

func (h *categoryController) update(c *fiber.Ctx) error {
	var in dto.ProductCategoryDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	category, err := h.categories.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "productCategory": category})
}

func (h *categoryController) list(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "productCategories": categories})
}

func (h *categoryController) getByID(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category, err := h.categories.GetByID(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	subcategories, err := h.categories.GetSubcategoriesByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "productCategory": category, "subcategories": subcategories})
}

func (h *categoryController) subcategories(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category, err := h.categories.GetByID(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	subcategories, err := h.categories.GetSubcategoriesByCategoryID(ctx, category.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "subcategories": subcategories})
}

func (h *categoryController) delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false})
}

func (h *categoryController) createSubcategory(c *fiber.Ctx) error {
	var in dto.SubcategoryDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	subcategory, err := h.categories.CreateSubcategory(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"error": false, "subcategory": subcategory})
}

func (h *categoryController) updateSubcategory(c *fiber.Ctx) error {
	var in dto.SubcategoryDto
	if err := parseBody(c, &in); err != nil {
		return err
	}

	subcategory, err := h.categories.UpdateSubcategory(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false, "subcategory": subcategory})
}

func (h *categoryController) deleteSubcategory(c *fiber.Ctx) error {
	if err := h.categories.DeleteSubcategory(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"error": false})
}
