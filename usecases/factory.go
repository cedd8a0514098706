package usecases

import (
	"storefront/dto"
	"storefront/models"
)

// ProductFactory maps product DTOs onto entities.
type ProductFactory struct{}

func (ProductFactory) Create(in dto.CreateProductDto) *models.Product {
	return &models.Product{
		Name:              in.Name,
		Price:             in.Price,
		Discount:          in.Discount,
		Color:             in.Color,
		Size:              in.Size,
		ShortDescription:  in.ShortDescription,
		Description:       in.Description,
		ProductCategoryID: in.ProductCategoryID,
		ImageURL:          in.ImageURL,
		Active:            boolOr(in.Active, true),
		Launches:          boolOr(in.Launches, false),
		BestSeller:        boolOr(in.BestSeller, false),
		Subcategories:     subcategoryStubs(in.Subcategories),
	}
}

// Update returns a copy of existing carrying every field of in. Booleans
// missing from in keep their stored value.
func (ProductFactory) Update(existing models.Product, in dto.UpdateProductDto) *models.Product {
	p := existing
	p.Name = in.Name
	p.Price = in.Price
	p.Discount = in.Discount
	p.Color = in.Color
	p.Size = in.Size
	p.ShortDescription = in.ShortDescription
	p.Description = in.Description
	p.ProductCategoryID = in.ProductCategoryID
	p.ImageURL = in.ImageURL
	p.Active = boolOr(in.Active, existing.Active)
	p.Launches = boolOr(in.Launches, existing.Launches)
	p.BestSeller = boolOr(in.BestSeller, existing.BestSeller)
	p.ProductCategory = nil
	p.Subcategories = subcategoryStubs(in.Subcategories)
	return &p
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func subcategoryStubs(ids []string) []models.Subcategory {
	stubs := make([]models.Subcategory, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, models.Subcategory{Base: models.Base{ID: id}})
	}
	return stubs
}
