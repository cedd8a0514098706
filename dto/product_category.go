package dto

type ProductCategoryDto struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

type SubcategoryDto struct {
	Name              string `json:"name" validate:"required"`
	ProductCategoryID string `json:"productCategoryId" validate:"required"`
	Active            *bool  `json:"active"`
}

// IDDto is the body of lookup helpers that take a single id.
type IDDto struct {
	ID string `json:"id" validate:"required"`
}
