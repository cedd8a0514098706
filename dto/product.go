package dto

// CreateProductDto is the body of POST /products. Prices are integer cents.
// Absent booleans fall back to active=true, launches=false, bestSeller=false.
type CreateProductDto struct {
	Name              string   `json:"name" validate:"required"`
	Price             int64    `json:"price" validate:"min=1"`
	Discount          int64    `json:"discount" validate:"gte=0,ltefield=Price"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	ShortDescription  string   `json:"shortDescription" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	ProductCategoryID string   `json:"productCategoryId" validate:"required"`
	ImageURL          string   `json:"imageUrl"`
	Active            *bool    `json:"active"`
	Launches          *bool    `json:"launches"`
	BestSeller        *bool    `json:"bestSeller"`
	Subcategories     []string `json:"subcategories" validate:"omitempty,dive,required"`
}

// UpdateProductDto is the body of PUT /products/:id. Every field replaces the
// stored value, absent booleans keep it.
type UpdateProductDto struct {
	Name              string   `json:"name" validate:"required"`
	Price             int64    `json:"price" validate:"min=1"`
	Discount          int64    `json:"discount" validate:"gte=0,ltefield=Price"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	ShortDescription  string   `json:"shortDescription" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	ProductCategoryID string   `json:"productCategoryId" validate:"required"`
	ImageURL          string   `json:"imageUrl"`
	Active            *bool    `json:"active"`
	Launches          *bool    `json:"launches"`
	BestSeller        *bool    `json:"bestSeller"`
	Subcategories     []string `json:"subcategories" validate:"omitempty,dive,required"`
}
