package models

// Subcategory belongs to one ProductCategory and is linked to products
// through the product_subcategories join table.
type Subcategory struct {
	Base
	Name              string `gorm:"not null" json:"name"`
	ProductCategoryID string `gorm:"type:varchar(36);index;not null" json:"productCategoryId"`
	Active            bool   `gorm:"not null" json:"active"`
}
