package models

type ProductCategory struct {
	Base
	Name          string        `gorm:"not null" json:"name"`
	Description   string        `json:"description"`
	Active        bool          `gorm:"not null" json:"active"`
	Subcategories []Subcategory `gorm:"foreignKey:ProductCategoryID" json:"subcategories,omitempty"`
	Products      []Product     `gorm:"foreignKey:ProductCategoryID" json:"products,omitempty"` // read side only
}
