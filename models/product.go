package models

// Product prices are integer cents.
type Product struct {
	Base
	Name              string           `gorm:"not null" json:"name"`
	Price             int64            `gorm:"not null" json:"price"`
	Discount          int64            `gorm:"not null;default:0" json:"discount"`
	Color             string           `json:"color"`
	Size              string           `json:"size"`
	ShortDescription  string           `gorm:"not null" json:"shortDescription"`
	Description       string           `gorm:"type:text;not null" json:"description"`
	ProductCategoryID string           `gorm:"type:varchar(36);index;not null" json:"productCategoryId"`
	ImageURL          string           `json:"imageUrl"`
	Active            bool             `gorm:"not null" json:"active"`
	Launches          bool             `gorm:"not null" json:"launches"`
	BestSeller        bool             `gorm:"not null" json:"bestSeller"`
	ProductCategory   *ProductCategory `gorm:"foreignKey:ProductCategoryID" json:"productCategory,omitempty"`
	Subcategories     []Subcategory    `gorm:"many2many:product_subcategories" json:"subcategories"`
}

// SubcategoryIDs returns the ids of the associated subcategories in order.
func (p Product) SubcategoryIDs() []string {
	ids := make([]string, 0, len(p.Subcategories))
	for _, s := range p.Subcategories {
		ids = append(ids, s.ID)
	}
	return ids
}
