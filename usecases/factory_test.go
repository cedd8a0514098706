package usecases

import (
	"testing"

	"storefront/dto"
	"storefront/models"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestProductFactoryCreate(t *testing.T) {
	var f ProductFactory

	t.Run("Defaults", func(t *testing.T) {
		p := f.Create(dto.CreateProductDto{
			Name:              "Shirt",
			Price:             1990,
			ShortDescription:  "short",
			Description:       "long",
			ProductCategoryID: "cat-1",
			ImageURL:          "/uploads/a.png",
		})

		assert.True(t, p.Active)
		assert.False(t, p.Launches)
		assert.False(t, p.BestSeller)
		assert.Equal(t, int64(1990), p.Price)
		assert.Equal(t, "/uploads/a.png", p.ImageURL)
		assert.Empty(t, p.Subcategories)
	})

	t.Run("ExplicitFlags", func(t *testing.T) {
		p := f.Create(dto.CreateProductDto{
			Active:        ptr(false),
			Launches:      ptr(true),
			BestSeller:    ptr(true),
			Subcategories: []string{"s1", "s2"},
		})

		assert.False(t, p.Active)
		assert.True(t, p.Launches)
		assert.True(t, p.BestSeller)
		assert.Equal(t, []string{"s1", "s2"}, p.SubcategoryIDs())
	})
}

func TestProductFactoryUpdate(t *testing.T) {
	var f ProductFactory
	existing := models.Product{
		Base:       models.Base{ID: "p1"},
		Name:       "Old",
		ImageURL:   "/uploads/old.png",
		Active:     true,
		Launches:   true,
		BestSeller: false,
	}

	p := f.Update(existing, dto.UpdateProductDto{
		Name:              "New",
		Price:             500,
		Discount:          50,
		Color:             "red",
		Size:              "M",
		ShortDescription:  "s",
		Description:       "d",
		ProductCategoryID: "cat-2",
		ImageURL:          "/uploads/new.png",
		BestSeller:        ptr(true),
	})

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "New", p.Name)
	assert.Equal(t, "/uploads/new.png", p.ImageURL)
	assert.Equal(t, "cat-2", p.ProductCategoryID)
	assert.Equal(t, int64(50), p.Discount)
	assert.True(t, p.Active, "absent flag keeps stored value")
	assert.True(t, p.Launches, "absent flag keeps stored value")
	assert.True(t, p.BestSeller)
	assert.Equal(t, "Old", existing.Name, "existing is not mutated")
}
