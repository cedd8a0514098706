package productform

import (
	"errors"
	"reflect"
	"strings"

	"storefront/dto"
	"storefront/models"

	"github.com/go-playground/validator/v10"
)

// Input is the body submitted by the admin product form.
type Input struct {
	Name              string   `json:"name" validate:"required"`
	Price             Amount   `json:"price" validate:"min=0.01"`
	ProductCategoryID string   `json:"productCategoryId" validate:"required"`
	ShortDescription  string   `json:"shortDescription" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	Active            *bool    `json:"active"`
	SubcategoryIDs    []string `json:"subcategoryId"`
}

// Values are the initial form values rendered for a product, or for a new
// product when none is given.
type Values struct {
	ProductCategoryID string   `json:"productCategoryId"`
	Name              string   `json:"name"`
	Active            bool     `json:"active"`
	Price             Amount   `json:"price"`
	Description       string   `json:"description"`
	ShortDescription  string   `json:"shortDescription"`
	SubcategoryIDs    []string `json:"subcategoryId"`
}

var messages = map[string]string{
	"name.required":              "Name is required",
	"price.required":             "Price is required",
	"price.min":                  "Minimum price is R$ 0,01",
	"price.max":                  "Price is too large",
	"productCategoryId.required": "Product category is required",
	"shortDescription.required":  "Short description is required",
	"description.required":       "Description is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		a := field.Interface().(Amount)
		if !a.Valid {
			return nil
		}
		f, _ := a.Value.Float64()
		return f
	}, Amount{})
	return v
}

// Validate checks the input against the form schema and returns one message
// per invalid field, keyed by its JSON name. A nil map means the input is
// valid.
func Validate(in Input) map[string]string {
	out := make(map[string]string)
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return map[string]string{"form": err.Error()}
		}
		for _, fe := range verrs {
			if _, seen := out[fe.Field()]; seen {
				continue
			}
			tag := fe.Tag()
			if fe.Field() == "price" && !in.Price.Valid {
				tag = "required"
			}
			msg, ok := messages[fe.Field()+"."+tag]
			if !ok {
				msg = fe.Error()
			}
			out[fe.Field()] = msg
		}
	}

	if _, seen := out["price"]; !seen && in.Price.Valid && !in.Price.FitsCents() {
		out["price"] = messages["price.max"]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Defaults computes the initial form values. The category falls back to the
// first available one and a new product starts active.
func Defaults(p *models.Product, categories []models.ProductCategory) Values {
	if p == nil {
		v := Values{Active: true, Price: AmountFromCents(0), SubcategoryIDs: []string{}}
		if len(categories) > 0 {
			v.ProductCategoryID = categories[0].ID
		}
		return v
	}

	categoryID := p.ProductCategoryID
	if categoryID == "" && len(categories) > 0 {
		categoryID = categories[0].ID
	}
	return Values{
		ProductCategoryID: categoryID,
		Name:              p.Name,
		Active:            p.Active,
		Price:             AmountFromCents(p.Price),
		Description:       p.Description,
		ShortDescription:  p.ShortDescription,
		SubcategoryIDs:    p.SubcategoryIDs(),
	}
}

func (in Input) active(fallback bool) *bool {
	if in.Active != nil {
		return in.Active
	}
	return &fallback
}

// CreateDto maps a validated input to a product creation. The price becomes
// integer cents.
func (in Input) CreateDto() dto.CreateProductDto {
	return dto.CreateProductDto{
		Name:              in.Name,
		Price:             in.Price.Cents(),
		ShortDescription:  in.ShortDescription,
		Description:       in.Description,
		ProductCategoryID: in.ProductCategoryID,
		Active:            in.active(true),
		Subcategories:     in.SubcategoryIDs,
	}
}

// UpdateDto maps a validated input onto existing. Fields the form does not
// edit keep their stored values.
func (in Input) UpdateDto(existing models.Product) dto.UpdateProductDto {
	discount := existing.Discount
	price := in.Price.Cents()
	if discount > price {
		discount = price
	}
	return dto.UpdateProductDto{
		Name:              in.Name,
		Price:             price,
		Discount:          discount,
		Color:             existing.Color,
		Size:              existing.Size,
		ShortDescription:  in.ShortDescription,
		Description:       in.Description,
		ProductCategoryID: in.ProductCategoryID,
		ImageURL:          existing.ImageURL,
		Active:            in.active(existing.Active),
		Launches:          &existing.Launches,
		BestSeller:        &existing.BestSeller,
		Subcategories:     in.SubcategoryIDs,
	}
}
