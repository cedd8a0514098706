package dto

import (
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Sortable product columns keyed by their JSON names.
var productOrderColumns = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"price":     "price",
}

type PaginationOptions struct {
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
	Search        string `json:"search"`
	CategoryID    string `json:"categoryId"`
	SubcategoryID string `json:"subcategoryId"`
	Active        *bool  `json:"active"`
	OrderBy       string `json:"orderBy"`
	Order         string `json:"order"`
}

// Normalize replaces out of range values with defaults and clamps the limit to
// maxLimit. The page is capped so Page*Limit fits an int. Unknown sort columns
// fall back to createdAt.
func (o PaginationOptions) Normalize(maxLimit int) PaginationOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if maxLimit > 0 && o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.Page > math.MaxInt/o.Limit {
		o.Page = math.MaxInt / o.Limit
	}
	if _, ok := productOrderColumns[o.OrderBy]; !ok {
		o.OrderBy = "createdAt"
	}
	o.Order = strings.ToUpper(o.Order)
	if o.Order != "ASC" {
		o.Order = "DESC"
	}
	o.Search = strings.TrimSpace(o.Search)
	return o
}

func (o PaginationOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// OrderClause is safe to hand to the ORM: both parts come from whitelists
// once the options are normalized.
func (o PaginationOptions) OrderClause() string {
	return productOrderColumns[o.OrderBy] + " " + o.Order
}

type PaginationMeta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"lastPage"`
}

type PaginatedResult[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func NewPaginatedResult[T any](data []T, total int64, opts PaginationOptions) PaginatedResult[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	if lastPage < 1 {
		lastPage = 1
	}
	return PaginatedResult[T]{
		Data: data,
		Meta: PaginationMeta{Total: total, Page: opts.Page, Limit: opts.Limit, LastPage: lastPage},
	}
}
