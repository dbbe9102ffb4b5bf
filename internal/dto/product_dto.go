package dto

import "github.com/shopspring/decimal"

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	// Search matches name, brand, model and tags as a substring.
	Search string `form:"q"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductRequest struct {
	Name        string          `json:"name"     validate:"required"`
	Brand       string          `json:"brand"    validate:"required"`
	Model       string          `json:"model"    validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"    validate:"required,gt=0"`
	Stock       int             `json:"stock"    validate:"min=0"`
	Description *string         `json:"description"`
	Features    []string        `json:"features"`
	Tags        []string        `json:"tags"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description"`
	Features    []string        `json:"features"`
	Tags        []string        `json:"tags"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PriceCheckResponse is served from the redis cache when warm.
type PriceCheckResponse struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
