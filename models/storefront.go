// ════════════════════════════════════════════════════════════
// STOREFRONT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StorefrontProductResponse is a product card in a catalog page.
type StorefrontProductResponse struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	CurrentPrice       float64 `json:"current_price"`
	OnDiscount         bool    `json:"on_discount"`
	DiscountPercentage int     `json:"discount_percentage,omitempty"`
	DiscountEndsIn     *string `json:"discount_ends_in,omitempty"`
	FreeShipping       bool    `json:"free_shipping"`
	InStock            bool    `json:"in_stock"`
}

// StorefrontCategory is a category with its subcategory labels.
type StorefrontCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// DiscountInfo answers "is this product discounted right now".
type DiscountInfo struct {
	ProductID      string  `json:"product_id"`
	OnDiscount     bool    `json:"on_discount"`
	Percentage     int     `json:"percentage"`
	RemainingLabel *string `json:"remaining,omitempty"`
}

// PriceQuote is the resolved unit price for a product and variant choice.
type PriceQuote struct {
	ProductID  string           `json:"product_id"`
	Variants   VariantSelection `json:"variants,omitempty"`
	UnitPrice  float64          `json:"unit_price"`
	Quantity   int              `json:"quantity"`
	LineTotal  float64          `json:"line_total"`
	OnDiscount bool             `json:"on_discount"`
}

// CartQuoteRequest is the add-to-cart price check body.
type CartQuoteRequest struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Variants  VariantSelection `json:"variants"`
	Quantity  int              `json:"quantity" binding:"omitempty,min=1" example:"1"`
}

// MissingVariantsData reports which variant groups still need a choice.
type MissingVariantsData struct {
	MissingGroups []string `json:"missing_groups"`
}

// StorefrontProductDetail is the product page payload.
type StorefrontProductDetail struct {
	StorefrontProductResponse
	Description   string           `json:"description"`
	CategoryID    *string          `json:"category_id,omitempty"`
	Subcategories []string         `json:"subcategories"`
	Variants      VariantGroupList `json:"variants"`
	Installment   bool             `json:"installment_available"`
	Attributes    datatypes.JSON   `json:"attributes,omitempty" swaggertype:"object"`
}
