package models

import "github.com/google/uuid"

// SortKey names one of the fixed catalog orderings.
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// Valid reports whether k is one of the known sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortNameAsc, SortNameDesc, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// PriceRange is an inclusive [Min, Max] bound on the current unit price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// ServiceFlags are AND-combined; a false flag is no constraint.
type ServiceFlags struct {
	FreeShipping bool `json:"free_shipping"`
	WithDiscount bool `json:"with_discount"`
	Installment  bool `json:"installment"`
}

// Selection is the per-session browsing state of the catalog.
//
// ActiveCategoryID is nil or one of SelectedCategoryIDs, and every entry of
// SelectedSubcategories belongs to the active category's subcategory set.
// Set-valued fields keep insertion order and hold no duplicates.
type Selection struct {
	SelectedCategoryIDs   []uuid.UUID  `json:"selected_category_ids"`
	ActiveCategoryID      *uuid.UUID   `json:"active_category_id"`
	SelectedSubcategories []string     `json:"selected_subcategories"`
	SearchQuery           string       `json:"search_query"`
	PriceRange            *PriceRange  `json:"price_range"`
	ServiceFlags          ServiceFlags `json:"service_flags"`
	SortKey               SortKey      `json:"sort_key"`
	Page                  int          `json:"page"`
}

// Clone returns a deep copy of s.
func (s Selection) Clone() Selection {
	out := s
	if s.SelectedCategoryIDs != nil {
		out.SelectedCategoryIDs = append([]uuid.UUID(nil), s.SelectedCategoryIDs...)
	}
	if s.SelectedSubcategories != nil {
		out.SelectedSubcategories = append([]string(nil), s.SelectedSubcategories...)
	}
	if s.ActiveCategoryID != nil {
		id := *s.ActiveCategoryID
		out.ActiveCategoryID = &id
	}
	if s.PriceRange != nil {
		r := *s.PriceRange
		out.PriceRange = &r
	}
	return out
}

// Page is one slice of a sorted product list.
type Page struct {
	Items      []Product `json:"items"`
	TotalPages int       `json:"total_pages"`
}
