// models/filters.go
package models

// FilterMetadata is what the storefront filter panel needs to render itself
type FilterMetadata struct {
	Availability *AvailabilityData    `json:"availability"`
	Categories   []StorefrontCategory `json:"categories"`
	PriceRange   *PriceRangeData      `json:"priceRange"`
	Services     *ServiceCounts       `json:"services"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// PriceRangeData is the lowest and highest current price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ServiceCounts counts the products each service flag would keep
type ServiceCounts struct {
	FreeShipping int `json:"freeShipping"`
	WithDiscount int `json:"withDiscount"`
	Installment  int `json:"installment"`
}
