package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter orders products by one of the fixed sort keys. Name ordering is
// collated for the sorter's locale, ignores case and compares embedded
// numbers by value, so "Shirt 2" sorts before "Shirt 10".
type Sorter struct {
	locale language.Tag
}

func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{locale: locale}
}

// Sort returns a stably sorted copy of products. Price keys compare the
// current unit price at now. For an unknown key the copy keeps the input
// order and ok is false; callers are expected to log it.
func (s *Sorter) Sort(products []models.Product, key models.SortKey, now time.Time) (sorted []models.Product, ok bool) {
	sorted = slices.Clone(products)
	if sorted == nil {
		sorted = []models.Product{}
	}

	switch key {
	case models.SortNameAsc, models.SortNameDesc:
		// collate.Collator keeps internal buffers; one per call.
		col := collate.New(s.locale, collate.IgnoreCase, collate.Numeric)
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			c := col.CompareString(strings.TrimSpace(a.Title), strings.TrimSpace(b.Title))
			if key == models.SortNameDesc {
				return -c
			}
			return c
		})
	case models.SortPriceLow, models.SortPriceHigh:
		slices.SortStableFunc(sorted, func(a, b models.Product) int {
			c := cmp.Compare(pricing.CurrentUnitPrice(a, now), pricing.CurrentUnitPrice(b, now))
			if key == models.SortPriceHigh {
				return -c
			}
			return c
		})
	default:
		return sorted, false
	}
	return sorted, true
}

var defaultSorter = NewSorter(language.Und)

// SortProducts sorts with the root collation.
func SortProducts(products []models.Product, key models.SortKey, now time.Time) ([]models.Product, bool) {
	return defaultSorter.Sort(products, key, now)
}
