package catalog

import (
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// ApplyFilters returns the products that pass every predicate of sel, in
// their original order. The input slice is never modified.
//
// Predicates are AND-combined: category membership, any-of subcategory
// match, case-insensitive search over title and description, inclusive
// price range over the current unit price, and the service flags. Empty
// predicates pass everything.
func ApplyFilters(products []models.Product, sel models.Selection, now time.Time) []models.Product {
	f := newFilter(sel, now)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

type filter struct {
	now           time.Time
	categories    map[uuid.UUID]struct{}
	subcategories map[string]struct{}
	query         string
	fold          cases.Caser
	priceRange    *models.PriceRange
	flags         models.ServiceFlags
}

func newFilter(sel models.Selection, now time.Time) *filter {
	f := &filter{
		now:        now,
		fold:       cases.Fold(),
		priceRange: sel.PriceRange,
		flags:      sel.ServiceFlags,
	}
	if len(sel.SelectedCategoryIDs) > 0 {
		f.categories = make(map[uuid.UUID]struct{}, len(sel.SelectedCategoryIDs))
		for _, id := range sel.SelectedCategoryIDs {
			f.categories[id] = struct{}{}
		}
	}
	if len(sel.SelectedSubcategories) > 0 {
		f.subcategories = make(map[string]struct{}, len(sel.SelectedSubcategories))
		for _, label := range sel.SelectedSubcategories {
			f.subcategories[label] = struct{}{}
		}
	}
	if q := strings.TrimSpace(sel.SearchQuery); q != "" {
		f.query = f.fold.String(q)
	}
	return f
}

func (f *filter) match(p models.Product) bool {
	return f.matchCategory(p) &&
		f.matchSubcategory(p) &&
		f.matchSearch(p) &&
		f.matchPrice(p) &&
		f.matchFlags(p)
}

func (f *filter) matchCategory(p models.Product) bool {
	if f.categories == nil {
		return true
	}
	if p.CategoryID == nil {
		return false
	}
	_, ok := f.categories[*p.CategoryID]
	return ok
}

func (f *filter) matchSubcategory(p models.Product) bool {
	if f.subcategories == nil {
		return true
	}
	for _, label := range p.MetadataSubcategories {
		if _, ok := f.subcategories[label]; ok {
			return true
		}
	}
	return false
}

func (f *filter) matchSearch(p models.Product) bool {
	if f.query == "" {
		return true
	}
	return strings.Contains(f.fold.String(p.Title), f.query) ||
		strings.Contains(f.fold.String(p.Description), f.query)
}

func (f *filter) matchPrice(p models.Product) bool {
	if f.priceRange == nil {
		return true
	}
	return f.priceRange.Contains(pricing.CurrentUnitPrice(p, f.now))
}

func (f *filter) matchFlags(p models.Product) bool {
	if f.flags.WithDiscount && !pricing.IsOnDiscount(p, f.now) {
		return false
	}
	if f.flags.FreeShipping && !p.FreeShipping {
		return false
	}
	if f.flags.Installment && !p.InstallmentAvailable {
		return false
	}
	return true
}
