package catalog

import (
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyFilters_NoConstraintReturnsInputUnchanged(t *testing.T) {
	products := testProducts()
	sel := NewSelectionState(testCategories()).Snapshot()

	got := ApplyFilters(products, sel, now)
	assert.Equal(t, products, got)
}

func TestApplyFilters_Predicates(t *testing.T) {
	cases := []struct {
		name string
		sel  models.Selection
		want []string
	}{
		{
			name: "category",
			sel:  models.Selection{SelectedCategoryIDs: []uuid.UUID{shoesID, accessoriesID}},
			want: []string{"Runner Sneaker", "Chelsea Boot", "Tote Bag"},
		},
		{
			name: "subcategory any-of",
			sel:  models.Selection{SelectedSubcategories: []string{"Dresses", "Outerwear"}},
			want: []string{"Wrap Dress", "Wool Coat 10", "wool coat 2"},
		},
		{
			name: "search title case-insensitive",
			sel:  models.Selection{SearchQuery: "  WOOL  "},
			want: []string{"Wool Coat 10", "wool coat 2"},
		},
		{
			name: "search description",
			sel:  models.Selection{SearchQuery: "summer"},
			want: []string{"Linen Shirt"},
		},
		{
			name: "price range uses discounted price and is inclusive",
			sel:  models.Selection{PriceRange: &models.PriceRange{Min: 99, Max: 150}},
			want: []string{"Linen Shirt", "Wrap Dress", "Runner Sneaker"},
		},
		{
			name: "with discount",
			sel:  models.Selection{ServiceFlags: models.ServiceFlags{WithDiscount: true}},
			want: []string{"Wrap Dress", "Runner Sneaker"},
		},
		{
			name: "free shipping",
			sel:  models.Selection{ServiceFlags: models.ServiceFlags{FreeShipping: true}},
			want: []string{"Linen Shirt", "Runner Sneaker"},
		},
		{
			name: "installment",
			sel:  models.Selection{ServiceFlags: models.ServiceFlags{Installment: true}},
			want: []string{"Wrap Dress"},
		},
		{
			name: "flags are AND-combined",
			sel:  models.Selection{ServiceFlags: models.ServiceFlags{FreeShipping: true, WithDiscount: true}},
			want: []string{"Runner Sneaker"},
		},
		{
			name: "all predicates together",
			sel: models.Selection{
				SelectedCategoryIDs:   []uuid.UUID{clothingID},
				SelectedSubcategories: []string{"Outerwear"},
				SearchQuery:           "coat",
				PriceRange:            &models.PriceRange{Min: 0, Max: 400},
			},
			want: []string{"wool coat 2"},
		},
		{
			name: "nothing matches",
			sel:  models.Selection{SearchQuery: "tuxedo"},
			want: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFilters(testProducts(), tc.sel, now)
			assert.Equal(t, tc.want, titles(got))
		})
	}
}

func TestApplyFilters_DiscountWindowFollowsInjectedClock(t *testing.T) {
	sel := models.Selection{ServiceFlags: models.ServiceFlags{WithDiscount: true}}

	assert.Len(t, ApplyFilters(testProducts(), sel, now), 2)
	assert.Empty(t, ApplyFilters(testProducts(), sel, now.Add(2*time.Hour)))
}

func TestApplyFilters_DoesNotModifyInput(t *testing.T) {
	products := testProducts()
	before := titles(products)

	_ = ApplyFilters(products, models.Selection{SearchQuery: "boot"}, now)
	assert.Equal(t, before, titles(products))
}

func TestApplyFilters_LocalScriptSearch(t *testing.T) {
	products := []models.Product{
		{Title: "Платье летнее", Price: 10},
		{Title: "Summer dress", Price: 10},
	}
	got := ApplyFilters(products, models.Selection{SearchQuery: "ПЛАТЬЕ"}, now)
	assert.Equal(t, []string{"Платье летнее"}, titles(got))
}
