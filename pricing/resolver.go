package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/shopspring/decimal"
)

// IncompleteSelectionError is returned when a variant price is requested
// before every variant group has a valid choice.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("variant selection incomplete: choose %s", strings.Join(e.Missing, ", "))
}

// CurrentUnitPrice is the price of the product without any variant choice:
// the discount price while the discount is active, the base price otherwise.
func CurrentUnitPrice(p models.Product, now time.Time) float64 {
	if IsOnDiscount(p, now) {
		return *p.DiscountPrice
	}
	return p.Price
}

// MissingVariantGroups lists, in group order, the names of variant groups
// that have no choice in selection or whose chosen option does not exist.
func MissingVariantGroups(p models.Product, selection models.VariantSelection) []string {
	var missing []string
	for _, g := range p.Variants {
		chosen, ok := selection[g.Name]
		if !ok {
			missing = append(missing, g.Name)
			continue
		}
		if _, ok := g.Option(chosen); !ok {
			missing = append(missing, g.Name)
		}
	}
	return missing
}

// VariantUnitPrice resolves the unit price for a complete variant selection.
//
// Positive surcharges of the chosen options are summed. With no priced
// option the current unit price applies. Otherwise the sum is the price, and
// an active discount scales it by discountPrice/price.
func VariantUnitPrice(p models.Product, selection models.VariantSelection, now time.Time) (float64, error) {
	if missing := MissingVariantGroups(p, selection); len(missing) > 0 {
		return 0, &IncompleteSelectionError{Missing: missing}
	}

	variantSum := decimal.Zero
	for _, g := range p.Variants {
		opt, _ := g.Option(selection[g.Name])
		if opt.PriceSurcharge != nil && *opt.PriceSurcharge > 0 {
			variantSum = variantSum.Add(decimal.NewFromFloat(*opt.PriceSurcharge))
		}
	}

	if variantSum.IsZero() {
		return CurrentUnitPrice(p, now), nil
	}

	if !IsOnDiscount(p, now) {
		return toFloat(variantSum), nil
	}

	// Zero base price makes the discount ratio undefined.
	if p.Price <= 0 {
		return 0, nil
	}
	ratio := decimal.NewFromFloat(*p.DiscountPrice).Div(decimal.NewFromFloat(p.Price))
	return toFloat(variantSum.Mul(ratio)), nil
}

// ResolvePrice is VariantUnitPrice when a selection is given and
// CurrentUnitPrice otherwise.
func ResolvePrice(p models.Product, selection models.VariantSelection, now time.Time) (float64, error) {
	if selection == nil {
		return CurrentUnitPrice(p, now), nil
	}
	return VariantUnitPrice(p, selection, now)
}

// LineTotal multiplies a unit price by a quantity in cents-exact arithmetic.
func LineTotal(unitPrice float64, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return toFloat(decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
