// Package pricing resolves the single authoritative unit price of a product.
//
// Every function takes the current instant as an argument; nothing in this
// package reads the system clock. Malformed records never cause a panic: a
// missing price is 0 and a partially populated discount is no discount.
package pricing

import (
	"fmt"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IsOnDiscount reports whether the product's discount applies at now. The
// discount price and both window dates must be present, and the window is
// inclusive at both ends.
func IsOnDiscount(p models.Product, now time.Time) bool {
	if p.DiscountPrice == nil || p.DiscountStartDate == nil || p.DiscountEndDate == nil {
		return false
	}
	return !now.Before(*p.DiscountStartDate) && !now.After(*p.DiscountEndDate)
}

// DiscountPercentage returns the whole-number percentage off the base price,
// rounded half-up and kept within [0, 100]. It is 0 when the discount is
// inactive or the base price is 0.
func DiscountPercentage(p models.Product, now time.Time) int {
	if !IsOnDiscount(p, now) || p.Price <= 0 {
		return 0
	}
	price := decimal.NewFromFloat(p.Price)
	off := price.Sub(decimal.NewFromFloat(*p.DiscountPrice))
	pct := off.Div(price).Mul(hundred).Round(0).IntPart()
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return int(pct)
}

// RemainingDiscountTime returns how long the active discount still runs.
// ok is false when there is no active discount or the window already ended.
func RemainingDiscountTime(p models.Product, now time.Time) (d time.Duration, ok bool) {
	if !IsOnDiscount(p, now) {
		return 0, false
	}
	end := *p.DiscountEndDate
	if !end.After(now) {
		return 0, false
	}
	return end.Sub(now), true
}

// FormatRemaining renders a countdown as "Dd Hh", "Hh Mm" or "Mm".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// RemainingDiscountLabel is the display form of RemainingDiscountTime; nil
// means no countdown should be shown.
func RemainingDiscountLabel(p models.Product, now time.Time) *string {
	d, ok := RemainingDiscountTime(p, now)
	if !ok {
		return nil
	}
	label := FormatRemaining(d)
	return &label
}
