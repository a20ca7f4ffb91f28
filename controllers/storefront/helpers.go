package storefront

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
)

// ─────────────────────────────────────────────────────────────
// Query parsing
// ─────────────────────────────────────────────────────────────

func (h *Handler) parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > h.maxPageSize {
		limit = h.defaultPageSize
	}

	return page, limit
}

// parseSelection replays the query string through the selection state so a
// request can never describe a selection the UI could not reach: categories
// are toggled in order with active_category last, and subcategories that do
// not belong to the active category are dropped.
func parseSelection(c *gin.Context, state *catalog.SelectionState) error {
	categoryIDs, err := parseUUIDs(c.QueryArray("category"))
	if err != nil {
		return err
	}

	var active *uuid.UUID
	if raw := c.Query("active_category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid active_category %q", raw)
		}
		active = &id
	}

	for _, id := range categoryIDs {
		if active != nil && id == *active {
			continue
		}
		state.ToggleCategory(id)
	}
	if active != nil {
		state.ToggleCategory(*active)
	}

	for _, label := range dedupe(c.QueryArray("subcategory")) {
		state.ToggleSubcategory(label)
	}

	state.SetSearchQuery(c.Query("q"))

	priceRange, err := parsePriceRange(c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		return err
	}
	state.SetPriceRange(priceRange)

	var flags models.ServiceFlags
	for name, dst := range map[string]*bool{
		"freeShipping": &flags.FreeShipping,
		"withDiscount": &flags.WithDiscount,
		"installment":  &flags.Installment,
	} {
		if raw := c.Query(name); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid %s %q", name, raw)
			}
			*dst = v
		}
	}
	state.SetServiceFlags(flags)

	state.SetSortKey(models.SortKey(c.DefaultQuery("sort", string(models.SortNameAsc))))
	return nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid category %q", s)
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parsePriceRange(minRaw, maxRaw string) (*models.PriceRange, error) {
	if minRaw == "" && maxRaw == "" {
		return nil, nil
	}
	r := &models.PriceRange{Min: 0, Max: math.MaxFloat64}
	if minRaw != "" {
		v, err := strconv.ParseFloat(minRaw, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid minPrice %q", minRaw)
		}
		r.Min = v
	}
	if maxRaw != "" {
		v, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("invalid maxPrice %q", maxRaw)
		}
		r.Max = v
	}
	if r.Min > r.Max {
		return nil, fmt.Errorf("minPrice %v is above maxPrice %v", r.Min, r.Max)
	}
	return r, nil
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Response mapping (THIN RESPONSE)
// ─────────────────────────────────────────────────────────────

func toProductResponse(p models.Product, now time.Time) models.StorefrontProductResponse {
	return models.StorefrontProductResponse{
		ID:                 p.ID.String(),
		Title:              p.Title,
		Price:              p.Price,
		CurrentPrice:       pricing.CurrentUnitPrice(p, now),
		OnDiscount:         pricing.IsOnDiscount(p, now),
		DiscountPercentage: pricing.DiscountPercentage(p, now),
		DiscountEndsIn:     pricing.RemainingDiscountLabel(p, now),
		FreeShipping:       p.FreeShipping,
		InStock:            p.Quantity > 0,
	}
}
