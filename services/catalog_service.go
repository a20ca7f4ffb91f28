package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/catalog"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogSource supplies the active catalog. The Postgres repository is the
// production implementation.
type CatalogSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type CatalogService struct {
	source CatalogSource
	cache  *cache.SnapshotCache
	sorter *catalog.Sorter
	log    *logrus.Logger
	now    func() time.Time
}

type Option func(*CatalogService)

// WithClock overrides the time used for discount windows.
func WithClock(now func() time.Time) Option {
	return func(s *CatalogService) { s.now = now }
}

func WithSorter(sorter *catalog.Sorter) Option {
	return func(s *CatalogService) { s.sorter = sorter }
}

func WithCache(c *cache.SnapshotCache) Option {
	return func(s *CatalogService) { s.cache = c }
}

func NewCatalogService(source CatalogSource, log *logrus.Logger, opts ...Option) *CatalogService {
	s := &CatalogService{
		source: source,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.NewSnapshotCache(cache.DefaultTTL)
	}
	if s.sorter == nil {
		s.sorter = catalog.NewSorter(language.Und)
	}
	return s
}

// Now is the clock every pricing decision of a request is made against.
func (s *CatalogService) Now() time.Time {
	return s.now()
}

// Snapshot returns the cached catalog, loading it from the source on a miss.
func (s *CatalogService) Snapshot(ctx context.Context) (*cache.Snapshot, error) {
	if snap, ok := s.cache.Get(); ok {
		middleware.RecordCacheLookup(true)
		return snap, nil
	}
	middleware.RecordCacheLookup(false)

	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	categories, err := s.source.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"products":   len(products),
		"categories": len(categories),
	}).Debug("Catalog snapshot refreshed")
	return s.cache.Set(products, categories), nil
}

// InvalidateCache drops the cached snapshot so the next read hits the source.
func (s *CatalogService) InvalidateCache() {
	s.cache.Invalidate()
	s.log.Info("✅ Catalog cache invalidated")
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		middleware.RecordCatalogOperation("categories", false)
		return nil, err
	}
	middleware.RecordCatalogOperation("categories", true)
	return snap.Categories, nil
}

// NewSelectionState starts a selection over the current categories.
func (s *CatalogService) NewSelectionState(ctx context.Context) (*catalog.SelectionState, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewSelectionState(categories), nil
}

// BrowseResult is one rendered catalog page.
type BrowseResult struct {
	Page       models.Page
	Total      int
	PageNumber int
	PageSize   int
	Now        time.Time
}

// Browse runs the filter, sort and paginate pipeline for sel. An unknown
// sort key leaves the filtered order untouched.
func (s *CatalogService) Browse(ctx context.Context, sel models.Selection, pageSize int) (*BrowseResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		middleware.RecordCatalogOperation("browse", false)
		return nil, err
	}
	now := s.now()

	filtered := catalog.ApplyFilters(snap.Products, sel, now)
	sorted, ok := s.sorter.Sort(filtered, sel.SortKey, now)
	if !ok {
		middleware.RecordUnknownSortKey()
		s.log.WithField("sort", sel.SortKey).Warn("⚠️ Unknown sort key, keeping filtered order")
	}

	middleware.RecordCatalogOperation("browse", true)
	return &BrowseResult{
		Page:       catalog.Paginate(sorted, pageSize, sel.Page),
		Total:      len(sorted),
		PageNumber: sel.Page,
		PageSize:   pageSize,
		Now:        now,
	}, nil
}

// Product looks up an active product by id.
func (s *CatalogService) Product(ctx context.Context, id uuid.UUID) (models.Product, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range snap.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Quote prices quantity units of a product for the given variant choice.
// A product with variants needs every group chosen.
func (s *CatalogService) Quote(ctx context.Context, id uuid.UUID, variants models.VariantSelection, quantity int) (*models.PriceQuote, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		middleware.RecordCatalogOperation("quote", false)
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}
	if variants == nil {
		variants = models.VariantSelection{}
	}
	now := s.now()

	unit, err := s.resolve(p, variants, now)
	if err != nil {
		middleware.RecordCatalogOperation("quote", false)
		return nil, err
	}

	middleware.RecordCatalogOperation("quote", true)
	return &models.PriceQuote{
		ProductID:  p.ID.String(),
		Variants:   variants,
		UnitPrice:  unit,
		Quantity:   quantity,
		LineTotal:  pricing.LineTotal(unit, quantity),
		OnDiscount: pricing.IsOnDiscount(p, now),
	}, nil
}

// Price resolves the unit price shown on the product page. A nil variant
// selection yields the plain current price.
func (s *CatalogService) Price(ctx context.Context, id uuid.UUID, variants models.VariantSelection) (*models.PriceQuote, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		middleware.RecordCatalogOperation("price", false)
		return nil, err
	}
	now := s.now()

	unit, err := s.resolve(p, variants, now)
	if err != nil {
		middleware.RecordCatalogOperation("price", false)
		return nil, err
	}

	middleware.RecordCatalogOperation("price", true)
	return &models.PriceQuote{
		ProductID:  p.ID.String(),
		Variants:   variants,
		UnitPrice:  unit,
		Quantity:   1,
		LineTotal:  unit,
		OnDiscount: pricing.IsOnDiscount(p, now),
	}, nil
}

func (s *CatalogService) resolve(p models.Product, variants models.VariantSelection, now time.Time) (float64, error) {
	unit, err := pricing.ResolvePrice(p, variants, now)
	var incomplete *pricing.IncompleteSelectionError
	if errors.As(err, &incomplete) {
		s.log.WithFields(logrus.Fields{
			"product_id": p.ID,
			"missing":    incomplete.Missing,
		}).Warn("⚠️ Incomplete variant selection")
	}
	return unit, err
}

// FilterMetadata summarises the catalog for the filter panel. Prices are
// current prices, so running discounts move the bounds.
func (s *CatalogService) FilterMetadata(ctx context.Context) (*models.FilterMetadata, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	meta := &models.FilterMetadata{
		Availability: &models.AvailabilityData{},
		Categories:   make([]models.StorefrontCategory, 0, len(snap.Categories)),
		PriceRange:   &models.PriceRangeData{},
		Services:     &models.ServiceCounts{},
	}
	for _, c := range snap.Categories {
		meta.Categories = append(meta.Categories, models.StorefrontCategory{
			ID:            c.ID.String(),
			Name:          c.Name,
			Subcategories: append([]string{}, c.Subcategories...),
		})
	}
	for i, p := range snap.Products {
		if p.Quantity > 0 {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}

		price := pricing.CurrentUnitPrice(p, now)
		if i == 0 || price < meta.PriceRange.Min {
			meta.PriceRange.Min = price
		}
		if i == 0 || price > meta.PriceRange.Max {
			meta.PriceRange.Max = price
		}

		if p.FreeShipping {
			meta.Services.FreeShipping++
		}
		if pricing.IsOnDiscount(p, now) {
			meta.Services.WithDiscount++
		}
		if p.InstallmentAvailable {
			meta.Services.Installment++
		}
	}
	return meta, nil
}

func (s *CatalogService) DiscountInfo(ctx context.Context, id uuid.UUID) (*models.DiscountInfo, error) {
	p, err := s.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &models.DiscountInfo{
		ProductID:      p.ID.String(),
		OnDiscount:     pricing.IsOnDiscount(p, now),
		Percentage:     pricing.DiscountPercentage(p, now),
		RemainingLabel: pricing.RemainingDiscountLabel(p, now),
	}, nil
}
