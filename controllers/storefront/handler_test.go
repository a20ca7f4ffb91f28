package storefront_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront"
	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
)

var (
	now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	clothing = uuid.MustParse("018f0000-0000-7000-8000-0000000000c1")
	shoes    = uuid.MustParse("018f0000-0000-7000-8000-0000000000c2")

	shirtID   = uuid.MustParse("018f0000-0000-7000-8000-0000000000d1")
	jacketID  = uuid.MustParse("018f0000-0000-7000-8000-0000000000d2")
	sneakerID = uuid.MustParse("018f0000-0000-7000-8000-0000000000d3")
	bootID    = uuid.MustParse("018f0000-0000-7000-8000-0000000000d4")
)

type memorySource struct {
	products   []models.Product
	categories []models.Category
}

func (m *memorySource) ListProducts(context.Context) ([]models.Product, error) {
	return m.products, nil
}

func (m *memorySource) ListCategories(context.Context) ([]models.Category, error) {
	return m.categories, nil
}

func ptr[T any](v T) *T { return &v }

type envelope struct {
	Message string             `json:"message"`
	Error   bool               `json:"error"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	start := now.Add(-24 * time.Hour)
	end := now.Add(3*time.Hour + 15*time.Minute)

	src := &memorySource{
		categories: []models.Category{
			{ID: clothing, Name: "Clothing", Subcategories: models.SubcategoryList{"Shirts", "Outerwear"}},
			{ID: shoes, Name: "Shoes", Subcategories: models.SubcategoryList{"Sneakers", "Boots"}},
		},
		products: []models.Product{
			{ID: shirtID, Title: "Oxford Shirt", Price: 90, CategoryID: &clothing, MetadataSubcategories: models.SubcategoryList{"Shirts"}, Quantity: 4, FreeShipping: true},
			{
				ID: jacketID, Title: "Field Jacket", Price: 800, DiscountPrice: ptr(640.0),
				DiscountStartDate: &start, DiscountEndDate: &end,
				CategoryID: &clothing, MetadataSubcategories: models.SubcategoryList{"Outerwear"}, Quantity: 2,
				Variants: models.VariantGroupList{
					{Name: "Size", Options: []models.VariantOption{{Name: "S", PriceSurcharge: ptr(0.0)}, {Name: "L", PriceSurcharge: ptr(200.0)}}},
					{Name: "Color", Options: []models.VariantOption{{Name: "Olive"}, {Name: "Navy"}}},
				},
			},
			{ID: sneakerID, Title: "Court Sneaker", Price: 120, CategoryID: &shoes, MetadataSubcategories: models.SubcategoryList{"Sneakers"}, InstallmentAvailable: true},
			{ID: bootID, Title: "Chelsea Boot", Price: 260, CategoryID: &shoes, MetadataSubcategories: models.SubcategoryList{"Boots"}, Quantity: 1},
		},
	}

	svc := services.NewCatalogService(src, logger.Discard(), services.WithClock(func() time.Time { return now }))
	h := storefront.NewHandler(svc, logger.Discard(), 12, 100)

	router := gin.New()
	ecommerce_routes.SetupStorefrontRoutes(router.Group("/api/v1"), h)
	return router
}

func do(t *testing.T, router *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func productTitles(t *testing.T, env envelope) []string {
	t.Helper()
	var items []models.StorefrontProductResponse
	require.NoError(t, json.Unmarshal(env.Data, &items))
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func TestGetProducts_DefaultSortIsNameAscending(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Chelsea Boot", "Court Sneaker", "Field Jacket", "Oxford Shirt"}, productTitles(t, env))
	require.NotNil(t, env.Meta)
	assert.Equal(t, 4, env.Meta.Total)
	assert.Equal(t, 1, env.Meta.TotalPages)
}

func TestGetProducts_CategoryAndSubcategory(t *testing.T) {
	router := newRouter(t)

	q := url.Values{}
	q.Add("category", shoes.String())
	q.Add("category", clothing.String())
	q.Set("active_category", shoes.String())
	q.Add("subcategory", "Boots")
	q.Add("subcategory", "Shirts") // belongs to Clothing, not the active category

	w, env := do(t, router, http.MethodGet, "/api/v1/store/products?"+q.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Chelsea Boot"}, productTitles(t, env))
}

func TestGetProducts_PriceSortAndPagination(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/products?sort=price-low&limit=3&page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Field Jacket"}, productTitles(t, env))
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Equal(t, 2, env.Meta.Page)
}

func TestGetProducts_ServiceFlagsAndPriceRange(t *testing.T) {
	router := newRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/v1/store/products?withDiscount=true", nil)
	assert.Equal(t, []string{"Field Jacket"}, productTitles(t, env))

	_, env = do(t, router, http.MethodGet, "/api/v1/store/products?installment=1", nil)
	assert.Equal(t, []string{"Court Sneaker"}, productTitles(t, env))

	_, env = do(t, router, http.MethodGet, "/api/v1/store/products?minPrice=100&maxPrice=260&sort=price-high", nil)
	assert.Equal(t, []string{"Chelsea Boot", "Court Sneaker"}, productTitles(t, env))
}

func TestGetProducts_RejectsMalformedQuery(t *testing.T) {
	router := newRouter(t)

	for _, target := range []string{
		"/api/v1/store/products?category=not-a-uuid",
		"/api/v1/store/products?minPrice=abc",
		"/api/v1/store/products?minPrice=300&maxPrice=100",
		"/api/v1/store/products?freeShipping=maybe",
	} {
		w, env := do(t, router, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.True(t, env.Error, target)
	}
}

func TestGetProductPrice(t *testing.T) {
	router := newRouter(t)
	base := "/api/v1/store/products/" + jacketID.String() + "/price"

	t.Run("incomplete selection", func(t *testing.T) {
		w, env := do(t, router, http.MethodGet, base+"?variant[Size]=L", nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var missing models.MissingVariantsData
		require.NoError(t, json.Unmarshal(env.Data, &missing))
		assert.Equal(t, []string{"Color"}, missing.MissingGroups)
	})

	t.Run("complete selection", func(t *testing.T) {
		w, env := do(t, router, http.MethodGet, base+"?variant[Size]=L&variant[Color]=Navy", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var quote models.PriceQuote
		require.NoError(t, json.Unmarshal(env.Data, &quote))
		assert.Equal(t, 160.0, quote.UnitPrice)
		assert.True(t, quote.OnDiscount)
	})

	t.Run("no selection shows current price", func(t *testing.T) {
		w, env := do(t, router, http.MethodGet, base, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var quote models.PriceQuote
		require.NoError(t, json.Unmarshal(env.Data, &quote))
		assert.Equal(t, 640.0, quote.UnitPrice)
	})

	t.Run("unknown product", func(t *testing.T) {
		w, _ := do(t, router, http.MethodGet, "/api/v1/store/products/"+uuid.NewString()+"/price", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w, _ := do(t, router, http.MethodGet, "/api/v1/store/products/abc/price", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuoteCartItem(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodPost, "/api/v1/store/cart/quote", models.CartQuoteRequest{
		ProductID: jacketID,
		Variants:  models.VariantSelection{"Size": "L", "Color": "Olive"},
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var quote models.PriceQuote
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	assert.Equal(t, 320.0, quote.LineTotal)

	w, _ = do(t, router, http.MethodPost, "/api/v1/store/cart/quote", models.CartQuoteRequest{ProductID: jacketID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/store/cart/quote", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductDiscount(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/products/"+jacketID.String()+"/discount", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info models.DiscountInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.True(t, info.OnDiscount)
	assert.Equal(t, 20, info.Percentage)
	require.NotNil(t, info.RemainingLabel)
	assert.Equal(t, "3h 15m", *info.RemainingLabel)
}

func TestGetProduct(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/products/"+jacketID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.StorefrontProductDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Field Jacket", detail.Title)
	assert.Equal(t, 640.0, detail.CurrentPrice)
	assert.Len(t, detail.Variants, 2)
}

func TestGetCategories(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cats []models.StorefrontCategory
	require.NoError(t, json.Unmarshal(env.Data, &cats))
	require.Len(t, cats, 2)
	assert.Equal(t, []string{"Sneakers", "Boots"}, cats[1].Subcategories)
}

func TestGetFilterMetadata(t *testing.T) {
	router := newRouter(t)

	w, env := do(t, router, http.MethodGet, "/api/v1/store/filters/metadata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meta models.FilterMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	assert.Equal(t, 90.0, meta.PriceRange.Min)
	assert.Equal(t, 640.0, meta.PriceRange.Max)
	assert.Equal(t, 1, meta.Availability.OutOfStock)
	assert.Equal(t, 1, meta.Services.Installment)
}
