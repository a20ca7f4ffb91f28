package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetProducts godoc
// @Summary Browse storefront products
// @Description Filter, sort and paginate active products. Categories are toggled in order with active_category last; subcategories outside the active category are ignored.
// @Tags Storefront - Products
// @Produce json
// @Param category query []string false "Category IDs (repeatable)"
// @Param active_category query string false "Category whose subcategories are shown"
// @Param subcategory query []string false "Subcategory labels of the active category (repeatable)"
// @Param q query string false "Search in title and description"
// @Param minPrice query number false "Minimum current price"
// @Param maxPrice query number false "Maximum current price"
// @Param freeShipping query bool false "Only free-shipping products"
// @Param withDiscount query bool false "Only products on discount"
// @Param installment query bool false "Only products sold in installments"
// @Param sort query string false "name-asc | name-desc | price-low | price-high" default(name-asc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	page, limit := h.parsePagination(c)

	state, err := h.svc.NewSelectionState(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := parseSelection(c, state); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	state.SetPage(page)

	res, err := h.svc.Browse(c.Request.Context(), state.Snapshot(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	products := make([]models.StorefrontProductResponse, 0, len(res.Page.Items))
	for _, p := range res.Page.Items {
		products = append(products, toProductResponse(p, res.Now))
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      res.Total,
		TotalPages: res.Page.TotalPages,
	}))
}
