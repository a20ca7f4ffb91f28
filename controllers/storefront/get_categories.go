package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetCategories godoc
// @Summary List storefront categories with their subcategory labels
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	out := make([]models.StorefrontCategory, 0, len(categories))
	for _, cat := range categories {
		subs := make([]string, len(cat.Subcategories))
		copy(subs, cat.Subcategories)
		out = append(out, models.StorefrontCategory{
			ID:            cat.ID.String(),
			Name:          cat.Name,
			Subcategories: subs,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", out))
}

// GetFilterMetadata godoc
// @Summary Filter panel metadata (categories, price bounds, counts)
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func (h *Handler) GetFilterMetadata(c *gin.Context) {
	meta, err := h.svc.FilterMetadata(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
