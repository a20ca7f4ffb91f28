package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetProductPrice godoc
// @Summary Resolve a product price for a variant choice
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Param variant query object false "variant[Group]=Option pairs"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse "Variant groups still missing a choice"
// @Router /store/products/{id}/price [get]
func (h *Handler) GetProductPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var variants models.VariantSelection
	if raw := c.QueryMap("variant"); len(raw) > 0 {
		variants = models.VariantSelection(raw)
	}

	quote, err := h.svc.Price(c.Request.Context(), id, variants)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price resolved successfully", quote))
}
