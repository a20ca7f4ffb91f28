package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetProductDiscount godoc
// @Summary Current discount state of a product
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id}/discount [get]
func (h *Handler) GetProductDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	info, err := h.svc.DiscountInfo(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Discount fetched successfully", info))
}
