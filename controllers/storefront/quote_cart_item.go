package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// QuoteCartItem godoc
// @Summary Price check before adding to cart
// @Description Every variant group of the product must have a choice.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.CartQuoteRequest true "Product, variants and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse
// @Router /store/cart/quote [post]
func (h *Handler) QuoteCartItem(c *gin.Context) {
	var req models.CartQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	quote, err := h.svc.Quote(c.Request.Context(), req.ProductID, req.Variants, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item priced successfully", quote))
}
