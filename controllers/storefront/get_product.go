package storefront

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// GetProduct godoc
// @Summary Get a single storefront product
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	p, err := h.svc.Product(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	detail := models.StorefrontProductDetail{
		StorefrontProductResponse: toProductResponse(p, h.svc.Now()),
		Description:               p.Description,
		Subcategories:             append([]string{}, p.MetadataSubcategories...),
		Variants:                  p.Variants,
		Installment:               p.InstallmentAvailable,
		Attributes:                p.Attributes,
	}
	if p.CategoryID != nil {
		cid := p.CategoryID.String()
		detail.CategoryID = &cid
	}
	if detail.Variants == nil {
		detail.Variants = models.VariantGroupList{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
