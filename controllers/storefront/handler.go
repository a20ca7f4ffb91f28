package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/pricing"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
)

// Handler serves the public storefront catalog.
type Handler struct {
	svc             *services.CatalogService
	log             *logrus.Logger
	defaultPageSize int
	maxPageSize     int
}

func NewHandler(svc *services.CatalogService, log *logrus.Logger, defaultPageSize, maxPageSize int) *Handler {
	if defaultPageSize < 1 {
		defaultPageSize = 12
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = defaultPageSize
	}
	return &Handler{
		svc:             svc,
		log:             log,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// respondError maps service errors onto the response envelope.
func (h *Handler) respondError(c *gin.Context, err error) {
	var incomplete *pricing.IncompleteSelectionError
	switch {
	case errors.As(err, &incomplete):
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponseWithData(c,
			"Please choose an option for every variant",
			models.MissingVariantsData{MissingGroups: incomplete.Missing},
		))
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
	default:
		h.log.WithError(err).WithField("route", c.FullPath()).Error("❌ Storefront request failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Internal server error"))
	}
}
