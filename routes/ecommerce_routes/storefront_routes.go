package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-storefront/controllers/storefront"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, h *storefront.Handler) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", h.GetProducts) // Filter, sort, paginate

		products.GET("/:id", h.GetProduct)                  // Single product
		products.GET("/:id/price", h.GetProductPrice)       // Variant price
		products.GET("/:id/discount", h.GetProductDiscount) // Discount + countdown
	}

	store.GET("/categories", h.GetCategories)
	store.GET("/filters/metadata", h.GetFilterMetadata)
	store.POST("/cart/quote", h.QuoteCartItem)
}
