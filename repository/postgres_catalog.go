package repository

import (
	"context"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// PostgresCatalog is the database-backed catalog source used by the service.
type PostgresCatalog struct {
	Products   *ProductRepository
	Categories *CategoryRepository
}

func (p *PostgresCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return p.Products.ListActive(ctx)
}

func (p *PostgresCatalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	return p.Categories.ListActive(ctx)
}

func (p *PostgresCatalog) Ping(ctx context.Context) error {
	return p.Categories.Ping(ctx)
}
