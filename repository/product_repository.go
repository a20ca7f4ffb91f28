package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const statusActive = "Active"

// ProductRepository reads storefront products through GORM.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListActive returns every Active product, newest first.
func (r *ProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := r.db.WithContext(ctx).
		Where("status = ?", statusActive).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list active products: %w", err)
	}
	return products, nil
}
