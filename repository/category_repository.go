package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// CategoryRepository reads categories straight off the pgx pool.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, COALESCE(subcategories, '[]'::jsonb), status, created_at, updated_at
		FROM categories
		WHERE status = $1
		ORDER BY name ASC
	`, statusActive)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var (
			c        models.Category
			id       string
			subsJSON []byte
		)
		if err := rows.Scan(&id, &c.Name, &subsJSON, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if c.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("category id %q: %w", id, err)
		}
		c.Subcategories = make(models.SubcategoryList, 0)
		if err := json.Unmarshal(subsJSON, &c.Subcategories); err != nil {
			return nil, fmt.Errorf("category %s subcategories: %w", c.ID, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// Ping checks the pool is reachable.
func (r *CategoryRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
