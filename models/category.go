package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a storefront category. Subcategories are plain labels
// scoped to this category only.
type Category struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name          string          `json:"name" gorm:"not null" db:"name"`
	Subcategories SubcategoryList `json:"subcategories" gorm:"type:jsonb;not null;default:'[]'" db:"subcategories"`
	Status        string          `json:"status" gorm:"type:varchar(20);default:'Active';check:status IN ('Active', 'Inactive')" db:"status"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`
}

// BeforeCreate hook - runs automatically before creating a record
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	// Auto-generate UUID v7 if not set
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}
