package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// VariantOption is one choosable value of a variant group. A nil or
// non-positive surcharge has no price effect.
type VariantOption struct {
	Name           string   `json:"name" binding:"required" example:"L"`
	PriceSurcharge *float64 `json:"price_surcharge,omitempty" example:"200"`
}

type VariantGroup struct {
	Name    string          `json:"name" binding:"required" example:"Size"`
	Options []VariantOption `json:"options" binding:"required,dive"`
}

// Option returns the option called name, if the group has one.
func (g VariantGroup) Option(name string) (VariantOption, bool) {
	for _, o := range g.Options {
		if o.Name == name {
			return o, true
		}
	}
	return VariantOption{}, false
}

type (
	VariantGroupList []VariantGroup
	SubcategoryList  []string
)

// VariantSelection maps a variant group name to the chosen option name.
type VariantSelection map[string]string

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID                    uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	Title                 string           `json:"title" gorm:"not null;index"`
	Description           string           `json:"description" gorm:"not null;default:''"`
	Price                 float64          `json:"price" gorm:"type:numeric(12,2);not null;default:0;check:price >= 0"`
	DiscountPrice         *float64         `json:"discount_price,omitempty" gorm:"type:numeric(12,2);check:discount_price >= 0"`
	DiscountStartDate     *time.Time       `json:"discount_start_date,omitempty"`
	DiscountEndDate       *time.Time       `json:"discount_end_date,omitempty"`
	CategoryID            *uuid.UUID       `json:"category_id,omitempty" gorm:"type:uuid;index:idx_products_category"`
	Quantity              int              `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Variants              VariantGroupList `json:"variants" gorm:"type:jsonb;not null;default:'[]'"`
	MetadataSubcategories SubcategoryList  `json:"metadata_subcategories" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	FreeShipping          bool             `json:"free_shipping" gorm:"not null;default:false"`
	InstallmentAvailable  bool             `json:"installment_available" gorm:"not null;default:false"`
	Attributes            datatypes.JSON   `json:"attributes,omitempty" gorm:"type:jsonb"`
	Status                string           `json:"status" gorm:"not null;default:'Active';check:status IN ('Active', 'Draft');index"`
	CreatedAt             time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (v *VariantGroupList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantGroupList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantGroupList")
	}
	return json.Unmarshal(bytes, v)
}

func (v VariantGroupList) Value() (driver.Value, error) {
	if v == nil {
		return json.Marshal([]VariantGroup{})
	}
	return json.Marshal(v)
}

func (s *SubcategoryList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SubcategoryList, 0)
		return nil
	}
	var bytes []byte
	switch raw := value.(type) {
	case []byte:
		bytes = raw
	case string:
		bytes = []byte(raw)
	default:
		return errors.New("failed to scan SubcategoryList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SubcategoryList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Contains reports whether label is in the list.
func (s SubcategoryList) Contains(label string) bool {
	for _, l := range s {
		if l == label {
			return true
		}
	}
	return false
}
