package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Modeva-Ecommerce/modeva-storefront/config"
	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// main migrates the catalog tables and seeds a demo catalog
// Usage: go run ./cmd/seed [-reset]
// This is a standalone CLI tool, not part of the main application
func main() {
	reset := flag.Bool("reset", false, "delete existing products and categories first")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA STOREFRONT - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("❌ Failed to load configuration: %v", err)
	}
	log := logger.Init(cfg.LoggerConfig())

	if err := config.InitDB(cfg); err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer config.CloseDB()
	db := config.CmsGorm

	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Info("✓ Tables migrated")

	if *reset {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
			log.Fatalf("❌ Failed to clear products: %v", err)
		}
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Category{}).Error; err != nil {
			log.Fatalf("❌ Failed to clear categories: %v", err)
		}
		log.Info("✓ Existing catalog cleared")
	}

	categories, products := demoCatalog(time.Now().UTC())

	err = db.Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{UpdateAll: true}
		if err := tx.Clauses(upsert).Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&products).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Categories: %d\n", len(categories))
	fmt.Printf("Products:   %d\n", len(products))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront: go run .")
	fmt.Println("2. Browse GET /api/v1/store/products?sort=price-low")
}

// Fixed ids keep re-seeding idempotent.
var (
	clothingID    = uuid.MustParse("0190a000-0000-7000-8000-000000000001")
	shoesID       = uuid.MustParse("0190a000-0000-7000-8000-000000000002")
	accessoriesID = uuid.MustParse("0190a000-0000-7000-8000-000000000003")
)

func demoCatalog(now time.Time) ([]models.Category, []models.Product) {
	categories := []models.Category{
		{ID: clothingID, Name: "Clothing", Subcategories: models.SubcategoryList{"Shirts", "Dresses", "Outerwear"}, Status: "Active"},
		{ID: shoesID, Name: "Shoes", Subcategories: models.SubcategoryList{"Sneakers", "Boots"}, Status: "Active"},
		{ID: accessoriesID, Name: "Accessories", Subcategories: models.SubcategoryList{"Bags", "Belts"}, Status: "Active"},
	}

	saleStart := now.Add(-48 * time.Hour)
	saleEnd := now.Add(5 * 24 * time.Hour)
	flashEnd := now.Add(6 * time.Hour)
	upcoming := now.Add(7 * 24 * time.Hour)
	upcomingEnd := now.Add(14 * 24 * time.Hour)

	sizes := func(surcharges ...float64) models.VariantGroup {
		names := []string{"S", "M", "L", "XL"}
		g := models.VariantGroup{Name: "Size"}
		for i, n := range names {
			opt := models.VariantOption{Name: n}
			if i < len(surcharges) {
				opt.PriceSurcharge = &surcharges[i]
			}
			g.Options = append(g.Options, opt)
		}
		return g
	}
	colors := func(names ...string) models.VariantGroup {
		g := models.VariantGroup{Name: "Color"}
		for _, n := range names {
			g.Options = append(g.Options, models.VariantOption{Name: n})
		}
		return g
	}

	products := []models.Product{
		{
			ID: id(1), Title: "Linen Shirt", Description: "Breathable summer linen.",
			Price: 120, CategoryID: &clothingID, MetadataSubcategories: models.SubcategoryList{"Shirts"},
			Quantity: 25, FreeShipping: true,
			Variants:   models.VariantGroupList{sizes(), colors("White", "Sand")},
			Attributes: datatypes.JSON(`{"material":"100% linen","fit":"relaxed"}`),
		},
		{
			ID: id(2), Title: "Wrap Dress", Description: "Midi wrap dress in crepe.",
			Price: 200, DiscountPrice: money(150), DiscountStartDate: &saleStart, DiscountEndDate: &saleEnd,
			CategoryID: &clothingID, MetadataSubcategories: models.SubcategoryList{"Dresses"},
			Quantity: 10, InstallmentAvailable: true,
			Variants: models.VariantGroupList{sizes(200, 200, 220, 240)},
		},
		{
			ID: id(3), Title: "Wool Coat 10", Description: "Double-breasted wool coat.",
			Price: 480, CategoryID: &clothingID, MetadataSubcategories: models.SubcategoryList{"Outerwear"},
			Quantity: 4, InstallmentAvailable: true,
		},
		{
			ID: id(4), Title: "Wool Coat 2", Description: "Single-breasted wool coat.",
			Price: 350, DiscountPrice: money(280), DiscountStartDate: &upcoming, DiscountEndDate: &upcomingEnd,
			CategoryID: &clothingID, MetadataSubcategories: models.SubcategoryList{"Outerwear"},
			Quantity: 6,
		},
		{
			ID: id(5), Title: "Runner Sneaker", Description: "Lightweight everyday runner.",
			Price: 140, DiscountPrice: money(99), DiscountStartDate: &saleStart, DiscountEndDate: &flashEnd,
			CategoryID: &shoesID, MetadataSubcategories: models.SubcategoryList{"Sneakers"},
			Quantity: 30, FreeShipping: true,
			Variants: models.VariantGroupList{colors("Black", "White")},
		},
		{
			ID: id(6), Title: "Chelsea Boot", Description: "Suede chelsea boot.",
			Price: 260, CategoryID: &shoesID, MetadataSubcategories: models.SubcategoryList{"Boots"},
			Quantity: 0,
		},
		{
			ID: id(7), Title: "Tote Bag", Description: "Canvas tote with leather handles.",
			Price: 90, CategoryID: &accessoriesID, MetadataSubcategories: models.SubcategoryList{"Bags"},
			Quantity: 50, FreeShipping: true,
		},
		{
			ID: id(8), Title: "Leather Belt", Description: "Full-grain leather belt.",
			Price: 60, CategoryID: &accessoriesID, MetadataSubcategories: models.SubcategoryList{"Belts"},
			Quantity: 15, Status: "Draft",
		},
	}
	for i := range products {
		if products[i].Status == "" {
			products[i].Status = "Active"
		}
	}
	return categories, products
}

func id(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("0190a000-0000-7000-8000-1000000000%02d", n))
}

func money(v float64) *float64 {
	return &v
}
