package catalog

import (
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
)

var (
	now = time.Date(2025, time.May, 10, 9, 30, 0, 0, time.UTC)

	clothingID    = uuid.MustParse("018f0000-0000-7000-8000-000000000001")
	shoesID       = uuid.MustParse("018f0000-0000-7000-8000-000000000002")
	accessoriesID = uuid.MustParse("018f0000-0000-7000-8000-000000000003")
)

func ptr[T any](v T) *T { return &v }

func testCategories() []models.Category {
	return []models.Category{
		{ID: clothingID, Name: "Clothing", Subcategories: models.SubcategoryList{"Shirts", "Dresses", "Outerwear"}},
		{ID: shoesID, Name: "Shoes", Subcategories: models.SubcategoryList{"Sneakers", "Boots"}},
		{ID: accessoriesID, Name: "Accessories", Subcategories: models.SubcategoryList{"Bags", "Belts", "Shirts"}},
	}
}

func product(title string, price float64, category uuid.UUID, subs ...string) models.Product {
	return models.Product{
		ID:                    uuid.New(),
		Title:                 title,
		Price:                 price,
		CategoryID:            &category,
		MetadataSubcategories: models.SubcategoryList(subs),
		Quantity:              5,
	}
}

func onSale(p models.Product, discountPrice float64) models.Product {
	p.DiscountPrice = &discountPrice
	p.DiscountStartDate = ptr(now.Add(-time.Hour))
	p.DiscountEndDate = ptr(now.Add(time.Hour))
	return p
}

func testProducts() []models.Product {
	linen := product("Linen Shirt", 120, clothingID, "Shirts")
	linen.Description = "Breathable summer fabric"
	linen.FreeShipping = true

	dress := onSale(product("Wrap Dress", 200, clothingID, "Dresses"), 150)
	dress.InstallmentAvailable = true

	coat := product("Wool Coat 10", 480, clothingID, "Outerwear")
	coat2 := product("wool coat 2", 350, clothingID, "Outerwear")

	sneaker := onSale(product("Runner Sneaker", 140, shoesID, "Sneakers"), 99)
	sneaker.FreeShipping = true

	boot := product("Chelsea Boot", 260, shoesID, "Boots")
	bag := product("Tote Bag", 90, accessoriesID, "Bags")

	orphan := models.Product{ID: uuid.New(), Title: "Gift Card", Price: 50}

	return []models.Product{linen, dress, coat, coat2, sneaker, boot, bag, orphan}
}

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}
