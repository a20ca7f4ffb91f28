package catalog

import "github.com/Modeva-Ecommerce/modeva-storefront/models"

// TotalPages is ceil(count/pageSize), never less than 1.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the 1-based pageNumber-th page of products. The page
// number is not clamped: a page outside 1..TotalPages has no items, which
// is a displayable state rather than an error. A pageSize below 1 puts
// everything on one page.
func Paginate(products []models.Product, pageSize, pageNumber int) models.Page {
	if pageSize < 1 {
		pageSize = len(products)
		if pageSize == 0 {
			pageSize = 1
		}
	}
	page := models.Page{
		Items:      []models.Product{},
		TotalPages: TotalPages(len(products), pageSize),
	}
	if pageNumber < 1 || pageNumber > page.TotalPages {
		return page
	}

	start := (pageNumber - 1) * pageSize
	if start >= len(products) {
		return page
	}
	end := min(start+pageSize, len(products))
	page.Items = products[start:end:end]
	return page
}
