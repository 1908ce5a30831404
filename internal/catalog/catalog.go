package catalog

import (
	"sort"
	"strings"

	"github.com/voltkart/storefront-backend/pkg/enums"
)

// Product is an immutable catalog entry, seeded once at process start.
type Product struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Category       enums.ProductCategory `json:"category"`
	Price          int                   `json:"price"`
	OriginalPrice  *int                  `json:"original_price,omitempty"`
	Image          string                `json:"image"`
	Images         []string              `json:"images"`
	Description    string                `json:"description"`
	Features       []string              `json:"features"`
	Specifications map[string]string     `json:"specifications"`
	InStock        bool                  `json:"in_stock"`
	Rating         float64               `json:"rating"`
	Reviews        int                   `json:"reviews"`
}

// Sort keys supported by the browse endpoint.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
)

// ListInput captures the filter/sort knobs for the browse endpoint.
type ListInput struct {
	Category string
	SortBy   string
}

// CategoryCount pairs a filter value with the number of matching products.
type CategoryCount struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// Repository serves pure reads over the static product seed.
type Repository struct {
	products []Product
	byID     map[string]int
}

// NewRepository builds a repository over the built-in seed.
func NewRepository() *Repository {
	return NewRepositoryWithProducts(seedProducts())
}

// NewRepositoryWithProducts builds a repository over the provided products,
// preserving their order. Intended for tests.
func NewRepositoryWithProducts(products []Product) *Repository {
	byID := make(map[string]int, len(products))
	for i, product := range products {
		byID[product.ID] = i
	}
	return &Repository{products: products, byID: byID}
}

// FindByID returns the product for the given id, or false when absent.
func (r *Repository) FindByID(id string) (Product, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Product{}, false
	}
	return r.products[idx], true
}

// Filter returns products matching the category in seed order. The "all"
// sentinel returns the full catalog; an unrecognized category returns an
// empty slice without error.
func (r *Repository) Filter(category string) []Product {
	if category == enums.CategoryAll {
		return append([]Product(nil), r.products...)
	}
	matched := []Product{}
	for _, product := range r.products {
		if string(product.Category) == category {
			matched = append(matched, product)
		}
	}
	return matched
}

// List filters by category and applies the requested sort order.
func (r *Repository) List(input ListInput) []Product {
	category := input.Category
	if strings.TrimSpace(category) == "" {
		category = enums.CategoryAll
	}
	products := r.Filter(category)
	sortProducts(products, input.SortBy)
	return products
}

// CategoryCounts returns the sidebar counts: the "all" bucket first,
// then each known category in declaration order.
func (r *Repository) CategoryCounts() []CategoryCount {
	counts := []CategoryCount{{ID: enums.CategoryAll, Count: len(r.products)}}
	for _, category := range []enums.ProductCategory{
		enums.ProductCategoryBikeConversion,
		enums.ProductCategoryCycleConversion,
	} {
		counts = append(counts, CategoryCount{
			ID:    string(category),
			Count: len(r.Filter(string(category))),
		})
	}
	return counts
}

// Featured returns the first n products in seed order for the home screen.
func (r *Repository) Featured(n int) []Product {
	if n > len(r.products) {
		n = len(r.products)
	}
	if n < 0 {
		n = 0
	}
	return append([]Product(nil), r.products[:n]...)
}

func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortByName:
		fallthrough
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	}
}
