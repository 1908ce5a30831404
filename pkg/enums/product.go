package enums

import "fmt"

// ProductCategory represents the canonical catalog categories.
type ProductCategory string

const (
	ProductCategoryBikeConversion  ProductCategory = "bike-conversion"
	ProductCategoryCycleConversion ProductCategory = "cycle-conversion"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
// It is never a valid category on a product.
const CategoryAll = "all"

var validProductCategories = []ProductCategory{
	ProductCategoryBikeConversion,
	ProductCategoryCycleConversion,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
