package catalog

import (
	"testing"

	"github.com/voltkart/storefront-backend/pkg/enums"
)

func TestFindByIDRepeatedLookupsAgree(t *testing.T) {
	t.Parallel()

	repo := NewRepository()

	first, ok := repo.FindByID("1")
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	second, ok := repo.FindByID("1")
	if !ok {
		t.Fatal("expected product 1 to exist on second lookup")
	}
	if first.ID != second.ID || first.Name != second.Name || first.Price != second.Price {
		t.Fatalf("lookups disagree: %+v vs %+v", first, second)
	}
	if first.Name != "E-Bike" || first.Price != 60000 {
		t.Fatalf("unexpected product 1: %+v", first)
	}
}

func TestFindByIDUnknown(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	if _, ok := repo.FindByID("999"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestFilterPartitionsCatalog(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	all := repo.Filter(enums.CategoryAll)
	if len(all) != 9 {
		t.Fatalf("expected 9 seeded products, got %d", len(all))
	}

	seen := map[string]bool{}
	for _, category := range []string{
		string(enums.ProductCategoryBikeConversion),
		string(enums.ProductCategoryCycleConversion),
	} {
		for _, product := range repo.Filter(category) {
			if string(product.Category) != category {
				t.Fatalf("product %s leaked into category %s", product.ID, category)
			}
			if seen[product.ID] {
				t.Fatalf("product %s appears in two categories", product.ID)
			}
			seen[product.ID] = true
		}
	}
	if len(seen) != len(all) {
		t.Fatalf("category filters cover %d products, want %d", len(seen), len(all))
	}
}

func TestFilterUnknownCategoryIsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	got := repo.Filter("drone-conversion")
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no products, got %d", len(got))
	}
}

func TestListSortOrders(t *testing.T) {
	t.Parallel()

	repo := NewRepository()

	tests := []struct {
		name   string
		sortBy string
		check  func(t *testing.T, products []Product)
	}{
		{
			name:   "price low to high",
			sortBy: SortByPriceLow,
			check: func(t *testing.T, products []Product) {
				for i := 1; i < len(products); i++ {
					if products[i-1].Price > products[i].Price {
						t.Fatalf("prices out of order at %d: %d > %d", i, products[i-1].Price, products[i].Price)
					}
				}
			},
		},
		{
			name:   "price high to low",
			sortBy: SortByPriceHigh,
			check: func(t *testing.T, products []Product) {
				for i := 1; i < len(products); i++ {
					if products[i-1].Price < products[i].Price {
						t.Fatalf("prices out of order at %d", i)
					}
				}
			},
		},
		{
			name:   "rating descending",
			sortBy: SortByRating,
			check: func(t *testing.T, products []Product) {
				for i := 1; i < len(products); i++ {
					if products[i-1].Rating < products[i].Rating {
						t.Fatalf("ratings out of order at %d", i)
					}
				}
			},
		},
		{
			name:   "name ascending by default",
			sortBy: "",
			check: func(t *testing.T, products []Product) {
				for i := 1; i < len(products); i++ {
					if products[i-1].Name > products[i].Name {
						t.Fatalf("names out of order at %d: %q > %q", i, products[i-1].Name, products[i].Name)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			products := repo.List(ListInput{SortBy: tt.sortBy})
			if len(products) != 9 {
				t.Fatalf("expected full catalog, got %d", len(products))
			}
			tt.check(t, products)
		})
	}
}

func TestListDoesNotMutateSeedOrder(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	repo.List(ListInput{SortBy: SortByPriceHigh})

	all := repo.Filter(enums.CategoryAll)
	if all[0].ID != "1" || all[len(all)-1].ID != "9" {
		t.Fatalf("seed order disturbed: first=%s last=%s", all[0].ID, all[len(all)-1].ID)
	}
}

func TestCategoryCounts(t *testing.T) {
	t.Parallel()

	repo := NewRepository()
	counts := repo.CategoryCounts()
	if len(counts) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(counts))
	}
	if counts[0].ID != enums.CategoryAll || counts[0].Count != 9 {
		t.Fatalf("unexpected all bucket: %+v", counts[0])
	}

	total := 0
	for _, c := range counts[1:] {
		total += c.Count
	}
	if total != counts[0].Count {
		t.Fatalf("category counts sum to %d, want %d", total, counts[0].Count)
	}
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	repo := NewRepository()

	featured := repo.Featured(3)
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured products, got %d", len(featured))
	}
	if featured[0].ID != "1" || featured[1].ID != "2" || featured[2].ID != "3" {
		t.Fatalf("featured picks out of seed order: %+v", featured)
	}

	if got := repo.Featured(100); len(got) != 9 {
		t.Fatalf("oversized request should clamp to catalog size, got %d", len(got))
	}
	if got := repo.Featured(-1); len(got) != 0 {
		t.Fatalf("negative request should be empty, got %d", len(got))
	}
}
