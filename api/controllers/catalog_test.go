package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/voltkart/storefront-backend/internal/catalog"
	"github.com/voltkart/storefront-backend/pkg/enums"
)

func testRepo() *catalog.Repository {
	return catalog.NewRepositoryWithProducts([]catalog.Product{
		{ID: "1", Name: "E-Bike", Category: enums.ProductCategoryBikeConversion, Price: 60000, InStock: true},
		{ID: "2", Name: "Solar Tricycle", Category: enums.ProductCategoryCycleConversion, Price: 50000, InStock: true},
		{ID: "3", Name: "Smart Curtains", Category: enums.ProductCategoryBikeConversion, Price: 6000, InStock: true},
	})
}

func TestCatalogListFiltersByCategory(t *testing.T) {
	handler := CatalogList(testRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=bike-conversion", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 products, got %d", len(envelope.Data))
	}
	for _, product := range envelope.Data {
		if product.Category != enums.ProductCategoryBikeConversion {
			t.Fatalf("unexpected category %s", product.Category)
		}
	}
}

func TestCatalogListUnknownCategoryIsEmpty(t *testing.T) {
	handler := CatalogList(testRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=submarines", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 0 {
		t.Fatalf("expected empty list, got %d products", len(envelope.Data))
	}
}

func TestCatalogDetail(t *testing.T) {
	handler := CatalogDetail(testRepo(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "1")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data catalog.Product `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != "1" || envelope.Data.Name != "E-Bike" {
		t.Fatalf("unexpected product: %+v", envelope.Data)
	}
}

func TestCatalogDetailNotFound(t *testing.T) {
	handler := CatalogDetail(testRepo(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "999")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCatalogCategories(t *testing.T) {
	handler := CatalogCategories(testRepo(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []catalog.CategoryCount `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) == 0 || envelope.Data[0].ID != "all" || envelope.Data[0].Count != 3 {
		t.Fatalf("unexpected counts: %+v", envelope.Data)
	}
}
