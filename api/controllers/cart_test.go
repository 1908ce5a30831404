package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/voltkart/storefront-backend/api/middleware"
	cartsvc "github.com/voltkart/storefront-backend/internal/cart"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
)

type stubCartService struct {
	snapshot *cartsvc.Snapshot
	err      error

	addedProduct   string
	updatedProduct string
	updatedQty     int
}

func (s *stubCartService) Get(ctx context.Context, sessionID string) (*cartsvc.Snapshot, error) {
	return s.snapshot, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID, productID string) (*cartsvc.Snapshot, error) {
	s.addedProduct = productID
	return s.snapshot, s.err
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*cartsvc.Snapshot, error) {
	s.updatedProduct = productID
	s.updatedQty = quantity
	return s.snapshot, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID, productID string) (*cartsvc.Snapshot, error) {
	return s.snapshot, s.err
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	return s.err
}

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithSessionID(req.Context(), "sess"))
}

func TestCartFetchSuccess(t *testing.T) {
	snapshot := &cartsvc.Snapshot{
		SessionID: "sess",
		Items:     []cartsvc.LineItem{{ProductID: "1", Name: "E-Bike", Price: 60000, Quantity: 2}},
		Total:     120000,
		ItemCount: 2,
	}
	handler := CartFetch(&stubCartService{snapshot: snapshot}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodGet, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data cartsvc.Snapshot `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 120000 {
		t.Fatalf("unexpected total %d", envelope.Data.Total)
	}
}

func TestCartAddItem(t *testing.T) {
	stub := &stubCartService{snapshot: &cartsvc.Snapshot{SessionID: "sess"}}
	handler := CartAddItem(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"3"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.addedProduct != "3" {
		t.Fatalf("expected product 3 to be added, got %q", stub.addedProduct)
	}
}

func TestCartAddItemRejectsMissingProduct(t *testing.T) {
	handler := CartAddItem(&stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartAddItemNotFound(t *testing.T) {
	stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := CartAddItem(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/cart/items", `{"product_id":"999"}`))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestCartUpdateItemZeroQuantity(t *testing.T) {
	stub := &stubCartService{snapshot: &cartsvc.Snapshot{SessionID: "sess"}}
	handler := CartUpdateItem(stub, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", "1")
	req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/1", `{"quantity":0}`)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.updatedProduct != "1" || stub.updatedQty != 0 {
		t.Fatalf("expected quantity 0 for product 1, got %d for %q", stub.updatedQty, stub.updatedProduct)
	}
}

func TestCartUpdateItemRequiresQuantity(t *testing.T) {
	handler := CartUpdateItem(&stubCartService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPatch, "/api/v1/cart/items/1", `{}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartClear(t *testing.T) {
	stub := &stubCartService{snapshot: &cartsvc.Snapshot{SessionID: "sess", Items: []cartsvc.LineItem{}}}
	handler := CartClear(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodDelete, "/api/v1/cart", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
