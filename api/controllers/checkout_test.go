package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	checkoutsvc "github.com/voltkart/storefront-backend/internal/checkout"
	"github.com/voltkart/storefront-backend/pkg/enums"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
)

type stubCheckoutService struct {
	state  *checkoutsvc.State
	result *checkoutsvc.ConfirmResult
	order  *checkoutsvc.Order
	err    error

	confirmedMethod enums.PaymentMethod
}

func (s *stubCheckoutService) State(ctx context.Context, sessionID string) (*checkoutsvc.State, error) {
	return s.state, s.err
}

func (s *stubCheckoutService) Begin(ctx context.Context, sessionID string) (*checkoutsvc.State, error) {
	return s.state, s.err
}

func (s *stubCheckoutService) SubmitAddress(ctx context.Context, sessionID string, address checkoutsvc.Address) (*checkoutsvc.State, error) {
	return s.state, s.err
}

func (s *stubCheckoutService) SelectMethod(ctx context.Context, sessionID string, method enums.PaymentMethod) (*checkoutsvc.State, error) {
	return s.state, s.err
}

func (s *stubCheckoutService) ConfirmPayment(ctx context.Context, sessionID string, method enums.PaymentMethod) (*checkoutsvc.ConfirmResult, error) {
	s.confirmedMethod = method
	return s.result, s.err
}

func (s *stubCheckoutService) ConsumeOrder(ctx context.Context, sessionID string) (*checkoutsvc.Order, error) {
	return s.order, s.err
}

func TestCheckoutBeginEmptyCartConflict(t *testing.T) {
	stub := &stubCheckoutService{
		err: pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty").
			WithDetails(map[string]string{"return_to": "cart"}),
	}
	handler := CheckoutBegin(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout", ""))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != "STATE_CONFLICT" || envelope.Error.Details["return_to"] != "cart" {
		t.Fatalf("unexpected error payload: %+v", envelope.Error)
	}
}

func TestCheckoutSubmitAddressRejectsIncompleteBody(t *testing.T) {
	handler := CheckoutSubmitAddress(&stubCheckoutService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout/address", `{"full_name":"Asha Rao"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutSelectMethodRejectsUnknownMethod(t *testing.T) {
	handler := CheckoutSelectMethod(&stubCheckoutService{}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout/payment-method", `{"method":"bitcoin"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutConfirmCashOnDelivery(t *testing.T) {
	stub := &stubCheckoutService{
		result: &checkoutsvc.ConfirmResult{
			Order: &checkoutsvc.Order{
				OrderNumber:   "ORD1700000000000-abcd1234",
				PaymentMethod: enums.PaymentMethodCOD,
				PaymentStatus: enums.PaymentStatusPending,
				OrderStatus:   enums.OrderStatusPending,
			},
		},
	}
	handler := CheckoutConfirm(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout/confirm", `{"method":"cod"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.confirmedMethod != enums.PaymentMethodCOD {
		t.Fatalf("expected cod confirmation, got %s", stub.confirmedMethod)
	}

	var envelope struct {
		Data checkoutsvc.ConfirmResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Order == nil || envelope.Data.Order.OrderNumber == "" {
		t.Fatalf("expected placed order: %+v", envelope.Data)
	}
}

func TestCheckoutConfirmRedirect(t *testing.T) {
	stub := &stubCheckoutService{
		result: &checkoutsvc.ConfirmResult{
			RedirectURL: "https://payment-demo.example.com/upi?amount=60000",
		},
	}
	handler := CheckoutConfirm(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout/confirm", `{"method":"upi"}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data checkoutsvc.ConfirmResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.RedirectURL == "" || envelope.Data.Order != nil {
		t.Fatalf("expected redirect payload: %+v", envelope.Data)
	}
}

func TestCheckoutConfirmGatewayFailure(t *testing.T) {
	stub := &stubCheckoutService{
		err: pkgerrors.New(pkgerrors.CodeDependency, "payment gateway unavailable"),
	}
	handler := CheckoutConfirm(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodPost, "/api/v1/checkout/confirm", `{"method":"upi"}`))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestCheckoutOrderSuccessMiss(t *testing.T) {
	stub := &stubCheckoutService{
		err: pkgerrors.New(pkgerrors.CodeNotFound, "no placed order for session"),
	}
	handler := CheckoutOrderSuccess(stub, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, sessionRequest(http.MethodGet, "/api/v1/checkout/order-success", ""))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
