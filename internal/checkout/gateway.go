package checkout

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PaymentGateway hands a confirmed order off to an external payment
// endpoint and returns the URL the buyer should be redirected to.
type PaymentGateway interface {
	Initiate(ctx context.Context, order *Order) (string, error)
}

// MockGateway builds redirect URLs against a demo payment host. It never
// talks to a real processor.
type MockGateway struct {
	baseURL   string
	returnURL string
}

// NewMockGateway builds a gateway pointing at the configured demo host.
func NewMockGateway(baseURL, returnURL string) (*MockGateway, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("gateway base url required")
	}
	if strings.TrimSpace(returnURL) == "" {
		return nil, fmt.Errorf("gateway return url required")
	}
	return &MockGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		returnURL: returnURL,
	}, nil
}

// Initiate builds the hosted payment page URL for the order's method.
// Cash on delivery never reaches the gateway.
func (g *MockGateway) Initiate(_ context.Context, order *Order) (string, error) {
	if !order.PaymentMethod.RequiresRedirect() {
		return "", fmt.Errorf("method %s does not use a redirect", order.PaymentMethod)
	}

	endpoint, err := url.Parse(g.baseURL + "/" + string(order.PaymentMethod))
	if err != nil {
		return "", fmt.Errorf("building gateway url: %w", err)
	}

	query := url.Values{}
	query.Set("amount", strconv.Itoa(order.TotalAmount))
	query.Set("order_id", order.OrderNumber)
	query.Set("customer_name", order.CustomerName)
	query.Set("customer_phone", order.CustomerPhone)
	query.Set("return_url", g.returnURL)
	query.Set("payment_method", string(order.PaymentMethod))
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

var _ PaymentGateway = (*MockGateway)(nil)
