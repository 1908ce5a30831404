package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voltkart/storefront-backend/internal/cart"
	"github.com/voltkart/storefront-backend/pkg/enums"
)

const deliveryLeadTime = 7 * 24 * time.Hour

// Order is the record synthesized when a checkout is confirmed.
type Order struct {
	OrderNumber       string              `json:"order_number"`
	CustomerName      string              `json:"customer_name"`
	CustomerPhone     string              `json:"customer_phone"`
	CustomerEmail     string              `json:"customer_email,omitempty"`
	Address           Address             `json:"address"`
	Items             []cart.LineItem     `json:"items"`
	TotalAmount       int                 `json:"total_amount"`
	PaymentMethod     enums.PaymentMethod `json:"payment_method"`
	PaymentStatus     enums.PaymentStatus `json:"payment_status"`
	OrderStatus       enums.OrderStatus   `json:"order_status"`
	PlacedAt          time.Time           `json:"placed_at"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
}

// newOrderNumber mints a customer-facing order number. The millisecond
// prefix keeps numbers roughly sortable; the uuid fragment breaks ties.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func buildOrder(now time.Time, address Address, method enums.PaymentMethod, snapshot *cart.Snapshot) *Order {
	return &Order{
		OrderNumber:       newOrderNumber(now),
		CustomerName:      address.FullName,
		CustomerPhone:     address.Phone,
		CustomerEmail:     address.Email,
		Address:           address,
		Items:             append([]cart.LineItem(nil), snapshot.Items...),
		TotalAmount:       snapshot.Total,
		PaymentMethod:     method,
		PaymentStatus:     enums.PaymentStatusPending,
		OrderStatus:       enums.OrderStatusPending,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}
}
