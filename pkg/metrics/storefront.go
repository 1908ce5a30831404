package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart and checkout activity.
type StorefrontMetrics struct {
	cartMutations    *prometheus.CounterVec
	ordersPlaced     *prometheus.CounterVec
	gatewayRedirects *prometheus.CounterVec
	checkoutDuration prometheus.Histogram
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed by payment method.",
	}, []string{"method"})
	gatewayRedirects := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_redirects_total",
		Help: "Hand-offs to the external payment gateway by method.",
	}, []string{"method"})
	checkoutDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_confirm_duration_seconds",
		Help:    "Duration of payment confirmation in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(cartMutations, ordersPlaced, gatewayRedirects, checkoutDuration)
	return &StorefrontMetrics{
		cartMutations:    cartMutations,
		ordersPlaced:     ordersPlaced,
		gatewayRedirects: gatewayRedirects,
		checkoutDuration: checkoutDuration,
	}
}

// IncCartMutation counts one cart mutation for the named operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderPlaced counts one placed order for the payment method.
func (m *StorefrontMetrics) IncOrderPlaced(method string) {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.WithLabelValues(normalizeLabel(method)).Inc()
}

// IncGatewayRedirect counts one redirect hand-off for the payment method.
func (m *StorefrontMetrics) IncGatewayRedirect(method string) {
	if m == nil || m.gatewayRedirects == nil {
		return
	}
	m.gatewayRedirects.WithLabelValues(normalizeLabel(method)).Inc()
}

// ObserveCheckoutDuration records how long a confirmation took.
func (m *StorefrontMetrics) ObserveCheckoutDuration(duration time.Duration) {
	if m == nil || m.checkoutDuration == nil {
		return
	}
	m.checkoutDuration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
