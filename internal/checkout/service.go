package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/voltkart/storefront-backend/internal/cart"
	"github.com/voltkart/storefront-backend/pkg/enums"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
	"github.com/voltkart/storefront-backend/pkg/metrics"
)

// ConfirmResult is the outcome of confirming a payment. Exactly one of
// Order or RedirectURL is set: cash on delivery places the order
// immediately, every other method hands the buyer to the gateway.
type ConfirmResult struct {
	Order       *Order `json:"order,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// Service drives the cart → address → payment → placed pipeline for one
// session at a time.
type Service interface {
	State(ctx context.Context, sessionID string) (*State, error)
	Begin(ctx context.Context, sessionID string) (*State, error)
	SubmitAddress(ctx context.Context, sessionID string, address Address) (*State, error)
	SelectMethod(ctx context.Context, sessionID string, method enums.PaymentMethod) (*State, error)
	ConfirmPayment(ctx context.Context, sessionID string, method enums.PaymentMethod) (*ConfirmResult, error)
	ConsumeOrder(ctx context.Context, sessionID string) (*Order, error)
}

type service struct {
	states          StateStore
	carts           cart.Service
	gateway         PaymentGateway
	processingDelay time.Duration
	now             func() time.Time
	logg            *logger.Logger
	metrics         *metrics.StorefrontMetrics
}

// NewService builds a checkout service over the provided stack.
func NewService(states StateStore, carts cart.Service, gateway PaymentGateway, processingDelay time.Duration, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if states == nil {
		return nil, fmt.Errorf("state store required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		states:          states,
		carts:           carts,
		gateway:         gateway,
		processingDelay: processingDelay,
		now:             time.Now,
		logg:            logg,
		metrics:         m,
	}, nil
}

// State returns the current pipeline position, defaulting to the cart
// stage when the session has not begun checkout.
func (s *service) State(ctx context.Context, sessionID string) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	return s.load(ctx, sessionID)
}

// Begin moves the session from browsing into the address stage. An
// empty cart cannot enter checkout.
func (s *service) Begin(ctx context.Context, sessionID string) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	snapshot, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, stageConflict("cart is empty", enums.CheckoutStageCart)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Order != nil {
		s.logg.Warn(s.logg.WithField(ctx, "order_number", state.Order.OrderNumber),
			"unconsumed order discarded by new checkout")
	}
	state.Stage = enums.CheckoutStageAddress
	state.Order = nil
	if err := s.persist(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SubmitAddress validates and stores the delivery address, advancing to
// the payment stage. Resubmitting from the payment stage is allowed so
// the buyer can step back and edit.
func (s *service) SubmitAddress(ctx context.Context, sessionID string, address Address) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Stage != enums.CheckoutStageAddress && state.Stage != enums.CheckoutStagePayment {
		return nil, stageConflict("address can only be submitted during checkout", enums.CheckoutStageCart)
	}

	if err := address.validate(); err != nil {
		return nil, err
	}

	state.Address = &address
	state.Stage = enums.CheckoutStagePayment
	if err := s.persist(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectMethod records the buyer's payment method. Re-selection simply
// replaces the stored method.
func (s *service) SelectMethod(ctx context.Context, sessionID string, method enums.PaymentMethod) (*State, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Stage != enums.CheckoutStagePayment {
		return nil, stageConflict("payment method requires a delivery address", enums.CheckoutStageCart)
	}

	state.Method = method
	if err := s.persist(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ConfirmPayment settles the checkout. Cash on delivery synthesizes the
// order after a simulated processing wait and clears the cart; redirect
// methods return the gateway URL and leave cart and pipeline untouched.
func (s *service) ConfirmPayment(ctx context.Context, sessionID string, method enums.PaymentMethod) (*ConfirmResult, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Stage != enums.CheckoutStagePayment || state.Address == nil {
		return nil, stageConflict("payment requires a completed address stage", enums.CheckoutStageCart)
	}

	snapshot, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, stageConflict("cart is empty", enums.CheckoutStageCart)
	}

	started := s.now()
	order := buildOrder(started, *state.Address, method, snapshot)

	if method.RequiresRedirect() {
		redirectURL, err := s.gateway.Initiate(ctx, order)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "payment gateway unavailable")
		}
		s.metrics.IncGatewayRedirect(string(method))
		s.logg.Info(s.logg.WithField(ctx, "payment_method", string(method)), "gateway redirect issued")
		return &ConfirmResult{RedirectURL: redirectURL}, nil
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	state.Method = method
	state.Stage = enums.CheckoutStagePlaced
	state.Order = order
	if err := s.persist(ctx, state); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	s.metrics.IncOrderPlaced(string(method))
	s.metrics.ObserveCheckoutDuration(s.now().Sub(started))
	s.logg.Info(s.logg.WithField(ctx, "order_number", order.OrderNumber), "order placed")
	return &ConfirmResult{Order: order}, nil
}

// ConsumeOrder returns the placed order exactly once and resets the
// pipeline. A second read, or a read without a placed order, misses.
func (s *service) ConsumeOrder(ctx context.Context, sessionID string) (*Order, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.Stage != enums.CheckoutStagePlaced || state.Order == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no placed order for session")
	}

	order := state.Order
	if err := s.states.Delete(ctx, sessionID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resetting checkout state")
	}
	return order, nil
}

// wait simulates payment processing without blocking past cancellation.
func (s *service) wait(ctx context.Context) error {
	if s.processingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "payment processing interrupted")
	}
}

func (s *service) load(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.states.Get(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading checkout state")
	}
	if state == nil {
		state = &State{SessionID: sessionID, Stage: enums.CheckoutStageCart}
	}
	return state, nil
}

func (s *service) persist(ctx context.Context, state *State) error {
	if err := s.states.Put(ctx, state); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving checkout state")
	}
	return nil
}

func stageConflict(message string, returnTo enums.CheckoutStage) error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, message).
		WithDetails(map[string]string{"return_to": string(returnTo)})
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}
