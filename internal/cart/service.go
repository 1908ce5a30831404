package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/voltkart/storefront-backend/internal/catalog"
	pkgerrors "github.com/voltkart/storefront-backend/pkg/errors"
	"github.com/voltkart/storefront-backend/pkg/logger"
	"github.com/voltkart/storefront-backend/pkg/metrics"
)

type productFinder interface {
	FindByID(id string) (catalog.Product, bool)
}

// Service exposes session cart operations. Every mutation returns the
// resulting snapshot with totals recomputed.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Snapshot, error)
	AddItem(ctx context.Context, sessionID, productID string) (*Snapshot, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Snapshot, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*Snapshot, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store    Store
	products productFinder
	logg     *logger.Logger
	metrics  *metrics.StorefrontMetrics
}

// NewService builds a cart service backed by the provided store and catalog.
func NewService(store Store, products productFinder, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, products: products, logg: logg, metrics: m}, nil
}

// Get returns the session cart, or an empty snapshot when none exists.
func (s *service) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snapshot.recompute()
	return snapshot, nil
}

// AddItem adds one unit of the product, merging into an existing line.
// The price captured when the line was first created wins on merge. The
// stock flag is display only and never blocks an add.
func (s *service) AddItem(ctx context.Context, sessionID, productID string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	product, ok := s.products.FindByID(productID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range snapshot.Items {
		if snapshot.Items[i].ProductID == productID {
			snapshot.Items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		snapshot.Items = append(snapshot.Items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}

	if err := s.persist(ctx, snapshot); err != nil {
		return nil, err
	}
	s.metrics.IncCartMutation("add")
	s.logg.Info(s.logg.WithField(ctx, "product_id", productID), "cart item added")
	return snapshot, nil
}

// UpdateQuantity sets the quantity for a line. Zero or negative removes
// the line; an absent product id leaves the cart unchanged.
func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		snapshot.Items = removeLine(snapshot.Items, productID)
	} else {
		for i := range snapshot.Items {
			if snapshot.Items[i].ProductID == productID {
				snapshot.Items[i].Quantity = quantity
				break
			}
		}
	}

	if err := s.persist(ctx, snapshot); err != nil {
		return nil, err
	}
	s.metrics.IncCartMutation("update")
	return snapshot, nil
}

// RemoveItem drops the line for the product. Removing an absent line is
// a no-op.
func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) (*Snapshot, error) {
	if err := requireSession(sessionID); err != nil {
		return nil, err
	}
	snapshot, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snapshot.Items = removeLine(snapshot.Items, productID)

	if err := s.persist(ctx, snapshot); err != nil {
		return nil, err
	}
	s.metrics.IncCartMutation("remove")
	return snapshot, nil
}

// Clear discards the session cart entirely.
func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := requireSession(sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clearing cart")
	}
	s.metrics.IncCartMutation("clear")
	return nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Snapshot, error) {
	snapshot, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cart")
	}
	if snapshot == nil {
		snapshot = &Snapshot{SessionID: sessionID, Items: []LineItem{}}
	}
	return snapshot, nil
}

func (s *service) persist(ctx context.Context, snapshot *Snapshot) error {
	snapshot.recompute()
	if len(snapshot.Items) == 0 {
		if err := s.store.Delete(ctx, snapshot.SessionID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving cart")
		}
		return nil
	}
	if err := s.store.Put(ctx, snapshot); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving cart")
	}
	return nil
}

func requireSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return nil
}

func removeLine(items []LineItem, productID string) []LineItem {
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return kept
}
