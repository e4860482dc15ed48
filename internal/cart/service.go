package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrEmptyCart      = errors.New("cart is empty")

	// ErrNotCleared means the charge went through but the cart could not
	// be emptied afterwards.
	ErrNotCleared = errors.New("cart not cleared after checkout")
)

// ChargeFunc collects payment for the given items. Returning an error
// leaves the cart untouched.
type ChargeFunc func(ctx context.Context, items []LineItem) error

// Notifier is told whenever a cart is written.
type Notifier interface {
	CartChanged(ctx context.Context, key string)
}

type nopNotifier struct{}

func (nopNotifier) CartChanged(context.Context, string) {}

const lockStripes = 64

type Service struct {
	store    BlobStore
	notifier Notifier
	log      *zap.Logger

	// read-modify-write on a key is serialised; keys share stripes
	locks [lockStripes]sync.Mutex
}

func NewService(store BlobStore, notifier Notifier, log *zap.Logger) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

func (s *Service) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// --------------------------------------------------
// Load / Save
// --------------------------------------------------

// LoadCart reads the shopper's cart. Absent or undecodable data is an
// empty cart; only backend failures are returned.
func (s *Service) LoadCart(ctx context.Context, shopperID string) ([]LineItem, error) {
	return s.load(ctx, Key(shopperID))
}

func (s *Service) SaveCart(ctx context.Context, shopperID string, items []LineItem) error {
	key := Key(shopperID)
	unlock := s.lock(key)
	defer unlock()

	return s.save(ctx, key, items)
}

func (s *Service) load(ctx context.Context, key string) ([]LineItem, error) {
	raw, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(raw) == 0 {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("[CART] discarding malformed cart", zap.String("key", key), zap.Error(err))
		return []LineItem{}, nil
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

func (s *Service) save(ctx context.Context, key string, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := s.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	s.notifier.CartChanged(ctx, key)
	return nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// AddItem bumps the quantity of an existing line or appends a new one
// with quantity 1.
func (s *Service) AddItem(ctx context.Context, shopperID string, p Product) ([]LineItem, error) {
	if p.Price < 0 {
		return nil, ErrInvalidProduct
	}

	key := Key(shopperID)
	unlock := s.lock(key)
	defer unlock()

	items, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		items = append(items, LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: 1,
		})
	}

	if err := s.save(ctx, key, items); err != nil {
		return nil, err
	}

	s.log.Debug("[CART] item added", zap.String("key", key), zap.Int("product_id", p.ID))
	return items, nil
}

// RemoveItem deletes the whole line for id. Removing an id that is not
// in the cart leaves the contents unchanged.
func (s *Service) RemoveItem(ctx context.Context, shopperID string, id int) ([]LineItem, error) {
	key := Key(shopperID)
	unlock := s.lock(key)
	defer unlock()

	items, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if err := s.save(ctx, key, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) Clear(ctx context.Context, shopperID string) error {
	key := Key(shopperID)
	unlock := s.lock(key)
	defer unlock()

	return s.save(ctx, key, nil)
}

// Checkout holds the cart's lock while charge runs, so the items charged
// are exactly the items removed. Concurrent writers to the same cart wait;
// a second checkout then finds the cart empty. The cart is cleared only
// after charge succeeds.
func (s *Service) Checkout(ctx context.Context, shopperID string, charge ChargeFunc) error {
	key := Key(shopperID)
	unlock := s.lock(key)
	defer unlock()

	items, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrEmptyCart
	}

	if err := charge(ctx, items); err != nil {
		return err
	}

	if err := s.save(ctx, key, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrNotCleared, err)
	}
	return nil
}

// --------------------------------------------------
// Derivations
// --------------------------------------------------

func (s *Service) Summary(ctx context.Context, shopperID string) (Summary, error) {
	items, err := s.LoadCart(ctx, shopperID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

func (s *Service) TotalQuantity(ctx context.Context, shopperID string) (int, error) {
	items, err := s.LoadCart(ctx, shopperID)
	if err != nil {
		return 0, err
	}
	return TotalQuantity(items), nil
}

func (s *Service) TotalPrice(ctx context.Context, shopperID string) (float64, error) {
	items, err := s.LoadCart(ctx, shopperID)
	if err != nil {
		return 0, err
	}
	return TotalPrice(items), nil
}
