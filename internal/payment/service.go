package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"prakruti/internal/cart"
	"prakruti/internal/core"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart = cart.ErrEmptyCart

	// ErrPaymentFailed wraps every gateway rejection or transport error.
	ErrPaymentFailed = errors.New("payment failed")
)

// ReceiptStore archives a copy of each paid order.
type ReceiptStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// Callbacks mirror the success/failure contract of the storefront's
// payment popup. Either may be nil.
type Callbacks struct {
	OnSuccess func(*Order)
	OnFailure func(error)
}

type Service struct {
	carts    core.CartCheckout
	gateway  Gateway
	orders   Repository
	receipts ReceiptStore
	log      *zap.Logger
}

// NewService wires checkout. receipts may be nil.
func NewService(
	carts core.CartCheckout,
	gateway Gateway,
	orders Repository,
	receipts ReceiptStore,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		carts:    carts,
		gateway:  gateway,
		orders:   orders,
		receipts: receipts,
		log:      log,
	}
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

// Checkout charges the shopper's current cart. An empty cart is rejected
// before the gateway is contacted. On success the order is recorded and
// the cart cleared; on failure the cart is left untouched.
func (s *Service) Checkout(ctx context.Context, shopperID string, cb Callbacks) (*Order, error) {
	order, err := s.checkout(ctx, shopperID)
	if err != nil {
		if cb.OnFailure != nil {
			cb.OnFailure(err)
		}
		return nil, err
	}

	if cb.OnSuccess != nil {
		cb.OnSuccess(order)
	}
	return order, nil
}

func (s *Service) checkout(ctx context.Context, shopperID string) (*Order, error) {
	var order *Order

	err := s.carts.Checkout(ctx, shopperID, func(ctx context.Context, items []cart.LineItem) error {
		o, err := s.charge(ctx, shopperID, items)
		if err != nil {
			return err
		}
		order = o
		return nil
	})

	switch {
	case order != nil && err != nil:
		// the order is paid and recorded; a stale cart is recoverable
		s.log.Error("[CHECKOUT] failed to clear cart", zap.String("shopper", shopperID), zap.Error(err))
	case err != nil:
		return nil, err
	}

	s.log.Info("[CHECKOUT] order paid",
		zap.String("order", order.ID),
		zap.String("gateway_order", order.GatewayOrderID),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

// charge runs under the cart lock: collect payment, archive the receipt,
// record the order. Any error leaves the cart as it was.
func (s *Service) charge(ctx context.Context, shopperID string, items []cart.LineItem) (*Order, error) {
	total := cart.TotalPrice(items)
	orderID := uuid.New().String()

	gw, err := s.gateway.CreateOrder(ctx, OrderRequest{
		Receipt:  orderID,
		Amount:   int64(math.Round(total * 100)),
		Currency: CurrencyINR,
	})
	if err != nil {
		s.log.Warn("[CHECKOUT] gateway rejected order",
			zap.String("shopper", shopperID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	order := &Order{
		ID:             orderID,
		ShopperID:      shopperID,
		GatewayOrderID: gw.ID,
		Items:          items,
		Total:          total,
		Currency:       CurrencyINR,
		Status:         StatusPaid,
	}

	if s.receipts != nil {
		if url, err := s.archive(ctx, order); err != nil {
			s.log.Warn("[CHECKOUT] receipt upload failed", zap.String("order", order.ID), zap.Error(err))
		} else {
			order.ReceiptURL = &url
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}
	return order, nil
}

func (s *Service) archive(ctx context.Context, o *Order) (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return s.receipts.Upload(ctx, "receipts/"+o.ID+".json", bytes.NewReader(data), "application/json")
}

func (s *Service) MyOrders(ctx context.Context, shopperID string) ([]Order, error) {
	return s.orders.ListByShopper(ctx, shopperID)
}

func (s *Service) AllOrders(ctx context.Context) ([]Order, error) {
	return s.orders.ListAll(ctx)
}
