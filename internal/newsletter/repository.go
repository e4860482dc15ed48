package newsletter

import (
	"context"
	"errors"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	List(ctx context.Context) ([]Subscription, error)
}
