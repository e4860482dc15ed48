package newsletter

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type Forwarder interface {
	Forward(ctx context.Context, s Subscription) error
}

type Service struct {
	repo      Repository
	forwarder Forwarder
	log       *zap.Logger
}

// NewService wires the signup flow. forwarder may be nil when no form
// endpoint is configured.
func NewService(repo Repository, forwarder Forwarder, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, forwarder: forwarder, log: log}
}

func (s *Service) Subscribe(ctx context.Context, name, email string) (*Subscription, error) {
	if err := Validate(name, email); err != nil {
		return nil, err
	}

	sub := &Subscription{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(strings.TrimSpace(email)),
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if s.forwarder != nil {
		if err := s.forwarder.Forward(ctx, *sub); err != nil {
			// stored locally already; the external copy is best effort
			s.log.Warn("[NEWSLETTER] forward failed", zap.String("email", sub.Email), zap.Error(err))
		}
	}

	s.log.Info("[NEWSLETTER] subscribed", zap.String("id", sub.ID))
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]Subscription, error) {
	return s.repo.List(ctx)
}
