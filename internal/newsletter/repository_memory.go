package newsletter

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu   sync.Mutex
	subs []Subscription
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, s *Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.subs {
		if existing.Email == s.Email {
			return ErrAlreadySubscribed
		}
	}

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.subs = append(r.subs, *s)
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Subscription, len(r.subs))
	copy(out, r.subs)
	return out, nil
}
