package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gateway is the external payment collaborator.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error)
}

// SandboxGateway approves every order after Delay. Local development only;
// config refuses it in production.
type SandboxGateway struct {
	Delay time.Duration
}

func (g SandboxGateway) CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("sandbox: invalid amount %d", req.Amount)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Delay):
	}

	return &GatewayOrder{
		ID:     "sandbox_" + uuid.New().String(),
		Status: "paid",
		Amount: req.Amount,
	}, nil
}
