package payment

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/gateway"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByReference(ctx context.Context, ref string) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ResolveIfPending(ctx context.Context, id int64, status domain.PaymentStatus) (bool, error)
}

type gatewayClient interface {
	Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error)
	Verify(ctx context.Context, transactionID string) (*gateway.VerifyResult, error)
}
