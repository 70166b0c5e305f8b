package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travelapp/internal/domain"
	"travelapp/internal/gateway"
	"travelapp/internal/metrics"
	"travelapp/internal/repository"
)

// Service owns the payment lifecycle: not-yet-created -> Pending via
// Initiate, Pending -> Completed/Failed via Verify. A payment row
// exists only after the gateway has accepted initiation, and a
// resolved payment is never re-verified.
type Service struct {
	payments    paymentRepo
	gateway     gatewayClient
	currency    string
	callbackURL string
}

func NewService(payments paymentRepo, gw gatewayClient, currency, callbackURL string) *Service {
	return &Service{
		payments:    payments,
		gateway:     gw,
		currency:    currency,
		callbackURL: callbackURL,
	}
}

func (s *Service) Initiate(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResponse, error) {
	if strings.TrimSpace(req.BookingReference) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: booking_reference, amount, and email are required", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	// Cheap guard before touching the gateway; the unique index on
	// booking_reference catches the race.
	if _, err := s.payments.GetByReference(ctx, req.BookingReference); err == nil {
		return nil, ErrDuplicatePayment
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	res, err := s.gateway.Initialize(ctx, gateway.InitializeRequest{
		Amount:      req.Amount,
		Currency:    s.currency,
		Email:       req.Email,
		TxRef:       req.BookingReference,
		CallbackURL: s.callbackURL,
	})
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		BookingReference: req.BookingReference,
		Amount:           req.Amount,
		TransactionID:    res.TxRef,
		Status:           domain.PaymentPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateReference) {
			return nil, ErrDuplicatePayment
		}
		return nil, err
	}
	metrics.PaymentsInitiated.Inc()

	return &InitiatePaymentResponse{
		CheckoutURL: res.CheckoutURL,
		PaymentID:   p.ID,
	}, nil
}

func (s *Service) Verify(ctx context.Context, paymentID int64) (*VerifyPaymentResponse, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Terminal states are final: answer from the record without
	// another gateway round trip.
	if p.Status.Terminal() {
		return &VerifyPaymentResponse{Status: string(p.Status)}, nil
	}

	res, err := s.gateway.Verify(ctx, p.TransactionID)
	if err != nil {
		// Transport fault: the payment stays Pending.
		return nil, err
	}

	status := domain.PaymentFailed
	if res.Succeeded {
		status = domain.PaymentCompleted
	}

	changed, err := s.payments.ResolveIfPending(ctx, p.ID, status)
	if err != nil {
		return nil, err
	}
	if !changed {
		// A concurrent verification won the race; report what it decided.
		p, err = s.payments.GetByID(ctx, paymentID)
		if err != nil {
			return nil, err
		}
		return &VerifyPaymentResponse{Status: string(p.Status)}, nil
	}
	metrics.PaymentsVerified.WithLabelValues(string(status)).Inc()

	out := &VerifyPaymentResponse{Status: string(status)}
	if status == domain.PaymentFailed {
		out.Message = res.Message
	}
	return out, nil
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.List(ctx)
}
