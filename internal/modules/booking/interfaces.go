package booking

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/mailer"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type ConfirmationEnqueuer interface {
	Enqueue(job mailer.ConfirmationJob) (mailer.JobID, bool)
}
