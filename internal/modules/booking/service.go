package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"travelapp/internal/domain"
	"travelapp/internal/mailer"
	"travelapp/internal/metrics"
	"travelapp/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	mail     ConfirmationEnqueuer
}

func NewService(bookings BookingRepository, mail ConfirmationEnqueuer) *Service {
	return &Service{bookings: bookings, mail: mail}
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in_date must be YYYY-MM-DD", ErrValidation)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out_date must be YYYY-MM-DD", ErrValidation)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}

	b := &domain.Booking{
		UserEmail:        strings.TrimSpace(req.UserEmail),
		PropertyName:     strings.TrimSpace(req.PropertyName),
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		TotalPrice:       req.TotalPrice,
		BookingReference: newBookingReference(),
	}
	if errs := validator.Validate(b); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	metrics.BookingsCreated.Inc()

	// Fire-and-forget: booking creation never waits on email delivery.
	if s.mail != nil {
		s.mail.Enqueue(mailer.ConfirmationJob{
			Email:            b.UserEmail,
			BookingReference: b.BookingReference,
			PropertyName:     b.PropertyName,
			CheckInDate:      b.CheckInDate.Format(dateLayout),
			CheckOutDate:     b.CheckOutDate.Format(dateLayout),
			TotalPrice:       b.TotalPrice,
		})
	}

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func newBookingReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}
