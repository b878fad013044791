package ports

import (
	"context"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

// BookingUpdate is the field patch applied together with a status transition.
type BookingUpdate struct {
	Status             domain.BookingStatus
	PaymentStatus      *domain.PaymentStatus
	PaymentIntentID    *string
	ClearPaymentIntent bool
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (*domain.Booking, error)

	// UpdateStatus applies update only when the booking currently holds
	// expected. When nothing matches it reports ErrBookingNotFound or
	// ErrInvalidTransition, so two racing transitions cannot both succeed.
	UpdateStatus(ctx context.Context, id string, expected domain.BookingStatus, update BookingUpdate) error

	// SetPaymentIntent stores the provider charge id and moves the payment
	// status to pending, but only when no intent is set yet; otherwise it
	// reports ErrPaymentAlreadyStarted.
	SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error

	// FindOverlapping returns the non-cancelled booking of the instructor
	// sharing the same start instant, or ErrBookingNotFound.
	FindOverlapping(ctx context.Context, instructorID, scheduledDate, scheduledTime string) (*domain.Booking, error)

	ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error)

	// CancelStalePending cancels pending bookings whose lesson start plus
	// tolerance has passed without payment and returns them.
	CancelStalePending(ctx context.Context) ([]*domain.Booking, error)
}
