package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

// BookingService owns the booking lifecycle:
// pending -> confirmed -> completed, with cancellation allowed from pending
// and confirmed only. Every transition goes through the repository's
// conditional update, so concurrent callers cannot both move the same booking.
type BookingService struct {
	bookingRepo  ports.BookingRepo
	availability ports.AvailabilityRepo
	payments     ports.PaymentProvider
	notifier     ports.BookingNotifier
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	availability ports.AvailabilityRepo,
	payments ports.PaymentProvider,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		availability: availability,
		payments:     payments,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *BookingService) CreatePending(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.StudentID == "" || input.InstructorID == "" {
		return nil, fmt.Errorf("%w: student and instructor are required", domain.ErrValidation)
	}
	if input.PriceMinorUnits <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := domain.LessonStartsAt(input.Schedule.Date, input.Schedule.Time); err != nil {
		return nil, fmt.Errorf("%w: bad schedule: %v", domain.ErrValidation, err)
	}

	duration := input.Schedule.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultLessonDurationMinutes
	}

	open, err := s.availability.HasOpenSlot(ctx, input.InstructorID, domain.Schedule{
		Date:            input.Schedule.Date,
		Time:            input.Schedule.Time,
		DurationMinutes: duration,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !open {
		return nil, domain.ErrSlotUnavailable
	}

	_, err = s.bookingRepo.FindOverlapping(ctx, input.InstructorID, input.Schedule.Date, input.Schedule.Time)
	switch {
	case err == nil:
		return nil, domain.ErrDoubleBooking
	case !errors.Is(err, domain.ErrBookingNotFound):
		return nil, fmt.Errorf("check overlap: %w", err)
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		StudentID:       input.StudentID,
		InstructorID:    input.InstructorID,
		ScheduledDate:   input.Schedule.Date,
		ScheduledTime:   input.Schedule.Time,
		DurationMinutes: duration,
		PriceMinorUnits: input.PriceMinorUnits,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		Status:          domain.BookingStatusPending,
		CreatedAt:       s.now().UTC(),
		UpdatedAt:       s.now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("student_id", booking.StudentID),
		logger.String("instructor_id", booking.InstructorID),
	)

	go s.notifier.NotifyLessonBooked(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// ConfirmOnPayment moves a pending booking to confirmed once the provider
// reported capture. Legal only from pending.
func (s *BookingService) ConfirmOnPayment(ctx context.Context, bookingID, paymentIntentID string) (*domain.Booking, error) {
	paid := domain.PaymentStatusPaid
	err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusPending, ports.BookingUpdate{
		Status:          domain.BookingStatusConfirmed,
		PaymentStatus:   &paid,
		PaymentIntentID: &paymentIntentID,
	})
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", bookingID),
		logger.String("payment_intent_id", paymentIntentID),
	)

	go s.notifier.NotifyLessonConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CompleteViaCheckIn is the trigger point for payout accounting. Legal only
// from confirmed and only while the check-in window is open; the conditional
// update makes a second attempt fail with ErrInvalidTransition instead of
// re-triggering payout.
func (s *BookingService) CompleteViaCheckIn(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	window := domain.CheckInEligibility(booking.ScheduledDate, booking.ScheduledTime, s.now())
	if !window.Available {
		return nil, &domain.CheckInWindowClosedError{Reason: window.Reason}
	}

	err = s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusConfirmed, ports.BookingUpdate{
		Status: domain.BookingStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusCompleted

	s.logger.Info("booking completed via check-in",
		logger.String("booking_id", bookingID),
		logger.String("instructor_id", booking.InstructorID),
	)

	go s.notifier.NotifyLessonCompleted(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Cancel is legal from pending or confirmed. For a paid booking it signals
// the refund obligation to the payment provider; execution stays external.
func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsParty(actorID) {
		return nil, domain.ErrNotBookingParty
	}
	if booking.Status.Terminal() {
		return nil, domain.ErrInvalidTransition
	}

	err = s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, ports.BookingUpdate{
		Status: domain.BookingStatusCancelled,
	})
	if err != nil {
		return nil, err
	}

	if booking.PaymentStatus == domain.PaymentStatusPaid && booking.PaymentIntentID != nil {
		if err := s.payments.Refund(ctx, *booking.PaymentIntentID); err != nil {
			s.logger.Error("refund signal failed",
				logger.String("booking_id", bookingID),
				logger.String("payment_intent_id", *booking.PaymentIntentID),
				logger.String("error", err.Error()),
			)
		}
	}

	booking.Status = domain.BookingStatusCancelled

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("actor_id", actorID),
	)

	go s.notifier.NotifyLessonCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CancelStale cancels pending bookings whose lesson is past the expiry
// tolerance without ever being paid. Called by the scheduler.
func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStalePending(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go func(bookings []*domain.Booking) {
			ctx := context.WithoutCancel(ctx)
			for _, b := range bookings {
				s.notifier.NotifyLessonCancelled(ctx, b)
			}
		}(cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) GetForParty(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(userID) {
		return nil, domain.ErrNotBookingParty
	}
	return booking, nil
}

func (s *BookingService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByStudent(ctx, studentID)
}

func (s *BookingService) ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByInstructor(ctx, instructorID)
}
