package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

// CheckInService runs the two-device handshake that confirms both parties
// were present for a lesson. The instructor mints a token rendered as a QR
// code; the student scans and validates it, which completes the booking.
// There is no device-to-device channel: the booking record is the single
// source of truth.
type CheckInService struct {
	bookingRepo ports.BookingRepo
	bookings    *BookingService
	logger      logger.Logger
	now         func() time.Time
}

func NewCheckInService(bookingRepo ports.BookingRepo, bookings *BookingService, logger logger.Logger) *CheckInService {
	return &CheckInService{
		bookingRepo: bookingRepo,
		bookings:    bookings,
		logger:      logger,
		now:         time.Now,
	}
}

// MintToken is instructor-side. Only the booking's instructor may mint, only
// for a confirmed booking, and only while the check-in window is open.
func (s *CheckInService) MintToken(ctx context.Context, instructorID, bookingID string) (*domain.CheckInToken, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.InstructorID != instructorID {
		return nil, fmt.Errorf("%w: caller is not the instructor on this booking", domain.ErrIneligible)
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, fmt.Errorf("%w: booking is %s", domain.ErrIneligible, booking.Status)
	}

	window := domain.CheckInEligibility(booking.ScheduledDate, booking.ScheduledTime, s.now())
	if !window.Available {
		return nil, fmt.Errorf("%w: window is %s", domain.ErrIneligible, window.Reason)
	}

	token := domain.NewCheckInToken(bookingID, s.now())

	s.logger.Info("check-in token minted",
		logger.String("booking_id", bookingID),
		logger.String("instructor_id", instructorID),
	)

	return &token, nil
}

// ValidateAndComplete is student-side. It parses the scanned payload, binds
// it to the booking being checked in, and delegates the transition to the
// state machine, propagating its failures unchanged. A token scanned twice
// completes once and fails ErrInvalidTransition the second time; the HTTP
// layer treats that as a benign no-op when the booking is already completed.
func (s *CheckInService) ValidateAndComplete(ctx context.Context, studentID, bookingID, scannedToken string) (*domain.Booking, error) {
	token, err := domain.DecodeCheckInToken(scannedToken)
	if err != nil {
		return nil, err
	}

	if token.BookingID != bookingID {
		return nil, domain.ErrBookingMismatch
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.StudentID != studentID {
		return nil, domain.ErrNotBookingParty
	}

	return s.bookings.CompleteViaCheckIn(ctx, bookingID)
}

// Eligibility answers the live poll a check-in screen runs while open.
// Purely a function of wall-clock time, computed fresh on every call.
func (s *CheckInService) Eligibility(ctx context.Context, userID, bookingID string) (domain.CheckInWindow, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return domain.CheckInWindow{}, err
	}
	if !booking.IsParty(userID) {
		return domain.CheckInWindow{}, domain.ErrNotBookingParty
	}

	return domain.CheckInEligibility(booking.ScheduledDate, booking.ScheduledTime, s.now()), nil
}
