package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

// PaymentService bridges the fee split to the payment provider's split
// charges and feeds the provider's capture callbacks back into the booking
// state machine.
type PaymentService struct {
	bookingRepo ports.BookingRepo
	instructors ports.InstructorRepo
	provider    ports.PaymentProvider
	bookings    *BookingService
	feeRate     decimal.Decimal
	currency    string
	logger      logger.Logger
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	instructors ports.InstructorRepo,
	provider ports.PaymentProvider,
	bookings *BookingService,
	feeRate decimal.Decimal,
	currency string,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		instructors: instructors,
		provider:    provider,
		bookings:    bookings,
		feeRate:     feeRate,
		currency:    currency,
		logger:      logger,
	}
}

// CreateSplitPayment issues one collection request for the booking: total
// amount to the platform, net transferred to the instructor's payout account,
// fee retained. The booking is only touched after the provider call succeeds,
// so a failed attempt is safe to retry.
func (s *PaymentService) CreateSplitPayment(ctx context.Context, studentID, bookingID string, grossMinorUnits int64) (*domain.PaymentIntent, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.StudentID != studentID {
		return nil, domain.ErrNotBookingParty
	}
	if booking.PaymentIntentID != nil {
		return nil, domain.ErrPaymentAlreadyStarted
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	// The client echoes the amount it showed the student; it must match the
	// recorded price, never replace it.
	if grossMinorUnits != booking.PriceMinorUnits {
		return nil, domain.ErrAmountMismatch
	}

	payoutRef, err := s.instructors.PayoutAccountRef(ctx, booking.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("payout account lookup: %w", err)
	}
	if payoutRef == "" {
		return nil, domain.ErrPayoutAccountNotReady
	}

	split, err := domain.ComputeSplit(grossMinorUnits, s.feeRate)
	if err != nil {
		return nil, err
	}

	ref, err := s.provider.CreateSplitCharge(ctx, ports.ChargeInput{
		BookingID:             booking.ID,
		StudentID:             booking.StudentID,
		InstructorID:          booking.InstructorID,
		AmountMinorUnits:      split.GrossAmount,
		Currency:              s.currency,
		DestinationAccount:    payoutRef,
		PlatformFeeMinorUnits: split.PlatformFeeAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	if err := s.bookingRepo.SetPaymentIntent(ctx, booking.ID, ref.ID); err != nil {
		return nil, err
	}

	s.logger.Info("split payment created",
		logger.String("booking_id", booking.ID),
		logger.String("payment_intent_id", ref.ID),
		logger.Int64("gross", split.GrossAmount),
		logger.Int64("platform_fee", split.PlatformFeeAmount),
	)

	return &domain.PaymentIntent{
		ID:           ref.ID,
		ClientSecret: ref.ClientSecret,
		Split:        split,
	}, nil
}

// OnPaymentCaptured is the webhook entry for a successful capture. Provider
// webhooks retry, so a booking that is already past pending counts as done.
func (s *PaymentService) OnPaymentCaptured(ctx context.Context, paymentIntentID string) error {
	booking, err := s.bookingRepo.GetByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	_, err = s.bookings.ConfirmOnPayment(ctx, booking.ID, paymentIntentID)
	if errors.Is(err, domain.ErrInvalidTransition) && booking.Status != domain.BookingStatusPending {
		s.logger.Debug("capture webhook replay ignored",
			logger.String("payment_intent_id", paymentIntentID),
		)
		return nil
	}

	return err
}

// OnPaymentFailed marks the payment failed and releases the intent so the
// student can retry; the booking itself stays pending.
func (s *PaymentService) OnPaymentFailed(ctx context.Context, paymentIntentID, reason string) error {
	booking, err := s.bookingRepo.GetByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return err
	}

	failed := domain.PaymentStatusFailed
	err = s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusPending, ports.BookingUpdate{
		Status:             domain.BookingStatusPending,
		PaymentStatus:      &failed,
		ClearPaymentIntent: true,
	})
	if err != nil {
		return err
	}

	s.logger.Warn("payment failed",
		logger.String("booking_id", booking.ID),
		logger.String("payment_intent_id", paymentIntentID),
		logger.String("reason", reason),
	)

	return nil
}

// PreviewSplit backs the "you receive R$X after the fee" figure with the
// exact function the charge path uses.
func (s *PaymentService) PreviewSplit(grossMinorUnits int64) (domain.FeeSplit, error) {
	return domain.ComputeSplit(grossMinorUnits, s.feeRate)
}
