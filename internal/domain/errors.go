package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrPaymentIntentNotFound = errors.New("payment intent not found")
)

var (
	ErrInvalidTransition = errors.New("invalid booking transition")
	ErrSlotUnavailable   = errors.New("instructor has no open slot for this schedule")
	ErrDoubleBooking     = errors.New("instructor already booked at this time")
	ErrNotBookingParty   = errors.New("caller is not a party on this booking")
)

var (
	ErrIneligible      = errors.New("check-in not allowed")
	ErrMalformedToken  = errors.New("malformed check-in token")
	ErrBookingMismatch = errors.New("token was issued for a different booking")
)

var (
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrAmountMismatch        = errors.New("amount does not match booking price")
	ErrPayoutAccountNotReady = errors.New("instructor payout account is not onboarded")
	ErrPaymentAlreadyStarted = errors.New("payment intent already exists for this booking")
	ErrPaymentProvider       = errors.New("payment provider error")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrCheckInWindowClosed is the errors.Is target for CheckInWindowClosedError.
var ErrCheckInWindowClosed = errors.New("check-in window closed")

// CheckInWindowClosedError reports which boundary of the check-in window was
// missed so the client can show an actionable message.
type CheckInWindowClosedError struct {
	Reason WindowReason
}

func (e *CheckInWindowClosedError) Error() string {
	return fmt.Sprintf("check-in window closed: %s", e.Reason)
}

func (e *CheckInWindowClosedError) Is(target error) bool {
	return target == ErrCheckInWindowClosed
}
