package ports

import "context"

// ChargeInput is the single collection request sent to the payment provider:
// total amount, destination account and the platform fee, tagged with ids for
// reconciliation.
type ChargeInput struct {
	BookingID             string
	StudentID             string
	InstructorID          string
	AmountMinorUnits      int64
	Currency              string
	DestinationAccount    string
	PlatformFeeMinorUnits int64
}

type ChargeRef struct {
	ID           string
	ClientSecret string
}

// CapturedCharge is a provider webhook event resolved to its outcome.
type CapturedCharge struct {
	PaymentIntentID string
	BookingID       string
	Succeeded       bool
	FailureReason   string
}

type PaymentProvider interface {
	CreateSplitCharge(ctx context.Context, in ChargeInput) (*ChargeRef, error)

	// Refund signals the refund obligation for a captured charge. Execution
	// and settlement stay on the provider's side.
	Refund(ctx context.Context, paymentIntentID string) error

	// VerifyEvent authenticates an incoming webhook event against the
	// provider and returns the charge outcome, or nil for event kinds the
	// core does not consume.
	VerifyEvent(ctx context.Context, eventID string) (*CapturedCharge, error)
}
