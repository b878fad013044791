package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/service/ports"
)

// OmiseProvider adapts the Omise API to the PaymentProvider port. The split
// travels on the charge as destination/fee metadata: capture lands on the
// platform account and the provider-side transfer schedule pays the
// instructor the net.
type OmiseProvider struct {
	client *omise.Client
	logger logger.Logger
}

func NewOmiseProvider(publicKey, secretKey string, logger logger.Logger) (*OmiseProvider, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("create omise client: %w", err)
	}
	client.SetDebug(false)

	return &OmiseProvider{client: client, logger: logger}, nil
}

func (p *OmiseProvider) CreateSplitCharge(ctx context.Context, in ports.ChargeInput) (*ports.ChargeRef, error) {
	charge := &omise.Charge{}
	req := &operations.CreateCharge{
		Amount:      in.AmountMinorUnits,
		Currency:    in.Currency,
		DontCapture: false,
		Description: fmt.Sprintf("driving lesson %s", in.BookingID),
		Metadata: map[string]interface{}{
			"booking_id":          in.BookingID,
			"student_id":          in.StudentID,
			"instructor_id":       in.InstructorID,
			"destination_account": in.DestinationAccount,
			"platform_fee":        in.PlatformFeeMinorUnits,
		},
	}

	if err := p.client.Do(charge, req); err != nil {
		return nil, err
	}

	p.logger.Info("omise charge created",
		logger.String("charge_id", charge.ID),
		logger.String("booking_id", in.BookingID),
		logger.Int64("amount", in.AmountMinorUnits),
	)

	// AuthorizeURI is what the mobile client opens to authorize the charge.
	return &ports.ChargeRef{
		ID:           charge.ID,
		ClientSecret: charge.AuthorizeURI,
	}, nil
}

func (p *OmiseProvider) Refund(ctx context.Context, paymentIntentID string) error {
	charge := &omise.Charge{}
	if err := p.client.Do(charge, &operations.RetrieveCharge{ChargeID: paymentIntentID}); err != nil {
		return fmt.Errorf("retrieve charge: %w", err)
	}

	refund := &omise.Refund{}
	req := &operations.CreateRefund{
		ChargeID: paymentIntentID,
		Amount:   charge.Amount,
	}
	if err := p.client.Do(refund, req); err != nil {
		return fmt.Errorf("create refund: %w", err)
	}

	p.logger.Info("refund requested",
		logger.String("charge_id", paymentIntentID),
		logger.Int64("amount", charge.Amount),
	)

	return nil
}

// VerifyEvent re-fetches the webhook event from Omise so a forged POST body
// cannot move a booking. Event kinds other than charge completion return nil.
func (p *OmiseProvider) VerifyEvent(ctx context.Context, eventID string) (*ports.CapturedCharge, error) {
	event := &omise.Event{}
	if err := p.client.Do(event, &operations.RetrieveEvent{EventID: eventID}); err != nil {
		return nil, fmt.Errorf("retrieve event: %w", err)
	}

	if event.Key != "charge.complete" {
		return nil, nil
	}

	raw, err := json.Marshal(event.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal event data: %w", err)
	}
	var charge omise.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return nil, fmt.Errorf("unmarshal charge: %w", err)
	}

	bookingID, _ := charge.Metadata["booking_id"].(string)

	captured := &ports.CapturedCharge{
		PaymentIntentID: charge.ID,
		BookingID:       bookingID,
		Succeeded:       string(charge.Status) == "successful",
	}
	if !captured.Succeeded && charge.FailureCode != nil {
		captured.FailureReason = *charge.FailureCode
	}

	return captured, nil
}
