package dto

import (
	"time"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	StudentID       string  `json:"student_id"`
	InstructorID    string  `json:"instructor_id"`
	ScheduledDate   string  `json:"scheduled_date"`
	ScheduledTime   string  `json:"scheduled_time"`
	DurationMinutes int     `json:"duration_minutes"`
	PriceMinorUnits int64   `json:"price_minor_units"`
	PaymentStatus   string  `json:"payment_status"`
	Status          string  `json:"status"`
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type CheckInTokenResponse struct {
	BookingID string `json:"booking_id"`
	Token     string `json:"token"`
	IssuedAt  int64  `json:"issued_at"`
}

type EligibilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

type FeeSplitResponse struct {
	GrossAmount         int64 `json:"gross_amount"`
	PlatformFeeAmount   int64 `json:"platform_fee_amount"`
	InstructorNetAmount int64 `json:"instructor_net_amount"`
}

type PaymentIntentResponse struct {
	PaymentIntentID string           `json:"payment_intent_id"`
	ClientSecret    string           `json:"client_secret"`
	Split           FeeSplitResponse `json:"split"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		StudentID:       b.StudentID,
		InstructorID:    b.InstructorID,
		ScheduledDate:   b.ScheduledDate,
		ScheduledTime:   b.ScheduledTime,
		DurationMinutes: b.DurationMinutes,
		PriceMinorUnits: b.PriceMinorUnits,
		PaymentStatus:   string(b.PaymentStatus),
		Status:          string(b.Status),
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToFeeSplitResponse(s domain.FeeSplit) FeeSplitResponse {
	return FeeSplitResponse{
		GrossAmount:         s.GrossAmount,
		PlatformFeeAmount:   s.PlatformFeeAmount,
		InstructorNetAmount: s.InstructorNetAmount,
	}
}

func ToPaymentIntentResponse(p *domain.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		PaymentIntentID: p.ID,
		ClientSecret:    p.ClientSecret,
		Split:           ToFeeSplitResponse(p.Split),
	}
}

func ToEligibilityResponse(w domain.CheckInWindow) EligibilityResponse {
	return EligibilityResponse{
		Available: w.Available,
		Reason:    string(w.Reason),
	}
}
