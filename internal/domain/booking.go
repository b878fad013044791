package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ActiveStatuses are the statuses that still hold the instructor's slot.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

const DefaultLessonDurationMinutes = 50

type Booking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	InstructorID    string        `json:"instructor_id"`
	ScheduledDate   string        `json:"scheduled_date"` // 2006-01-02
	ScheduledTime   string        `json:"scheduled_time"` // 15:04
	DurationMinutes int           `json:"duration_minutes"`
	PriceMinorUnits int64         `json:"price_minor_units"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Status          BookingStatus `json:"status"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsParty reports whether userID is the student or the instructor on b.
func (b *Booking) IsParty(userID string) bool {
	return userID == b.StudentID || userID == b.InstructorID
}

type Schedule struct {
	Date            string
	Time            string
	DurationMinutes int
}

type CreateBookingInput struct {
	StudentID       string
	InstructorID    string
	Schedule        Schedule
	PriceMinorUnits int64
}
