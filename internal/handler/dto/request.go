package dto

type CreateBookingRequest struct {
	InstructorID    string `json:"instructor_id" binding:"required,uuid"`
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
	ScheduledTime   string `json:"scheduled_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,gt=0"`
	PriceMinorUnits int64  `json:"price_minor_units" binding:"required,gt=0"`
}

type PayRequest struct {
	AmountMinorUnits int64 `json:"amount_minor_units" binding:"required,gt=0"`
}

type CheckInRequest struct {
	Token string `json:"token" binding:"required"`
}

type PaymentWebhookRequest struct {
	ID  string `json:"id" binding:"required"`
	Key string `json:"key"`
}
