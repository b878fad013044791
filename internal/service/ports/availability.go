package ports

import (
	"context"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

type AvailabilityRepo interface {
	// HasOpenSlot reports whether the instructor published an availability
	// slot covering the whole schedule.
	HasOpenSlot(ctx context.Context, instructorID string, schedule domain.Schedule) (bool, error)
}

type InstructorRepo interface {
	// PayoutAccountRef returns the payment-provider recipient reference of a
	// fully onboarded instructor, or "" when onboarding is not finished.
	PayoutAccountRef(ctx context.Context, instructorID string) (string, error)
}

type ContactRepo interface {
	// TelegramChatID resolves a user's notification channel; nil means the
	// user never linked one.
	TelegramChatID(ctx context.Context, userID string) (*int64, error)
}
