package ports

import (
	"context"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

type BookingNotifier interface {
	NotifyLessonBooked(ctx context.Context, b *domain.Booking)
	NotifyLessonConfirmed(ctx context.Context, b *domain.Booking)
	NotifyLessonCompleted(ctx context.Context, b *domain.Booking)
	NotifyLessonCancelled(ctx context.Context, b *domain.Booking)
}
