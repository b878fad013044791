package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

type staleCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically cancels pending bookings whose lesson came and went
// without payment, so abandoned requests do not hold instructor slots.
type Scheduler struct {
	bookingService staleCanceller
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService staleCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("student_id", b.StudentID),
			logger.String("instructor_id", b.InstructorID),
		)
	}
}
