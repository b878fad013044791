package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/felipemsilva2/vrumi-connect-2026-sub001/internal/domain"
)

type AvailabilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// HasOpenSlot checks for a published slot that covers the whole lesson:
// starting no later than the lesson and ending no earlier than start+duration.
func (r *AvailabilityRepository) HasOpenSlot(ctx context.Context, instructorID string, schedule domain.Schedule) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM availability_slots
				WHERE instructor_id = $1
				  AND slot_date = $2
				  AND start_time <= $3::time
				  AND end_time >= $3::time + make_interval(mins => $4)
			  )`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		instructorID, schedule.Date, schedule.Time, schedule.DurationMinutes,
	)
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}

	var open bool
	if err = row.Scan(&open); err != nil {
		return false, fmt.Errorf("scan slot check: %w", err)
	}

	return open, nil
}
