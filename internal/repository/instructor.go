package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type InstructorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInstructorRepo(db *dbpg.DB) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// PayoutAccountRef returns "" when the instructor never finished payout
// onboarding; callers turn that into ErrPayoutAccountNotReady.
func (r *InstructorRepository) PayoutAccountRef(ctx context.Context, instructorID string) (string, error) {
	query := `SELECT payout_account_ref FROM instructor_accounts
			  WHERE instructor_id = $1 AND onboarded`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, instructorID)
	if err != nil {
		return "", fmt.Errorf("get payout account: %w", err)
	}

	var ref sql.NullString
	if err = row.Scan(&ref); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("scan payout account: %w", err)
	}

	return ref.String, nil
}
