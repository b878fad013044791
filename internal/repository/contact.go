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

type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ContactRepository) TelegramChatID(ctx context.Context, userID string) (*int64, error) {
	query := `SELECT telegram_chat_id FROM notification_contacts WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	var chatID sql.NullInt64
	if err = row.Scan(&chatID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	if !chatID.Valid {
		return nil, nil
	}

	return &chatID.Int64, nil
}
