package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/domain"
)

// SQLiteRewardRepo implements RewardRepo using a SQLite database.
type SQLiteRewardRepo struct {
	db db.DBTX
}

// NewSQLiteRewardRepo creates a new SQLiteRewardRepo.
func NewSQLiteRewardRepo(conn db.DBTX) *SQLiteRewardRepo {
	return &SQLiteRewardRepo{db: conn}
}

func (r *SQLiteRewardRepo) Create(ctx context.Context, e *domain.RewardEvent) error {
	query := `INSERT INTO rewards (id, user_id, task_id, reward_type, coins, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.TaskID,
		e.RewardType,
		e.Coins,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("reward for task %s: %w", e.TaskID, ErrDuplicate)
		}
		return fmt.Errorf("inserting reward %s: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteRewardRepo) ExistsForTask(ctx context.Context, taskID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM rewards WHERE task_id = ?`, taskID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking reward for task %s: %w", taskID, err)
	}
	return n > 0, nil
}

func (r *SQLiteRewardRepo) ListByUser(ctx context.Context, userID string) ([]domain.RewardEvent, error) {
	query := `SELECT id, user_id, task_id, reward_type, coins, created_at
		FROM rewards WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing rewards for %s: %w", userID, err)
	}
	defer rows.Close()

	var events []domain.RewardEvent
	for rows.Next() {
		var e domain.RewardEvent
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.TaskID, &e.RewardType, &e.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning reward row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			e.CreatedAt = ts
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
