package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database. Profiles
// are stored as a JSON document; coin balances are first-class columns
// so they can be updated atomically.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, id string, profile domain.Profile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	query := `INSERT INTO users (id, profile_json, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET profile_json = excluded.profile_json,
			updated_at = excluded.updated_at`
	now := nowUTC()
	if _, err := r.db.ExecContext(ctx, query, id, string(blob), now, now); err != nil {
		return fmt.Errorf("upserting user %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	var blob string
	err := r.db.QueryRowContext(ctx, `SELECT profile_json FROM users WHERE id = ?`, id).Scan(&blob)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return domain.Profile{}, fmt.Errorf("scanning user %s: %w", id, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(blob), &profile); err != nil {
		return domain.Profile{}, fmt.Errorf("decoding profile for %s: %w", id, err)
	}
	return profile, nil
}

func (r *SQLiteUserRepo) AddCoins(ctx context.Context, id string, coins int) error {
	query := `UPDATE users SET coins = coins + ?, total_coins_earned = total_coins_earned + ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, coins, coins, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("adding coins for %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking coin update for %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteUserRepo) Balance(ctx context.Context, id string) (int, int, error) {
	var coins, earned int
	err := r.db.QueryRowContext(ctx,
		`SELECT coins, total_coins_earned FROM users WHERE id = ?`, id).Scan(&coins, &earned)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return 0, 0, fmt.Errorf("scanning balance for %s: %w", id, err)
	}
	return coins, earned, nil
}
