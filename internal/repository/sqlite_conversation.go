package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/domain"
)

// SQLiteConversationRepo implements ConversationRepo using a SQLite database.
type SQLiteConversationRepo struct {
	db db.DBTX
}

// NewSQLiteConversationRepo creates a new SQLiteConversationRepo.
func NewSQLiteConversationRepo(conn db.DBTX) *SQLiteConversationRepo {
	return &SQLiteConversationRepo{db: conn}
}

func (r *SQLiteConversationRepo) Create(ctx context.Context, rec *domain.ConversationRecord) error {
	query := `INSERT INTO conversations (id, user_id, kind, user_message, response, risk_level, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		string(rec.Kind),
		rec.UserMessage,
		rec.Response,
		nullableIntToValue(rec.RiskLevel),
		rec.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting conversation %s: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteConversationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.ConversationRecord, error) {
	query := `SELECT id, user_id, kind, user_message, response, risk_level, created_at
		FROM conversations WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing conversations for %s: %w", userID, err)
	}
	defer rows.Close()

	var records []domain.ConversationRecord
	for rows.Next() {
		var rec domain.ConversationRecord
		var kind, createdAt string
		var riskLevel *int
		if err := rows.Scan(&rec.ID, &rec.UserID, &kind, &rec.UserMessage,
			&rec.Response, &riskLevel, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning conversation row: %w", err)
		}
		rec.Kind = domain.ConversationKind(kind)
		rec.RiskLevel = riskLevel
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
