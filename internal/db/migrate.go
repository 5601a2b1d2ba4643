package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema statements in order. Every statement is
// idempotent (CREATE ... IF NOT EXISTS), so re-running against an
// existing database is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		profile_json TEXT NOT NULL,
		coins INTEGER NOT NULL DEFAULT 0,
		total_coins_earned INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_days INTEGER NOT NULL DEFAULT 7,
		difficulty TEXT NOT NULL DEFAULT 'medium',
		instructions TEXT NOT NULL DEFAULT '',
		completion_criteria TEXT NOT NULL DEFAULT '',
		personalization_notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'completed')),
		created_at TEXT NOT NULL,
		completed_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS conversations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind TEXT NOT NULL CHECK (kind IN ('analysis', 'chat', 'tips')),
		user_message TEXT NOT NULL DEFAULT '',
		response TEXT NOT NULL,
		risk_level INTEGER,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS rewards (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id TEXT NOT NULL UNIQUE REFERENCES tasks(id) ON DELETE CASCADE,
		reward_type TEXT NOT NULL,
		coins INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_rewards_user ON rewards(user_id)`,
}
