package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoren/wellspring/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a uniqueness constraint rejects a write.
var ErrDuplicate = errors.New("duplicate record")

type UserRepo interface {
	// Upsert stores the profile under id, creating the user on first
	// write. Coin balances survive profile updates.
	Upsert(ctx context.Context, id string, profile domain.Profile) error
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	// AddCoins increments both the spendable balance and the lifetime
	// earned total.
	AddCoins(ctx context.Context, id string, coins int) error
	Balance(ctx context.Context, id string) (coins int, totalEarned int, err error)
}

type TaskRepo interface {
	CreateBatch(ctx context.Context, tasks []domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByUser filters by status; an empty status returns all tasks.
	ListByUser(ctx context.Context, userID string, status domain.TaskStatus) ([]domain.Task, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) error
}

type ConversationRepo interface {
	Create(ctx context.Context, rec *domain.ConversationRecord) error
	// ListByUser returns the most recent records first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.ConversationRecord, error)
}

type RewardRepo interface {
	// Create fails with ErrDuplicate when the task already has a
	// reward, making awards idempotent per task.
	Create(ctx context.Context, e *domain.RewardEvent) error
	ExistsForTask(ctx context.Context, taskID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.RewardEvent, error)
}
