package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, user_id, task_type, title, description, duration_days,
	difficulty, instructions, completion_criteria, personalization_notes,
	status, created_at, completed_at`

func (r *SQLiteTaskRepo) CreateBatch(ctx context.Context, tasks []domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range tasks {
		t := &tasks[i]
		_, err := r.db.ExecContext(ctx, query,
			t.ID,
			t.UserID,
			string(t.Type),
			t.Title,
			t.Description,
			t.DurationDays,
			string(t.Difficulty),
			t.Instructions,
			t.CompletionCriteria,
			t.PersonalizationNotes,
			string(t.Status),
			t.CreatedAt.UTC().Format(time.RFC3339),
			nullableTimeToString(t.CompletedAt, time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting task %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task %s: %w", id, err)
	}
	return task, nil
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, status domain.TaskStatus) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for %s: %w", userID, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE tasks SET status = ?, completed_at = ?
		WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(domain.TaskStatusCompleted),
		at.UTC().Format(time.RFC3339),
		id,
		string(domain.TaskStatusPending),
	)
	if err != nil {
		return fmt.Errorf("completing task %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking completion of %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("pending task %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var taskType, difficulty, status, createdAt string
	var completedAt sql.NullString

	err := scan(
		&t.ID,
		&t.UserID,
		&taskType,
		&t.Title,
		&t.Description,
		&t.DurationDays,
		&difficulty,
		&t.Instructions,
		&t.CompletionCriteria,
		&t.PersonalizationNotes,
		&status,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Type = domain.TaskType(taskType)
	t.Difficulty = domain.Difficulty(difficulty)
	t.Status = domain.TaskStatus(status)
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	t.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	return &t, nil
}
