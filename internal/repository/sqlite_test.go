package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/testutil"
)

func seedUser(t *testing.T, users *SQLiteUserRepo, id string) {
	t.Helper()
	require.NoError(t, users.Upsert(context.Background(), id, domain.Profile{
		Age:         30,
		StressLevel: domain.StressMedium,
		SleepHours:  7,
	}))
}

func newTask(userID string, taskType domain.TaskType) domain.Task {
	return domain.Task{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Type:               taskType,
		Title:              "Title",
		Description:        "Description",
		DurationDays:       7,
		Difficulty:         domain.DifficultyEasy,
		Instructions:       "Instructions",
		CompletionCriteria: "Criteria",
		Status:             domain.TaskStatusPending,
		CreatedAt:          time.Now().UTC(),
	}
}

func TestUserRepo_UpsertAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	seedUser(t, users, "u1")

	profile, err := users.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, domain.StressMedium, profile.StressLevel)

	// Update overwrites the profile but keeps balances.
	require.NoError(t, users.AddCoins(ctx, "u1", 15))
	require.NoError(t, users.Upsert(ctx, "u1", domain.Profile{Age: 31}))

	profile, err = users.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 31, profile.Age)

	coins, earned, err := users.Balance(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 15, coins)
	assert.Equal(t, 15, earned)
}

func TestUserRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)

	_, err := users.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = users.AddCoins(context.Background(), "missing", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_CreateListComplete(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	tasks := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	seedUser(t, users, "u1")

	t1 := newTask("u1", domain.TaskMeditation)
	t2 := newTask("u1", domain.TaskExercise)
	require.NoError(t, tasks.CreateBatch(ctx, []domain.Task{t1, t2}))

	pending, err := tasks.ListByUser(ctx, "u1", domain.TaskStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, tasks.MarkCompleted(ctx, t1.ID, time.Now()))

	got, err := tasks.GetByID(ctx, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)

	completed, err := tasks.ListByUser(ctx, "u1", domain.TaskStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, t1.ID, completed[0].ID)

	all, err := tasks.ListByUser(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskRepo_MarkCompletedTwiceFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	tasks := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	seedUser(t, users, "u1")
	task := newTask("u1", domain.TaskJournaling)
	require.NoError(t, tasks.CreateBatch(ctx, []domain.Task{task}))

	require.NoError(t, tasks.MarkCompleted(ctx, task.ID, time.Now()))
	assert.ErrorIs(t, tasks.MarkCompleted(ctx, task.ID, time.Now()), ErrNotFound)
}

func TestConversationRepo_CreateAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	convs := NewSQLiteConversationRepo(database)
	ctx := context.Background()

	seedUser(t, users, "u1")

	risk := 4
	for i, kind := range []domain.ConversationKind{domain.ConversationAnalysis, domain.ConversationChat} {
		rec := domain.ConversationRecord{
			ID:          uuid.NewString(),
			UserID:      "u1",
			Kind:        kind,
			UserMessage: "hello",
			Response:    "response",
			CreatedAt:   time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if kind == domain.ConversationAnalysis {
			rec.RiskLevel = &risk
		}
		require.NoError(t, convs.Create(ctx, &rec))
	}

	records, err := convs.ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Most recent first.
	assert.Equal(t, domain.ConversationChat, records[0].Kind)
	assert.Nil(t, records[0].RiskLevel)
	require.NotNil(t, records[1].RiskLevel)
	assert.Equal(t, 4, *records[1].RiskLevel)

	limited, err := convs.ListByUser(ctx, "u1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRewardRepo_DuplicatePerTask(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	tasks := NewSQLiteTaskRepo(database)
	rewardsRepo := NewSQLiteRewardRepo(database)
	ctx := context.Background()

	seedUser(t, users, "u1")
	task := newTask("u1", domain.TaskMeditation)
	require.NoError(t, tasks.CreateBatch(ctx, []domain.Task{task}))

	event := domain.RewardEvent{
		ID:         uuid.NewString(),
		UserID:     "u1",
		TaskID:     task.ID,
		RewardType: "task_completion_meditation",
		Coins:      15,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, rewardsRepo.Create(ctx, &event))

	exists, err := rewardsRepo.ExistsForTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	dup := event
	dup.ID = uuid.NewString()
	assert.ErrorIs(t, rewardsRepo.Create(ctx, &dup), ErrDuplicate)

	events, err := rewardsRepo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 15, events[0].Coins)
}
