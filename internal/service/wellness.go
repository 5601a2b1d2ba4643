// Package service wires the analysis, planning, chat, and reward
// components into user-facing operations backed by persistence.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/advisor"
	"github.com/jmoren/wellspring/internal/chat"
	"github.com/jmoren/wellspring/internal/coach"
	"github.com/jmoren/wellspring/internal/db"
	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
	"github.com/jmoren/wellspring/internal/metrics"
	"github.com/jmoren/wellspring/internal/repository"
	"github.com/jmoren/wellspring/internal/rewards"
	"github.com/jmoren/wellspring/internal/summary"
)

// TaskGenerationThreshold is the minimum risk level at which an
// assessment also produces a task plan. Below it the user only receives
// the assessment and tips.
const TaskGenerationThreshold = 4

// AssessResult is the outcome of a full profile assessment.
type AssessResult struct {
	Assessment string        `json:"assessment"`
	Summary    string        `json:"summary"`
	RiskLevel  int           `json:"risk_level"`
	RiskBand   string        `json:"risk_band"`
	Tasks      []domain.Task `json:"tasks,omitempty"`
}

// ChatResult is a chat reply with optional dashboard summary.
type ChatResult struct {
	Response     string   `json:"response"`
	Summary      string   `json:"summary"`
	QuickReplies []string `json:"quick_replies"`
}

// WellnessService coordinates the full coaching flow for all users.
type WellnessService struct {
	users   repository.UserRepo
	tasks   repository.TaskRepo
	convs   repository.ConversationRepo
	rewards repository.RewardRepo
	uow     db.UnitOfWork

	advisor    *advisor.Advisor
	planner    *coach.Planner
	summarizer *summary.Summarizer
	client     llm.Client
	log        *zap.Logger

	mu       sync.Mutex
	sessions map[string]*chat.Session
}

// Deps bundles the service's collaborators.
type Deps struct {
	Users      repository.UserRepo
	Tasks      repository.TaskRepo
	Convs      repository.ConversationRepo
	Rewards    repository.RewardRepo
	UoW        db.UnitOfWork
	Advisor    *advisor.Advisor
	Planner    *coach.Planner
	Summarizer *summary.Summarizer
	Client     llm.Client
	Log        *zap.Logger
}

func NewWellnessService(d Deps) *WellnessService {
	return &WellnessService{
		users:      d.Users,
		tasks:      d.Tasks,
		convs:      d.Convs,
		rewards:    d.Rewards,
		uow:        d.UoW,
		advisor:    d.Advisor,
		planner:    d.Planner,
		summarizer: d.Summarizer,
		client:     d.Client,
		log:        d.Log,
		sessions:   make(map[string]*chat.Session),
	}
}

// UpsertProfile stores or replaces the user's lifestyle profile.
func (s *WellnessService) UpsertProfile(ctx context.Context, userID string, profile domain.Profile) error {
	return s.users.Upsert(ctx, userID, profile)
}

// Profile returns the stored profile.
func (s *WellnessService) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	return s.users.GetProfile(ctx, userID)
}

// Assess runs the full assessment flow: local risk scoring, narrative
// assessment, dashboard summary, and, above the risk threshold, a task
// plan. The assessment is recorded as a conversation; generated tasks
// are persisted pending.
func (s *WellnessService) Assess(ctx context.Context, userID string) (*AssessResult, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	assessment, level := s.advisor.Analyze(ctx, profile)
	summaryText := s.summarizer.Assessment(ctx, assessment, level, profile)

	result := &AssessResult{
		Assessment: assessment,
		Summary:    summaryText,
		RiskLevel:  level,
		RiskBand:   string(domain.BandForLevel(level)),
	}

	if level >= TaskGenerationThreshold {
		tasks := s.planner.AssignTasks(ctx, profile, assessment, level)
		now := time.Now().UTC()
		for i := range tasks {
			tasks[i].ID = uuid.NewString()
			tasks[i].UserID = userID
			tasks[i].Status = domain.TaskStatusPending
			tasks[i].CreatedAt = now
		}
		if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
			return nil, fmt.Errorf("persisting task plan: %w", err)
		}
		result.Tasks = tasks
	}

	rec := domain.ConversationRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      domain.ConversationAnalysis,
		Response:  assessment,
		RiskLevel: &level,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.convs.Create(ctx, &rec); err != nil {
		s.log.Warn("recording assessment failed", zap.Error(err))
	}

	return result, nil
}

// Chat answers a free-form message within the user's ongoing session
// and records the exchange.
func (s *WellnessService) Chat(ctx context.Context, userID, message string) (*ChatResult, error) {
	return s.converse(ctx, userID, message, func(session *chat.Session, profile *domain.Profile) string {
		return session.Respond(ctx, message, profile, "")
	})
}

// Advice requests wellness guidance on a topic within the user's
// session; the exchange is recorded like a chat message.
func (s *WellnessService) Advice(ctx context.Context, userID, topic string) (*ChatResult, error) {
	return s.converse(ctx, userID, topic, func(session *chat.Session, profile *domain.Profile) string {
		return session.Advice(ctx, topic, profile)
	})
}

// Support frames a concern as a request for emotional support within
// the user's session.
func (s *WellnessService) Support(ctx context.Context, userID, concern string) (*ChatResult, error) {
	return s.converse(ctx, userID, concern, func(session *chat.Session, profile *domain.Profile) string {
		return session.Support(ctx, concern, profile)
	})
}

// ResetChat clears the user's conversation buffer so the next message
// starts from a blank context.
func (s *WellnessService) ResetChat(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		session.History().Clear()
	}
}

// converse runs one session exchange: optional profile lookup, response
// generation, dashboard summary, and conversation persistence.
func (s *WellnessService) converse(ctx context.Context, userID, userMessage string, respond func(*chat.Session, *domain.Profile) string) (*ChatResult, error) {
	var profilePtr *domain.Profile
	profile, err := s.users.GetProfile(ctx, userID)
	if err == nil {
		profilePtr = &profile
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	response := respond(s.session(userID), profilePtr)
	summaryText := s.summarizer.Chat(ctx, response, userMessage, profile)

	rec := domain.ConversationRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        domain.ConversationChat,
		UserMessage: userMessage,
		Response:    response,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.convs.Create(ctx, &rec); err != nil {
		s.log.Warn("recording chat failed", zap.Error(err))
	}

	return &ChatResult{
		Response:     response,
		Summary:      summaryText,
		QuickReplies: chat.QuickReplies(userMessage),
	}, nil
}

// Tips produces 4 short wellness tips, optionally answering a question,
// and records them.
func (s *WellnessService) Tips(ctx context.Context, userID, question string) (string, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	tips := s.advisor.Tips(ctx, profile, question)
	tips = s.summarizer.Tips(ctx, tips, profile, question)

	rec := domain.ConversationRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        domain.ConversationTips,
		UserMessage: question,
		Response:    tips,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.convs.Create(ctx, &rec); err != nil {
		s.log.Warn("recording tips failed", zap.Error(err))
	}
	return tips, nil
}

// Tasks lists the user's tasks, optionally filtered by status.
func (s *WellnessService) Tasks(ctx context.Context, userID string, status domain.TaskStatus) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID, status)
}

// CompleteTask marks a pending task completed and awards coins exactly
// once per task. Completing an already-completed task returns zero coins
// without error. The status flip, reward record, and balance update
// commit atomically.
func (s *WellnessService) CompleteTask(ctx context.Context, userID, taskID string, report *domain.CompletionReport) (int, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if task.UserID != userID {
		return 0, fmt.Errorf("task %s: %w", taskID, repository.ErrNotFound)
	}
	if task.Status == domain.TaskStatusCompleted {
		return 0, nil
	}

	coins := rewards.Coins(task.Type, task.Difficulty, report)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txRewards := repository.NewSQLiteRewardRepo(tx)
		txUsers := repository.NewSQLiteUserRepo(tx)

		if err := txTasks.MarkCompleted(ctx, taskID, time.Now()); err != nil {
			return err
		}
		event := domain.RewardEvent{
			ID:         uuid.NewString(),
			UserID:     userID,
			TaskID:     taskID,
			RewardType: rewards.RewardType(task.Type),
			Coins:      coins,
			CreatedAt:  time.Now().UTC(),
		}
		if err := txRewards.Create(ctx, &event); err != nil {
			return err
		}
		return txUsers.AddCoins(ctx, userID, coins)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) || errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	metrics.CoinsAwarded.WithLabelValues(rewards.RewardType(task.Type)).Add(float64(coins))
	s.log.Info("task completed",
		zap.String("task_id", taskID),
		zap.String("task_type", string(task.Type)),
		zap.Int("coins", coins))
	return coins, nil
}

// RewardSummary aggregates the user's balances and task counts.
func (s *WellnessService) RewardSummary(ctx context.Context, userID string) (*domain.RewardSummary, error) {
	coins, earned, err := s.users.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.tasks.ListByUser(ctx, userID, domain.TaskStatusCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.tasks.ListByUser(ctx, userID, domain.TaskStatusPending)
	if err != nil {
		return nil, err
	}
	return &domain.RewardSummary{
		TotalCoins:     coins,
		TotalEarned:    earned,
		CompletedTasks: len(completed),
		PendingTasks:   len(pending),
	}, nil
}

// Rewards lists the user's coin grants, most recent first.
func (s *WellnessService) Rewards(ctx context.Context, userID string) ([]domain.RewardEvent, error) {
	return s.rewards.ListByUser(ctx, userID)
}

// Progress summarizes the user's completed tasks for the dashboard.
func (s *WellnessService) Progress(ctx context.Context, userID string) (string, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	completed, err := s.tasks.ListByUser(ctx, userID, domain.TaskStatusCompleted)
	if err != nil {
		return "", err
	}
	return s.summarizer.Progress(ctx, completed, profile), nil
}

// History lists the user's recorded conversations, most recent first.
func (s *WellnessService) History(ctx context.Context, userID string, limit int) ([]domain.ConversationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.convs.ListByUser(ctx, userID, limit)
}

// Ready reports whether the language model endpoint is reachable.
func (s *WellnessService) Ready(ctx context.Context) bool {
	return s.client.Available(ctx)
}

func (s *WellnessService) session(userID string) *chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		session = chat.NewSession(s.client, chat.NewCleaner(chat.DefaultCleanerConfig()), s.log)
		s.sessions[userID] = session
	}
	return session
}
