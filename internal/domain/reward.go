package domain

import "time"

// RewardEvent is one coin grant, logged alongside the user's balance update.
type RewardEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TaskID     string    `json:"task_id"`
	RewardType string    `json:"reward_type"` // e.g. "task_completion_meditation"
	Coins      int       `json:"coins"`
	CreatedAt  time.Time `json:"created_at"`
}

// CompletionReport carries optional self-reported quality data submitted
// when a user marks a task done. It feeds the reward quality bonus.
type CompletionReport struct {
	QualityRating        int    `json:"quality_rating,omitempty"` // 1-5
	ExceededExpectations bool   `json:"exceeded_expectations,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

// RewardSummary aggregates a user's reward standing.
type RewardSummary struct {
	TotalCoins     int `json:"total_coins"`
	TotalEarned    int `json:"total_earned"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
}
