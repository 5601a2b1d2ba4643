package domain

import "time"

// Field length caps applied during task validation.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 300
	MaxInstructionLen = 1000
	MaxCriteriaLen    = 200
	MaxNotesLen       = 200

	MinDurationDays     = 1
	MaxDurationDays     = 30
	DefaultDurationDays = 7
)

// Task is one wellness assignment for a user. Tasks are produced by the
// generation cascade (or a static preset) and persisted with pending
// status until the user reports completion.
type Task struct {
	ID                   string     `json:"task_id,omitempty"`
	UserID               string     `json:"-"`
	Type                 TaskType   `json:"task_type"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	DurationDays         int        `json:"duration_days"`
	Difficulty           Difficulty `json:"difficulty"`
	Instructions         string     `json:"instructions"`
	CompletionCriteria   string     `json:"completion_criteria"`
	PersonalizationNotes string     `json:"personalization_notes,omitempty"`
	Status               TaskStatus `json:"status,omitempty"`
	CreatedAt            time.Time  `json:"created_at,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

// HasProfessionalHelp reports whether any task in the batch is a
// professional_help task.
func HasProfessionalHelp(tasks []Task) bool {
	for _, t := range tasks {
		if t.Type == TaskProfessionalHelp {
			return true
		}
	}
	return false
}
