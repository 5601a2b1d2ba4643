package coach

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
)

// rawTask mirrors the JSON object the prompts ask the model to emit.
// DurationDays stays raw because models emit it as a number, a quoted
// number, or occasionally a phrase.
type rawTask struct {
	TaskType             string          `json:"task_type"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	DurationDays         json.RawMessage `json:"duration_days"`
	Difficulty           string          `json:"difficulty"`
	Instructions         string          `json:"instructions"`
	CompletionCriteria   string          `json:"completion_criteria"`
	PersonalizationNotes string          `json:"personalization_notes"`
}

// ExtractTasks parses a model response into a validated task list.
// Individual malformed or out-of-schema objects are discarded rather than
// failing the batch. Returns nil (not an empty list) when fewer than
// minTasks tasks survive validation; a nil result counts as a failed
// attempt for the calling tier.
func ExtractTasks(raw string, riskLevel, minTasks int) []domain.Task {
	elems, err := llm.ExtractArray(raw)
	if err != nil {
		// Array-level parse failed; salvage individual objects.
		elems = llm.RecoverObjects(raw, "task_type")
	}
	if len(elems) == 0 {
		return nil
	}

	var tasks []domain.Task
	for _, elem := range elems {
		var rt rawTask
		if err := json.Unmarshal(elem, &rt); err != nil {
			continue
		}
		task, ok := validateTask(rt)
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}

	tasks = ensureProfessionalHelp(tasks, riskLevel)

	if len(tasks) < minTasks {
		return nil
	}
	return tasks
}

// validateTask enforces the task schema: required fields, enumerated
// type, clamped duration, normalized difficulty, capped text lengths.
func validateTask(rt rawTask) (domain.Task, bool) {
	taskType := domain.TaskType(strings.TrimSpace(rt.TaskType))
	if !domain.ValidTaskTypes[taskType] {
		return domain.Task{}, false
	}

	required := []string{rt.Title, rt.Description, rt.Difficulty, rt.Instructions, rt.CompletionCriteria}
	for _, f := range required {
		if strings.TrimSpace(f) == "" {
			return domain.Task{}, false
		}
	}
	if len(rt.DurationDays) == 0 {
		return domain.Task{}, false
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(rt.Difficulty)))
	if !domain.ValidDifficulties[difficulty] {
		difficulty = domain.DifficultyMedium
	}

	return domain.Task{
		Type:                 taskType,
		Title:                truncate(rt.Title, domain.MaxTitleLen),
		Description:          truncate(rt.Description, domain.MaxDescriptionLen),
		DurationDays:         coerceDuration(rt.DurationDays),
		Difficulty:           difficulty,
		Instructions:         truncate(rt.Instructions, domain.MaxInstructionLen),
		CompletionCriteria:   truncate(rt.CompletionCriteria, domain.MaxCriteriaLen),
		PersonalizationNotes: truncate(rt.PersonalizationNotes, domain.MaxNotesLen),
	}, true
}

// coerceDuration converts a raw duration value to an int clamped to
// [MinDurationDays, MaxDurationDays], defaulting when uninterpretable.
func coerceDuration(raw json.RawMessage) int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)

	n, err := strconv.Atoi(s)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			n = int(f)
		} else {
			return domain.DefaultDurationDays
		}
	}

	if n < domain.MinDurationDays {
		return domain.MinDurationDays
	}
	if n > domain.MaxDurationDays {
		return domain.MaxDurationDays
	}
	return n
}

// ensureProfessionalHelp prepends a synthesized professional_help task
// for high-risk users when the model omitted one.
func ensureProfessionalHelp(tasks []domain.Task, riskLevel int) []domain.Task {
	if riskLevel < 7 || len(tasks) == 0 || domain.HasProfessionalHelp(tasks) {
		return tasks
	}
	return append([]domain.Task{professionalHelpTask(riskLevel)}, tasks...)
}

// professionalHelpTask builds the mandatory safety task. Urgency language
// escalates at risk 8.
func professionalHelpTask(riskLevel int) domain.Task {
	urgency := "within 1-2 days"
	if riskLevel >= 8 {
		urgency = "immediately"
	}
	return domain.Task{
		Type:         domain.TaskProfessionalHelp,
		Title:        "Seek Professional Mental Health Support",
		Description:  "Contact a mental health professional " + urgency + " for assessment and support",
		DurationDays: 2,
		Difficulty:   domain.DifficultyMedium,
		Instructions: "Contact your healthcare provider, call a mental health helpline, or visit a mental health clinic " + urgency +
			". If in immediate crisis, call emergency services (911) or go to the nearest emergency room.",
		CompletionCriteria: "Make contact with a mental health professional or crisis support service",
	}
}

// truncate caps s at max bytes, backing up so a multi-byte rune is
// never split.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
