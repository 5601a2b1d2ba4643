package summary

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
)

// recentWindow bounds what counts as a recent completion in progress
// summaries.
const recentWindow = 7 * 24 * time.Hour

// Summarizer turns verbose model output into dashboard-sized bullet
// lists. Every method degrades to a deterministic fallback, so callers
// always receive displayable text.
type Summarizer struct {
	client llm.Client
	log    *zap.Logger
}

func NewSummarizer(client llm.Client, log *zap.Logger) *Summarizer {
	return &Summarizer{client: client, log: log}
}

// Assessment condenses a health assessment into 3-4 bullets.
func (s *Summarizer) Assessment(ctx context.Context, assessment string, riskLevel int, profile domain.Profile) string {
	if strings.TrimSpace(assessment) == "" {
		return fallbackAssessment(riskLevel, profile)
	}
	if out := s.summarize(ctx, KindAssessment, assessmentPrompt(assessment, riskLevel, profile)); out != "" {
		return out
	}
	return fallbackAssessment(riskLevel, profile)
}

// Tips condenses wellness tips into exactly 4 action bullets.
func (s *Summarizer) Tips(ctx context.Context, tips string, profile domain.Profile, question string) string {
	if strings.TrimSpace(tips) == "" {
		return fallbackTips(profile)
	}
	if out := s.summarize(ctx, KindTips, tipsPrompt(tips, profile, question)); out != "" {
		return out
	}
	return fallbackTips(profile)
}

// Chat condenses a chat reply into 2-3 bullets answering the question.
func (s *Summarizer) Chat(ctx context.Context, response, question string, profile domain.Profile) string {
	if strings.TrimSpace(response) == "" {
		return fallbackChat(question)
	}
	if out := s.summarize(ctx, KindChat, chatSummaryPrompt(response, question, profile)); out != "" {
		return out
	}
	return fallbackChat(question)
}

// Progress summarizes completed tasks into 3 encouraging bullets.
func (s *Summarizer) Progress(ctx context.Context, completed []domain.Task, profile domain.Profile) string {
	if len(completed) == 0 {
		return fallbackProgress()
	}

	recent := 0
	typeSet := map[string]struct{}{}
	for _, t := range completed {
		typeSet[strings.ReplaceAll(string(t.Type), "_", " ")] = struct{}{}
		if t.CompletedAt != nil && time.Since(*t.CompletedAt) <= recentWindow {
			recent++
		}
	}
	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}

	if out := s.summarize(ctx, KindProgress, progressPrompt(len(completed), recent, types, profile)); out != "" {
		return out
	}
	return fallbackProgress()
}

// KeyInsights extracts up to max short insights from long text, for
// dashboard chips. Returns a canned line when the text is too short or
// the model fails.
func (s *Summarizer) KeyInsights(ctx context.Context, text string, max int) []string {
	if len(text) < 50 {
		return []string{"No significant insights available"}
	}

	temp := 0.2
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: systemPrompt,
		UserPrompt:   insightsPrompt(text, max),
		Temperature:  &temp,
	})
	if err != nil {
		return []string{"Analysis completed successfully"}
	}

	var insights []string
	for _, part := range strings.Split(resp.Text, "|") {
		if part = strings.TrimSpace(part); part != "" {
			insights = append(insights, part)
		}
	}
	if len(insights) == 0 {
		return []string{"Key insights extracted from analysis"}
	}
	if len(insights) > max {
		insights = insights[:max]
	}
	return insights
}

func (s *Summarizer) summarize(ctx context.Context, kind Kind, prompt string) string {
	spec := kindSpecs[kind]
	temp := spec.temperature

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummarize,
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
		Temperature:  &temp,
	})
	if err != nil {
		s.log.Debug("summarization failed", zap.String("kind", string(kind)), zap.Error(err))
		return ""
	}

	bullets := FormatBullets(resp.Text, spec.maxBullets)
	if !ValidateBullets(bullets, spec.maxBullets) {
		s.log.Debug("summary failed validation", zap.String("kind", string(kind)), zap.Int("bullets", len(bullets)))
		return ""
	}
	return Render(bullets)
}
