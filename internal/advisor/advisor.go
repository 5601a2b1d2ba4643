// Package advisor produces the profile-level health assessment and
// quick wellness tips. Risk levels are always computed locally from the
// profile; the model only writes the narrative around them.
package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
	"github.com/jmoren/wellspring/internal/metrics"
	"github.com/jmoren/wellspring/internal/risk"
	"github.com/jmoren/wellspring/internal/summary"
)

const assessmentFallback = "• Unable to complete assessment at this time\n• Please try again later"

const tipsFallback = "• Stay hydrated throughout the day\n• Take short breaks every hour\n• Practice deep breathing exercises\n• Get 7-8 hours of sleep"

type Advisor struct {
	client llm.Client
	log    *zap.Logger
}

func NewAdvisor(client llm.Client, log *zap.Logger) *Advisor {
	return &Advisor{client: client, log: log}
}

// Analyze scores the profile and asks the model for a 4-bullet
// assessment. The risk level is deterministic and does not depend on
// model availability; only the assessment text degrades.
func (a *Advisor) Analyze(ctx context.Context, profile domain.Profile) (string, int) {
	level := risk.ComputeLevel(profile)
	band := domain.BandForLevel(level)
	metrics.ObserveRisk(level, string(band))

	a.log.Info("profile analyzed",
		zap.Int("risk_level", level),
		zap.String("band", string(band)))

	temp := 0.3
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:        llm.TaskAssess,
		UserPrompt:  analysisPrompt(profile),
		Temperature: &temp,
	})
	if err != nil {
		a.log.Warn("assessment generation failed", zap.Error(err))
		return assessmentFallback, level
	}

	bullets := summary.FormatBullets(resp.Text, 4)
	if len(bullets) == 0 {
		return assessmentFallback, level
	}
	return summary.Render(bullets), level
}

// Tips returns 4 short wellness tips, optionally answering a specific
// question.
func (a *Advisor) Tips(ctx context.Context, profile domain.Profile, question string) string {
	temp := 0.5
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:        llm.TaskAssess,
		UserPrompt:  tipsPrompt(profile, question),
		Temperature: &temp,
	})
	if err != nil {
		a.log.Warn("tips generation failed", zap.Error(err))
		return tipsFallback
	}

	bullets := summary.FormatBullets(resp.Text, 4)
	if len(bullets) == 0 {
		return tipsFallback
	}
	return summary.Render(bullets)
}
