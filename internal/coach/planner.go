package coach

import (
	"context"

	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
	"github.com/jmoren/wellspring/internal/metrics"
)

// Tier identifies a stage of the task generation cascade.
type Tier string

const (
	TierComprehensive Tier = "comprehensive"
	TierSimplified    Tier = "simplified"
	TierBasic         Tier = "basic"
	TierPreset        Tier = "preset"
)

// attemptsPerTier is the per-tier retry budget. Model errors and invalid
// output both consume attempts; only exhaustion moves the cascade down.
const attemptsPerTier = 3

// tierSpec describes one generative tier: its prompt, sampling
// temperature, and the minimum number of validated tasks it must yield.
type tierSpec struct {
	tier        Tier
	temperature float64
	minTasks    int
	prompt      func(profile domain.Profile, assessment string, riskLevel int) string
}

var generativeTiers = []tierSpec{
	{
		tier:        TierComprehensive,
		temperature: 0.5,
		minTasks:    3,
		prompt:      comprehensivePrompt,
	},
	{
		tier:        TierSimplified,
		temperature: 0.4,
		minTasks:    2,
		prompt: func(profile domain.Profile, _ string, riskLevel int) string {
			return simplifiedPrompt(profile, riskLevel)
		},
	},
	{
		tier:        TierBasic,
		temperature: 0.3,
		minTasks:    1,
		prompt: func(_ domain.Profile, _ string, riskLevel int) string {
			return basicPrompt(riskLevel)
		},
	},
}

// Planner produces wellness task plans through a degrading cascade of
// prompt tiers, falling back to curated presets when the model cannot
// produce a valid plan at any tier. AssignTasks never returns an empty
// plan.
type Planner struct {
	client llm.Client
	log    *zap.Logger
}

func NewPlanner(client llm.Client, log *zap.Logger) *Planner {
	return &Planner{client: client, log: log}
}

// AssignTasks walks the cascade from the richest prompt tier down. Each
// tier gets attemptsPerTier tries before the planner degrades to the
// next; the preset tier is terminal and cannot fail.
func (p *Planner) AssignTasks(ctx context.Context, profile domain.Profile, assessment string, riskLevel int) []domain.Task {
	for _, spec := range generativeTiers {
		if tasks := p.runTier(ctx, spec, profile, assessment, riskLevel); tasks != nil {
			return tasks
		}
	}

	p.log.Warn("task generation exhausted all tiers, using presets",
		zap.Int("risk_level", riskLevel))
	metrics.CascadeTier.WithLabelValues("plan", string(TierPreset), "success").Inc()
	return PresetTasks(riskLevel)
}

func (p *Planner) runTier(ctx context.Context, spec tierSpec, profile domain.Profile, assessment string, riskLevel int) []domain.Task {
	temp := spec.temperature
	prompt := spec.prompt(profile, assessment, riskLevel)

	for attempt := 1; attempt <= attemptsPerTier; attempt++ {
		resp, err := p.client.Generate(ctx, llm.GenerateRequest{
			Task:        llm.TaskPlan,
			UserPrompt:  prompt,
			Temperature: &temp,
		})
		if err != nil {
			p.log.Debug("task generation attempt failed",
				zap.String("tier", string(spec.tier)),
				zap.Int("attempt", attempt),
				zap.Error(err))
			continue
		}

		tasks := ExtractTasks(resp.Text, riskLevel, spec.minTasks)
		if tasks == nil {
			p.log.Debug("task generation produced no valid plan",
				zap.String("tier", string(spec.tier)),
				zap.Int("attempt", attempt))
			continue
		}

		p.log.Info("task plan generated",
			zap.String("tier", string(spec.tier)),
			zap.Int("attempt", attempt),
			zap.Int("tasks", len(tasks)),
			zap.Int("risk_level", riskLevel))
		metrics.CascadeTier.WithLabelValues("plan", string(spec.tier), "success").Inc()
		return tasks
	}

	metrics.CascadeTier.WithLabelValues("plan", string(spec.tier), "exhausted").Inc()
	return nil
}
