package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
)

type stubClient struct {
	text     string
	err      error
	lastReq  llm.GenerateRequest
	reqCount int
}

func (c *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.lastReq = req
	c.reqCount++
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.text}, nil
}

func (c *stubClient) Available(context.Context) bool { return true }

func TestFormatBullets_StripsGlyphsAndPunctuates(t *testing.T) {
	raw := "• Sleep is trending well\n- Stress needs daily attention,\n* Keep your exercise routine going"

	bullets := FormatBullets(raw, 4)

	require.Len(t, bullets, 3)
	assert.Equal(t, "Sleep is trending well.", bullets[0])
	assert.Equal(t, "Stress needs daily attention.", bullets[1])
	assert.Equal(t, "Keep your exercise routine going.", bullets[2])
}

func TestFormatBullets_SkipsFillerAndShortLines(t *testing.T) {
	raw := "Here are your bullet points:\n• Drink more water during the day\nok\n• Take short breaks from screens"

	bullets := FormatBullets(raw, 4)

	require.Len(t, bullets, 2)
	assert.Equal(t, "Drink more water during the day.", bullets[0])
}

func TestFormatBullets_KeepsUnmarkedContentLines(t *testing.T) {
	raw := "Aim for a consistent wake-up time every day."

	bullets := FormatBullets(raw, 4)

	require.Len(t, bullets, 1)
	assert.Equal(t, "Aim for a consistent wake-up time every day.", bullets[0])
}

func TestFormatBullets_CapsAtMax(t *testing.T) {
	raw := "• one two three\n• four five six\n• seven eight nine\n• ten eleven twelve\n• extra bullet here"

	assert.Len(t, FormatBullets(raw, 4), 4)
	assert.Len(t, FormatBullets(raw, 3), 3)
}

func TestValidateBullets(t *testing.T) {
	good := []string{"Sleep is trending well.", "Stress needs daily attention."}
	assert.True(t, ValidateBullets(good, 4))

	assert.False(t, ValidateBullets([]string{"Only one bullet here."}, 4))
	assert.False(t, ValidateBullets([]string{"Too short.", "Sleep is trending well."}, 4))

	five := []string{"a b c.", "a b c.", "a b c.", "a b c.", "a b c."}
	assert.False(t, ValidateBullets(five, 4))
}

func TestSummarizer_AssessmentUsesModelOutput(t *testing.T) {
	client := &stubClient{text: "• Your sleep habits are solid\n• Stress is the main concern right now\n• Try a short daily wind-down routine"}
	s := NewSummarizer(client, zap.NewNop())

	out := s.Assessment(context.Background(), "long assessment text", 4, domain.Profile{Age: 30})

	assert.Contains(t, out, "• Your sleep habits are solid.")
	assert.Equal(t, llm.TaskSummarize, client.lastReq.Task)
	assert.Equal(t, 0.3, *client.lastReq.Temperature)
}

func TestSummarizer_AssessmentFallsBackOnError(t *testing.T) {
	client := &stubClient{err: llm.ErrUnavailable}
	s := NewSummarizer(client, zap.NewNop())

	out := s.Assessment(context.Background(), "text", 2, domain.Profile{})

	assert.Contains(t, out, "positive patterns")
}

func TestSummarizer_AssessmentFallsBackOnInvalidOutput(t *testing.T) {
	client := &stubClient{text: "sure"}
	s := NewSummarizer(client, zap.NewNop())

	out := s.Assessment(context.Background(), "text", 8, domain.Profile{SleepHours: 5, StressLevel: domain.StressHigh})

	assert.Contains(t, out, "immediate attention")
	assert.Contains(t, out, "Poor sleep quality")
	assert.Contains(t, out, "professional stress management")
}

func TestSummarizer_EmptyInputSkipsModel(t *testing.T) {
	client := &stubClient{text: "should not be called"}
	s := NewSummarizer(client, zap.NewNop())

	out := s.Assessment(context.Background(), "   ", 5, domain.Profile{SleepHours: 8})

	assert.Equal(t, 0, client.reqCount)
	assert.Contains(t, out, "need attention")
}

func TestFallbackTips_ProfileBranches(t *testing.T) {
	young := fallbackTips(domain.Profile{SleepHours: 6, StressLevel: domain.StressHigh, PhysicalActivityHours: 1, Age: 25})
	assert.Contains(t, young, "bedtime routine")
	assert.Contains(t, young, "deep breathing")
	assert.Contains(t, young, "150 minutes")
	assert.Contains(t, young, "long-term wellness")

	older := fallbackTips(domain.Profile{SleepHours: 8, StressLevel: domain.StressLow, PhysicalActivityHours: 5, Age: 50})
	assert.Contains(t, older, "bone health")
}

func TestFallbackChat_TopicKeyed(t *testing.T) {
	assert.Contains(t, fallbackChat("I can't sleep"), "7-9 hours")
	assert.Contains(t, fallbackChat("so much anxiety"), "deep breathing")
	assert.Contains(t, fallbackChat("best workout?"), "moderate activity")
	assert.Contains(t, fallbackChat("what should I eat"), "vegetables")
	assert.Contains(t, fallbackChat("anything else"), "wellness routines")
}

func TestSummarizer_ProgressCountsRecentCompletions(t *testing.T) {
	client := &stubClient{text: "• You completed several wellness tasks\n• Your consistency is paying off\n• Keep the streak going this week"}
	s := NewSummarizer(client, zap.NewNop())

	recent := time.Now().Add(-24 * time.Hour)
	old := time.Now().Add(-30 * 24 * time.Hour)
	tasks := []domain.Task{
		{Type: domain.TaskMeditation, CompletedAt: &recent},
		{Type: domain.TaskExercise, CompletedAt: &old},
	}

	out := s.Progress(context.Background(), tasks, domain.Profile{Age: 30})

	assert.Contains(t, out, "consistency")
	assert.Contains(t, client.lastReq.UserPrompt, "COMPLETED TASKS: 2 total")
	assert.Contains(t, client.lastReq.UserPrompt, "RECENT COMPLETIONS: 1 in last 7 days")
}

func TestSummarizer_ProgressEmptyUsesFallback(t *testing.T) {
	client := &stubClient{text: "ignored"}
	s := NewSummarizer(client, zap.NewNop())

	out := s.Progress(context.Background(), nil, domain.Profile{})

	assert.Equal(t, 0, client.reqCount)
	assert.Contains(t, out, "steady progress")
}

func TestSummarizer_KeyInsights(t *testing.T) {
	client := &stubClient{text: "Sleep quality needs improvement| Stress levels are manageable |Exercise routine shows good progress"}
	s := NewSummarizer(client, zap.NewNop())

	long := make([]byte, 80)
	for i := range long {
		long[i] = 'x'
	}
	insights := s.KeyInsights(context.Background(), string(long), 3)

	require.Len(t, insights, 3)
	assert.Equal(t, "Stress levels are manageable", insights[1])

	assert.Equal(t, []string{"No significant insights available"}, s.KeyInsights(context.Background(), "short", 3))
}
