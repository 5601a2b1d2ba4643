package chat

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jmoren/wellspring/internal/domain"
	"github.com/jmoren/wellspring/internal/llm"
)

type scriptedClient struct {
	script   []scriptStep
	requests []llm.GenerateRequest
}

type scriptStep struct {
	text string
	err  error
}

func (c *scriptedClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.requests = append(c.requests, req)
	i := len(c.requests) - 1
	if i >= len(c.script) {
		i = len(c.script) - 1
	}
	step := c.script[i]
	if step.err != nil {
		return nil, step.err
	}
	return &llm.GenerateResponse{Text: step.text}, nil
}

func (c *scriptedClient) Available(context.Context) bool { return true }

func newTestSession(client llm.Client) *Session {
	return NewSession(client, NewCleaner(DefaultCleanerConfig()), zap.NewNop())
}

func TestSession_DirectTierSucceeds(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{text: "Try stepping away from your desk for five minutes."},
	}}
	s := newTestSession(client)

	out := s.Respond(context.Background(), "I feel overwhelmed at work", nil, "")

	assert.Equal(t, "Try stepping away from your desk for five minutes.", out)
	require.Len(t, client.requests, 1)
	assert.Equal(t, 0.7, *client.requests[0].Temperature)
	assert.Equal(t, llm.TaskChat, client.requests[0].Task)
}

func TestSession_DegradesThroughTiers(t *testing.T) {
	// Direct tier errors out three times, simple tier returns usable
	// text on its first attempt at temperature 0.6.
	client := &scriptedClient{script: []scriptStep{
		{err: llm.ErrTimeout},
		{err: llm.ErrTimeout},
		{err: llm.ErrTimeout},
		{text: "Take a slow breath and name what you're feeling."},
	}}
	s := newTestSession(client)

	out := s.Respond(context.Background(), "anxious", nil, "")

	assert.Equal(t, "Take a slow breath and name what you're feeling.", out)
	require.Len(t, client.requests, 4)
	assert.Equal(t, 0.6, *client.requests[3].Temperature)
}

func TestSession_FallbackWhenAllTiersFail(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{{err: llm.ErrUnavailable}}}
	s := newTestSession(client)

	out := s.Respond(context.Background(), "hello", nil, "")

	assert.Equal(t, FallbackResponse, out)
	assert.Len(t, client.requests, 9)
}

func TestSession_UncleanableOutputConsumesAttempts(t *testing.T) {
	// Pure meta-commentary with no salvageable line fails cleaning at
	// every tier.
	client := &scriptedClient{script: []scriptStep{
		{text: "Okay, the user needs sleep advice. Let me analyze."},
	}}
	s := newTestSession(client)

	out := s.Respond(context.Background(), "help me sleep", nil, "")

	assert.Equal(t, FallbackResponse, out)
	assert.Len(t, client.requests, 9)
}

func TestSession_HistoryRecordsBothSides(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{text: "You could try a wind-down routine tonight."},
	}}
	s := newTestSession(client)

	s.Respond(context.Background(), "sleep tips?", nil, "")

	turns := s.History().Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, RoleUser, turns[0].Role)
	assert.Equal(t, "sleep tips?", turns[0].Content)
	assert.Equal(t, RoleAssistant, turns[1].Role)
}

func TestSession_FallbackIsRecordedInHistory(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{{err: llm.ErrUnavailable}}}
	s := newTestSession(client)

	s.Respond(context.Background(), "hello", nil, "")

	last, ok := s.History().Last()
	require.True(t, ok)
	assert.Equal(t, FallbackResponse, last.Content)
}

func TestSession_ProfileAppearsInPrompt(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{text: "Your workload sounds heavy; start with one small boundary."},
	}}
	s := newTestSession(client)
	profile := &domain.Profile{StressLevel: domain.StressHigh, WorkHours: 60}

	s.Respond(context.Background(), "work stress", profile, "")

	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "Stress Level: High")
	assert.Contains(t, client.requests[0].UserPrompt, "Work: 60 hours/week")
}

func TestSession_AdviceThreadsProfileIntoRequest(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{text: "Try trading one late shift for an earlier one this week."},
	}}
	s := newTestSession(client)
	profile := &domain.Profile{Occupation: "Nurse", StressLevel: domain.StressHigh}

	out := s.Advice(context.Background(), "burnout", profile)

	assert.Equal(t, "Try trading one late shift for an earlier one this week.", out)
	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "wellness advice about burnout")
	assert.Contains(t, client.requests[0].UserPrompt, "Occupation: Nurse")
}

func TestSession_SupportFramesConcern(t *testing.T) {
	client := &scriptedClient{script: []scriptStep{
		{text: "That sounds hard; start by talking it through with someone you trust."},
	}}
	s := newTestSession(client)

	s.Support(context.Background(), "losing my job", nil)

	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "I'm concerned about losing my job")

	turns := s.History().Turns()
	require.Len(t, turns, 2)
	assert.Contains(t, turns[0].Content, "losing my job")
}

func TestHistory_BoundedAtCapacity(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 30; i++ {
		h.Append(RoleUser, fmt.Sprintf("message %d", i))
	}

	assert.Equal(t, historyCap, h.Len())
	turns := h.Turns()
	assert.Equal(t, "message 10", turns[0].Content)
	assert.Equal(t, "message 29", turns[len(turns)-1].Content)
}

func TestHistory_PromptContext(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, "No previous conversation.", h.PromptContext())

	for i := 0; i < 8; i++ {
		h.Append(RoleUser, fmt.Sprintf("q%d", i))
	}
	ctx := h.PromptContext()
	assert.NotContains(t, ctx, "q1")
	assert.Contains(t, ctx, "User: q7")
}

func TestHistory_TruncatesLongTurnsInContext(t *testing.T) {
	h := NewHistory()
	long := strings.Repeat("abcde", 40)
	h.Append(RoleUser, long)

	ctx := h.PromptContext()
	assert.Contains(t, ctx, "...")
	assert.Less(t, len(ctx), len(long))
}

func TestHistory_ContextTruncationKeepsValidUTF8(t *testing.T) {
	h := NewHistory()
	// A multi-byte rune straddles the snippet cap.
	h.Append(RoleUser, "a"+strings.Repeat("情報", 60))

	assert.True(t, utf8.ValidString(h.PromptContext()))
}

func TestHistory_ClearEmptiesBuffer(t *testing.T) {
	h := NewHistory()
	h.Append(RoleUser, "hello")
	h.Append(RoleAssistant, "hi there")

	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "No previous conversation.", h.PromptContext())
}

func TestQuickReplies_KeyedOnTopic(t *testing.T) {
	assert.Contains(t, QuickReplies("I'm so stressed out")[0], "stress")
	assert.Contains(t, QuickReplies("can't sleep lately")[0], "sleep")
	assert.Contains(t, QuickReplies("feeling down today")[0], "support")
	assert.Len(t, QuickReplies("what's the weather"), 3)
}
