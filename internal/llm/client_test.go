package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 2000
	for task, tc := range cfg.Tasks {
		tc.TimeoutMs = 2000
		cfg.Tasks[task] = tc
	}
	return cfg
}

func TestOllamaClient_Generate(t *testing.T) {
	var gotReq ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(ollamaResponse{Model: "granite3.3:8b", Response: "hello"})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	temp := 0.4
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:        TaskChat,
		UserPrompt:  "hi",
		Temperature: &temp,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
	assert.Equal(t, 0.4, gotReq.Options.Temperature)
	assert.Contains(t, gotReq.Options.Stop, "Human:")
}

func TestOllamaClient_EmptyBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Response: "   "})
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOllamaClient_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskPlan, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_ConnectionRefused(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	client := NewOllamaClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewOllamaClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

func TestDisabledClient(t *testing.T) {
	client := NewDisabledClient()

	assert.False(t, client.Available(context.Background()))
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskChat, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 90000, cfg.TaskTimeout(TaskPlan))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WELLSPRING_LLM_ENABLED", "true")
	t.Setenv("WELLSPRING_LLM_MODEL", "llama3.2")
	t.Setenv("WELLSPRING_LLM_PLAN_TIMEOUT_MS", "1234")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskPlan))
}
