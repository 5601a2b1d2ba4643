package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskAssess    TaskType = "assess"
	TaskPlan      TaskType = "plan"
	TaskChat      TaskType = "chat"
	TaskSummarize TaskType = "summarize"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutMs   int     `yaml:"timeout_ms"` // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool                    `yaml:"enabled"`
	LogCalls   bool                    `yaml:"log_calls"`
	Endpoint   string                  `yaml:"endpoint"`
	Model      string                  `yaml:"model"`
	TimeoutMs  int                     `yaml:"timeout_ms"`
	MaxRetries int                     `yaml:"max_retries"`
	TopP       float64                 `yaml:"top_p"`
	Tasks      map[TaskType]TaskConfig `yaml:"tasks"`
}

// DefaultConfig returns a Config with sensible defaults.
// The LLM is disabled by default; every caller carries a deterministic
// fallback so the service stays usable without a model server.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "granite3.3:8b",
		TimeoutMs:  30000,
		MaxRetries: 0,
		TopP:       0.9,
		Tasks: map[TaskType]TaskConfig{
			TaskAssess:    {Temperature: 0.3, MaxTokens: 150, TimeoutMs: 30000},
			TaskPlan:      {Temperature: 0.5, MaxTokens: 2000, TimeoutMs: 90000},
			TaskChat:      {Temperature: 0.7, MaxTokens: 500, TimeoutMs: 30000},
			TaskSummarize: {Temperature: 0.3, MaxTokens: 200, TimeoutMs: 20000},
		},
	}
}

// ApplyEnv overlays environment variables onto c, falling back to the
// existing values for any unset variable.
func ApplyEnv(c *Config) {
	if v := os.Getenv("WELLSPRING_LLM_ENABLED"); v != "" {
		c.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WELLSPRING_LLM_LOG_CALLS"); v != "" {
		c.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WELLSPRING_LLM_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("WELLSPRING_LLM_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("WELLSPRING_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TimeoutMs = n
		}
	}
	if v := os.Getenv("WELLSPRING_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(c, TaskAssess, "WELLSPRING_LLM_ASSESS_TIMEOUT_MS")
	applyTaskTimeoutEnv(c, TaskPlan, "WELLSPRING_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(c, TaskChat, "WELLSPRING_LLM_CHAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(c, TaskSummarize, "WELLSPRING_LLM_SUMMARIZE_TIMEOUT_MS")
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
