package metrics

import (
	"time"

	"github.com/jmoren/wellspring/internal/llm"
)

// PromObserver bridges LLM call events into the Prometheus collectors.
type PromObserver struct{}

func (PromObserver) OnCallComplete(event llm.CallEvent) {
	outcome := "success"
	if !event.Success {
		outcome = event.ErrorCode
		if outcome == "" {
			outcome = "error"
		}
	}
	LLMCalls.WithLabelValues(string(event.Task), outcome).Inc()
	LLMLatency.WithLabelValues(string(event.Task)).Observe((time.Duration(event.LatencyMs) * time.Millisecond).Seconds())
}
