package chat

import (
	"fmt"
	"strings"
	"sync"
)

const (
	// historyCap bounds the per-session turn buffer.
	historyCap = 20
	// contextTurns is how many recent turns feed back into prompts.
	contextTurns = 6
	// contextSnippetLen truncates each turn inside the prompt context.
	contextSnippetLen = 150
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    string
	Content string
}

// History is a bounded conversation buffer. Appending beyond capacity
// evicts the oldest turns. Safe for concurrent use.
type History struct {
	mu    sync.Mutex
	turns []Turn
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Append(role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = append(h.turns, Turn{Role: role, Content: content})
	if len(h.turns) > historyCap {
		h.turns = h.turns[len(h.turns)-historyCap:]
	}
}

// Turns returns a copy of the buffered turns, oldest first.
func (h *History) Turns() []Turn {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.turns = nil
}

// Last returns the most recent turn.
func (h *History) Last() (Turn, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.turns) == 0 {
		return Turn{}, false
	}
	return h.turns[len(h.turns)-1], true
}

// PromptContext renders the recent turns for prompt injection, with each
// turn truncated to a short snippet.
func (h *History) PromptContext() string {
	turns := h.Turns()
	if len(turns) == 0 {
		return "No previous conversation."
	}
	if len(turns) > contextTurns {
		turns = turns[len(turns)-contextTurns:]
	}

	var lines []string
	for _, turn := range turns {
		role := "Assistant"
		if turn.Role == RoleUser {
			role = "User"
		}
		content := turn.Content
		if len(content) > contextSnippetLen {
			content = clip(content, contextSnippetLen) + "..."
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, content))
	}
	return strings.Join(lines, "\n")
}
