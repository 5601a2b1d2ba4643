package chat

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minResponseLen = 10
	maxResponseLen = 1000
)

// CleanerConfig drives response cleaning. The tables are configurable so
// deployments can tune them per model family; smaller instruction-tuned
// models leak meta-commentary with model-specific phrasing.
type CleanerConfig struct {
	// Prefixes marks a line as meta-commentary when it starts with one
	// of these, matched case-sensitively.
	Prefixes []string
	// LowerPrefixes is matched against the lowercased line.
	LowerPrefixes []string
	// Patterns are regular expressions matched case-insensitively
	// against the whole line.
	Patterns []*regexp.Regexp
	// SalvagePrefixes rescue a line when cleaning removed everything,
	// matched case-insensitively.
	SalvagePrefixes []string
}

// DefaultCleanerConfig covers the commentary patterns small local models
// emit most often.
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		Prefixes: []string{
			"You are a helpful", "RESPONSE:", "Assistant:", "AI:", "Human:", "User:",
			"Direct response:", "Your direct response:", "Based on", "Looking at",
			"Let me", "I need to", "First,", "The user is", "From what", "Since",
			"Given that", "Considering", "In this case", "It seems", "This appears",
		},
		LowerPrefixes: []string{
			"okay", "so", "well", "now", "let me", "i see", "looking", "based on",
			"from what", "given that", "since", "considering", "the user", "this is",
			"it seems", "they are", "i think", "i believe", "i should", "i need to",
		},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(Okay|So|Well|Now|Let me|I see|Looking at|Based on|From what|Given that|Since|Considering).*`),
			regexp.MustCompile(`(?i)^The user (is|has|wants|needs|seems).*`),
			regexp.MustCompile(`(?i)^This (is|seems|appears|looks|sounds).*`),
			regexp.MustCompile(`(?i)^It (seems|appears|looks|sounds).*`),
			regexp.MustCompile(`(?i)^They (are|have|want|need|seem).*`),
		},
		SalvagePrefixes: []string{"I ", "You ", "Your ", "Based on your"},
	}
}

// Cleaner strips model meta-commentary from chat responses.
type Cleaner struct {
	cfg CleanerConfig
}

func NewCleaner(cfg CleanerConfig) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean removes leading commentary lines and interleaved analysis from a
// raw model response. It starts in skip mode, dropping lines until the
// first line that reads like a direct reply, then collects all remaining
// non-commentary lines. Returns ok=false when nothing usable remains.
func (c *Cleaner) Clean(raw string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	var kept []string
	skipMode := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		thinking := c.isCommentary(line)
		if skipMode && !thinking {
			skipMode = false
		}
		if !skipMode && !thinking {
			kept = append(kept, line)
		}
	}

	if len(kept) == 0 {
		if line, ok := c.salvage(lines); ok {
			kept = append(kept, line)
		}
	}

	out := strings.TrimSpace(strings.Join(kept, "\n"))
	if strings.HasPrefix(out, `"`) && strings.HasSuffix(out, `"`) && len(out) >= 2 {
		out = strings.TrimSpace(out[1 : len(out)-1])
	}

	if len(out) < minResponseLen {
		return "", false
	}
	if len(out) > maxResponseLen {
		out = clip(out, maxResponseLen) + "..."
	}
	return out, true
}

func (c *Cleaner) isCommentary(line string) bool {
	for _, p := range c.cfg.Prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	lower := strings.ToLower(line)
	for _, p := range c.cfg.LowerPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	for _, re := range c.cfg.Patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// salvage looks for the first line that reads like a direct first- or
// second-person reply when cleaning removed everything.
func (c *Cleaner) salvage(lines []string) (string, bool) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, p := range c.cfg.SalvagePrefixes {
			if strings.HasPrefix(lower, strings.ToLower(p)) {
				return line, true
			}
		}
	}
	return "", false
}

// clip caps s at max bytes, backing up so a multi-byte rune is never
// split.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
