package summary

import "strings"

// fillerMarkers flag lines that are framing rather than content.
var fillerMarkers = []string{"here are", "summary:", "bullet points", "analysis"}

// FormatBullets normalizes raw model output into at most max clean
// bullet lines. Bullet glyphs are stripped, unmarked lines are kept only
// when they look like content, fragments get terminal punctuation.
func FormatBullets(text string, max int) []string {
	var bullets []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var content string
		switch {
		case strings.HasPrefix(line, "•"), strings.HasPrefix(line, "-"), strings.HasPrefix(line, "*"):
			content = strings.TrimSpace(strings.TrimLeft(line, "•-* "))
		default:
			if len(line) <= 10 || isFiller(line) {
				continue
			}
			content = line
		}

		if len(content) <= 5 {
			continue
		}
		if !strings.HasSuffix(content, ".") && !strings.HasSuffix(content, "!") && !strings.HasSuffix(content, "?") {
			content = strings.TrimRight(content, ",") + "."
		}
		bullets = append(bullets, content)
		if len(bullets) == max {
			break
		}
	}
	return bullets
}

// ValidateBullets accepts a bullet list when it has between 2 and max
// entries and every entry is a plausible sentence length (3-25 words).
func ValidateBullets(bullets []string, max int) bool {
	if len(bullets) < 2 || len(bullets) > max {
		return false
	}
	for _, b := range bullets {
		words := len(strings.Fields(b))
		if words < 3 || words > 25 {
			return false
		}
	}
	return true
}

// Render joins bullets into the dashboard display form.
func Render(bullets []string) string {
	lines := make([]string, len(bullets))
	for i, b := range bullets {
		lines[i] = "• " + b
	}
	return strings.Join(lines, "\n")
}

func isFiller(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range fillerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
