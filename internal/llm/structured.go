package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ExtractArray extracts a JSON array of objects from raw LLM text output.
// It handles markdown code fences, leading/trailing prose, and the two
// malformations models emit most: embedded newlines inside the array and
// trailing commas before a closing bracket. Returns the array elements as
// raw messages so the caller can apply discard-per-element validation.
func ExtractArray(raw string) ([]json.RawMessage, error) {
	cleaned := stripCodeFences(raw)

	start := strings.IndexByte(cleaned, '[')
	end := strings.LastIndexByte(cleaned, ']')
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array found in response", ErrInvalidOutput)
	}
	cleaned = collapseWhitespace(cleaned[start : end+1])
	cleaned = repairTrailingCommas(cleaned)

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return elems, nil
}

// RecoverObjects scans raw text for individual brace-delimited objects
// containing the given key and returns each one that parses on its own.
// Used as a salvage pass when the surrounding array is unparseable.
func RecoverObjects(raw, requiredKey string) []json.RawMessage {
	pattern := regexp.MustCompile(`\{[^{}]*"` + regexp.QuoteMeta(requiredKey) + `"[^{}]*\}`)
	matches := pattern.FindAllString(raw, -1)

	var objects []json.RawMessage
	for _, m := range matches {
		candidate := repairTrailingCommas(collapseWhitespace(m))
		if json.Valid([]byte(candidate)) {
			objects = append(objects, json.RawMessage(candidate))
		}
	}
	return objects
}

// stripCodeFences removes markdown code fences (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// collapseWhitespace replaces newlines and runs of whitespace with single
// spaces. String values lose internal line breaks, which is acceptable for
// the short text fields this parses.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// repairTrailingCommas removes commas immediately preceding a closing
// brace or bracket, outside of string values.
func repairTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		if c == '\\' && inString {
			b.WriteByte(c)
			escaped = true
			continue
		}

		if c == '"' {
			b.WriteByte(c)
			inString = !inString
			continue
		}

		if !inString && c == ',' {
			if next := nextNonSpace(s, i+1); next == '}' || next == ']' {
				continue
			}
		}

		b.WriteByte(c)
	}

	return b.String()
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return s[i]
		}
	}
	return 0
}
