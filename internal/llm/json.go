package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var thinkTagPattern = regexp.MustCompile(`(?s)^[\s]*<think>.*?</think>[\s]*`)

// ExtractJSON pulls the first JSON object or array out of a response that may be
// wrapped in <think> tags, markdown fences or prose.
func ExtractJSON(response string) (string, error) {
	cleaned := thinkTagPattern.ReplaceAllString(response, "")

	objStart := strings.IndexByte(cleaned, '{')
	arrStart := strings.IndexByte(cleaned, '[')

	if objStart >= 0 && (arrStart < 0 || objStart < arrStart) {
		if s, ok := extractBalanced(cleaned, '{', '}'); ok && json.Valid([]byte(s)) {
			return s, nil
		}
	}
	if arrStart >= 0 {
		if s, ok := extractBalanced(cleaned, '[', ']'); ok && json.Valid([]byte(s)) {
			return s, nil
		}
	}

	trimmed := strings.TrimSpace(cleaned)
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}
	return "", fmt.Errorf("no valid JSON found in response")
}

// extractBalanced returns the first bracket-balanced substring starting at openCh,
// ignoring brackets inside JSON strings.
func extractBalanced(s string, openCh, closeCh byte) (string, bool) {
	start := strings.IndexByte(s, openCh)
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == openCh:
			depth++
		case c == closeCh:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseLocations decodes a nested array of location suggestions. A flat array of
// strings is treated as a single location and a triple-nested single entry is unwrapped.
func ParseLocations(response string) ([][]string, error) {
	raw, err := ExtractJSON(response)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal locations: %w", err)
	}

	outer, ok := decoded.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array, got %s", raw)
	}

	switch {
	case len(outer) == 1 && tripleNested(outer[0]):
		outer = outer[0].([]any)
	case allStrings(outer):
		outer = []any{outer}
	}

	locations := make([][]string, 0, len(outer))
	for _, item := range outer {
		inner, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("expected only arrays in the outer array, got %s", raw)
		}
		variants := make([]string, 0, len(inner))
		for _, v := range inner {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("expected only strings in the inner array, got %s", raw)
			}
			variants = append(variants, s)
		}
		locations = append(locations, variants)
	}
	return locations, nil
}

func tripleNested(v any) bool {
	inner, ok := v.([]any)
	if !ok || len(inner) != 1 {
		return false
	}
	_, ok = inner[0].([]any)
	return ok
}

func allStrings(values []any) bool {
	for _, v := range values {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return len(values) > 0
}
