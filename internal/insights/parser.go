package insights

import (
	"encoding/json"
	"errors"
	"strings"
)

// extractList pulls the first JSON list out of an oracle response. The
// oracle wraps output in prose or markdown fences often enough that this
// has to be tolerant: strip a fenced block if present, then take everything
// between the first '[' and the last ']'.
func extractList(response string) (string, error) {
	text := strings.TrimSpace(response)

	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+3:]
		// Drop a language tag like ```json
		if nl := strings.IndexByte(rest, '\n'); nl != -1 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end != -1 {
			text = rest[:end]
		} else {
			text = rest
		}
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return "", errors.New("no JSON list in oracle output")
	}

	return text[start : end+1], nil
}

// parseCandidates turns one oracle response into zero or more raw
// candidates. A response that cannot be parsed yields an error; the
// validator treats that as an empty attempt, not a failure.
func parseCandidates(response string) ([]Insight, error) {
	listText, err := extractList(response)
	if err != nil {
		return nil, err
	}

	// Decode loosely first: the oracle does not reliably honor the schema,
	// so field types are checked one by one.
	var items []map[string]any
	if err := json.Unmarshal([]byte(listText), &items); err != nil {
		return nil, errors.New("oracle output is not a JSON list of objects")
	}

	candidates := make([]Insight, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, Insight{
			Event:      asString(item["event"]),
			Type:       asString(item["type"]),
			Surge:      asString(item["surge"]),
			Categories: asStringList(item["categories"]),
			Insight:    asString(item["insight"]),
		})
	}

	return candidates, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringList(v any) []string {
	switch vv := v.(type) {
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		// Single value where a list was asked for
		return []string{vv}
	default:
		return nil
	}
}
