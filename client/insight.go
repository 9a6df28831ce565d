package client

import (
	"encoding/json"
	"strings"
)

// Insight is the parsed form of an AI response. The service returns either
// machine-readable JSON or prose depending on the model's mood, so callers
// branch on Structured before rendering.
type Insight struct {
	// Structured is true when Raw parsed as a JSON object or array.
	Structured bool
	// Raw is the response text with any markdown code fence removed.
	Raw string
	// Data holds the decoded value when Structured is true.
	Data any
}

// ParseInsight classifies an AI response as structured JSON or free text.
// Model output often arrives wrapped in a ```json fence; the fence is
// stripped before the parse attempt. Anything that does not decode to a
// JSON object or array is treated as free text, never as an error.
func ParseInsight(raw string) Insight {
	text := stripFence(strings.TrimSpace(raw))

	var data any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		switch data.(type) {
		case map[string]any, []any:
			return Insight{Structured: true, Raw: text, Data: data}
		}
	}
	return Insight{Raw: text}
}

func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := strings.TrimPrefix(text, "```")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
