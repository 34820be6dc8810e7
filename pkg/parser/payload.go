package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

var (
	// ErrEmptyResponse is returned when the backend answered with no content.
	ErrEmptyResponse = errors.New("empty analysis response")
	// ErrMalformedResponse is returned when the answer is not a JSON object.
	ErrMalformedResponse = errors.New("analysis response is not a JSON object")
)

// outerFence matches an answer wrapped in a single ```json ... ``` block.
var outerFence = regexp.MustCompile("(?s)^```[a-zA-Z]*[ \t]*\n(.*?)\n?```$")

// ParsePayload decodes a raw backend answer into a partial payload.
// Fields that are missing or have the wrong shape are left unset.
func ParsePayload(raw string) (*model.Payload, error) {
	cleaned := strings.TrimSpace(raw)
	if !json.Valid([]byte(cleaned)) {
		cleaned = stripFences(cleaned)
	}
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, preview(cleaned))
	}

	// A previously rendered report wraps the analysis in "result".
	if inner, ok := fields["result"]; ok && fields["overallScore"] == nil {
		var wrapped map[string]json.RawMessage
		if json.Unmarshal(inner, &wrapped) == nil && wrapped != nil {
			fields = wrapped
		}
	}

	p := &model.Payload{}
	decodeField(fields, "error", &p.Error)
	p.OverallScore = decodeScore(fields["overallScore"])
	decodeField(fields, "dimensions", &p.Dimensions)
	decodeField(fields, "strengthsWeaknesses", &p.StrengthsWeaknesses)
	decodeField(fields, "vibeCodingPractices", &p.VibeCodingPractices)
	decodeField(fields, "architecturePractices", &p.ArchitecturePractices)
	p.Technologies = decodeTechnologies(fields["technologies"])

	var prompt string
	if decodeField(fields, "optimizedPrompt", &prompt) {
		p.OptimizedPrompt = &prompt
	}

	return p, nil
}

// stripFences removes an outer markdown code fence such as ```json ... ``` so JSON can
// be parsed. Fences inside the body are left alone.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if m := outerFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// decodeField sets *dst only when the whole field decodes.
func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) bool {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

func decodeScore(raw json.RawMessage) *int {
	if raw == nil || isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		// Some models quote numbers.
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return nil
		}
		if _, err := fmt.Sscanf(strings.TrimSpace(s), "%g", &f); err != nil {
			return nil
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	score := int(math.Round(f))
	return &score
}

// decodeTechnologies keeps every entry that decodes on its own.
func decodeTechnologies(raw json.RawMessage) []model.TechnologySuggestion {
	if raw == nil || isNull(raw) {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	out := make([]model.TechnologySuggestion, 0, len(entries))
	for _, e := range entries {
		if isNull(e) {
			continue
		}
		var t model.TechnologySuggestion
		if err := json.Unmarshal(e, &t); err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func preview(s string) string {
	const max = 80
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
