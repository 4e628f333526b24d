// Package analyzer builds the language model prompts and coerces the
// model's raw replies into structured results. Models deviate from the
// requested JSON shape often enough that decoding tolerates surrounding
// prose and markdown fences.
package analyzer

import (
	"encoding/json"
	"log"
	"strings"

	"sahayai/internal/domain"
)

// Result is the outcome of decoding a model reply: either a structured
// insight or a malformed-output payload. Exactly one side is set; decoding
// never returns a Go error.
type Result struct {
	Insight   domain.Insight
	Malformed *domain.ErrorPayload
}

// Ok reports whether the reply decoded into an insight.
func (r Result) Ok() bool {
	return r.Malformed == nil
}

// DecodeInsight parses a model reply as JSON. On failure it falls back to
// the first balanced brace-delimited object found in the text, which
// tolerates a model prefacing or trailing the JSON with prose. When no
// strategy yields valid JSON the result is a Malformed payload.
func DecodeInsight(raw string) Result {
	// A reply of `null` unmarshals cleanly into a nil map; it carries no
	// insight, so it falls through to the scan like any other failure.
	var insight domain.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err == nil && insight != nil {
		return Result{Insight: insight}
	}

	log.Printf("analyzer: direct JSON decode failed, scanning for first balanced object")
	if obj, ok := firstJSONObject(raw); ok {
		insight = nil
		if err := json.Unmarshal([]byte(obj), &insight); err == nil {
			return Result{Insight: insight}
		}
	}

	return Result{Malformed: &domain.ErrorPayload{
		Error:   "Failed to parse AI response.",
		Details: "The data from the AI was not in a valid JSON format, even after robust cleaning.",
	}}
}

// firstJSONObject locates the first syntactically complete {...} object in
// s by tracking brace nesting depth from the first opening brace. It
// reports false when no opening brace exists or the depth never returns to
// zero.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			return s[start : i+1], true
		}
	}
	return "", false
}
