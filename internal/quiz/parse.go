package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse turns raw model output into a validated question batch. It is a pure
// function: on any failure the returned error classifies the fault and no
// questions are returned.
//
// Models occasionally wrap the payload in a markdown code fence despite the
// prompt; fences are stripped before parsing. Anything else around the JSON
// (prose, trailing commas) fails the parse.
func Parse(text string) ([]Question, error) {
	clean := stripFences(text)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, &ErrMalformedResponse{Raw: text, Err: err}
	}

	if err := validateShape(parsed); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal([]byte(clean), &questions); err != nil {
		return nil, &ErrMalformedResponse{Raw: text, Err: err}
	}

	if err := checkConsistency(questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// checkConsistency re-verifies the contract in Go and adds the one invariant
// the schema cannot express: the answer letter must index an existing option.
func checkConsistency(questions []Question) error {
	if len(questions) != NumQuestions {
		return &ErrSchemaViolation{
			Reason: fmt.Sprintf("expected %d questions, got %d", NumQuestions, len(questions)),
		}
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return &ErrSchemaViolation{
				Reason: fmt.Sprintf("question %d has empty text", i+1),
			}
		}
		if len(q.Options) != NumOptions {
			return &ErrSchemaViolation{
				Reason: fmt.Sprintf("question %d has %d options, want %d", i+1, len(q.Options), NumOptions),
			}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return &ErrSchemaViolation{
					Reason: fmt.Sprintf("question %d option %s is empty", i+1, Letters[j]),
				}
			}
		}
		idx := letterIndex(q.Answer)
		if idx < 0 {
			return &ErrSchemaViolation{
				Reason: fmt.Sprintf("question %d has invalid answer letter %q", i+1, q.Answer),
			}
		}
		if idx >= len(q.Options) {
			return &ErrSchemaViolation{
				Reason: fmt.Sprintf("question %d answer %q does not match any option", i+1, q.Answer),
			}
		}
	}

	return nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
