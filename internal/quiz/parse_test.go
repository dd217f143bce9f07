package quiz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// validBatch builds a contract-conforming JSON array of 5 questions.
func validBatch() string {
	var items []string
	for i := 1; i <= NumQuestions; i++ {
		items = append(items, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["opt A", "opt B", "opt C", "opt D"],
			"answer": "B"
		}`, i))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestParseValid(t *testing.T) {
	questions, err := Parse(validBatch())
	require.NoError(t, err)
	require.Len(t, questions, NumQuestions)

	require.Equal(t, "Question 1?", questions[0].Question)
	require.Equal(t, []string{"opt A", "opt B", "opt C", "opt D"}, questions[0].Options)
	require.Equal(t, "B", questions[0].Answer)
}

func TestParseStripsCodeFences(t *testing.T) {
	for _, fenced := range []string{
		"```json\n" + validBatch() + "\n```",
		"```\n" + validBatch() + "\n```",
		"\n  " + validBatch() + "  \n",
	} {
		questions, err := Parse(fenced)
		require.NoError(t, err)
		require.Len(t, questions, NumQuestions)
	}
}

func TestParseNotJSON(t *testing.T) {
	for _, raw := range []string{
		"Sure! Here are your questions:",
		"[{\"question\": \"q\",}]", // trailing comma
		"",
	} {
		_, err := Parse(raw)

		var malformed *ErrMalformedResponse
		if !errors.As(err, &malformed) {
			t.Fatalf("Parse(%q) = %v, want ErrMalformedResponse", raw, err)
		}
		if malformed.Raw != raw {
			t.Errorf("Raw = %q, want original input", malformed.Raw)
		}
	}
}

func TestParseProseAroundJSON(t *testing.T) {
	raw := "Here you go:\n" + validBatch()
	_, err := Parse(raw)

	var malformed *ErrMalformedResponse
	require.ErrorAs(t, err, &malformed)
}

func TestParseNotAnArray(t *testing.T) {
	_, err := Parse(`{"question": "q", "options": ["a","b","c","d"], "answer": "A"}`)

	var violation *ErrSchemaViolation
	require.ErrorAs(t, err, &violation)
}

func TestParseWrongQuestionCount(t *testing.T) {
	raw := `[{"question": "q", "options": ["a","b","c","d"], "answer": "A"}]`
	_, err := Parse(raw)

	var violation *ErrSchemaViolation
	require.ErrorAs(t, err, &violation)
}

func TestParseWrongOptionCount(t *testing.T) {
	bad := strings.Replace(validBatch(),
		`["opt A", "opt B", "opt C", "opt D"]`,
		`["opt A", "opt B", "opt C"]`, 1)

	_, err := Parse(bad)

	var violation *ErrSchemaViolation
	require.ErrorAs(t, err, &violation)
}

func TestParseInvalidAnswerLetter(t *testing.T) {
	bad := strings.Replace(validBatch(), `"answer": "B"`, `"answer": "E"`, 1)

	_, err := Parse(bad)

	var violation *ErrSchemaViolation
	require.ErrorAs(t, err, &violation)
}

func TestParseEmptyStrings(t *testing.T) {
	t.Run("question", func(t *testing.T) {
		bad := strings.Replace(validBatch(), `"Question 1?"`, `"  "`, 1)
		var violation *ErrSchemaViolation
		_, err := Parse(bad)
		require.ErrorAs(t, err, &violation)
	})

	t.Run("option", func(t *testing.T) {
		bad := strings.Replace(validBatch(), `"opt C"`, `" "`, 1)
		var violation *ErrSchemaViolation
		_, err := Parse(bad)
		require.ErrorAs(t, err, &violation)
	})
}

func TestParseMissingField(t *testing.T) {
	bad := strings.Replace(validBatch(), `"answer": "B"`, `"answer2": "B"`, 1)

	_, err := Parse(bad)

	var violation *ErrSchemaViolation
	require.ErrorAs(t, err, &violation)
}

func TestParseToleratesExtraFields(t *testing.T) {
	withExtra := strings.Replace(validBatch(),
		`"answer": "B"`,
		`"answer": "B", "explanation": "because"`, 1)

	questions, err := Parse(withExtra)
	require.NoError(t, err)
	require.Len(t, questions, NumQuestions)
}
