// Package quiz implements the quiz protocol: requesting a fixed-shape batch
// of questions from the external model, enforcing the JSON contract before
// committing any state, and driving the answer-collection and scoring state
// machine.
package quiz

// The wire contract with the model: exactly 5 questions, each with exactly
// 4 options and one answer letter.
const (
	NumQuestions = 5
	NumOptions   = 4
)

// Letters are the valid answer letters, in option order.
var Letters = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice question as received from the model.
// Instances exist only after a response has passed contract validation.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Result is the outcome of a submitted quiz.
type Result struct {
	Score      int // correct answers, 0..NumQuestions
	Percentage int // round-half-up percent of Score over NumQuestions
}

// State is the lifecycle state of the engine's current quiz.
type State int

const (
	// StateEmpty means no active quiz.
	StateEmpty State = iota

	// StatePopulated means a validated quiz is active and accepting answers.
	StatePopulated

	// StateSubmitted means the active quiz has been scored; terminal until
	// reset.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StatePopulated:
		return "populated"
	case StateSubmitted:
		return "submitted"
	default:
		return "empty"
	}
}

// letterIndex returns the option index for an answer letter, or -1.
func letterIndex(letter string) int {
	for i, l := range Letters {
		if l == letter {
			return i
		}
	}
	return -1
}
