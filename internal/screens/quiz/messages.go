package quiz

import (
	qz "github.com/2210030429cse-tech/learningplatform/internal/quiz"
)

// quizReadyMsg is sent when quiz generation and validation complete.
type quizReadyMsg struct {
	Questions []qz.Question
	Err       error
}

// submitDoneMsg is sent when scoring and persistence complete.
type submitDoneMsg struct {
	Result qz.Result
	Err    error
}
