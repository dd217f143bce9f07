package quiz

import "fmt"

// ErrMalformedResponse indicates the model's reply was not valid JSON.
type ErrMalformedResponse struct {
	Raw string
	Err error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("quiz response is not valid JSON: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrSchemaViolation indicates the reply parsed as JSON but does not match
// the quiz contract (array of 5 questions, 4 options each, answer in A-D
// indexing an existing option).
type ErrSchemaViolation struct {
	Reason string
}

func (e *ErrSchemaViolation) Error() string {
	return fmt.Sprintf("quiz response violates contract: %s", e.Reason)
}
