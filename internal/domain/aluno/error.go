package aluno

import "errors"

var (
	ErrNotFound = errors.New("aluno not found")
)

// ValidationError reports the first constraint violated by a payload.
// It is recoverable: the editor shows Message and keeps the form open.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
