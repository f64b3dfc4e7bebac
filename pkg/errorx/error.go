package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string

	// Fields holds per-field validation messages. It is only set for
	// BadRequest errors produced by input validation.
	Fields map[string]string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func NewValidation(fields map[string]string) Error {
	return Error{Code: BadRequest, Message: "Validation failed", Fields: fields}
}
