package httperr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Error struct {
	code    int
	message string
}

func New(code int, message string) *Error {
	return &Error{code: code, message: message}
}

func (e *Error) Code() int {
	return e.code
}

func (e *Error) Error() string {
	if e.message == "" {
		return fmt.Sprintf("response status %d", e.code)
	}

	return e.message
}

// Message is the server supplied text, empty when the server sent none.
func (e *Error) Message() string {
	return e.message
}

type coder interface {
	Code() int
}

// Code returns the status carried anywhere in err's chain, or 0.
func Code(err error) int {
	if e, ok := As(err); ok {
		return e.code
	}

	if c, ok := errors.Cause(err).(coder); ok {
		return c.Code()
	}

	return 0
}

func As(err error) (*Error, bool) {
	var e *Error

	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}
