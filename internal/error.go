package internal

import "fmt"

// An Error is a first-class failure value. Errors propagate through evaluation
// like any other value; evaluating an expression containing an error produces
// that error unchanged.
type Error struct {
	Msg string
}

// NewError creates a new Error with the given message.
func NewError(msg string) *Error {
	return &Error{Msg: msg}
}

// Errorf creates a new Error with the given formatted message.
func Errorf(format string, args ...interface{}) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// FromError converts a Go error to an Error value. If it is already an Error,
// it is returned unchanged.
func FromError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return NewError(err.Error())
}

// TypeName returns "Error".
func (*Error) TypeName() string {
	return errorType
}

// String returns the printed form of the error.
func (e *Error) String() string {
	return "Error: " + e.Msg
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Msg
}

// Copy returns a new Error with the same message.
func (e *Error) Copy() Value {
	return &Error{Msg: e.Msg}
}

func (*Error) value() {}

// IsError returns whether v is an Error value.
func IsError(v Value) bool {
	_, ok := v.(*Error)
	return ok
}
