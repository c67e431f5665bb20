package errdefs

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrTypeInvalidLayout ErrorType = iota
	ErrTypeInvalidEvent
	ErrTypeInvalidConfig
	ErrTypeGeneric
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidLayout:
		return "invalid layout"
	case ErrTypeInvalidEvent:
		return "invalid event"
	case ErrTypeInvalidConfig:
		return "invalid config"
	default:
		return "error"
	}
}

type CustomError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches any CustomError of the same Type, so sentinel values below work
// with errors.Is regardless of message.
func (e *CustomError) Is(target error) bool {
	var ce *CustomError
	if !errors.As(target, &ce) {
		return false
	}
	return ce.Type == e.Type
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

func NewCustomErrorf(errType ErrorType, format string, args ...interface{}) error {
	return NewCustomError(errType, fmt.Sprintf(format, args...))
}

// Wrap attaches a type and message to an underlying error. A nil err yields nil.
func Wrap(errType ErrorType, err error, message string) error {
	if err == nil {
		return nil
	}
	return &CustomError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// TypeOf reports the ErrorType carried by err, or ErrTypeGeneric.
func TypeOf(err error) ErrorType {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Type
	}
	return ErrTypeGeneric
}

var (
	ErrInvalidLayout = NewCustomError(ErrTypeInvalidLayout, "invalid page layout")
	ErrInvalidEvent  = NewCustomError(ErrTypeInvalidEvent, "invalid event")
	ErrInvalidConfig = NewCustomError(ErrTypeInvalidConfig, "invalid configuration")
)
