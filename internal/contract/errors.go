package contract

import (
	"errors"
	"strings"

	"github.com/alexanderramin/prazo/internal/calendar"
	"github.com/alexanderramin/prazo/internal/domain"
	"github.com/alexanderramin/prazo/internal/scenario"
)

type ScheduleErrorCode string

const (
	ErrOutOfRange      ScheduleErrorCode = "OUT_OF_RANGE"
	ErrInvalidScenario ScheduleErrorCode = "INVALID_SCENARIO"
	ErrUnknownScenario ScheduleErrorCode = "UNKNOWN_SCENARIO"
	ErrInvalidRequest  ScheduleErrorCode = "INVALID_REQUEST"
	ErrNotFound        ScheduleErrorCode = "NOT_FOUND"
	ErrInternalError   ScheduleErrorCode = "INTERNAL_ERROR"
)

type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	cause   error
}

func (e *ScheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *ScheduleError) Unwrap() error {
	return e.cause
}

func NewScheduleError(code ScheduleErrorCode, message string) *ScheduleError {
	return &ScheduleError{Code: code, Message: message}
}

// WrapScheduleError assigns a code to err from the typed errors of the
// engine. A *ScheduleError is returned as is; one nested deeper in the chain
// lends its code while the outer context stays in the message.
func WrapScheduleError(err error) *ScheduleError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ScheduleError); ok {
		return se
	}
	var inner *ScheduleError
	if errors.As(err, &inner) {
		msg := strings.Replace(err.Error(), inner.Error(), inner.Message, 1)
		return &ScheduleError{Code: inner.Code, Message: msg, cause: err}
	}
	return &ScheduleError{Code: CodeOf(err), Message: err.Error(), cause: err}
}

// CodeOf maps an error to its contract code without allocating a wrapper.
func CodeOf(err error) ScheduleErrorCode {
	var se *ScheduleError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return se.Code
	case errors.Is(err, calendar.ErrOutOfRange):
		return ErrOutOfRange
	case errors.Is(err, domain.ErrInvalidScenario):
		return ErrInvalidScenario
	case errors.Is(err, scenario.ErrUnknownScenario):
		return ErrUnknownScenario
	default:
		return ErrInternalError
	}
}
