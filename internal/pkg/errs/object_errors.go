package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrStateConflict  = errors.New("state conflict")
	ErrDuplicate      = errors.New("duplicate value")
)

// ObjectNotFoundError reports a lookup by id that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// StateConflictError reports an operation that is valid in general but not
// in the current lifecycle state of Subject.
type StateConflictError struct {
	Subject string
	Reason  string
}

func NewStateConflictError(subject, reason string) *StateConflictError {
	return &StateConflictError{Subject: subject, Reason: reason}
}

func NewStateConflictErrorf(subject, format string, args ...any) *StateConflictError {
	return &StateConflictError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrStateConflict, e.Subject, e.Reason)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// DuplicateError reports a uniqueness violation on ParamName.
type DuplicateError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewDuplicateError(paramName string, value any) *DuplicateError {
	return &DuplicateError{ParamName: paramName, Value: value}
}

func NewDuplicateErrorWithCause(paramName string, value any, cause error) *DuplicateError {
	return &DuplicateError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateError) Error() string {
	msg := fmt.Sprintf("%s: %s is %v", ErrDuplicate, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicate
}
