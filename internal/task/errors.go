package task

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound is returned when no task has the requested id.
var ErrTaskNotFound = errors.New("task not found")

// RephraseMessage is the user-facing message for every failed extraction.
const RephraseMessage = "Failed to parse task description. Please try rephrasing your input."

// IntakeKind classifies an intake failure.
type IntakeKind int

const (
	// IntakeBadRequest: the raw input failed validation.
	IntakeBadRequest IntakeKind = iota + 1
	// IntakeExtractionFailed: the extraction adapter returned an error.
	IntakeExtractionFailed
	// IntakeInternalInconsistency: a validated extraction result did not
	// produce a valid creation payload.
	IntakeInternalInconsistency
)

func (k IntakeKind) String() string {
	switch k {
	case IntakeBadRequest:
		return "bad request"
	case IntakeExtractionFailed:
		return "extraction failed"
	case IntakeInternalInconsistency:
		return "internal inconsistency"
	default:
		return "unknown"
	}
}

// IntakeError is returned by UseCase.Intake before anything is stored.
type IntakeError struct {
	Kind IntakeKind
	Err  error
}

func (e *IntakeError) Error() string {
	return fmt.Sprintf("intake: %s: %v", e.Kind, e.Err)
}

func (e *IntakeError) Unwrap() error {
	return e.Err
}

// StoreFault wraps a failure of the underlying task store.
type StoreFault struct {
	Op  string
	Err error
}

func (e *StoreFault) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreFault) Unwrap() error {
	return e.Err
}
