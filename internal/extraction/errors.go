package extraction

import (
	"errors"
	"fmt"

	"task-intake/internal/model"
)

// Kind classifies why an extraction failed.
type Kind int

const (
	// KindMalformedResponse: the service answered with something that is not a JSON object.
	KindMalformedResponse Kind = iota + 1
	// KindInvalidSchema: the JSON object does not satisfy the extraction schema.
	KindInvalidSchema
	// KindServiceUnavailable: the service could not be reached or refused the call.
	KindServiceUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindMalformedResponse:
		return "malformed response"
	case KindInvalidSchema:
		return "invalid schema"
	case KindServiceUnavailable:
		return "service unavailable"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyResponse = errors.New("empty response")
	ErrNotAnObject   = errors.New("response is not a JSON object")
)

// ExtractionError is returned by Extractor.Extract.
type ExtractionError struct {
	Kind Kind
	// Violations is set for KindInvalidSchema.
	Violations *model.ValidationError
	Err        error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "extraction: " + e.Kind.String()
	}
	return fmt.Sprintf("extraction: %s: %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func malformed(err error) *ExtractionError {
	return &ExtractionError{Kind: KindMalformedResponse, Err: err}
}

func invalidSchema(v *model.ValidationError) *ExtractionError {
	return &ExtractionError{Kind: KindInvalidSchema, Violations: v, Err: v}
}

func unavailable(err error) *ExtractionError {
	return &ExtractionError{Kind: KindServiceUnavailable, Err: err}
}
