package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
)

var (
	errBlank     = validation.NewError("validation_not_blank", "cannot be blank")
	errImmutable = validation.NewError("validation_immutable", "is assigned by the store and cannot be set")

	notBlank = validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return errBlank
		}
		return nil
	})

	priorityRule = validation.In(toAny(Priorities)...).Error("must be one of P1, P2, P3, P4")
	statusRule   = validation.In(toAny(Statuses)...).Error("must be one of pending, in-progress, completed")
)

// ValidateCreate checks a creation payload and returns it with defaults
// applied (priority P3, status pending).
func ValidateCreate(in CreateTaskInput) (CreateTaskInput, error) {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, notBlank),
		validation.Field(&in.Assignee, validation.Required, notBlank),
		validation.Field(&in.DueDate, validation.Required, notBlank),
		validation.Field(&in.Priority, priorityRule),
		validation.Field(&in.Status, statusRule),
	)
	if err = collect(err, in.ImmutableFields); err != nil {
		return CreateTaskInput{}, err
	}

	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	if in.Status == "" {
		in.Status = DefaultStatus
	}
	in.ImmutableFields = nil
	return in, nil
}

// ValidateUpdate checks a partial update. Every field is optional but a
// present field must satisfy the same rules as on creation.
func ValidateUpdate(in UpdateTaskInput) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.NilOrNotEmpty, notBlank),
		validation.Field(&in.Assignee, validation.NilOrNotEmpty, notBlank),
		validation.Field(&in.DueDate, validation.NilOrNotEmpty, notBlank),
		validation.Field(&in.Priority, validation.NilOrNotEmpty, priorityRule),
		validation.Field(&in.Status, validation.NilOrNotEmpty, statusRule),
	)
	return collect(err, in.ImmutableFields)
}

// ValidateParseRequest rejects a missing or whitespace-only input.
func ValidateParseRequest(in ParseRequest) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Input, validation.Required, notBlank),
	)
	return collect(err, nil)
}

// ValidateExtractionResult checks what the extraction service returned and
// defaults a missing priority to P3.
func ValidateExtractionResult(in ExtractionResult) (ExtractionResult, error) {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.TaskName, validation.Required, notBlank),
		validation.Field(&in.Assignee, validation.Required, notBlank),
		validation.Field(&in.DueDate, validation.Required, notBlank),
		validation.Field(&in.Priority, priorityRule),
	)
	if err = collect(err, nil); err != nil {
		return ExtractionResult{}, err
	}

	if in.Priority == "" {
		in.Priority = DefaultPriority
	}
	return in, nil
}

// ValidateFilter rejects unknown status or priority filter values.
func ValidateFilter(in TaskFilter) error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Status, statusRule),
		validation.Field(&in.Priority, priorityRule),
	)
	return collect(err, nil)
}

// collect turns ozzo field errors plus rejected immutable fields into a
// *ValidationError. Internal ozzo errors are returned as is.
func collect(err error, immutable []string) error {
	reasons := map[string]string{}

	if err != nil {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return err
		}

		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for field, fe := range fieldErrs {
			reasons[field] = fe.Error()
		}
	}

	for _, field := range immutable {
		reasons[field] = errImmutable.Error()
	}

	if len(reasons) == 0 {
		return nil
	}
	return NewValidationError(reasons)
}

func toAny[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
