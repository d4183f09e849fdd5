package http

import (
	"errors"
	"net/http"

	"task-intake/internal/extraction"
	"task-intake/internal/model"
	"task-intake/internal/task"
	pkgErrors "task-intake/pkg/errors"
)

// MsgTaskDeleted is the body message of a successful delete.
const MsgTaskDeleted = "Task deleted successfully"

var (
	errTaskNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	errInvalidID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid task id")
)

// messages holds the client-facing text of one endpoint.
type messages struct {
	invalid string // 400, client data rejected
	failed  string // 500, cause is logged only
}

var (
	listMsgs   = messages{invalid: "Invalid filter", failed: "Failed to fetch tasks"}
	statsMsgs  = messages{failed: "Failed to fetch task stats"}
	detailMsgs = messages{failed: "Failed to fetch task"}
	parseMsgs  = messages{invalid: "Invalid input data", failed: "Failed to parse and create task"}
	createMsgs = messages{invalid: "Invalid task data", failed: "Failed to create task"}
	updateMsgs = messages{invalid: "Invalid update data", failed: "Failed to update task"}
	deleteMsgs = messages{failed: "Failed to delete task"}
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// IntakeError is checked first because it wraps validation errors that must
// not be reported field by field.
func (h *handler) mapError(err error, msgs messages) error {
	var (
		intakeErr *task.IntakeError
		validErr  *model.ValidationError
		faultErr  *task.StoreFault
	)

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.As(err, &intakeErr):
		return mapIntakeError(intakeErr, msgs)
	case errors.As(err, &validErr):
		return invalid(msgs.invalid, validErr)
	case errors.As(err, &faultErr):
		return failed(msgs.failed)
	default:
		return failed(msgs.failed)
	}
}

func mapIntakeError(err *task.IntakeError, msgs messages) error {
	switch err.Kind {
	case task.IntakeBadRequest:
		var validErr *model.ValidationError
		if errors.As(err, &validErr) {
			return invalid(msgs.invalid, validErr)
		}
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgs.invalid)
	case task.IntakeExtractionFailed:
		var extErr *extraction.ExtractionError
		if errors.As(err, &extErr) && extErr.Kind == extraction.KindInvalidSchema {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, task.RephraseMessage)
		}
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, task.RephraseMessage)
	case task.IntakeInternalInconsistency:
		return failed(msgs.failed)
	default:
		return failed(msgs.failed)
	}
}

func invalid(message string, err *model.ValidationError) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, message).WithDetails(err.Fields)
}

func failed(message string) error {
	return pkgErrors.NewHTTPError(http.StatusInternalServerError, message)
}
