package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"task-intake/internal/model"
	pkgErrors "task-intake/pkg/errors"
)

// processID parses the :id path parameter as a positive integer.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processListReq reads the optional status and priority filters.
func (h *handler) processListReq(c *gin.Context) model.TaskFilter {
	return model.TaskFilter{
		Status:   model.Status(c.Query("status")),
		Priority: model.Priority(c.Query("priority")),
	}
}

// processParseReq binds the intake body. Content validation is left to the
// use case so that it is reported as an intake failure.
func (h *handler) processParseReq(c *gin.Context) (model.ParseRequest, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.ParseRequest{}, bindError(err, parseMsgs.invalid)
	}
	return req.toInput(), nil
}

// processCreateReq binds the creation body and records any store-owned field
// the client tried to set.
func (h *handler) processCreateReq(c *gin.Context) (model.CreateTaskInput, error) {
	immutable, err := immutableFields(c)
	if err != nil {
		return model.CreateTaskInput{}, bindError(err, createMsgs.invalid)
	}

	var req createReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return model.CreateTaskInput{}, bindError(err, createMsgs.invalid)
	}
	return req.toInput(immutable), nil
}

// processUpdateReq binds the partial update body.
func (h *handler) processUpdateReq(c *gin.Context) (model.UpdateTaskInput, error) {
	immutable, err := immutableFields(c)
	if err != nil {
		return model.UpdateTaskInput{}, bindError(err, updateMsgs.invalid)
	}

	var req updateReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return model.UpdateTaskInput{}, bindError(err, updateMsgs.invalid)
	}
	return req.toInput(immutable), nil
}

// immutableFields binds the body as a generic object and returns the names
// of the store-owned keys present in it.
func immutableFields(c *gin.Context) ([]string, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotAnObject
	}

	var fields []string
	for _, key := range []string{model.FieldID, model.FieldCreatedAt} {
		if _, ok := raw[key]; ok {
			fields = append(fields, key)
		}
	}
	return fields, nil
}

var errNotAnObject = errors.New("body must be a JSON object")

// bindError turns a JSON binding failure into a 400. Every task field is a
// string, so a type mismatch on a named field is reported against it.
func bindError(err error, message string) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, message).WithDetails([]model.FieldError{
			{Field: typeErr.Field, Reason: "must be a string"},
		})
	}
	return pkgErrors.NewHTTPError(http.StatusBadRequest, message)
}
