package extraction

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"task-intake/internal/model"
)

const (
	fieldTaskName = "taskName"
	fieldAssignee = "assignee"
	fieldDueDate  = "dueDate"
	fieldPriority = "priority"

	reasonNotString = "must be a string"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// decodeResult parses the service output into a validated ExtractionResult.
// Missing or blank assignee and dueDate are replaced by their placeholders
// before validation; a null field counts as missing.
func decodeResult(content string) (model.ExtractionResult, error) {
	cleaned := sanitizeJSON(content)
	if cleaned == "" {
		return model.ExtractionResult{}, malformed(ErrEmptyResponse)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return model.ExtractionResult{}, malformed(err)
	}
	if raw == nil {
		return model.ExtractionResult{}, malformed(ErrNotAnObject)
	}

	reasons := map[string]string{}
	read := func(field string) string {
		s, ok := stringField(raw, field)
		if !ok {
			reasons[field] = reasonNotString
		}
		return s
	}

	result := model.ExtractionResult{
		TaskName: read(fieldTaskName),
		Assignee: read(fieldAssignee),
		DueDate:  read(fieldDueDate),
		Priority: model.Priority(read(fieldPriority)),
	}

	if _, bad := reasons[fieldAssignee]; !bad && strings.TrimSpace(result.Assignee) == "" {
		result.Assignee = model.UnassignedAssignee
	}
	if _, bad := reasons[fieldDueDate]; !bad && strings.TrimSpace(result.DueDate) == "" {
		result.DueDate = model.NoDueDate
	}

	validated, err := model.ValidateExtractionResult(result)
	if err != nil {
		var vErr *model.ValidationError
		if !errors.As(err, &vErr) {
			return model.ExtractionResult{}, err
		}
		for _, f := range vErr.Fields {
			if _, exists := reasons[f.Field]; !exists {
				reasons[f.Field] = f.Reason
			}
		}
	}

	if len(reasons) > 0 {
		return model.ExtractionResult{}, invalidSchema(model.NewValidationError(reasons))
	}
	return validated, nil
}

// stringField reads field as a JSON string. Absent and null fields read as "".
func stringField(raw map[string]json.RawMessage, field string) (string, bool) {
	v, ok := raw[field]
	if !ok || string(v) == "null" {
		return "", true
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// sanitizeJSON removes markdown code fences and leading/trailing prose that
// models sometimes add around JSON output.
func sanitizeJSON(text string) string {
	text = strings.TrimSpace(text)

	if matches := fencedBlock.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// a top-level array is left alone so it fails to decode as an object
	if strings.HasPrefix(text, "[") {
		return text
	}
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
