package model

import "time"

// Priority is the urgency of a task, P1 being the most urgent.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"

	DefaultPriority = PriorityP3
)

// Priorities lists every accepted priority, most urgent first.
var Priorities = []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"

	DefaultStatus = StatusPending
)

// Statuses lists every accepted status.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Placeholders used when the free text does not mention an assignee or a due date.
const (
	UnassignedAssignee = "Unassigned"
	NoDueDate          = "No due date"
)

// Task is a persisted task record.
type Task struct {
	ID        int64
	Name      string
	Assignee  string
	DueDate   string // display text such as "5:00 PM, Tomorrow", never parsed
	Priority  Priority
	Status    Status
	CreatedAt time.Time
}

// IsZero reports whether t is the zero Task, which stores return for a missing id.
func (t Task) IsZero() bool {
	return t.ID == 0
}

// Apply returns a copy of t with the fields present in u overwritten.
func (t Task) Apply(u UpdateTaskInput) Task {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Assignee != nil {
		t.Assignee = *u.Assignee
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	return t
}

// CreateTaskInput is the payload accepted when creating a task.
// ImmutableFields carries the names of store-owned fields (id, createdAt)
// the client tried to set; they are reported as validation errors.
type CreateTaskInput struct {
	Name            string   `json:"name"`
	Assignee        string   `json:"assignee"`
	DueDate         string   `json:"dueDate"`
	Priority        Priority `json:"priority"`
	Status          Status   `json:"status"`
	ImmutableFields []string `json:"-"`
}

// UpdateTaskInput is a partial update. A nil field is left untouched.
type UpdateTaskInput struct {
	Name            *string   `json:"name"`
	Assignee        *string   `json:"assignee"`
	DueDate         *string   `json:"dueDate"`
	Priority        *Priority `json:"priority"`
	Status          *Status   `json:"status"`
	ImmutableFields []string  `json:"-"`
}

// IsEmpty reports whether u changes nothing.
func (u UpdateTaskInput) IsEmpty() bool {
	return u.Name == nil && u.Assignee == nil && u.DueDate == nil && u.Priority == nil && u.Status == nil
}

// ParseRequest is the free-text body of an intake request.
type ParseRequest struct {
	Input string `json:"input"`
}

// ExtractionResult is the structured output of the extraction service.
type ExtractionResult struct {
	TaskName string   `json:"taskName"`
	Assignee string   `json:"assignee"`
	DueDate  string   `json:"dueDate"`
	Priority Priority `json:"priority"`
}

// ToCreateInput maps an extraction result to a creation payload. New tasks
// created from free text always start pending.
func (r ExtractionResult) ToCreateInput() CreateTaskInput {
	return CreateTaskInput{
		Name:     r.TaskName,
		Assignee: r.Assignee,
		DueDate:  r.DueDate,
		Priority: r.Priority,
		Status:   StatusPending,
	}
}

// TaskFilter narrows a task listing. Empty fields match everything.
type TaskFilter struct {
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}
