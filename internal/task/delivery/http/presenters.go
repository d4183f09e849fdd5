package http

import (
	"time"

	"task-intake/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Input string `json:"input" example:"Finish landing page Rajeev by tomorrow 5pm P1"`
}

func (r parseReq) toInput() model.ParseRequest {
	return model.ParseRequest{Input: r.Input}
}

// ---

type createReq struct {
	Name     string `json:"name"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"priority" enums:"P1,P2,P3,P4"`
	Status   string `json:"status"   enums:"pending,in-progress,completed"`
}

func (r createReq) toInput(immutable []string) model.CreateTaskInput {
	return model.CreateTaskInput{
		Name:            r.Name,
		Assignee:        r.Assignee,
		DueDate:         r.DueDate,
		Priority:        model.Priority(r.Priority),
		Status:          model.Status(r.Status),
		ImmutableFields: immutable,
	}
}

// ---

type updateReq struct {
	Name     *string `json:"name"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"dueDate"`
	Priority *string `json:"priority" enums:"P1,P2,P3,P4"`
	Status   *string `json:"status"   enums:"pending,in-progress,completed"`
}

func (r updateReq) toInput(immutable []string) model.UpdateTaskInput {
	in := model.UpdateTaskInput{
		Name:            r.Name,
		Assignee:        r.Assignee,
		DueDate:         r.DueDate,
		ImmutableFields: immutable,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := model.Status(*r.Status)
		in.Status = &s
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Assignee  string `json:"assignee"`
	DueDate   string `json:"dueDate"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Name:      t.Name,
		Assignee:  t.Assignee,
		DueDate:   t.DueDate,
		Priority:  string(t.Priority),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	resp := make([]taskResp, len(tasks))
	for i, t := range tasks {
		resp[i] = newTaskResp(t)
	}
	return resp
}

type statsResp struct {
	Total      int            `json:"total"`
	Pending    int            `json:"pending"`
	InProgress int            `json:"inProgress"`
	Completed  int            `json:"completed"`
	DueToday   int            `json:"dueToday"`
	ByPriority map[string]int `json:"byPriority"`
}

func newStatsResp(s model.TaskStats) statsResp {
	byPriority := make(map[string]int, len(s.ByPriority))
	for p, n := range s.ByPriority {
		byPriority[string(p)] = n
	}
	return statsResp{
		Total:      s.Total,
		Pending:    s.Pending,
		InProgress: s.InProgress,
		Completed:  s.Completed,
		DueToday:   s.DueToday,
		ByPriority: byPriority,
	}
}
