package http

import (
	"github.com/gin-gonic/gin"

	"task-intake/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task in creation order, optionally filtered by status and priority.
// @Tags        Tasks
// @Produce     json
// @Param       status   query string false "Filter by status (pending/in-progress/completed)"
// @Param       priority query string false "Filter by priority (P1/P2/P3/P4)"
// @Success     200 {array}  taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.List(ctx, h.processListReq(c))
	if err != nil {
		h.l.Warnf(ctx, "http.List: %v", err)
		response.Error(c, h.mapError(err, listMsgs))
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// Stats godoc
// @Summary     Task counters
// @Description Returns task totals per status and per priority.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Warnf(ctx, "http.Stats: %v", err)
		response.Error(c, h.mapError(err, statsMsgs))
		return
	}

	response.OK(c, newStatsResp(stats))
}

// Detail godoc
// @Summary     Get a task
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "http.Detail: %v", err)
		response.Error(c, h.mapError(err, detailMsgs))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Parse godoc
// @Summary     Create a task from free text
// @Description Sends the description to the extraction service and stores the structured result.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Free-text task description"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Invalid input or unusable extraction"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Extraction service or store failure"
// @Router      /api/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Intake(ctx, req)
	if err != nil {
		h.l.Warnf(ctx, "http.Parse: %v", err)
		response.Error(c, h.mapError(err, parseMsgs))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task from a structured payload. Priority defaults to P3 and status to pending.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "http.Create: %v", err)
		response.Error(c, h.mapError(err, createMsgs))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Absent fields are left untouched.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, id, input)
	if err != nil {
		h.l.Warnf(ctx, "http.Update: %v", err)
		response.Error(c, h.mapError(err, updateMsgs))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "http.Delete: %v", err)
		response.Error(c, h.mapError(err, deleteMsgs))
		return
	}

	response.Message(c, MsgTaskDeleted)
}
