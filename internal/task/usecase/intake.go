package usecase

import (
	"context"

	"task-intake/internal/model"
	"task-intake/internal/task"
)

// Intake validates the raw text, asks the extractor for structured fields
// and stores the resulting task. Nothing is stored unless every step
// before the store call succeeds.
func (uc *implUseCase) Intake(ctx context.Context, req model.ParseRequest) (model.Task, error) {
	if err := model.ValidateParseRequest(req); err != nil {
		return model.Task{}, &task.IntakeError{Kind: task.IntakeBadRequest, Err: err}
	}

	result, err := uc.extractor.Extract(ctx, req.Input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Intake Extract: %v", err)
		return model.Task{}, &task.IntakeError{Kind: task.IntakeExtractionFailed, Err: err}
	}

	input, err := model.ValidateCreate(result.ToCreateInput())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Intake ValidateCreate: extraction result %+v: %v", result, err)
		return model.Task{}, &task.IntakeError{Kind: task.IntakeInternalInconsistency, Err: err}
	}

	t, err := uc.store(ctx, input)
	if err != nil {
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "uc.Intake: created task id=%d priority=%s", t.ID, t.Priority)
	return t, nil
}
