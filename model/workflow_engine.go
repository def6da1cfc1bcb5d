// api/model/workflow_engine.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

// recomputeCurrentStep sets CurrentStep to one past the last COMPLETED step.
func (w *Workflow) recomputeCurrentStep() {
	current := 0
	for i, s := range w.Steps {
		if s.Status == StepStatusCompleted {
			current = i + 1
		}
	}
	w.CurrentStep = current
}

func (w *Workflow) stepIndex(order int) (int, error) {
	for i := range w.Steps {
		if w.Steps[i].Order == order {
			return i, nil
		}
	}
	return -1, etmf_errors.ErrStepNotFound
}

// actionableStep runs the checks shared by every step transition and returns the step index.
func (w *Workflow) actionableStep(order int, actor string) (int, error) {
	switch w.DerivedStatus() {
	case WorkflowStatusArchived, WorkflowStatusDeprecated, WorkflowStatusRejected, WorkflowStatusCompleted:
		return -1, etmf_errors.ErrWorkflowNotRunnable
	}
	idx, err := w.stepIndex(order)
	if err != nil {
		return -1, err
	}
	step := &w.Steps[idx]
	if step.Status != StepStatusPending && step.Status != StepStatusInProgress {
		return -1, etmf_errors.ErrStepNotActionable
	}
	if !containsString(step.Assignees, actor) {
		return -1, etmf_errors.ErrActorNotAssignee
	}
	for i := 0; i < idx; i++ {
		if w.Steps[i].Status == StepStatusPending || w.Steps[i].Status == StepStatusInProgress {
			return -1, etmf_errors.ErrStepOutOfOrder
		}
	}
	return idx, nil
}

func (w *Workflow) finishStep(idx int, status StepStatus, actor, comments string, now time.Time) {
	step := &w.Steps[idx]
	step.Status = status
	if status == StepStatusCompleted {
		completedAt := now
		step.CompletedBy = actor
		step.CompletedAt = &completedAt
	}
	if comments != "" {
		step.Comments = append(step.Comments, StepComment{UserID: actor, Text: comments, Timestamp: now})
	}
	w.afterStepChange(actor, now)
}

func (w *Workflow) afterStepChange(actor string, now time.Time) {
	if w.Status == WorkflowStatusDraft {
		w.Status = WorkflowStatusActive
	}
	w.UpdatedBy = actor
	w.recomputeCurrentStep()
	w.Touch(now)
	w.Evaluate()
}

// StartStep moves a PENDING step to IN_PROGRESS.
func (w *Workflow) StartStep(order int, actor string, now time.Time) error {
	idx, err := w.actionableStep(order, actor)
	if err != nil {
		return err
	}
	if w.Steps[idx].Status != StepStatusPending {
		return etmf_errors.ErrStepNotActionable
	}
	w.Steps[idx].Status = StepStatusInProgress
	w.afterStepChange(actor, now)
	return nil
}

func (w *Workflow) CompleteStep(order int, actor, comments string, now time.Time) error {
	idx, err := w.actionableStep(order, actor)
	if err != nil {
		return err
	}
	w.finishStep(idx, StepStatusCompleted, actor, comments, now)
	return nil
}

// RejectStep halts the workflow; no later step can progress afterwards.
func (w *Workflow) RejectStep(order int, actor, comments string, now time.Time) error {
	idx, err := w.actionableStep(order, actor)
	if err != nil {
		return err
	}
	w.finishStep(idx, StepStatusRejected, actor, comments, now)
	return nil
}

func (w *Workflow) SkipStep(order int, actor, reason string, now time.Time) error {
	idx, err := w.actionableStep(order, actor)
	if err != nil {
		return err
	}
	w.finishStep(idx, StepStatusSkipped, actor, reason, now)
	return nil
}

// AddStepComment appends to a step's thread regardless of its status.
func (w *Workflow) AddStepComment(order int, actor, text string, now time.Time) error {
	if text == "" {
		return etmf_errors.Validation("comment text is required")
	}
	idx, err := w.stepIndex(order)
	if err != nil {
		return err
	}
	w.Steps[idx].Comments = append(w.Steps[idx].Comments, StepComment{UserID: actor, Text: text, Timestamp: now})
	w.UpdatedBy = actor
	w.Touch(now)
	w.Evaluate()
	return nil
}

func (w *Workflow) setStoredStatus(to WorkflowStatus, actor string, now time.Time) error {
	if w.Status == WorkflowStatusArchived || w.Status == WorkflowStatusDeprecated {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "workflow is already %s", w.Status)
	}
	w.Status = to
	w.UpdatedBy = actor
	w.Touch(now)
	w.Evaluate()
	return nil
}

func (w *Workflow) Archive(actor string, now time.Time) error {
	return w.setStoredStatus(WorkflowStatusArchived, actor, now)
}

func (w *Workflow) Deprecate(actor string, now time.Time) error {
	return w.setStoredStatus(WorkflowStatusDeprecated, actor, now)
}
