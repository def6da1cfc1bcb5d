// api/errors/workflow_errors.go
package errors

var (
	ErrWorkflowNotFound    = New(ErrNotFound, "workflow not found")
	ErrWorkflowConflict    = New(ErrConflict, "workflow id already exists")
	ErrStepNotFound        = New(ErrNotFound, "workflow step not found")
	ErrStepOutOfOrder      = New(ErrOutOfOrder, "an earlier step has not been completed")
	ErrStepNotActionable   = New(ErrInvalidState, "step is not pending or in progress")
	ErrActorNotAssignee    = New(ErrInvalidState, "actor is not an assignee of the step")
	ErrWorkflowNotRunnable = New(ErrInvalidState, "workflow does not accept step changes")
)
