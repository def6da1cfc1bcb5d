// api/service/workflow_service_test.go
package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

func reviewWorkflow(documentID string) model.Workflow {
	return model.Workflow{
		Name:       "Protocol review",
		Type:       model.WorkflowTypeReview,
		DocumentID: documentID,
		Steps: []model.WorkflowStep{
			{Order: 2, Name: "Sign", Type: model.StepTypeSign, Assignees: []string{"pi"}},
			{Order: 0, Name: "Review", Type: model.StepTypeReview, Assignees: []string{"reviewer", "backup"}},
			{Order: 1, Name: "Approve", Type: model.StepTypeApprove, Assignees: []string{"approver"}},
		},
	}
}

func TestWorkflowCreate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ws := env.services.Workflow
	doc := createDocument(t, env, model.Document{Title: "Protocol"})

	wf, err := ws.Create(ctx, reviewWorkflow(doc.ID), "owner")
	require.NoError(t, err)
	assert.Contains(t, wf.WorkflowID, "WF-")
	assert.Equal(t, model.WorkflowStatusDraft, wf.Status)
	assert.Equal(t, model.WorkflowStatusPending, wf.WorkflowStatus)
	assert.Equal(t, []int{0, 1, 2}, []int{wf.Steps[0].Order, wf.Steps[1].Order, wf.Steps[2].Order})

	t.Run("MissingDocument", func(t *testing.T) {
		_, err := ws.Create(ctx, reviewWorkflow("missing"), "owner")
		assert.True(t, errors.Is(err, etmf_errors.ErrDocumentNotFound))
	})

	t.Run("DuplicateStepOrder", func(t *testing.T) {
		bad := reviewWorkflow(doc.ID)
		bad.Steps[1].Order = 2
		_, err := ws.Create(ctx, bad, "owner")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	t.Run("NoSteps", func(t *testing.T) {
		bad := reviewWorkflow(doc.ID)
		bad.Steps = nil
		_, err := ws.Create(ctx, bad, "owner")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	listed, err := ws.ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestWorkflowProgression(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ws := env.services.Workflow
	doc := createDocument(t, env, model.Document{Title: "Protocol"})
	wf, err := ws.Create(ctx, reviewWorkflow(doc.ID), "owner")
	require.NoError(t, err)

	_, err = ws.CompleteStep(ctx, wf.ID, 1, "approver", "")
	assert.True(t, errors.Is(err, etmf_errors.ErrOutOfOrder))

	_, err = ws.CompleteStep(ctx, wf.ID, 0, "approver", "")
	assert.True(t, errors.Is(err, etmf_errors.ErrActorNotAssignee))

	started, err := ws.StartStep(ctx, wf.ID, 0, "backup")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusActive, started.Status)
	assert.Equal(t, model.WorkflowStatusInProgress, started.WorkflowStatus)

	done, err := ws.CompleteStep(ctx, wf.ID, 0, "reviewer", "looks good")
	require.NoError(t, err)
	assert.Equal(t, 1, done.CurrentStep)
	assert.Equal(t, "reviewer", done.Steps[0].CompletedBy)
	require.Len(t, done.Steps[0].Comments, 1)

	skipped, err := ws.SkipStep(ctx, wf.ID, 1, "approver", "not needed")
	require.NoError(t, err)
	assert.Equal(t, model.StepStatusSkipped, skipped.Steps[1].Status)
	assert.Equal(t, 1, skipped.CurrentStep)

	commented, err := ws.AddStepComment(ctx, wf.ID, 2, "owner", "please sign by Friday")
	require.NoError(t, err)
	assert.Len(t, commented.Steps[2].Comments, 1)

	final, err := ws.CompleteStep(ctx, wf.ID, 2, "pi", "")
	require.NoError(t, err)
	assert.Equal(t, 3, final.CurrentStep)
	assert.Equal(t, model.WorkflowStatusPending, final.WorkflowStatus)

	fetched, err := ws.Get(ctx, wf.ID)
	require.NoError(t, err)
	assert.InDelta(t, 66.67, fetched.Progress, 0.01)
}

func TestWorkflowRejectHalts(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ws := env.services.Workflow
	doc := createDocument(t, env, model.Document{Title: "Protocol"})
	wf, err := ws.Create(ctx, reviewWorkflow(doc.ID), "owner")
	require.NoError(t, err)

	rejected, err := ws.RejectStep(ctx, wf.ID, 0, "reviewer", "incomplete")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusRejected, rejected.WorkflowStatus)

	_, err = ws.CompleteStep(ctx, wf.ID, 1, "approver", "")
	assert.True(t, errors.Is(err, etmf_errors.ErrWorkflowNotRunnable))

	archived, err := ws.Archive(ctx, wf.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, model.WorkflowStatusArchived, archived.WorkflowStatus)

	_, err = ws.Deprecate(ctx, wf.ID, "owner")
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))
}

func TestWorkflowConcurrentCompletion(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	ws := env.services.Workflow
	doc := createDocument(t, env, model.Document{Title: "Protocol"})
	wf, err := ws.Create(ctx, reviewWorkflow(doc.ID), "owner")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, actor := range []string{"reviewer", "backup"} {
		wg.Add(1)
		go func(i int, actor string) {
			defer wg.Done()
			_, results[i] = ws.CompleteStep(ctx, wf.ID, 0, actor, "")
		}(i, actor)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, etmf_errors.ErrStepNotActionable), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	final, err := ws.Get(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StepStatusCompleted, final.Steps[0].Status)
	assert.Equal(t, 1, final.CurrentStep)
	assert.Equal(t, int64(2), final.Revision)
}
