// api/service/workflow_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// IWorkflowService defines the interface for workflow operations
type IWorkflowService interface {
	Create(ctx context.Context, wf model.Workflow, actor string) (*model.Workflow, error)
	Get(ctx context.Context, id string) (*model.Workflow, error)
	ListByDocument(ctx context.Context, documentID string) ([]*model.Workflow, error)

	StartStep(ctx context.Context, id string, order int, actor string) (*model.Workflow, error)
	CompleteStep(ctx context.Context, id string, order int, actor, comments string) (*model.Workflow, error)
	RejectStep(ctx context.Context, id string, order int, actor, comments string) (*model.Workflow, error)
	SkipStep(ctx context.Context, id string, order int, actor, reason string) (*model.Workflow, error)
	AddStepComment(ctx context.Context, id string, order int, actor, text string) (*model.Workflow, error)

	Archive(ctx context.Context, id, actor string) (*model.Workflow, error)
	Deprecate(ctx context.Context, id, actor string) (*model.Workflow, error)
}

// WorkflowService drives document approval workflows step by step
type WorkflowService struct {
	base
}

var _ IWorkflowService = &WorkflowService{}

func NewWorkflowService(deps Dependencies) *WorkflowService {
	return &WorkflowService{base: newBase(deps, "workflow")}
}

func (s *WorkflowService) Create(ctx context.Context, wf model.Workflow, actor string) (result *model.Workflow, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("documentID", wf.DocumentID)) }()

	if err := s.ValidationUtil.ValidateWorkflow(wf); err != nil {
		return nil, err
	}
	if _, err := s.Store.Documents.Get(ctx, wf.DocumentID); err != nil {
		return nil, err
	}
	if wf.WorkflowID == "" {
		wf.WorkflowID = "WF-" + strings.ToUpper(uuid.NewString()[:8])
	}
	wf.Base = model.Base{}
	if err := wf.Initialize(actor, s.now()); err != nil {
		return nil, err
	}

	if err := s.Store.Workflows.Create(ctx, &wf); err != nil {
		return nil, err
	}
	s.CacheService.SetWorkflow(ctx, &wf)
	s.record(ctx, actor, "CREATE_WORKFLOW", wf.ID, map[string]interface{}{
		"workflowId": wf.WorkflowID,
		"documentId": wf.DocumentID,
		"steps":      len(wf.Steps),
	})
	return &wf, nil
}

func (s *WorkflowService) Get(ctx context.Context, id string) (*model.Workflow, error) {
	if wf, ok := s.CacheService.GetWorkflow(ctx, id); ok {
		wf.Evaluate()
		return wf, nil
	}
	wf, err := s.Store.Workflows.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.CacheService.SetWorkflow(ctx, wf)
	wf.Evaluate()
	return wf, nil
}

func (s *WorkflowService) ListByDocument(ctx context.Context, documentID string) ([]*model.Workflow, error) {
	if _, err := s.Store.Documents.Get(ctx, documentID); err != nil {
		return nil, err
	}
	workflows, err := s.Store.Workflows.List(ctx, bson.M{"documentId": documentID}, dao.ListOptions{SortField: "createdAt"})
	if err != nil {
		return nil, err
	}
	for _, wf := range workflows {
		wf.Evaluate()
	}
	return workflows, nil
}

// mutate re-applies the step operation to freshly loaded state on every revision conflict, so
// the loser of a race observes the winner's result.
func (s *WorkflowService) mutate(ctx context.Context, operation, id, actor string, fields []zap.Field, apply func(*model.Workflow, time.Time) error) (result *model.Workflow, err error) {
	start := time.Now()
	defer func() {
		err = s.done(operation, start, err, append(fields, zap.String("workflowID", id), zap.String("actor", actor))...)
	}()

	now := s.now()
	wf, err := s.Store.Workflows.Mutate(ctx, id, func(w *model.Workflow) error {
		return apply(w, now)
	})
	if err != nil {
		return nil, err
	}
	wf.Evaluate()
	s.CacheService.SetWorkflow(ctx, wf)
	s.record(ctx, actor, operation, id, map[string]interface{}{
		"currentStep":    wf.CurrentStep,
		"workflowStatus": wf.WorkflowStatus,
	})
	return wf, nil
}

func (s *WorkflowService) StartStep(ctx context.Context, id string, order int, actor string) (*model.Workflow, error) {
	return s.mutate(ctx, "startStep", id, actor, []zap.Field{zap.Int("step", order)}, func(w *model.Workflow, now time.Time) error {
		return w.StartStep(order, actor, now)
	})
}

func (s *WorkflowService) CompleteStep(ctx context.Context, id string, order int, actor, comments string) (*model.Workflow, error) {
	return s.mutate(ctx, "completeStep", id, actor, []zap.Field{zap.Int("step", order)}, func(w *model.Workflow, now time.Time) error {
		return w.CompleteStep(order, actor, comments, now)
	})
}

func (s *WorkflowService) RejectStep(ctx context.Context, id string, order int, actor, comments string) (*model.Workflow, error) {
	return s.mutate(ctx, "rejectStep", id, actor, []zap.Field{zap.Int("step", order)}, func(w *model.Workflow, now time.Time) error {
		return w.RejectStep(order, actor, comments, now)
	})
}

func (s *WorkflowService) SkipStep(ctx context.Context, id string, order int, actor, reason string) (*model.Workflow, error) {
	return s.mutate(ctx, "skipStep", id, actor, []zap.Field{zap.Int("step", order)}, func(w *model.Workflow, now time.Time) error {
		return w.SkipStep(order, actor, reason, now)
	})
}

func (s *WorkflowService) AddStepComment(ctx context.Context, id string, order int, actor, text string) (*model.Workflow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, etmf_errors.Validation("comment text is required")
	}
	return s.mutate(ctx, "addStepComment", id, actor, []zap.Field{zap.Int("step", order)}, func(w *model.Workflow, now time.Time) error {
		return w.AddStepComment(order, actor, text, now)
	})
}

func (s *WorkflowService) Archive(ctx context.Context, id, actor string) (*model.Workflow, error) {
	return s.mutate(ctx, "archive", id, actor, nil, func(w *model.Workflow, now time.Time) error {
		return w.Archive(actor, now)
	})
}

func (s *WorkflowService) Deprecate(ctx context.Context, id, actor string) (*model.Workflow, error) {
	return s.mutate(ctx, "deprecate", id, actor, nil, func(w *model.Workflow, now time.Time) error {
		return w.Deprecate(actor, now)
	})
}
