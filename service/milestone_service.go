// api/service/milestone_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// IMilestoneService defines the interface for milestone operations
type IMilestoneService interface {
	Create(ctx context.Context, trialID string, milestone model.Milestone, actor string) (*model.Milestone, error)
	Get(ctx context.Context, id string) (*model.Milestone, error)
	ListByTrial(ctx context.Context, trialID string) ([]*model.Milestone, error)
	Start(ctx context.Context, id, actor string) (*model.Milestone, error)
	Delay(ctx context.Context, id, actor string) (*model.Milestone, error)
	Cancel(ctx context.Context, id, actor string) (*model.Milestone, error)
	Complete(ctx context.Context, id string, completedDate time.Time, actor string) (*model.Milestone, error)
}

type MilestoneService struct {
	base
}

var _ IMilestoneService = &MilestoneService{}

func NewMilestoneService(deps Dependencies) *MilestoneService {
	return &MilestoneService{base: newBase(deps, "milestone")}
}

// Create requires every dependency to be a milestone of the same trial.
func (s *MilestoneService) Create(ctx context.Context, trialID string, milestone model.Milestone, actor string) (result *model.Milestone, err error) {
	start := time.Now()
	defer func() {
		err = s.done("create", start, err, zap.String("trialID", trialID), zap.String("milestoneID", milestone.MilestoneID))
	}()

	if err := s.ValidationUtil.ValidateStruct(milestone); err != nil {
		return nil, err
	}
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	if milestone.SiteID != "" {
		if _, err := s.Store.Sites.Get(ctx, milestone.SiteID); err != nil {
			return nil, err
		}
	}
	for _, depID := range milestone.Dependencies {
		dep, err := s.Store.Milestones.Get(ctx, depID)
		if err != nil {
			return nil, err
		}
		if dep.TrialID != trialID {
			return nil, etmf_errors.Validation("dependency %s belongs to another trial", depID)
		}
	}

	milestone.Base = model.Base{}
	milestone.Initialize(trialID, actor, s.now())
	if err := s.Store.Milestones.Create(ctx, &milestone); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "MILESTONE_CREATED", milestone.ID, map[string]interface{}{"trialId": trialID})
	return &milestone, nil
}

func (s *MilestoneService) Get(ctx context.Context, id string) (*model.Milestone, error) {
	m, err := s.Store.Milestones.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Evaluate(s.now())
	return m, nil
}

func (s *MilestoneService) ListByTrial(ctx context.Context, trialID string) ([]*model.Milestone, error) {
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	milestones, err := s.Store.Milestones.List(ctx, bson.M{"trialId": trialID}, dao.ListOptions{SortField: "dueDate"})
	if err != nil {
		return nil, err
	}
	now := s.now()
	for _, m := range milestones {
		m.Evaluate(now)
	}
	return milestones, nil
}

func (s *MilestoneService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Milestone, time.Time) error) (result *model.Milestone, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("milestoneID", id), zap.String("actor", actor)) }()

	now := s.now()
	m, err := s.Store.Milestones.Mutate(ctx, id, func(m *model.Milestone) error {
		return apply(m, now)
	})
	if err != nil {
		return nil, err
	}
	m.Evaluate(now)
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": m.Status})
	return m, nil
}

func (s *MilestoneService) Start(ctx context.Context, id, actor string) (*model.Milestone, error) {
	return s.mutate(ctx, "start", id, actor, func(m *model.Milestone, now time.Time) error {
		return m.Start(actor, now)
	})
}

func (s *MilestoneService) Delay(ctx context.Context, id, actor string) (*model.Milestone, error) {
	return s.mutate(ctx, "delay", id, actor, func(m *model.Milestone, now time.Time) error {
		return m.MarkDelayed(actor, now)
	})
}

func (s *MilestoneService) Cancel(ctx context.Context, id, actor string) (*model.Milestone, error) {
	return s.mutate(ctx, "cancel", id, actor, func(m *model.Milestone, now time.Time) error {
		return m.Cancel(actor, now)
	})
}

// Complete refuses while any dependency is not COMPLETED.
func (s *MilestoneService) Complete(ctx context.Context, id string, completedDate time.Time, actor string) (*model.Milestone, error) {
	return s.mutate(ctx, "complete", id, actor, func(m *model.Milestone, now time.Time) error {
		if len(m.Dependencies) > 0 {
			pending, err := s.Store.Milestones.Count(ctx, bson.M{
				"_id":    bson.M{"$in": m.Dependencies},
				"status": bson.M{"$ne": string(model.MilestoneStatusCompleted)},
			})
			if err != nil {
				return err
			}
			if pending > 0 {
				return etmf_errors.ErrMilestoneDependencies
			}
		}
		return m.Complete(completedDate, actor, now)
	})
}
