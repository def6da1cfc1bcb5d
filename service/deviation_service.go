// api/service/deviation_service.go
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

// IDeviationService defines the interface for protocol deviation operations
type IDeviationService interface {
	Create(ctx context.Context, trialID string, deviation model.Deviation, actor string) (*model.Deviation, error)
	Get(ctx context.Context, id string) (*model.Deviation, error)
	ListByTrial(ctx context.Context, trialID string, status model.DeviationStatus) ([]*model.Deviation, error)
	Submit(ctx context.Context, id, actor string) (*model.Deviation, error)
	StartReview(ctx context.Context, id, actor string) (*model.Deviation, error)
	AddReview(ctx context.Context, id string, review model.DeviationReview, actor string) (*model.Deviation, error)
	Approve(ctx context.Context, id, actor, role, comments string) (*model.Deviation, error)
	Reject(ctx context.Context, id, actor, role, comments string) (*model.Deviation, error)
	Close(ctx context.Context, id, actor string) (*model.Deviation, error)
	Resolve(ctx context.Context, id string, resolvedDate time.Time, actor string) (*model.Deviation, error)
}

type DeviationService struct {
	base
}

var _ IDeviationService = &DeviationService{}

func NewDeviationService(deps Dependencies) *DeviationService {
	return &DeviationService{base: newBase(deps, "deviation")}
}

func (s *DeviationService) Create(ctx context.Context, trialID string, deviation model.Deviation, actor string) (result *model.Deviation, err error) {
	start := time.Now()
	defer func() {
		err = s.done("create", start, err, zap.String("trialID", trialID), zap.String("deviationID", deviation.DeviationID))
	}()

	if err := s.ValidationUtil.ValidateStruct(deviation); err != nil {
		return nil, err
	}
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	site, err := s.Store.Sites.Get(ctx, deviation.SiteID)
	if err != nil {
		return nil, err
	}
	if site.TrialID != trialID {
		return nil, etmf_errors.Validation("site %s does not belong to trial %s", deviation.SiteID, trialID)
	}

	deviation.Base = model.Base{}
	deviation.Initialize(trialID, actor, s.now())
	if err := s.Store.Deviations.Create(ctx, &deviation); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "DEVIATION_CREATED", deviation.ID, map[string]interface{}{
		"trialId":  trialID,
		"severity": deviation.Severity,
	})
	return &deviation, nil
}

func (s *DeviationService) Get(ctx context.Context, id string) (*model.Deviation, error) {
	return s.Store.Deviations.Get(ctx, id)
}

func (s *DeviationService) ListByTrial(ctx context.Context, trialID string, status model.DeviationStatus) ([]*model.Deviation, error) {
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	filter := bson.M{"trialId": trialID}
	if status != "" {
		filter["status"] = string(status)
	}
	return s.Store.Deviations.List(ctx, filter, dao.ListOptions{SortField: "reportedDate", SortDesc: true})
}

func (s *DeviationService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Deviation, time.Time) error) (result *model.Deviation, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("deviationID", id), zap.String("actor", actor)) }()

	now := s.now()
	d, err := s.Store.Deviations.Mutate(ctx, id, func(d *model.Deviation) error {
		return apply(d, now)
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": d.Status})
	return d, nil
}

func (s *DeviationService) Submit(ctx context.Context, id, actor string) (*model.Deviation, error) {
	return s.mutate(ctx, "submit", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.Submit(actor, now)
	})
}

func (s *DeviationService) StartReview(ctx context.Context, id, actor string) (*model.Deviation, error) {
	return s.mutate(ctx, "startReview", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.StartReview(actor, now)
	})
}

func (s *DeviationService) AddReview(ctx context.Context, id string, review model.DeviationReview, actor string) (*model.Deviation, error) {
	review.UserID = actor
	if review.Status != "" {
		if err := s.ValidationUtil.ValidateStruct(review); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, "addReview", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.AddReview(review, now)
	})
}

func (s *DeviationService) Approve(ctx context.Context, id, actor, role, comments string) (*model.Deviation, error) {
	return s.mutate(ctx, "approve", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.Approve(actor, role, comments, now)
	})
}

func (s *DeviationService) Reject(ctx context.Context, id, actor, role, comments string) (*model.Deviation, error) {
	return s.mutate(ctx, "reject", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.Reject(actor, role, comments, now)
	})
}

func (s *DeviationService) Close(ctx context.Context, id, actor string) (*model.Deviation, error) {
	return s.mutate(ctx, "close", id, actor, func(d *model.Deviation, now time.Time) error {
		return d.Close(actor, now)
	})
}

// Resolve closes the deviation from any state. An already closed deviation is returned unchanged.
func (s *DeviationService) Resolve(ctx context.Context, id string, resolvedDate time.Time, actor string) (*model.Deviation, error) {
	return s.mutate(ctx, "resolve", id, actor, func(d *model.Deviation, now time.Time) error {
		if !d.Resolve(resolvedDate, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}
