// api/service/sop_service.go
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

// ISOPService defines the interface for standard operating procedure operations
type ISOPService interface {
	Create(ctx context.Context, sop model.SOP, actor string) (*model.SOP, error)
	Get(ctx context.Context, id string) (*model.SOP, error)
	List(ctx context.Context, filter model.SOPFilter) ([]*model.SOP, error)
	ChangeStatus(ctx context.Context, id string, to model.ControlledStatus, actor string) (*model.SOP, error)
	SetExpiry(ctx context.Context, id string, expiry *time.Time, actor string) (*model.SOP, error)
	AddReview(ctx context.Context, id string, review model.ControlledReview, actor string) (*model.SOP, error)
	LinkSOP(ctx context.Context, id, relatedID, actor string) (*model.SOP, error)
}

type SOPService struct {
	base
}

var _ ISOPService = &SOPService{}

func NewSOPService(deps Dependencies) *SOPService {
	return &SOPService{base: newBase(deps, "sop")}
}

func (s *SOPService) Create(ctx context.Context, sop model.SOP, actor string) (result *model.SOP, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("sopID", sop.SOPID)) }()

	if err := s.ValidationUtil.ValidateStruct(sop); err != nil {
		return nil, err
	}
	for _, related := range sop.RelatedSOPIDs {
		if _, err := s.Store.SOPs.Get(ctx, related); err != nil {
			return nil, err
		}
	}

	sop.Base = model.Base{}
	if err := sop.Initialize(actor, s.now()); err != nil {
		return nil, err
	}
	if err := s.Store.SOPs.Create(ctx, &sop); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "SOP_CREATED", sop.ID, map[string]interface{}{
		"sopId":   sop.SOPID,
		"version": sop.Version,
	})
	return &sop, nil
}

func (s *SOPService) Get(ctx context.Context, id string) (*model.SOP, error) {
	sop, err := s.Store.SOPs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sop.Evaluate(s.now())
	return sop, nil
}

// List matches the status filter against the effective status, so expired SOPs list as DEPRECATED.
func (s *SOPService) List(ctx context.Context, filter model.SOPFilter) ([]*model.SOP, error) {
	q := bson.M{}
	if filter.Department != "" {
		q["department"] = filter.Department
	}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.Keyword != "" {
		q["keywords"] = filter.Keyword
	}
	sops, err := s.Store.SOPs.List(ctx, q, dao.ListOptions{SortField: "sopId"})
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]*model.SOP, 0, len(sops))
	for _, sop := range sops {
		sop.Evaluate(now)
		if filter.Status == "" || sop.Status == filter.Status {
			out = append(out, sop)
		}
	}
	return out, nil
}

func (s *SOPService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.SOP, time.Time) error) (result *model.SOP, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("sopID", id), zap.String("actor", actor)) }()

	now := s.now()
	sop, err := s.Store.SOPs.Mutate(ctx, id, func(sop *model.SOP) error {
		return apply(sop, now)
	})
	if err != nil {
		return nil, err
	}
	sop.Evaluate(now)
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": sop.Status, "version": sop.Version})
	return sop, nil
}

func (s *SOPService) ChangeStatus(ctx context.Context, id string, to model.ControlledStatus, actor string) (*model.SOP, error) {
	return s.mutate(ctx, "changeStatus", id, actor, func(sop *model.SOP, now time.Time) error {
		return sop.ChangeStatus(to, actor, now)
	})
}

// SetExpiry deprecates the SOP when expiry has already passed. A nil expiry clears the date.
func (s *SOPService) SetExpiry(ctx context.Context, id string, expiry *time.Time, actor string) (*model.SOP, error) {
	return s.mutate(ctx, "setExpiry", id, actor, func(sop *model.SOP, now time.Time) error {
		return sop.SetExpiry(expiry, actor, now)
	})
}

func (s *SOPService) AddReview(ctx context.Context, id string, review model.ControlledReview, actor string) (*model.SOP, error) {
	review.UserID = actor
	if err := s.ValidationUtil.ValidateStruct(review); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "addReview", id, actor, func(sop *model.SOP, now time.Time) error {
		return sop.AddReview(review, now)
	})
}

// LinkSOP relates two SOPs. Linking an SOP to itself is rejected.
func (s *SOPService) LinkSOP(ctx context.Context, id, relatedID, actor string) (*model.SOP, error) {
	if id == relatedID {
		return nil, etmf_errors.Validation("an SOP cannot be related to itself")
	}
	if _, err := s.Store.SOPs.Get(ctx, relatedID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "linkSop", id, actor, func(sop *model.SOP, now time.Time) error {
		if !sop.LinkSOP(relatedID, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}
