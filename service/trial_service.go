// api/service/trial_service.go
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

// ITrialService defines the interface for trial operations
type ITrialService interface {
	Create(ctx context.Context, trial model.Trial, actor string) (*model.Trial, error)
	Get(ctx context.Context, id string) (*model.Trial, error)
	GetByStudyID(ctx context.Context, studyID string) (*model.Trial, error)
	List(ctx context.Context, status model.TrialStatus, limit, offset int) ([]*model.Trial, int64, error)
	UpdateDates(ctx context.Context, id string, startDate, endDate time.Time, actor string) (*model.Trial, error)
	ChangeStatus(ctx context.Context, id string, to model.TrialStatus, actor string) (*model.Trial, error)
	AddTeamMember(ctx context.Context, id string, member model.TeamMember, actor string) (*model.Trial, error)
	RemoveTeamMember(ctx context.Context, id, userID, actor string) (*model.Trial, error)
	AddCountry(ctx context.Context, id string, country model.CountryEntry, actor string) (*model.Trial, error)
	Archive(ctx context.Context, id, actor string) (*model.Trial, error)
}

type TrialService struct {
	base
}

var _ ITrialService = &TrialService{}

func NewTrialService(deps Dependencies) *TrialService {
	return &TrialService{base: newBase(deps, "trial")}
}

func (s *TrialService) Create(ctx context.Context, trial model.Trial, actor string) (result *model.Trial, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("studyID", trial.StudyID)) }()

	if err := s.ValidationUtil.ValidateTrial(trial); err != nil {
		return nil, err
	}
	trial.Base = model.Base{}
	if err := trial.Initialize(actor, s.now()); err != nil {
		return nil, err
	}
	if err := s.Store.Trials.Create(ctx, &trial); err != nil {
		return nil, err
	}
	s.CacheService.SetTrial(ctx, &trial)
	s.record(ctx, actor, model.ActionTrialCreated, trial.ID, map[string]interface{}{
		"studyId":        trial.StudyID,
		"protocolNumber": trial.ProtocolNumber,
	})
	return &trial, nil
}

func (s *TrialService) Get(ctx context.Context, id string) (*model.Trial, error) {
	if trial, ok := s.CacheService.GetTrial(ctx, id); ok {
		return trial, nil
	}
	trial, err := s.Store.Trials.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.CacheService.SetTrial(ctx, trial)
	return trial, nil
}

func (s *TrialService) GetByStudyID(ctx context.Context, studyID string) (*model.Trial, error) {
	if studyID == "" {
		return nil, etmf_errors.Validation("studyId is required")
	}
	return s.Store.Trials.FindOne(ctx, bson.M{"studyId": studyID})
}

func (s *TrialService) List(ctx context.Context, status model.TrialStatus, limit, offset int) ([]*model.Trial, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	total, err := s.Store.Trials.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	trials, err := s.Store.Trials.List(ctx, filter, dao.ListOptions{
		Limit:     limit,
		Offset:    offset,
		SortField: "startDate",
		SortDesc:  true,
	})
	if err != nil {
		return nil, 0, err
	}
	return trials, total, nil
}

func (s *TrialService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Trial, time.Time) error) (result *model.Trial, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("trialID", id), zap.String("actor", actor)) }()

	now := s.now()
	trial, err := s.Store.Trials.Mutate(ctx, id, func(t *model.Trial) error {
		return apply(t, now)
	})
	if err != nil {
		return nil, err
	}
	s.CacheService.SetTrial(ctx, trial)
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": trial.Status})
	return trial, nil
}

func (s *TrialService) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time, actor string) (*model.Trial, error) {
	return s.mutate(ctx, "updateDates", id, actor, func(t *model.Trial, now time.Time) error {
		return t.UpdateDates(startDate, endDate, actor, now)
	})
}

func (s *TrialService) ChangeStatus(ctx context.Context, id string, to model.TrialStatus, actor string) (*model.Trial, error) {
	return s.mutate(ctx, "changeStatus", id, actor, func(t *model.Trial, now time.Time) error {
		return t.ChangeStatus(to, actor, now)
	})
}

func (s *TrialService) AddTeamMember(ctx context.Context, id string, member model.TeamMember, actor string) (*model.Trial, error) {
	if err := s.ValidationUtil.ValidateStruct(member); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "addTeamMember", id, actor, func(t *model.Trial, now time.Time) error {
		if !t.AddTeamMember(member, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}

func (s *TrialService) RemoveTeamMember(ctx context.Context, id, userID, actor string) (*model.Trial, error) {
	return s.mutate(ctx, "removeTeamMember", id, actor, func(t *model.Trial, now time.Time) error {
		if !t.RemoveTeamMember(userID, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}

func (s *TrialService) AddCountry(ctx context.Context, id string, country model.CountryEntry, actor string) (*model.Trial, error) {
	if err := s.ValidationUtil.ValidateStruct(country); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "addCountry", id, actor, func(t *model.Trial, now time.Time) error {
		if !t.AddCountry(country, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}

func (s *TrialService) Archive(ctx context.Context, id, actor string) (*model.Trial, error) {
	return s.ChangeStatus(ctx, id, model.TrialStatusArchived, actor)
}
