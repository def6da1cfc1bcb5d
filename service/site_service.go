// api/service/site_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// ISiteService defines the interface for site operations
type ISiteService interface {
	Create(ctx context.Context, trialID string, site model.Site, actor string) (*model.Site, error)
	Get(ctx context.Context, id string) (*model.Site, error)
	ListByTrial(ctx context.Context, trialID string) ([]*model.Site, error)
	ChangeStatus(ctx context.Context, id string, to model.SiteStatus, actor string) (*model.Site, error)
	SetActualEndDate(ctx context.Context, id string, end time.Time, actor string) (*model.Site, error)
	UpdateEnrollment(ctx context.Context, id string, target, actual int, actor string) (*model.Site, error)
}

type SiteService struct {
	base
}

var _ ISiteService = &SiteService{}

func NewSiteService(deps Dependencies) *SiteService {
	return &SiteService{base: newBase(deps, "site")}
}

// Create stores the site and appends it to its trial's site list.
func (s *SiteService) Create(ctx context.Context, trialID string, site model.Site, actor string) (result *model.Site, err error) {
	start := time.Now()
	defer func() {
		err = s.done("create", start, err, zap.String("trialID", trialID), zap.String("siteID", site.SiteID))
	}()

	if err := s.ValidationUtil.ValidateStruct(site); err != nil {
		return nil, err
	}
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	now := s.now()
	site.Base = model.Base{}
	site.Initialize(trialID, actor, now)
	if err := s.Store.Sites.Create(ctx, &site); err != nil {
		return nil, err
	}

	trial, err := s.Store.Trials.Mutate(ctx, trialID, func(t *model.Trial) error {
		t.LinkSite(site.ID, actor, now)
		return nil
	})
	if err != nil {
		logger.Error("Site created but not linked to trial",
			zap.String("siteID", site.ID),
			zap.String("trialID", trialID),
			zap.Error(err))
		return nil, err
	}
	s.CacheService.SetTrial(ctx, trial)
	s.record(ctx, actor, "SITE_CREATED", site.ID, map[string]interface{}{"trialId": trialID, "siteId": site.SiteID})
	return &site, nil
}

func (s *SiteService) Get(ctx context.Context, id string) (*model.Site, error) {
	return s.Store.Sites.Get(ctx, id)
}

func (s *SiteService) ListByTrial(ctx context.Context, trialID string) ([]*model.Site, error) {
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	return s.Store.Sites.List(ctx, bson.M{"trialId": trialID}, dao.ListOptions{SortField: "siteId"})
}

func (s *SiteService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Site, time.Time) error) (result *model.Site, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("siteID", id), zap.String("actor", actor)) }()

	now := s.now()
	site, err := s.Store.Sites.Mutate(ctx, id, func(st *model.Site) error {
		return apply(st, now)
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": site.Status})
	return site, nil
}

func (s *SiteService) ChangeStatus(ctx context.Context, id string, to model.SiteStatus, actor string) (*model.Site, error) {
	return s.mutate(ctx, "changeStatus", id, actor, func(st *model.Site, now time.Time) error {
		return st.ChangeStatus(to, actor, now)
	})
}

func (s *SiteService) SetActualEndDate(ctx context.Context, id string, end time.Time, actor string) (*model.Site, error) {
	return s.mutate(ctx, "setActualEndDate", id, actor, func(st *model.Site, now time.Time) error {
		return st.SetActualEndDate(end, actor, now)
	})
}

func (s *SiteService) UpdateEnrollment(ctx context.Context, id string, target, actual int, actor string) (*model.Site, error) {
	return s.mutate(ctx, "updateEnrollment", id, actor, func(st *model.Site, now time.Time) error {
		return st.UpdateEnrollment(target, actual, actor, now)
	})
}
