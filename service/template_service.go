// api/service/template_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// ITemplateService defines the interface for document template operations
type ITemplateService interface {
	Create(ctx context.Context, template model.DocumentTemplate, actor string) (*model.DocumentTemplate, error)
	Get(ctx context.Context, id string) (*model.DocumentTemplate, error)
	List(ctx context.Context, filter model.TemplateFilter) ([]*model.DocumentTemplate, error)
	ChangeStatus(ctx context.Context, id string, to model.ControlledStatus, actor string) (*model.DocumentTemplate, error)
	SetExpiry(ctx context.Context, id string, expiry *time.Time, actor string) (*model.DocumentTemplate, error)
	AddReview(ctx context.Context, id string, review model.ControlledReview, actor string) (*model.DocumentTemplate, error)
	Render(ctx context.Context, id string, values map[string]string, actor string) (string, error)
}

type TemplateService struct {
	base
}

var _ ITemplateService = &TemplateService{}

func NewTemplateService(deps Dependencies) *TemplateService {
	return &TemplateService{base: newBase(deps, "template")}
}

func (s *TemplateService) Create(ctx context.Context, template model.DocumentTemplate, actor string) (result *model.DocumentTemplate, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("templateID", template.TemplateID)) }()

	if err := s.ValidationUtil.ValidateStruct(template); err != nil {
		return nil, err
	}

	template.Base = model.Base{}
	if err := template.Initialize(actor, s.now()); err != nil {
		return nil, err
	}
	if err := s.Store.Templates.Create(ctx, &template); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "TEMPLATE_CREATED", template.ID, map[string]interface{}{
		"templateId": template.TemplateID,
		"version":    template.Version,
	})
	return &template, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (*model.DocumentTemplate, error) {
	template, err := s.Store.Templates.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	template.Evaluate(s.now())
	return template, nil
}

// List matches the status filter against the effective status, so expired templates list as DEPRECATED.
func (s *TemplateService) List(ctx context.Context, filter model.TemplateFilter) ([]*model.DocumentTemplate, error) {
	q := bson.M{}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	templates, err := s.Store.Templates.List(ctx, q, dao.ListOptions{SortField: "name"})
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]*model.DocumentTemplate, 0, len(templates))
	for _, t := range templates {
		t.Evaluate(now)
		if filter.Status == "" || t.Status == filter.Status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TemplateService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.DocumentTemplate, time.Time) error) (result *model.DocumentTemplate, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("templateID", id), zap.String("actor", actor)) }()

	now := s.now()
	template, err := s.Store.Templates.Mutate(ctx, id, func(t *model.DocumentTemplate) error {
		return apply(t, now)
	})
	if err != nil {
		return nil, err
	}
	template.Evaluate(now)
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": template.Status, "version": template.Version})
	return template, nil
}

func (s *TemplateService) ChangeStatus(ctx context.Context, id string, to model.ControlledStatus, actor string) (*model.DocumentTemplate, error) {
	return s.mutate(ctx, "changeStatus", id, actor, func(t *model.DocumentTemplate, now time.Time) error {
		return t.ChangeStatus(to, actor, now)
	})
}

func (s *TemplateService) SetExpiry(ctx context.Context, id string, expiry *time.Time, actor string) (*model.DocumentTemplate, error) {
	return s.mutate(ctx, "setExpiry", id, actor, func(t *model.DocumentTemplate, now time.Time) error {
		return t.SetExpiry(expiry, actor, now)
	})
}

func (s *TemplateService) AddReview(ctx context.Context, id string, review model.ControlledReview, actor string) (*model.DocumentTemplate, error) {
	review.UserID = actor
	if err := s.ValidationUtil.ValidateStruct(review); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "addReview", id, actor, func(t *model.DocumentTemplate, now time.Time) error {
		return t.AddReview(review, now)
	})
}

// Render fills the template's placeholders. Only approved templates inside their effective window render.
func (s *TemplateService) Render(ctx context.Context, id string, values map[string]string, actor string) (content string, err error) {
	start := time.Now()
	defer func() { err = s.done("render", start, err, zap.String("templateID", id), zap.String("actor", actor)) }()

	template, err := s.Store.Templates.Get(ctx, id)
	if err != nil {
		return "", err
	}
	content, err = template.Render(values, s.now())
	if err != nil {
		return "", err
	}
	s.record(ctx, actor, "TEMPLATE_RENDERED", id, map[string]interface{}{"version": template.Version})
	return content, nil
}
