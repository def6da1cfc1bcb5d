// api/service/role_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// IRoleService defines the interface for role operations
type IRoleService interface {
	Create(ctx context.Context, role model.Role, actor string) (*model.Role, error)
	Get(ctx context.Context, id string) (*model.Role, error)
	List(ctx context.Context, status model.RoleStatus, limit, offset int) ([]*model.Role, error)
	UpdatePermissions(ctx context.Context, id string, permissions model.Permissions, actor string) (*model.Role, error)
	UpdateDetails(ctx context.Context, id string, details model.RoleDetails, actor string) (*model.Role, error)
	SetStatus(ctx context.Context, id string, status model.RoleStatus, actor string) (*model.Role, error)
}

// RoleService handles business logic for role operations
type RoleService struct {
	base
}

var _ IRoleService = &RoleService{}

func NewRoleService(deps Dependencies) *RoleService {
	return &RoleService{base: newBase(deps, "role")}
}

// Create handles the creation of a new role
func (s *RoleService) Create(ctx context.Context, role model.Role, actor string) (result *model.Role, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("roleID", role.RoleID)) }()

	if err := s.ValidationUtil.ValidateStruct(role); err != nil {
		return nil, err
	}
	role.Base = model.Base{}
	role.Initialize(actor, s.now())
	if err := s.Store.Roles.Create(ctx, &role); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "ROLE_CREATED", role.ID, map[string]interface{}{"roleId": role.RoleID, "name": role.Name})
	return &role, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (*model.Role, error) {
	role, err := s.Store.Roles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	role.Evaluate()
	return role, nil
}

func (s *RoleService) List(ctx context.Context, status model.RoleStatus, limit, offset int) ([]*model.Role, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = string(status)
	}
	roles, err := s.Store.Roles.List(ctx, filter, dao.ListOptions{Limit: limit, Offset: offset, SortField: "name"})
	if err != nil {
		return nil, err
	}
	for _, r := range roles {
		r.Evaluate()
	}
	return roles, nil
}

func (s *RoleService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Role, time.Time) error) (result *model.Role, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("roleID", id), zap.String("actor", actor)) }()

	now := s.now()
	role, err := s.Store.Roles.Mutate(ctx, id, func(r *model.Role) error {
		return apply(r, now)
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": role.Status})
	return role, nil
}

// UpdatePermissions checks system-role immutability before anything else.
func (s *RoleService) UpdatePermissions(ctx context.Context, id string, permissions model.Permissions, actor string) (*model.Role, error) {
	return s.mutate(ctx, "updatePermissions", id, actor, func(r *model.Role, now time.Time) error {
		return r.UpdatePermissions(permissions, actor, now)
	})
}

func (s *RoleService) UpdateDetails(ctx context.Context, id string, details model.RoleDetails, actor string) (*model.Role, error) {
	if err := s.ValidationUtil.ValidateStruct(details); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "updateDetails", id, actor, func(r *model.Role, now time.Time) error {
		return r.UpdateDetails(details, actor, now)
	})
}

func (s *RoleService) SetStatus(ctx context.Context, id string, status model.RoleStatus, actor string) (*model.Role, error) {
	return s.mutate(ctx, "setStatus", id, actor, func(r *model.Role, now time.Time) error {
		return r.SetStatus(status, actor, now)
	})
}
