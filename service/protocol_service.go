// api/service/protocol_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// IProtocolService defines the interface for trial protocol operations
type IProtocolService interface {
	Create(ctx context.Context, trialID string, protocol model.Protocol, actor string) (*model.Protocol, error)
	Get(ctx context.Context, id string) (*model.Protocol, error)
	ListByTrial(ctx context.Context, trialID string, status model.ProtocolStatus) ([]*model.Protocol, error)
	ChangeStatus(ctx context.Context, id string, to model.ProtocolStatus, actor string) (*model.Protocol, error)
	Amend(ctx context.Context, id string, amendment model.Amendment, actor string) (*model.Protocol, error)
	RecordApproval(ctx context.Context, id string, approval model.RegulatoryApproval, actor string) (*model.Protocol, error)
}

type ProtocolService struct {
	base
}

var _ IProtocolService = &ProtocolService{}

func NewProtocolService(deps Dependencies) *ProtocolService {
	return &ProtocolService{base: newBase(deps, "protocol")}
}

func (s *ProtocolService) Create(ctx context.Context, trialID string, protocol model.Protocol, actor string) (result *model.Protocol, err error) {
	start := time.Now()
	defer func() {
		err = s.done("create", start, err, zap.String("trialID", trialID), zap.String("protocolID", protocol.ProtocolID))
	}()

	if err := s.ValidationUtil.ValidateStruct(protocol); err != nil {
		return nil, err
	}
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}

	protocol.Base = model.Base{}
	if err := protocol.Initialize(trialID, actor, s.now()); err != nil {
		return nil, err
	}
	if err := s.Store.Protocols.Create(ctx, &protocol); err != nil {
		return nil, err
	}
	s.record(ctx, actor, model.ActionProtocolCreated, protocol.ID, map[string]interface{}{
		"trialId": trialID,
		"version": protocol.Version,
	})
	return &protocol, nil
}

func (s *ProtocolService) Get(ctx context.Context, id string) (*model.Protocol, error) {
	p, err := s.Store.Protocols.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Evaluate()
	return p, nil
}

func (s *ProtocolService) ListByTrial(ctx context.Context, trialID string, status model.ProtocolStatus) ([]*model.Protocol, error) {
	if _, err := s.Store.Trials.Get(ctx, trialID); err != nil {
		return nil, err
	}
	filter := bson.M{"trialId": trialID}
	if status != "" {
		filter["status"] = string(status)
	}
	protocols, err := s.Store.Protocols.List(ctx, filter, dao.ListOptions{SortField: "createdAt", SortDesc: true})
	if err != nil {
		return nil, err
	}
	for _, p := range protocols {
		p.Evaluate()
	}
	return protocols, nil
}

func (s *ProtocolService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.Protocol, time.Time) error) (result *model.Protocol, err error) {
	start := time.Now()
	defer func() { err = s.done(operation, start, err, zap.String("protocolID", id), zap.String("actor", actor)) }()

	now := s.now()
	p, err := s.Store.Protocols.Mutate(ctx, id, func(p *model.Protocol) error {
		return apply(p, now)
	})
	if err != nil {
		return nil, err
	}
	p.Evaluate()
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": p.Status, "version": p.Version})
	return p, nil
}

func (s *ProtocolService) ChangeStatus(ctx context.Context, id string, to model.ProtocolStatus, actor string) (*model.Protocol, error) {
	return s.mutate(ctx, "changeStatus", id, actor, func(p *model.Protocol, now time.Time) error {
		return p.ChangeStatus(to, actor, now)
	})
}

func (s *ProtocolService) Amend(ctx context.Context, id string, amendment model.Amendment, actor string) (*model.Protocol, error) {
	if err := s.ValidationUtil.ValidateStruct(amendment); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "amend", id, actor, func(p *model.Protocol, now time.Time) error {
		return p.Amend(amendment, actor, now)
	})
}

func (s *ProtocolService) RecordApproval(ctx context.Context, id string, approval model.RegulatoryApproval, actor string) (*model.Protocol, error) {
	if err := s.ValidationUtil.ValidateStruct(approval); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "recordApproval", id, actor, func(p *model.Protocol, now time.Time) error {
		return p.RecordApproval(approval, actor, now)
	})
}
