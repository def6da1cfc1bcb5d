// api/service/esignature_service.go
package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// IESignatureService defines the interface for electronic signature operations
type IESignatureService interface {
	Create(ctx context.Context, sig model.ESignature, actor string) (*model.ESignature, error)
	Get(ctx context.Context, id string) (*model.ESignature, error)
	ListByDocument(ctx context.Context, documentID string) ([]*model.ESignature, error)
	Sign(ctx context.Context, id, actor, signatureData string) (*model.ESignature, error)
	Revoke(ctx context.Context, id, actor string) (*model.ESignature, error)
	SetExpiry(ctx context.Context, id string, expiresAt time.Time, actor string) (*model.ESignature, error)
}

type ESignatureService struct {
	base
}

var _ IESignatureService = &ESignatureService{}

func NewESignatureService(deps Dependencies) *ESignatureService {
	return &ESignatureService{base: newBase(deps, "esignature")}
}

func (s *ESignatureService) Create(ctx context.Context, sig model.ESignature, actor string) (result *model.ESignature, err error) {
	start := time.Now()
	defer func() {
		err = s.done("create", start, err, zap.String("documentID", sig.DocumentID), zap.String("signer", sig.UserID))
	}()

	if err := s.ValidationUtil.ValidateStruct(sig); err != nil {
		return nil, err
	}
	if _, err := s.Store.Documents.Get(ctx, sig.DocumentID); err != nil {
		return nil, err
	}
	sig.Base = model.Base{}
	sig.Initialize(actor, s.now())
	if err := s.Store.ESignatures.Create(ctx, &sig); err != nil {
		return nil, err
	}
	s.record(ctx, actor, "ESIGNATURE_CREATED", sig.ID, map[string]interface{}{
		"documentId": sig.DocumentID,
		"signer":     sig.UserID,
	})
	return &sig, nil
}

// Get persists an expiry that has come due since the last write.
func (s *ESignatureService) Get(ctx context.Context, id string) (*model.ESignature, error) {
	now := s.now()
	return s.Store.ESignatures.Mutate(ctx, id, func(e *model.ESignature) error {
		if !e.Evaluate(now) {
			return dao.ErrNoChange
		}
		e.Touch(now)
		return nil
	})
}

func (s *ESignatureService) ListByDocument(ctx context.Context, documentID string) ([]*model.ESignature, error) {
	if _, err := s.Store.Documents.Get(ctx, documentID); err != nil {
		return nil, err
	}
	sigs, err := s.Store.ESignatures.List(ctx, bson.M{"document": documentID}, dao.ListOptions{SortField: "createdAt"})
	if err != nil {
		return nil, err
	}
	now := s.now()
	for _, sig := range sigs {
		sig.Evaluate(now)
	}
	return sigs, nil
}

func (s *ESignatureService) mutate(ctx context.Context, operation, id, actor string, apply func(*model.ESignature, time.Time) error) (result *model.ESignature, err error) {
	start := time.Now()
	defer func() {
		err = s.done(operation, start, err, zap.String("eSignatureID", id), zap.String("actor", actor))
	}()

	now := s.now()
	sig, err := s.Store.ESignatures.Mutate(ctx, id, func(e *model.ESignature) error {
		return apply(e, now)
	})
	if err != nil {
		return nil, err
	}
	s.record(ctx, actor, operation, id, map[string]interface{}{"status": sig.Status})
	return sig, nil
}

func (s *ESignatureService) Sign(ctx context.Context, id, actor, signatureData string) (*model.ESignature, error) {
	return s.mutate(ctx, "sign", id, actor, func(e *model.ESignature, now time.Time) error {
		return e.Sign(actor, signatureData, now)
	})
}

func (s *ESignatureService) Revoke(ctx context.Context, id, actor string) (*model.ESignature, error) {
	return s.mutate(ctx, "revoke", id, actor, func(e *model.ESignature, now time.Time) error {
		return e.Revoke(actor, now)
	})
}

func (s *ESignatureService) SetExpiry(ctx context.Context, id string, expiresAt time.Time, actor string) (*model.ESignature, error) {
	return s.mutate(ctx, "setExpiry", id, actor, func(e *model.ESignature, now time.Time) error {
		return e.SetExpiry(expiresAt, actor, now)
	})
}
