// api/service/services.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/audit"
	"github.com/dev-mohitbeniwal/etmf/api/dao"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/metrics"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/storage"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

// ClassificationGraph is the optional graph projection of the classification hierarchy.
type ClassificationGraph interface {
	UpsertZone(ctx context.Context, zone model.Zone) error
	UpsertSection(ctx context.Context, section model.Section) error
	UpsertArtifact(ctx context.Context, artifact model.Artifact) error
	UpsertSubArtifact(ctx context.Context, sub model.SubArtifact) error
	ClassifyDocument(ctx context.Context, doc model.Document) error
	ClassificationTree(ctx context.Context) ([]model.ZoneTree, error)
}

// Dependencies are shared by every service. Graph may be nil.
type Dependencies struct {
	Store          *dao.Store
	Graph          ClassificationGraph
	BlobStore      storage.BlobStore
	AuditService   audit.Service
	ValidationUtil *util.ValidationUtil
	CacheService   *util.CacheService
	EventBus       *util.EventBus
	Clock          func() time.Time
}

type Services struct {
	Classification IClassificationService
	Document       IDocumentService
	Workflow       IWorkflowService
	Trial          ITrialService
	Site           ISiteService
	Milestone      IMilestoneService
	Deviation      IDeviationService
	ESignature     IESignatureService
	Role           IRoleService
	Protocol       IProtocolService
	SOP            ISOPService
	Template       ITemplateService
}

func InitializeServices(deps Dependencies) (*Services, error) {
	if deps.Clock == nil {
		deps.Clock = func() time.Time { return time.Now().UTC() }
	}
	if deps.ValidationUtil == nil {
		deps.ValidationUtil = util.NewValidationUtil()
	}

	services := &Services{
		Classification: NewClassificationService(deps),
		Document:       NewDocumentService(deps),
		Workflow:       NewWorkflowService(deps),
		Trial:          NewTrialService(deps),
		Site:           NewSiteService(deps),
		Milestone:      NewMilestoneService(deps),
		Deviation:      NewDeviationService(deps),
		ESignature:     NewESignatureService(deps),
		Role:           NewRoleService(deps),
		Protocol:       NewProtocolService(deps),
		SOP:            NewSOPService(deps),
		Template:       NewTemplateService(deps),
	}

	return services, nil
}

// base carries the plumbing every service uses around its domain calls.
type base struct {
	Dependencies
	entity string
}

func newBase(deps Dependencies, entity string) base {
	if deps.Clock == nil {
		deps.Clock = func() time.Time { return time.Now().UTC() }
	}
	if deps.ValidationUtil == nil {
		deps.ValidationUtil = util.NewValidationUtil()
	}
	return base{Dependencies: deps, entity: entity}
}

func (b *base) now() time.Time {
	return b.Clock()
}

// record ships an audit event. Audit failures are logged by the audit service and never fail the operation.
func (b *base) record(ctx context.Context, actor, action, id string, details interface{}) {
	if b.AuditService == nil {
		return
	}
	_ = b.AuditService.Record(ctx, audit.NewEvent(actor, action, b.entity, id, details))
}

// done logs and counts the outcome of one operation and passes err through.
func (b *base) done(operation string, start time.Time, err error, fields ...zap.Field) error {
	metrics.ObserveOperation(b.entity, operation, err)
	fields = append(fields, zap.String("operation", operation), zap.Duration("duration", time.Since(start)))
	if err != nil {
		logger.Warn("Operation failed", append(fields, zap.String("entity", b.entity), zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", append(fields, zap.String("entity", b.entity))...)
	return nil
}
