// api/dao/store.go
package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

const (
	CollectionZones        = "zones"
	CollectionSections     = "sections"
	CollectionArtifacts    = "artifacts"
	CollectionSubArtifacts = "subartifacts"
	CollectionDocuments    = "documents"
	CollectionWorkflows    = "workflows"
	CollectionTrials       = "trials"
	CollectionSites        = "sites"
	CollectionMilestones   = "milestones"
	CollectionDeviations   = "deviations"
	CollectionESignatures  = "esignatures"
	CollectionRoles        = "roles"
	CollectionProtocols    = "protocols"
	CollectionSOPs         = "sops"
	CollectionTemplates    = "documenttemplates"
)

// Store groups one repository per entity kind.
type Store struct {
	Zones        *Repository[model.Zone]
	Sections     *Repository[model.Section]
	Artifacts    *Repository[model.Artifact]
	SubArtifacts *Repository[model.SubArtifact]
	Documents    *Repository[model.Document]
	Workflows    *Repository[model.Workflow]
	Trials       *Repository[model.Trial]
	Sites        *Repository[model.Site]
	Milestones   *Repository[model.Milestone]
	Deviations   *Repository[model.Deviation]
	ESignatures  *Repository[model.ESignature]
	Roles        *Repository[model.Role]
	Protocols    *Repository[model.Protocol]
	SOPs         *Repository[model.SOP]
	Templates    *Repository[model.DocumentTemplate]
}

var collectionIndexes = map[string][]IndexSpec{
	CollectionZones: {
		{Name: "unique_zone_number", Fields: []string{"zoneNumber"}, Unique: true},
	},
	CollectionSections: {
		{Name: "unique_section_number_per_zone", Fields: []string{"zoneId", "sectionNumber"}, Unique: true},
	},
	CollectionArtifacts: {
		{Name: "unique_artifact_number_per_section", Fields: []string{"sectionId", "artifactNumber"}, Unique: true},
	},
	CollectionSubArtifacts: {
		{Name: "unique_subartifact_number_per_artifact", Fields: []string{"artifactId", "subArtifactNumber"}, Unique: true},
	},
	CollectionDocuments: {
		{Name: "unique_document_id", Fields: []string{"documentId"}, Unique: true},
		{Name: "document_classification", Fields: []string{"classification.zoneId", "classification.sectionId", "classification.artifactId"}},
		{Name: "document_status", Fields: []string{"status"}},
		{Name: "document_study_site", Fields: []string{"study", "site"}},
		{Name: "document_tags", Fields: []string{"tags"}},
	},
	CollectionWorkflows: {
		{Name: "unique_workflow_id", Fields: []string{"workflowId"}, Unique: true},
		{Name: "workflow_document", Fields: []string{"documentId"}},
	},
	CollectionTrials: {
		{Name: "unique_study_id", Fields: []string{"studyId"}, Unique: true},
		{Name: "unique_protocol_number", Fields: []string{"protocolNumber"}, Unique: true},
	},
	CollectionSites: {
		{Name: "unique_site_id", Fields: []string{"siteId"}, Unique: true},
		{Name: "site_trial", Fields: []string{"trialId"}},
	},
	CollectionMilestones: {
		{Name: "unique_milestone_id", Fields: []string{"milestoneId"}, Unique: true},
		{Name: "milestone_trial", Fields: []string{"trialId"}},
	},
	CollectionDeviations: {
		{Name: "unique_deviation_id", Fields: []string{"deviationId"}, Unique: true},
		{Name: "deviation_trial", Fields: []string{"trialId"}},
	},
	CollectionESignatures: {
		{Name: "unique_esignature_id", Fields: []string{"eSignatureId"}, Unique: true},
		{Name: "esignature_document", Fields: []string{"document"}},
	},
	CollectionRoles: {
		{Name: "unique_role_id", Fields: []string{"roleId"}, Unique: true},
		{Name: "unique_role_name", Fields: []string{"name"}, Unique: true},
	},
	CollectionProtocols: {
		{Name: "unique_protocol_id", Fields: []string{"protocolId"}, Unique: true},
		{Name: "protocol_trial", Fields: []string{"trialId"}},
		{Name: "protocol_status", Fields: []string{"status"}},
	},
	CollectionSOPs: {
		{Name: "unique_sop_id", Fields: []string{"sopId"}, Unique: true},
		{Name: "sop_department_category", Fields: []string{"department", "category"}},
		{Name: "sop_keywords", Fields: []string{"keywords"}},
		{Name: "sop_expiry", Fields: []string{"expiryDate"}},
	},
	CollectionTemplates: {
		{Name: "unique_template_id", Fields: []string{"templateId"}, Unique: true},
		{Name: "template_type_category", Fields: []string{"type", "category"}},
		{Name: "template_expiry", Fields: []string{"expiryDate"}},
	},
}

// NewMemoryStore builds a store backed by in-process collections.
func NewMemoryStore(maxRetries int) *Store {
	return &Store{
		Zones:        NewRepository[model.Zone](CollectionZones, NewMemoryCollection[model.Zone](CollectionZones, collectionIndexes[CollectionZones]), etmf_errors.ErrZoneNotFound, etmf_errors.ErrZoneConflict, maxRetries),
		Sections:     NewRepository[model.Section](CollectionSections, NewMemoryCollection[model.Section](CollectionSections, collectionIndexes[CollectionSections]), etmf_errors.ErrSectionNotFound, etmf_errors.ErrSectionConflict, maxRetries),
		Artifacts:    NewRepository[model.Artifact](CollectionArtifacts, NewMemoryCollection[model.Artifact](CollectionArtifacts, collectionIndexes[CollectionArtifacts]), etmf_errors.ErrArtifactNotFound, etmf_errors.ErrArtifactConflict, maxRetries),
		SubArtifacts: NewRepository[model.SubArtifact](CollectionSubArtifacts, NewMemoryCollection[model.SubArtifact](CollectionSubArtifacts, collectionIndexes[CollectionSubArtifacts]), etmf_errors.ErrSubArtifactNotFound, etmf_errors.ErrSubArtifactConflict, maxRetries),
		Documents:    NewRepository[model.Document](CollectionDocuments, NewMemoryCollection[model.Document](CollectionDocuments, collectionIndexes[CollectionDocuments]), etmf_errors.ErrDocumentNotFound, etmf_errors.ErrDocumentConflict, maxRetries),
		Workflows:    NewRepository[model.Workflow](CollectionWorkflows, NewMemoryCollection[model.Workflow](CollectionWorkflows, collectionIndexes[CollectionWorkflows]), etmf_errors.ErrWorkflowNotFound, etmf_errors.ErrWorkflowConflict, maxRetries),
		Trials:       NewRepository[model.Trial](CollectionTrials, NewMemoryCollection[model.Trial](CollectionTrials, collectionIndexes[CollectionTrials]), etmf_errors.ErrTrialNotFound, etmf_errors.ErrTrialConflict, maxRetries),
		Sites:        NewRepository[model.Site](CollectionSites, NewMemoryCollection[model.Site](CollectionSites, collectionIndexes[CollectionSites]), etmf_errors.ErrSiteNotFound, etmf_errors.ErrSiteConflict, maxRetries),
		Milestones:   NewRepository[model.Milestone](CollectionMilestones, NewMemoryCollection[model.Milestone](CollectionMilestones, collectionIndexes[CollectionMilestones]), etmf_errors.ErrMilestoneNotFound, etmf_errors.ErrMilestoneConflict, maxRetries),
		Deviations:   NewRepository[model.Deviation](CollectionDeviations, NewMemoryCollection[model.Deviation](CollectionDeviations, collectionIndexes[CollectionDeviations]), etmf_errors.ErrDeviationNotFound, etmf_errors.ErrDeviationConflict, maxRetries),
		ESignatures:  NewRepository[model.ESignature](CollectionESignatures, NewMemoryCollection[model.ESignature](CollectionESignatures, collectionIndexes[CollectionESignatures]), etmf_errors.ErrESignatureNotFound, etmf_errors.ErrESignatureConflict, maxRetries),
		Roles:        NewRepository[model.Role](CollectionRoles, NewMemoryCollection[model.Role](CollectionRoles, collectionIndexes[CollectionRoles]), etmf_errors.ErrRoleNotFound, etmf_errors.ErrRoleConflict, maxRetries),
		Protocols:    NewRepository[model.Protocol](CollectionProtocols, NewMemoryCollection[model.Protocol](CollectionProtocols, collectionIndexes[CollectionProtocols]), etmf_errors.ErrProtocolNotFound, etmf_errors.ErrProtocolConflict, maxRetries),
		SOPs:         NewRepository[model.SOP](CollectionSOPs, NewMemoryCollection[model.SOP](CollectionSOPs, collectionIndexes[CollectionSOPs]), etmf_errors.ErrSOPNotFound, etmf_errors.ErrSOPConflict, maxRetries),
		Templates:    NewRepository[model.DocumentTemplate](CollectionTemplates, NewMemoryCollection[model.DocumentTemplate](CollectionTemplates, collectionIndexes[CollectionTemplates]), etmf_errors.ErrTemplateNotFound, etmf_errors.ErrTemplateConflict, maxRetries),
	}
}

// NewMongoStore opens one collection per entity kind in db and ensures their indexes.
func NewMongoStore(ctx context.Context, db *mongo.Database, timeout time.Duration, maxRetries int) (*Store, error) {
	logger.Info("Initializing MongoDB store", zap.String("database", db.Name()))
	s := &Store{}
	var err error
	if s.Zones, err = mongoRepository[model.Zone](ctx, db, CollectionZones, timeout, maxRetries, etmf_errors.ErrZoneNotFound, etmf_errors.ErrZoneConflict); err != nil {
		return nil, err
	}
	if s.Sections, err = mongoRepository[model.Section](ctx, db, CollectionSections, timeout, maxRetries, etmf_errors.ErrSectionNotFound, etmf_errors.ErrSectionConflict); err != nil {
		return nil, err
	}
	if s.Artifacts, err = mongoRepository[model.Artifact](ctx, db, CollectionArtifacts, timeout, maxRetries, etmf_errors.ErrArtifactNotFound, etmf_errors.ErrArtifactConflict); err != nil {
		return nil, err
	}
	if s.SubArtifacts, err = mongoRepository[model.SubArtifact](ctx, db, CollectionSubArtifacts, timeout, maxRetries, etmf_errors.ErrSubArtifactNotFound, etmf_errors.ErrSubArtifactConflict); err != nil {
		return nil, err
	}
	if s.Documents, err = mongoRepository[model.Document](ctx, db, CollectionDocuments, timeout, maxRetries, etmf_errors.ErrDocumentNotFound, etmf_errors.ErrDocumentConflict); err != nil {
		return nil, err
	}
	if s.Workflows, err = mongoRepository[model.Workflow](ctx, db, CollectionWorkflows, timeout, maxRetries, etmf_errors.ErrWorkflowNotFound, etmf_errors.ErrWorkflowConflict); err != nil {
		return nil, err
	}
	if s.Trials, err = mongoRepository[model.Trial](ctx, db, CollectionTrials, timeout, maxRetries, etmf_errors.ErrTrialNotFound, etmf_errors.ErrTrialConflict); err != nil {
		return nil, err
	}
	if s.Sites, err = mongoRepository[model.Site](ctx, db, CollectionSites, timeout, maxRetries, etmf_errors.ErrSiteNotFound, etmf_errors.ErrSiteConflict); err != nil {
		return nil, err
	}
	if s.Milestones, err = mongoRepository[model.Milestone](ctx, db, CollectionMilestones, timeout, maxRetries, etmf_errors.ErrMilestoneNotFound, etmf_errors.ErrMilestoneConflict); err != nil {
		return nil, err
	}
	if s.Deviations, err = mongoRepository[model.Deviation](ctx, db, CollectionDeviations, timeout, maxRetries, etmf_errors.ErrDeviationNotFound, etmf_errors.ErrDeviationConflict); err != nil {
		return nil, err
	}
	if s.ESignatures, err = mongoRepository[model.ESignature](ctx, db, CollectionESignatures, timeout, maxRetries, etmf_errors.ErrESignatureNotFound, etmf_errors.ErrESignatureConflict); err != nil {
		return nil, err
	}
	if s.Roles, err = mongoRepository[model.Role](ctx, db, CollectionRoles, timeout, maxRetries, etmf_errors.ErrRoleNotFound, etmf_errors.ErrRoleConflict); err != nil {
		return nil, err
	}
	if s.Protocols, err = mongoRepository[model.Protocol](ctx, db, CollectionProtocols, timeout, maxRetries, etmf_errors.ErrProtocolNotFound, etmf_errors.ErrProtocolConflict); err != nil {
		return nil, err
	}
	if s.SOPs, err = mongoRepository[model.SOP](ctx, db, CollectionSOPs, timeout, maxRetries, etmf_errors.ErrSOPNotFound, etmf_errors.ErrSOPConflict); err != nil {
		return nil, err
	}
	if s.Templates, err = mongoRepository[model.DocumentTemplate](ctx, db, CollectionTemplates, timeout, maxRetries, etmf_errors.ErrTemplateNotFound, etmf_errors.ErrTemplateConflict); err != nil {
		return nil, err
	}
	logger.Info("MongoDB store ready")
	return s, nil
}

func mongoRepository[T any](ctx context.Context, db *mongo.Database, name string, timeout time.Duration, maxRetries int, notFound, conflict error) (*Repository[T], error) {
	coll, err := NewMongoCollection[T](ctx, db, name, timeout, collectionIndexes[name])
	if err != nil {
		return nil, err
	}
	return NewRepository[T](name, coll, notFound, conflict, maxRetries), nil
}
