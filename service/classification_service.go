// api/service/classification_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

// IClassificationService manages the Zone > Section > Artifact > SubArtifact hierarchy.
type IClassificationService interface {
	CreateZone(ctx context.Context, zone model.Zone, actor string) (*model.Zone, error)
	GetZone(ctx context.Context, id string) (*model.Zone, error)
	ListZones(ctx context.Context) ([]*model.Zone, error)
	DeactivateZone(ctx context.Context, id, actor string) (*model.Zone, error)

	CreateSection(ctx context.Context, zoneID string, section model.Section, actor string) (*model.Section, error)
	GetSection(ctx context.Context, id string) (*model.Section, error)
	ListSections(ctx context.Context, zoneID string) ([]*model.Section, error)
	DeactivateSection(ctx context.Context, id, actor string) (*model.Section, error)

	CreateArtifact(ctx context.Context, sectionID string, artifact model.Artifact, actor string) (*model.Artifact, error)
	GetArtifact(ctx context.Context, id string) (*model.Artifact, error)
	ListArtifacts(ctx context.Context, sectionID string) ([]*model.Artifact, error)
	DeactivateArtifact(ctx context.Context, id, actor string) (*model.Artifact, error)

	CreateSubArtifact(ctx context.Context, artifactID string, sub model.SubArtifact, actor string) (*model.SubArtifact, error)
	GetSubArtifact(ctx context.Context, id string) (*model.SubArtifact, error)
	ListSubArtifacts(ctx context.Context, artifactID string) ([]*model.SubArtifact, error)
	DeactivateSubArtifact(ctx context.Context, id, actor string) (*model.SubArtifact, error)

	ValidatePath(ctx context.Context, path model.ClassificationPath) error
	Tree(ctx context.Context) ([]model.ZoneTree, error)
}

type ClassificationService struct {
	base
}

var _ IClassificationService = &ClassificationService{}

func NewClassificationService(deps Dependencies) *ClassificationService {
	service := &ClassificationService{base: newBase(deps, "classification")}

	if deps.Graph != nil && deps.EventBus != nil {
		deps.EventBus.Subscribe(util.EventZoneSaved, service.handleZoneSaved)
		deps.EventBus.Subscribe(util.EventSectionSaved, service.handleSectionSaved)
		deps.EventBus.Subscribe(util.EventArtifactSaved, service.handleArtifactSaved)
		deps.EventBus.Subscribe(util.EventSubArtifactSaved, service.handleSubArtifactSaved)
		deps.EventBus.Subscribe(util.EventDocumentSaved, service.handleDocumentSaved)
	}

	return service
}

func (s *ClassificationService) handleZoneSaved(ctx context.Context, event util.Event) error {
	return s.Graph.UpsertZone(ctx, event.Payload.(model.Zone))
}

func (s *ClassificationService) handleSectionSaved(ctx context.Context, event util.Event) error {
	return s.Graph.UpsertSection(ctx, event.Payload.(model.Section))
}

func (s *ClassificationService) handleArtifactSaved(ctx context.Context, event util.Event) error {
	return s.Graph.UpsertArtifact(ctx, event.Payload.(model.Artifact))
}

func (s *ClassificationService) handleSubArtifactSaved(ctx context.Context, event util.Event) error {
	return s.Graph.UpsertSubArtifact(ctx, event.Payload.(model.SubArtifact))
}

func (s *ClassificationService) handleDocumentSaved(ctx context.Context, event util.Event) error {
	return s.Graph.ClassifyDocument(ctx, event.Payload.(model.Document))
}

// Zones

func (s *ClassificationService) CreateZone(ctx context.Context, zone model.Zone, actor string) (result *model.Zone, err error) {
	start := time.Now()
	defer func() { err = s.done("createZone", start, err, zap.Int("zoneNumber", zone.ZoneNumber)) }()

	if err := s.ValidationUtil.ValidateStruct(zone); err != nil {
		return nil, err
	}
	zone.Base = model.Base{}
	zone.IsActive = true
	zone.Touch(s.now())

	if err := s.Store.Zones.Create(ctx, &zone); err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventZoneSaved, zone)
	s.record(ctx, actor, "CREATE_ZONE", zone.ID, zone)
	return &zone, nil
}

func (s *ClassificationService) GetZone(ctx context.Context, id string) (*model.Zone, error) {
	return s.Store.Zones.Get(ctx, id)
}

func (s *ClassificationService) ListZones(ctx context.Context) ([]*model.Zone, error) {
	return s.Store.Zones.List(ctx, bson.M{}, dao.ListOptions{SortField: "zoneNumber"})
}

func (s *ClassificationService) DeactivateZone(ctx context.Context, id, actor string) (result *model.Zone, err error) {
	start := time.Now()
	defer func() { err = s.done("deactivateZone", start, err, zap.String("zoneID", id)) }()

	now := s.now()
	zone, err := s.Store.Zones.Mutate(ctx, id, func(z *model.Zone) error {
		if !z.IsActive {
			return dao.ErrNoChange
		}
		z.Deactivate(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventZoneSaved, *zone)
	s.record(ctx, actor, "DEACTIVATE_ZONE", id, nil)
	return zone, nil
}

// Sections

func (s *ClassificationService) CreateSection(ctx context.Context, zoneID string, section model.Section, actor string) (result *model.Section, err error) {
	start := time.Now()
	defer func() {
		err = s.done("createSection", start, err, zap.String("zoneID", zoneID), zap.String("sectionNumber", section.SectionNumber))
	}()

	if err := s.ValidationUtil.ValidateStruct(section); err != nil {
		return nil, err
	}
	if _, err := s.Store.Zones.Get(ctx, zoneID); err != nil {
		return nil, err
	}
	section.Base = model.Base{}
	section.ZoneID = zoneID
	section.IsActive = true
	section.Touch(s.now())

	if err := s.Store.Sections.Create(ctx, &section); err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventSectionSaved, section)
	s.record(ctx, actor, "CREATE_SECTION", section.ID, section)
	return &section, nil
}

func (s *ClassificationService) GetSection(ctx context.Context, id string) (*model.Section, error) {
	return s.Store.Sections.Get(ctx, id)
}

// ListSections returns every section of the zone, active or not.
func (s *ClassificationService) ListSections(ctx context.Context, zoneID string) ([]*model.Section, error) {
	if _, err := s.Store.Zones.Get(ctx, zoneID); err != nil {
		return nil, err
	}
	return s.Store.Sections.List(ctx, bson.M{"zoneId": zoneID}, dao.ListOptions{SortField: "sectionNumber"})
}

func (s *ClassificationService) DeactivateSection(ctx context.Context, id, actor string) (result *model.Section, err error) {
	start := time.Now()
	defer func() { err = s.done("deactivateSection", start, err, zap.String("sectionID", id)) }()

	now := s.now()
	section, err := s.Store.Sections.Mutate(ctx, id, func(sec *model.Section) error {
		if !sec.IsActive {
			return dao.ErrNoChange
		}
		sec.Deactivate(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventSectionSaved, *section)
	s.record(ctx, actor, "DEACTIVATE_SECTION", id, nil)
	return section, nil
}

// Artifacts

func (s *ClassificationService) CreateArtifact(ctx context.Context, sectionID string, artifact model.Artifact, actor string) (result *model.Artifact, err error) {
	start := time.Now()
	defer func() {
		err = s.done("createArtifact", start, err, zap.String("sectionID", sectionID), zap.String("artifactNumber", artifact.ArtifactNumber))
	}()

	if err := s.ValidationUtil.ValidateStruct(artifact); err != nil {
		return nil, err
	}
	if _, err := s.Store.Sections.Get(ctx, sectionID); err != nil {
		return nil, err
	}
	artifact.Base = model.Base{}
	artifact.SectionID = sectionID
	artifact.IsActive = true
	artifact.Touch(s.now())

	if err := s.Store.Artifacts.Create(ctx, &artifact); err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventArtifactSaved, artifact)
	s.record(ctx, actor, "CREATE_ARTIFACT", artifact.ID, artifact)
	return &artifact, nil
}

func (s *ClassificationService) GetArtifact(ctx context.Context, id string) (*model.Artifact, error) {
	return s.Store.Artifacts.Get(ctx, id)
}

func (s *ClassificationService) ListArtifacts(ctx context.Context, sectionID string) ([]*model.Artifact, error) {
	if _, err := s.Store.Sections.Get(ctx, sectionID); err != nil {
		return nil, err
	}
	return s.Store.Artifacts.List(ctx, bson.M{"sectionId": sectionID}, dao.ListOptions{SortField: "artifactNumber"})
}

func (s *ClassificationService) DeactivateArtifact(ctx context.Context, id, actor string) (result *model.Artifact, err error) {
	start := time.Now()
	defer func() { err = s.done("deactivateArtifact", start, err, zap.String("artifactID", id)) }()

	now := s.now()
	artifact, err := s.Store.Artifacts.Mutate(ctx, id, func(a *model.Artifact) error {
		if !a.IsActive {
			return dao.ErrNoChange
		}
		a.Deactivate(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventArtifactSaved, *artifact)
	s.record(ctx, actor, "DEACTIVATE_ARTIFACT", id, nil)
	return artifact, nil
}

// SubArtifacts

func (s *ClassificationService) CreateSubArtifact(ctx context.Context, artifactID string, sub model.SubArtifact, actor string) (result *model.SubArtifact, err error) {
	start := time.Now()
	defer func() {
		err = s.done("createSubArtifact", start, err, zap.String("artifactID", artifactID), zap.String("subArtifactNumber", sub.SubArtifactNumber))
	}()

	if err := s.ValidationUtil.ValidateStruct(sub); err != nil {
		return nil, err
	}
	if _, err := s.Store.Artifacts.Get(ctx, artifactID); err != nil {
		return nil, err
	}
	sub.Base = model.Base{}
	sub.ArtifactID = artifactID
	sub.IsActive = true
	sub.Touch(s.now())

	if err := s.Store.SubArtifacts.Create(ctx, &sub); err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventSubArtifactSaved, sub)
	s.record(ctx, actor, "CREATE_SUBARTIFACT", sub.ID, sub)
	return &sub, nil
}

func (s *ClassificationService) GetSubArtifact(ctx context.Context, id string) (*model.SubArtifact, error) {
	return s.Store.SubArtifacts.Get(ctx, id)
}

func (s *ClassificationService) ListSubArtifacts(ctx context.Context, artifactID string) ([]*model.SubArtifact, error) {
	if _, err := s.Store.Artifacts.Get(ctx, artifactID); err != nil {
		return nil, err
	}
	return s.Store.SubArtifacts.List(ctx, bson.M{"artifactId": artifactID}, dao.ListOptions{SortField: "subArtifactNumber"})
}

func (s *ClassificationService) DeactivateSubArtifact(ctx context.Context, id, actor string) (result *model.SubArtifact, err error) {
	start := time.Now()
	defer func() { err = s.done("deactivateSubArtifact", start, err, zap.String("subArtifactID", id)) }()

	now := s.now()
	sub, err := s.Store.SubArtifacts.Mutate(ctx, id, func(sa *model.SubArtifact) error {
		if !sa.IsActive {
			return dao.ErrNoChange
		}
		sa.Deactivate(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.EventBus.Publish(ctx, util.EventSubArtifactSaved, *sub)
	s.record(ctx, actor, "DEACTIVATE_SUBARTIFACT", id, nil)
	return sub, nil
}

// ValidatePath checks that every level set on the path exists and that adjacent levels belong together.
func (s *ClassificationService) ValidatePath(ctx context.Context, path model.ClassificationPath) error {
	return validatePath(ctx, s.Store, path)
}

func validatePath(ctx context.Context, store *dao.Store, path model.ClassificationPath) error {
	var (
		section  *model.Section
		artifact *model.Artifact
		err      error
	)
	if path.ZoneID != "" {
		if _, err := store.Zones.Get(ctx, path.ZoneID); err != nil {
			return err
		}
	}
	if path.SectionID != "" {
		if section, err = store.Sections.Get(ctx, path.SectionID); err != nil {
			return err
		}
	}
	if path.ArtifactID != "" {
		if artifact, err = store.Artifacts.Get(ctx, path.ArtifactID); err != nil {
			return err
		}
	}

	// Omitted levels are derived from the node below them so every given level is checked.
	if path.SubArtifactID != "" {
		sub, err := store.SubArtifacts.Get(ctx, path.SubArtifactID)
		if err != nil {
			return err
		}
		switch {
		case artifact == nil:
			if artifact, err = store.Artifacts.Get(ctx, sub.ArtifactID); err != nil {
				return err
			}
		case sub.ArtifactID != artifact.ID:
			return etmf_errors.Validation("sub-artifact %s does not belong to artifact %s", sub.ID, artifact.ID)
		}
	}
	if artifact != nil {
		switch {
		case section == nil:
			if section, err = store.Sections.Get(ctx, artifact.SectionID); err != nil {
				return err
			}
		case artifact.SectionID != section.ID:
			return etmf_errors.Validation("artifact %s does not belong to section %s", artifact.ID, section.ID)
		}
	}
	if section != nil && path.ZoneID != "" && section.ZoneID != path.ZoneID {
		return etmf_errors.Validation("section %s does not belong to zone %s", section.ID, path.ZoneID)
	}
	return nil
}

// Tree serves the hierarchy from the graph when it is available and rebuilds it from the store otherwise.
func (s *ClassificationService) Tree(ctx context.Context) ([]model.ZoneTree, error) {
	if s.Graph != nil {
		tree, err := s.Graph.ClassificationTree(ctx)
		if err == nil {
			return tree, nil
		}
		if !errors.Is(err, etmf_errors.ErrGraphUnavailable) && !errors.Is(err, etmf_errors.ErrTimeout) {
			return nil, err
		}
		logger.Warn("Classification graph unavailable, building tree from store", zap.Error(err))
	}
	return s.treeFromStore(ctx)
}

// treeCountConcurrency bounds the document counts running against the store at once.
const treeCountConcurrency = 8

type classifiedNode struct {
	kind string
	id   string
}

func (s *ClassificationService) treeFromStore(ctx context.Context) ([]model.ZoneTree, error) {
	zones, err := s.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.Store.Sections.List(ctx, bson.M{}, dao.ListOptions{SortField: "sectionNumber"})
	if err != nil {
		return nil, err
	}
	artifacts, err := s.Store.Artifacts.List(ctx, bson.M{}, dao.ListOptions{SortField: "artifactNumber"})
	if err != nil {
		return nil, err
	}
	subs, err := s.Store.SubArtifacts.List(ctx, bson.M{}, dao.ListOptions{SortField: "subArtifactNumber"})
	if err != nil {
		return nil, err
	}

	nodes := make([]classifiedNode, 0, len(zones)+len(sections)+len(artifacts)+len(subs))
	for _, z := range zones {
		nodes = append(nodes, classifiedNode{"zone", z.ID})
	}
	for _, sec := range sections {
		nodes = append(nodes, classifiedNode{"section", sec.ID})
	}
	for _, a := range artifacts {
		nodes = append(nodes, classifiedNode{"artifact", a.ID})
	}
	for _, sa := range subs {
		nodes = append(nodes, classifiedNode{"subArtifact", sa.ID})
	}
	counts, err := s.countDocuments(ctx, nodes)
	if err != nil {
		return nil, err
	}

	subsByArtifact := map[string][]model.SubArtifactTree{}
	for _, sa := range subs {
		n := counts[classifiedNode{"subArtifact", sa.ID}]
		subsByArtifact[sa.ArtifactID] = append(subsByArtifact[sa.ArtifactID], model.SubArtifactTree{SubArtifact: *sa, DocumentCount: n})
	}
	artifactsBySection := map[string][]model.ArtifactTree{}
	for _, a := range artifacts {
		children := subsByArtifact[a.ID]
		if children == nil {
			children = []model.SubArtifactTree{}
		}
		n := counts[classifiedNode{"artifact", a.ID}]
		artifactsBySection[a.SectionID] = append(artifactsBySection[a.SectionID], model.ArtifactTree{Artifact: *a, DocumentCount: n, SubArtifacts: children})
	}
	sectionsByZone := map[string][]model.SectionTree{}
	for _, sec := range sections {
		children := artifactsBySection[sec.ID]
		if children == nil {
			children = []model.ArtifactTree{}
		}
		n := counts[classifiedNode{"section", sec.ID}]
		sectionsByZone[sec.ZoneID] = append(sectionsByZone[sec.ZoneID], model.SectionTree{Section: *sec, DocumentCount: n, Artifacts: children})
	}

	tree := make([]model.ZoneTree, 0, len(zones))
	for _, z := range zones {
		children := sectionsByZone[z.ID]
		if children == nil {
			children = []model.SectionTree{}
		}
		tree = append(tree, model.ZoneTree{Zone: *z, DocumentCount: counts[classifiedNode{"zone", z.ID}], Sections: children})
	}
	return tree, nil
}

// countDocuments counts the documents classified under each node in parallel. The first
// failure cancels the remaining counts.
func (s *ClassificationService) countDocuments(ctx context.Context, nodes []classifiedNode) (map[classifiedNode]int64, error) {
	results := make([]int64, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(treeCountConcurrency)
	for i, node := range nodes {
		g.Go(func() error {
			n, err := s.Store.Documents.Count(gctx, dao.ClassifiedUnder(node.kind, node.id))
			if err != nil {
				return err
			}
			results[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Failed to count classified documents", zap.Int("nodes", len(nodes)), zap.Error(err))
		return nil, err
	}

	counts := make(map[classifiedNode]int64, len(nodes))
	for i, node := range nodes {
		counts[node] = results[i]
	}
	return counts, nil
}
