// api/service/classification_service_test.go
package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

type hierarchy struct {
	zone     *model.Zone
	section  *model.Section
	artifact *model.Artifact
	sub      *model.SubArtifact
}

func seedHierarchy(t *testing.T, env *testEnv) hierarchy {
	t.Helper()
	ctx := context.Background()
	cs := env.services.Classification

	zone, err := cs.CreateZone(ctx, model.Zone{ZoneNumber: 1, ZoneName: "Trial Management"}, "admin")
	require.NoError(t, err)
	section, err := cs.CreateSection(ctx, zone.ID, model.Section{SectionNumber: "01.01", SectionName: "Trial Oversight"}, "admin")
	require.NoError(t, err)
	artifact, err := cs.CreateArtifact(ctx, section.ID, model.Artifact{ArtifactNumber: "01.01.01", ArtifactName: "TMF Plan"}, "admin")
	require.NoError(t, err)
	sub, err := cs.CreateSubArtifact(ctx, artifact.ID, model.SubArtifact{SubArtifactNumber: "01.01.01.01", SubArtifactName: "Appendix"}, "admin")
	require.NoError(t, err)
	return hierarchy{zone: zone, section: section, artifact: artifact, sub: sub}
}

func TestClassificationCreate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	h := seedHierarchy(t, env)
	cs := env.services.Classification

	assert.True(t, h.zone.IsActive)
	assert.Equal(t, h.zone.ID, h.section.ZoneID)
	assert.Equal(t, h.section.ID, h.artifact.SectionID)
	assert.Equal(t, h.artifact.ID, h.sub.ArtifactID)

	t.Run("DuplicateZoneNumber", func(t *testing.T) {
		_, err := cs.CreateZone(ctx, model.Zone{ZoneNumber: 1, ZoneName: "Other"}, "admin")
		assert.True(t, errors.Is(err, etmf_errors.ErrConflict))
	})

	t.Run("DuplicateSectionNumberInZone", func(t *testing.T) {
		_, err := cs.CreateSection(ctx, h.zone.ID, model.Section{SectionNumber: "01.01", SectionName: "Again"}, "admin")
		assert.True(t, errors.Is(err, etmf_errors.ErrSectionConflict))
	})

	t.Run("SameSectionNumberInOtherZone", func(t *testing.T) {
		other, err := cs.CreateZone(ctx, model.Zone{ZoneNumber: 2, ZoneName: "Central Trial Documents"}, "admin")
		require.NoError(t, err)
		_, err = cs.CreateSection(ctx, other.ID, model.Section{SectionNumber: "01.01", SectionName: "Allowed"}, "admin")
		assert.NoError(t, err)
	})

	t.Run("MissingParent", func(t *testing.T) {
		_, err := cs.CreateSection(ctx, "missing", model.Section{SectionNumber: "09.01", SectionName: "Orphan"}, "admin")
		assert.True(t, errors.Is(err, etmf_errors.ErrZoneNotFound))
	})

	t.Run("InvalidInput", func(t *testing.T) {
		_, err := cs.CreateZone(ctx, model.Zone{ZoneName: "No number"}, "admin")
		assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
	})

	t.Run("DeactivateIsIdempotent", func(t *testing.T) {
		z, err := cs.DeactivateSubArtifact(ctx, h.sub.ID, "admin")
		require.NoError(t, err)
		assert.False(t, z.IsActive)
		z, err = cs.DeactivateSubArtifact(ctx, h.sub.ID, "admin")
		require.NoError(t, err)
		assert.False(t, z.IsActive)
	})
}

func TestValidatePath(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	h := seedHierarchy(t, env)
	cs := env.services.Classification

	other, err := cs.CreateZone(ctx, model.Zone{ZoneNumber: 5, ZoneName: "Site Management"}, "admin")
	require.NoError(t, err)

	assert.NoError(t, cs.ValidatePath(ctx, model.ClassificationPath{}))
	assert.NoError(t, cs.ValidatePath(ctx, model.ClassificationPath{
		ZoneID: h.zone.ID, SectionID: h.section.ID, ArtifactID: h.artifact.ID, SubArtifactID: h.sub.ID,
	}))

	err = cs.ValidatePath(ctx, model.ClassificationPath{ZoneID: other.ID, SectionID: h.section.ID})
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	err = cs.ValidatePath(ctx, model.ClassificationPath{ArtifactID: "missing"})
	assert.True(t, errors.Is(err, etmf_errors.ErrArtifactNotFound))

	t.Run("SkippedLevelsAreDerived", func(t *testing.T) {
		assert.NoError(t, cs.ValidatePath(ctx, model.ClassificationPath{ZoneID: h.zone.ID, ArtifactID: h.artifact.ID}))
		assert.NoError(t, cs.ValidatePath(ctx, model.ClassificationPath{ZoneID: h.zone.ID, SubArtifactID: h.sub.ID}))

		err := cs.ValidatePath(ctx, model.ClassificationPath{ZoneID: other.ID, ArtifactID: h.artifact.ID})
		assert.ErrorIs(t, err, etmf_errors.ErrValidation)

		err = cs.ValidatePath(ctx, model.ClassificationPath{ZoneID: other.ID, SubArtifactID: h.sub.ID})
		assert.ErrorIs(t, err, etmf_errors.ErrValidation)

		otherSection, err := cs.CreateSection(ctx, other.ID, model.Section{SectionNumber: "05.01", SectionName: "Site Files"}, "admin")
		require.NoError(t, err)
		err = cs.ValidatePath(ctx, model.ClassificationPath{SectionID: otherSection.ID, SubArtifactID: h.sub.ID})
		assert.ErrorIs(t, err, etmf_errors.ErrValidation)
	})

	t.Run("DocumentRejectsMismatchedZone", func(t *testing.T) {
		_, err := env.services.Document.Create(ctx, model.Document{
			Title:          "Misfiled",
			File:           model.FileRef{URL: "http://blob/m.pdf", Name: "m.pdf", Size: 1},
			Classification: model.ClassificationPath{ZoneID: other.ID, ArtifactID: h.artifact.ID},
		}, "author")
		assert.ErrorIs(t, err, etmf_errors.ErrValidation)
	})
}

func TestClassificationTreeFromStore(t *testing.T) {
	graph := &fakeGraph{treeErr: etmf_errors.Wrap(etmf_errors.ErrGraphUnavailable, errors.New("connection refused"), "read tree")}
	env := newTestEnv(t, graph)
	ctx := context.Background()
	h := seedHierarchy(t, env)

	_, err := env.services.Document.Create(ctx, model.Document{
		Title:          "TMF Plan v1",
		File:           model.FileRef{URL: "http://blob/plan.pdf", Name: "plan.pdf", Size: 10},
		Classification: model.ClassificationPath{ZoneID: h.zone.ID, SectionID: h.section.ID, ArtifactID: h.artifact.ID},
	}, "author")
	require.NoError(t, err)

	tree, err := env.services.Classification.Tree(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, graph.treeCalled)

	require.Len(t, tree, 1)
	assert.Equal(t, int64(1), tree[0].DocumentCount)
	require.Len(t, tree[0].Sections, 1)
	require.Len(t, tree[0].Sections[0].Artifacts, 1)
	artifact := tree[0].Sections[0].Artifacts[0]
	assert.Equal(t, int64(1), artifact.DocumentCount)
	require.Len(t, artifact.SubArtifacts, 1)
	assert.Equal(t, int64(0), artifact.SubArtifacts[0].DocumentCount)
}

func TestClassificationTreeCountsPerNode(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	h := seedHierarchy(t, env)

	second, err := env.services.Classification.CreateZone(ctx, model.Zone{ZoneNumber: 2, ZoneName: "Central Trial Documents"}, "admin")
	require.NoError(t, err)
	secondSection, err := env.services.Classification.CreateSection(ctx, second.ID, model.Section{SectionNumber: "02.01", SectionName: "Product"}, "admin")
	require.NoError(t, err)

	file := model.FileRef{URL: "http://blob/f.pdf", Name: "f.pdf", Size: 10}
	paths := []model.ClassificationPath{
		{ZoneID: h.zone.ID, SectionID: h.section.ID, ArtifactID: h.artifact.ID, SubArtifactID: h.sub.ID},
		{ZoneID: second.ID, SectionID: secondSection.ID},
		{ZoneID: second.ID, SectionID: secondSection.ID},
		{ZoneID: second.ID},
	}
	for i, path := range paths {
		_, err := env.services.Document.Create(ctx, model.Document{Title: fmt.Sprintf("Doc %d", i), File: file, Classification: path}, "author")
		require.NoError(t, err)
	}

	tree, err := env.services.Classification.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, int64(1), tree[0].DocumentCount)
	assert.Equal(t, int64(1), tree[0].Sections[0].Artifacts[0].SubArtifacts[0].DocumentCount)
	assert.Equal(t, int64(3), tree[1].DocumentCount)
	require.Len(t, tree[1].Sections, 1)
	assert.Equal(t, int64(2), tree[1].Sections[0].DocumentCount)
	assert.Empty(t, tree[1].Sections[0].Artifacts)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = env.services.Classification.Tree(cancelled)
	assert.ErrorIs(t, err, etmf_errors.ErrTimeout)
}

func TestClassificationTreeFromGraph(t *testing.T) {
	graph := &fakeGraph{tree: []model.ZoneTree{{Zone: model.Zone{ZoneNumber: 9, ZoneName: "From graph"}}}}
	env := newTestEnv(t, graph)
	ctx := context.Background()
	h := seedHierarchy(t, env)

	tree, err := env.services.Classification.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "From graph", tree[0].ZoneName)

	env.eventBus.Wait()
	graph.mu.Lock()
	defer graph.mu.Unlock()
	assert.Contains(t, graph.zones, h.zone.ID)
}

func TestClassificationTreeGraphFailure(t *testing.T) {
	graph := &fakeGraph{treeErr: errors.New("unexpected")}
	env := newTestEnv(t, graph)

	_, err := env.services.Classification.Tree(context.Background())
	assert.Error(t, err)
}
