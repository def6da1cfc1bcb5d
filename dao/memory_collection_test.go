// api/dao/memory_collection_test.go
package dao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func sectionIndexes() []dao.IndexSpec {
	return []dao.IndexSpec{{Name: "unique_section_number_per_zone", Fields: []string{"zoneId", "sectionNumber"}, Unique: true}}
}

func newSection(id, zoneID, number string, created time.Time) *model.Section {
	s := &model.Section{ZoneID: zoneID, SectionNumber: number, SectionName: "Section " + number, IsActive: true}
	s.ID = id
	s.Touch(created)
	return s
}

func TestMemoryCollectionInsertAndGet(t *testing.T) {
	ctx := context.Background()
	coll := dao.NewMemoryCollection[model.Section]("sections", sectionIndexes())

	s := newSection("s1", "z1", "01.01", t0)
	require.NoError(t, coll.Insert(ctx, s))
	assert.Equal(t, int64(1), s.Revision)

	got, err := coll.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "01.01", got.SectionNumber)
	assert.Equal(t, t0, got.CreatedAt.UTC())

	got.SectionName = "mutated copy"
	again, err := coll.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Section 01.01", again.SectionName)

	_, err = coll.Get(ctx, "missing")
	assert.True(t, errors.Is(err, etmf_errors.ErrRecordNotFound))
}

func TestMemoryCollectionUniqueIndexes(t *testing.T) {
	ctx := context.Background()
	coll := dao.NewMemoryCollection[model.Section]("sections", sectionIndexes())

	require.NoError(t, coll.Insert(ctx, newSection("s1", "z1", "01.01", t0)))

	err := coll.Insert(ctx, newSection("s1", "z2", "02.01", t0))
	assert.True(t, errors.Is(err, etmf_errors.ErrDuplicateKey))

	dup := newSection("s2", "z1", "01.01", t0)
	err = coll.Insert(ctx, dup)
	assert.True(t, errors.Is(err, etmf_errors.ErrDuplicateKey))
	assert.Equal(t, int64(0), dup.Revision)

	require.NoError(t, coll.Insert(ctx, newSection("s3", "z2", "01.01", t0)))
}

func TestMemoryCollectionReplaceChecksRevision(t *testing.T) {
	ctx := context.Background()
	coll := dao.NewMemoryCollection[model.Section]("sections", sectionIndexes())
	require.NoError(t, coll.Insert(ctx, newSection("s1", "z1", "01.01", t0)))

	first, err := coll.Get(ctx, "s1")
	require.NoError(t, err)
	second, err := coll.Get(ctx, "s1")
	require.NoError(t, err)

	first.SectionName = "first"
	require.NoError(t, coll.Replace(ctx, first))
	assert.Equal(t, int64(2), first.Revision)

	second.SectionName = "second"
	err = coll.Replace(ctx, second)
	assert.True(t, errors.Is(err, etmf_errors.ErrConcurrentModification))

	stored, err := coll.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "first", stored.SectionName)
}

func TestMemoryCollectionFilters(t *testing.T) {
	ctx := context.Background()
	coll := dao.NewMemoryCollection[model.Document]("documents", nil)

	expired := t0.Add(-time.Hour)
	docs := []*model.Document{
		{Title: "a", Status: model.DocumentStatusDraft, Tags: []string{"gcp", "site"}, Classification: model.ClassificationPath{ZoneID: "z1"}},
		{Title: "b", Status: model.DocumentStatusApproved, Tags: []string{"gcp"}, Classification: model.ClassificationPath{ZoneID: "z1", SectionID: "s1"}},
		{Title: "c", Status: model.DocumentStatusArchived, ExpirationDate: &expired},
		{Title: "d", Status: model.DocumentStatusDraft, ExpirationDate: &expired},
	}
	for i, d := range docs {
		d.ID = string(rune('1' + i))
		d.Touch(t0.Add(time.Duration(i) * time.Minute))
		require.NoError(t, coll.Insert(ctx, d))
	}

	tests := []struct {
		name   string
		filter bson.M
		want   []string
	}{
		{"Equality", bson.M{"status": "DRAFT"}, []string{"a", "d"}},
		{"ArrayContains", bson.M{"tags": "gcp"}, []string{"a", "b"}},
		{"DottedPath", bson.M{"classification.zoneId": "z1"}, []string{"a", "b"}},
		{"In", bson.M{"status": bson.M{"$in": []string{"APPROVED", "ARCHIVED"}}}, []string{"b", "c"}},
		{"Exists", bson.M{"classification.sectionId": bson.M{"$exists": true}}, []string{"b"}},
		{"Expired", dao.ExpiredDocumentsQuery(t0), []string{"d"}},
		{"DocumentQuery", dao.DocumentQuery(model.DocumentFilter{ZoneID: "z1", Tag: "site"}), []string{"a"}},
		{"ClassifiedUnder", dao.ClassifiedUnder("section", "s1"), []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := coll.List(ctx, tt.filter, dao.ListOptions{})
			require.NoError(t, err)
			titles := []string{}
			for _, it := range items {
				titles = append(titles, it.Title)
			}
			assert.Equal(t, tt.want, titles)

			n, err := coll.Count(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), n)
		})
	}
}

func TestMemoryCollectionPagingAndSort(t *testing.T) {
	ctx := context.Background()
	coll := dao.NewMemoryCollection[model.Zone]("zones", nil)
	for i := 1; i <= 5; i++ {
		z := &model.Zone{ZoneNumber: i, ZoneName: "zone"}
		z.ID = string(rune('a' + i))
		z.Touch(t0.Add(time.Duration(i) * time.Minute))
		require.NoError(t, coll.Insert(ctx, z))
	}

	page, err := coll.List(ctx, nil, dao.ListOptions{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].ZoneNumber)
	assert.Equal(t, 3, page[1].ZoneNumber)

	desc, err := coll.List(ctx, nil, dao.ListOptions{SortField: "zoneNumber", SortDesc: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, desc, 1)
	assert.Equal(t, 5, desc[0].ZoneNumber)

	empty, err := coll.List(ctx, nil, dao.ListOptions{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryCollectionCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	coll := dao.NewMemoryCollection[model.Zone]("zones", nil)

	_, err := coll.Get(ctx, "x")
	assert.Error(t, err)
}
