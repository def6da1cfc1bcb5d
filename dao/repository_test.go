// api/dao/repository_test.go
package dao_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// conflictingCollection fails the first n replaces with a revision conflict.
type conflictingCollection struct {
	*dao.MemoryCollection[model.Zone]
	conflicts int32
}

func (c *conflictingCollection) Replace(ctx context.Context, doc *model.Zone) error {
	if atomic.AddInt32(&c.conflicts, -1) >= 0 {
		return etmf_errors.ErrConcurrentModification
	}
	return c.MemoryCollection.Replace(ctx, doc)
}

func newZoneRepository(coll dao.Collection[model.Zone], retries int) *dao.Repository[model.Zone] {
	return dao.NewRepository[model.Zone]("zones", coll, etmf_errors.ErrZoneNotFound, etmf_errors.ErrZoneConflict, retries)
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := newZoneRepository(dao.NewMemoryCollection[model.Zone]("zones", []dao.IndexSpec{
		{Name: "unique_zone_number", Fields: []string{"zoneNumber"}, Unique: true},
	}), 3)

	z := &model.Zone{ZoneNumber: 1, ZoneName: "Trial Management"}
	require.NoError(t, repo.Create(ctx, z))
	assert.NotEmpty(t, z.ID)

	exists, err := repo.Exists(ctx, z.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.Create(ctx, &model.Zone{ZoneNumber: 1, ZoneName: "Duplicate"})
	assert.Equal(t, etmf_errors.ErrZoneConflict, err)
	assert.True(t, errors.Is(err, etmf_errors.ErrConflict))

	_, err = repo.Get(ctx, "missing")
	assert.True(t, errors.Is(err, etmf_errors.ErrNotFound))
}

func TestRepositoryMutateRetriesConflicts(t *testing.T) {
	ctx := context.Background()
	coll := &conflictingCollection{MemoryCollection: dao.NewMemoryCollection[model.Zone]("zones", nil)}
	repo := newZoneRepository(coll, 3)

	z := &model.Zone{ZoneNumber: 1, ZoneName: "Trial Management"}
	require.NoError(t, repo.Create(ctx, z))

	atomic.StoreInt32(&coll.conflicts, 2)
	calls := 0
	updated, err := repo.Mutate(ctx, z.ID, func(zone *model.Zone) error {
		calls++
		zone.ZoneName = "Renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Renamed", updated.ZoneName)

	atomic.StoreInt32(&coll.conflicts, 5)
	_, err = repo.Mutate(ctx, z.ID, func(zone *model.Zone) error { return nil })
	assert.True(t, errors.Is(err, etmf_errors.ErrConcurrentModification))
}

func TestRepositoryMutateNoChange(t *testing.T) {
	ctx := context.Background()
	repo := newZoneRepository(dao.NewMemoryCollection[model.Zone]("zones", nil), 3)

	z := &model.Zone{ZoneNumber: 1, ZoneName: "Trial Management"}
	require.NoError(t, repo.Create(ctx, z))

	got, err := repo.Mutate(ctx, z.ID, func(*model.Zone) error { return dao.ErrNoChange })
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Revision)

	boom := errors.New("boom")
	_, err = repo.Mutate(ctx, z.ID, func(*model.Zone) error { return boom })
	assert.Equal(t, boom, err)

	_, err = repo.Mutate(ctx, "missing", func(*model.Zone) error { return nil })
	assert.Equal(t, etmf_errors.ErrZoneNotFound, err)
}

func TestRepositoryMutateConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	repo := newZoneRepository(dao.NewMemoryCollection[model.Zone]("zones", nil), 100)

	z := &model.Zone{ZoneNumber: 0, ZoneName: "counter"}
	require.NoError(t, repo.Create(ctx, z))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Mutate(ctx, z.ID, func(zone *model.Zone) error {
				zone.ZoneNumber++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, z.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.ZoneNumber)
	assert.Equal(t, int64(21), got.Revision)
}
