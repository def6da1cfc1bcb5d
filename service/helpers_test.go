// api/service/helpers_test.go
package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	etmf_mock "github.com/dev-mohitbeniwal/etmf/api/test/mock"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
}

// Now advances by one millisecond per call so records sort by creation order.
func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeGraph struct {
	mu         sync.Mutex
	zones      []string
	documents  []string
	tree       []model.ZoneTree
	treeErr    error
	treeCalled int
}

func (g *fakeGraph) UpsertZone(_ context.Context, zone model.Zone) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.zones = append(g.zones, zone.ID)
	return nil
}

func (g *fakeGraph) UpsertSection(context.Context, model.Section) error         { return nil }
func (g *fakeGraph) UpsertArtifact(context.Context, model.Artifact) error       { return nil }
func (g *fakeGraph) UpsertSubArtifact(context.Context, model.SubArtifact) error { return nil }

func (g *fakeGraph) ClassifyDocument(_ context.Context, doc model.Document) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.documents = append(g.documents, doc.ID)
	return nil
}

func (g *fakeGraph) ClassificationTree(context.Context) ([]model.ZoneTree, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.treeCalled++
	return g.tree, g.treeErr
}

type testEnv struct {
	deps     service.Dependencies
	store    *dao.Store
	blob     *etmf_mock.MockBlobStore
	audit    *etmf_mock.MockAuditService
	clock    *testClock
	eventBus *util.EventBus
	services *service.Services
}

func newTestEnv(t *testing.T, graph service.ClassificationGraph) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    dao.NewMemoryStore(10),
		blob:     new(etmf_mock.MockBlobStore),
		audit:    new(etmf_mock.MockAuditService),
		clock:    newTestClock(),
		eventBus: util.NewEventBus(),
	}
	env.audit.On("Record", mock.Anything, mock.Anything).Return(nil)

	env.deps = service.Dependencies{
		Store:          env.store,
		Graph:          graph,
		BlobStore:      env.blob,
		AuditService:   env.audit,
		ValidationUtil: util.NewValidationUtil(),
		CacheService:   util.NewCacheService(false),
		EventBus:       env.eventBus,
		Clock:          env.clock.Now,
	}
	services, err := service.InitializeServices(env.deps)
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}
	env.services = services
	return env
}
