// api/util/cache_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/db"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// CacheBackend stores JSON payloads keyed by record id. SetIfNewer must be atomic: a write
// carrying an older revision than the cached one is dropped.
type CacheBackend interface {
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	SetIfNewer(ctx context.Context, key string, revision int64, value interface{}) (bool, error)
	Delete(ctx context.Context, key string) error
}

type redisBackend struct{}

func (redisBackend) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	return db.GetCachedJSON(ctx, key, out)
}

func (redisBackend) SetIfNewer(ctx context.Context, key string, revision int64, value interface{}) (bool, error) {
	return db.CacheJSONIfNewer(ctx, key, revision, value)
}

func (redisBackend) Delete(ctx context.Context, key string) error {
	return db.DeleteCached(ctx, key)
}

// CacheService is a read-through cache for hot records. With Redis disabled every call is a miss
// and writes are dropped. Cache failures are logged and never fail the caller.
type CacheService struct {
	enabled bool
	backend CacheBackend
}

func NewCacheService(enabled bool) *CacheService {
	return &CacheService{enabled: enabled, backend: redisBackend{}}
}

// NewCacheServiceWithBackend builds an always-enabled cache over backend.
func NewCacheServiceWithBackend(backend CacheBackend) *CacheService {
	return &CacheService{enabled: true, backend: backend}
}

func (c *CacheService) active() bool {
	if c == nil || !c.enabled || c.backend == nil {
		return false
	}
	if _, ok := c.backend.(redisBackend); ok {
		return db.RedisClient != nil
	}
	return true
}

func documentKey(id string) string { return "document:" + id }
func trialKey(id string) string    { return "trial:" + id }
func workflowKey(id string) string { return "workflow:" + id }

func (c *CacheService) GetDocument(ctx context.Context, id string) (*model.Document, bool) {
	var doc model.Document
	if !c.get(ctx, documentKey(id), &doc) {
		return nil, false
	}
	return &doc, true
}

func (c *CacheService) SetDocument(ctx context.Context, doc *model.Document) {
	c.set(ctx, documentKey(doc.ID), doc.Revision, doc)
}

func (c *CacheService) DeleteDocument(ctx context.Context, id string) {
	c.delete(ctx, documentKey(id))
}

func (c *CacheService) GetTrial(ctx context.Context, id string) (*model.Trial, bool) {
	var trial model.Trial
	if !c.get(ctx, trialKey(id), &trial) {
		return nil, false
	}
	return &trial, true
}

func (c *CacheService) SetTrial(ctx context.Context, trial *model.Trial) {
	c.set(ctx, trialKey(trial.ID), trial.Revision, trial)
}

func (c *CacheService) DeleteTrial(ctx context.Context, id string) {
	c.delete(ctx, trialKey(id))
}

func (c *CacheService) GetWorkflow(ctx context.Context, id string) (*model.Workflow, bool) {
	var wf model.Workflow
	if !c.get(ctx, workflowKey(id), &wf) {
		return nil, false
	}
	return &wf, true
}

func (c *CacheService) SetWorkflow(ctx context.Context, wf *model.Workflow) {
	c.set(ctx, workflowKey(wf.ID), wf.Revision, wf)
}

func (c *CacheService) DeleteWorkflow(ctx context.Context, id string) {
	c.delete(ctx, workflowKey(id))
}

func (c *CacheService) get(ctx context.Context, key string, out interface{}) bool {
	if !c.active() {
		return false
	}
	found, err := c.backend.Get(ctx, key, out)
	if err != nil {
		logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return found
}

func (c *CacheService) set(ctx context.Context, key string, revision int64, value interface{}) {
	if !c.active() {
		return
	}
	if _, err := c.backend.SetIfNewer(ctx, key, revision, value); err != nil {
		logger.Warn("Cache write failed", zap.String("key", key), zap.Int64("revision", revision), zap.Error(err))
	}
}

func (c *CacheService) delete(ctx context.Context, key string) {
	if !c.active() {
		return
	}
	if err := c.backend.Delete(ctx, key); err != nil {
		logger.Warn("Cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
