// api/dao/repository.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

// Repository adds identity, error translation and retrying mutations on top of a Collection.
type Repository[T any] struct {
	name       string
	coll       Collection[T]
	notFound   error
	conflict   error
	maxRetries int
}

func NewRepository[T any](name string, coll Collection[T], notFound, conflict error, maxRetries int) *Repository[T] {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Repository[T]{
		name:       name,
		coll:       coll,
		notFound:   notFound,
		conflict:   conflict,
		maxRetries: maxRetries,
	}
}

// Create assigns an id when the record has none and inserts it.
func (r *Repository[T]) Create(ctx context.Context, doc *T) error {
	start := time.Now()
	ent, err := entityOf(doc)
	if err != nil {
		return err
	}
	if ent.EntityID() == "" {
		ent.SetEntityID(uuid.New().String())
	}

	if err := r.coll.Insert(ctx, doc); err != nil {
		logger.Error("Failed to create record",
			zap.String("collection", r.name),
			zap.String("id", ent.EntityID()),
			zap.Error(err))
		return r.translate(err)
	}
	logger.Debug("Record created",
		zap.String("collection", r.name),
		zap.String("id", ent.EntityID()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := r.coll.Get(ctx, id)
	if err != nil {
		return nil, r.translate(err)
	}
	return doc, nil
}

func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	doc, err := r.coll.FindOne(ctx, filter)
	if err != nil {
		return nil, r.translate(err)
	}
	return doc, nil
}

func (r *Repository[T]) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*T, error) {
	start := time.Now()
	items, err := r.coll.List(ctx, filter, opts)
	if err != nil {
		logger.Error("Failed to list records", zap.String("collection", r.name), zap.Error(err))
		return nil, r.translate(err)
	}
	logger.Debug("Records listed",
		zap.String("collection", r.name),
		zap.Int("count", len(items)),
		zap.Duration("duration", time.Since(start)))
	return items, nil
}

func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.Count(ctx, filter)
	if err != nil {
		return 0, r.translate(err)
	}
	return n, nil
}

// Exists reports whether a record with id is stored.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.Count(ctx, bson.M{"_id": id})
	if err != nil {
		return false, r.translate(err)
	}
	return n > 0, nil
}

// Mutate loads the record, applies fn and writes it back guarded by the loaded revision.
// A lost race reloads and reapplies fn, so fn must derive everything from the record it
// receives. Returning ErrNoChange from fn skips the write.
func (r *Repository[T]) Mutate(ctx context.Context, id string, fn func(*T) error) (*T, error) {
	start := time.Now()
	for attempt := 1; ; attempt++ {
		doc, err := r.coll.Get(ctx, id)
		if err != nil {
			return nil, r.translate(err)
		}
		if err := fn(doc); err != nil {
			if errors.Is(err, ErrNoChange) {
				return doc, nil
			}
			return nil, err
		}

		err = r.coll.Replace(ctx, doc)
		if err == nil {
			logger.Debug("Record updated",
				zap.String("collection", r.name),
				zap.String("id", id),
				zap.Int("attempt", attempt),
				zap.Duration("duration", time.Since(start)))
			return doc, nil
		}
		if !errors.Is(err, etmf_errors.ErrConcurrentModification) || attempt >= r.maxRetries {
			logger.Warn("Failed to update record",
				zap.String("collection", r.name),
				zap.String("id", id),
				zap.Int("attempt", attempt),
				zap.Error(err))
			return nil, r.translate(err)
		}
		logger.Debug("Revision conflict, retrying",
			zap.String("collection", r.name),
			zap.String("id", id),
			zap.Int("attempt", attempt))
	}
}

func (r *Repository[T]) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, etmf_errors.ErrRecordNotFound):
		return r.notFound
	case errors.Is(err, etmf_errors.ErrDuplicateKey):
		return r.conflict
	}
	return err
}
