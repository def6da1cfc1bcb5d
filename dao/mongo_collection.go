// api/dao/mongo_collection.go
package dao

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
)

// MongoCollection stores one entity kind in one MongoDB collection.
type MongoCollection[T any] struct {
	coll    *mongo.Collection
	timeout time.Duration
}

var _ Collection[struct{}] = (*MongoCollection[struct{}])(nil)

func NewMongoCollection[T any](ctx context.Context, db *mongo.Database, name string, timeout time.Duration, indexes []IndexSpec) (*MongoCollection[T], error) {
	c := &MongoCollection[T]{coll: db.Collection(name), timeout: timeout}
	if err := c.EnsureIndexes(ctx, indexes); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *MongoCollection[T]) EnsureIndexes(ctx context.Context, indexes []IndexSpec) error {
	if len(indexes) == 0 {
		return nil
	}
	logger.Info("Ensuring indexes", zap.String("collection", c.coll.Name()), zap.Int("count", len(indexes)))
	models := make([]mongo.IndexModel, 0, len(indexes))
	for _, idx := range indexes {
		keys := bson.D{}
		for _, f := range idx.Fields {
			keys = append(keys, bson.E{Key: f, Value: 1})
		}
		models = append(models, mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetName(idx.Name).SetUnique(idx.Unique),
		})
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if _, err := c.coll.Indexes().CreateMany(ctx, models); err != nil {
		logger.Error("Failed to ensure indexes", zap.String("collection", c.coll.Name()), zap.Error(err))
		return mapMongoError(err, "create indexes")
	}
	return nil
}

func (c *MongoCollection[T]) Insert(ctx context.Context, doc *T) error {
	ent, err := entityOf(doc)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ent.SetEntityRevision(1)
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		ent.SetEntityRevision(0)
		return mapMongoError(err, "insert")
	}
	return nil
}

func (c *MongoCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, bson.M{"_id": id})
}

func (c *MongoCollection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out := new(T)
	if err := c.coll.FindOne(ctx, filter).Decode(out); err != nil {
		return nil, mapMongoError(err, "find")
	}
	return out, nil
}

func (c *MongoCollection[T]) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts = defaultSort(opts)
	direction := 1
	if opts.SortDesc {
		direction = -1
	}
	findOpts := options.Find().SetSort(bson.D{{Key: opts.SortField, Value: direction}, {Key: "_id", Value: 1}})
	if opts.Offset > 0 {
		findOpts.SetSkip(int64(opts.Offset))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, mapMongoError(err, "list")
	}
	defer cursor.Close(ctx)

	results := []*T{}
	for cursor.Next(ctx) {
		item := new(T)
		if err := cursor.Decode(item); err != nil {
			return nil, mapMongoError(err, "decode")
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, mapMongoError(err, "cursor")
	}
	return results, nil
}

func (c *MongoCollection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, mapMongoError(err, "count")
	}
	return n, nil
}

func (c *MongoCollection[T]) Replace(ctx context.Context, doc *T) error {
	ent, err := entityOf(doc)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	expected := ent.EntityRevision()
	ent.SetEntityRevision(expected + 1)
	res, err := c.coll.ReplaceOne(ctx, bson.M{"_id": ent.EntityID(), "revision": expected}, doc)
	if err != nil {
		ent.SetEntityRevision(expected)
		return mapMongoError(err, "replace")
	}
	if res.MatchedCount == 1 {
		return nil
	}

	ent.SetEntityRevision(expected)
	n, err := c.coll.CountDocuments(ctx, bson.M{"_id": ent.EntityID()})
	if err != nil {
		return mapMongoError(err, "count")
	}
	if n == 0 {
		return etmf_errors.ErrRecordNotFound
	}
	return etmf_errors.ErrConcurrentModification
}

func mapMongoError(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return etmf_errors.ErrRecordNotFound
	case mongo.IsDuplicateKeyError(err):
		return etmf_errors.Wrap(etmf_errors.ErrDuplicateKey, err, "mongo "+op)
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "mongo "+op)
	default:
		return etmf_errors.Wrap(etmf_errors.ErrDatabaseOperation, err, "mongo "+op)
	}
}
