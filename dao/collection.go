// api/dao/collection.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dev-mohitbeniwal/etmf/api/model"
)

// Collection is the persistence contract shared by the MongoDB and in-memory stores.
// Filters are equality matches on bson field names (dotted paths allowed); a value
// may also be an operator document using $eq, $ne, $lt, $lte, $gt, $gte, $in, $exists or $not.
type Collection[T any] interface {
	// Insert stores a new record with revision 1. A unique index violation yields ErrDuplicateKey.
	Insert(ctx context.Context, doc *T) error
	Get(ctx context.Context, id string) (*T, error)
	FindOne(ctx context.Context, filter bson.M) (*T, error)
	List(ctx context.Context, filter bson.M, opts ListOptions) ([]*T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	// Replace swaps the stored record when its revision still matches doc's revision,
	// then advances the revision. A mismatch yields ErrConcurrentModification.
	Replace(ctx context.Context, doc *T) error
}

type ListOptions struct {
	Limit     int
	Offset    int
	SortField string
	SortDesc  bool
}

// IndexSpec describes an index both stores maintain.
type IndexSpec struct {
	Name   string
	Fields []string
	Unique bool
}

// ErrNoChange lets a mutation report that nothing needs to be written.
var ErrNoChange = errors.New("no change")

func entityOf[T any](doc *T) (model.Entity, error) {
	ent, ok := any(doc).(model.Entity)
	if !ok {
		return nil, fmt.Errorf("%T does not implement model.Entity", doc)
	}
	return ent, nil
}

func defaultSort(opts ListOptions) ListOptions {
	if opts.SortField == "" {
		opts.SortField = "createdAt"
	}
	return opts
}
