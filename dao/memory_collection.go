// api/dao/memory_collection.go
package dao

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

// MemoryCollection keeps bson snapshots of records in process. It honours the same
// unique indexes and revision checks as MongoCollection, under a single lock.
type MemoryCollection[T any] struct {
	name    string
	indexes []IndexSpec

	mu    sync.RWMutex
	docs  map[string]bson.M
	order []string
}

var _ Collection[struct{}] = (*MemoryCollection[struct{}])(nil)

func NewMemoryCollection[T any](name string, indexes []IndexSpec) *MemoryCollection[T] {
	return &MemoryCollection[T]{
		name:    name,
		indexes: indexes,
		docs:    make(map[string]bson.M),
	}
}

func (c *MemoryCollection[T]) Insert(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "memory insert")
	}
	ent, err := entityOf(doc)
	if err != nil {
		return err
	}
	ent.SetEntityRevision(1)
	raw, err := toM(doc)
	if err != nil {
		ent.SetEntityRevision(0)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := ent.EntityID()
	if _, exists := c.docs[id]; exists {
		ent.SetEntityRevision(0)
		return etmf_errors.Wrap(etmf_errors.ErrDuplicateKey, nil, c.name+": _id "+id)
	}
	if idx, ok := c.violatesUnique(raw, id); ok {
		ent.SetEntityRevision(0)
		return etmf_errors.Wrap(etmf_errors.ErrDuplicateKey, nil, c.name+": index "+idx)
	}
	c.docs[id] = raw
	c.order = append(c.order, id)
	return nil
}

func (c *MemoryCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "memory get")
	}
	c.mu.RLock()
	raw, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return nil, etmf_errors.ErrRecordNotFound
	}
	return fromM[T](raw)
}

func (c *MemoryCollection[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	items, err := c.List(ctx, filter, ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, etmf_errors.ErrRecordNotFound
	}
	return items[0], nil
}

func (c *MemoryCollection[T]) List(ctx context.Context, filter bson.M, opts ListOptions) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "memory list")
	}
	matched, err := c.match(filter)
	if err != nil {
		return nil, err
	}

	opts = defaultSort(opts)
	sort.SliceStable(matched, func(i, j int) bool {
		a, _ := lookup(matched[i], opts.SortField)
		b, _ := lookup(matched[j], opts.SortField)
		cmp, ok := compareValues(a, b)
		if !ok {
			return false
		}
		if opts.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[opts.Offset:]
		}
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	results := make([]*T, 0, len(matched))
	for _, raw := range matched {
		item, err := fromM[T](raw)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, nil
}

func (c *MemoryCollection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "memory count")
	}
	matched, err := c.match(filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (c *MemoryCollection[T]) Replace(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return etmf_errors.Wrap(etmf_errors.ErrTimeout, err, "memory replace")
	}
	ent, err := entityOf(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := ent.EntityID()
	current, ok := c.docs[id]
	if !ok {
		return etmf_errors.ErrRecordNotFound
	}
	expected := ent.EntityRevision()
	if rev, _ := current["revision"].(int64); rev != expected {
		return etmf_errors.ErrConcurrentModification
	}

	ent.SetEntityRevision(expected + 1)
	raw, err := toM(doc)
	if err != nil {
		ent.SetEntityRevision(expected)
		return err
	}
	if idx, ok := c.violatesUnique(raw, id); ok {
		ent.SetEntityRevision(expected)
		return etmf_errors.Wrap(etmf_errors.ErrDuplicateKey, nil, c.name+": index "+idx)
	}
	c.docs[id] = raw
	return nil
}

func (c *MemoryCollection[T]) match(filter bson.M) ([]bson.M, error) {
	normalized, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	matched := []bson.M{}
	for _, id := range c.order {
		if raw := c.docs[id]; matches(raw, normalized) {
			matched = append(matched, raw)
		}
	}
	return matched, nil
}

// violatesUnique must be called with the lock held.
func (c *MemoryCollection[T]) violatesUnique(raw bson.M, selfID string) (string, bool) {
	for _, idx := range c.indexes {
		if !idx.Unique {
			continue
		}
		want := indexKey(raw, idx.Fields)
		for id, other := range c.docs {
			if id == selfID {
				continue
			}
			if reflect.DeepEqual(want, indexKey(other, idx.Fields)) {
				return idx.Name, true
			}
		}
	}
	return "", false
}

func indexKey(raw bson.M, fields []string) []interface{} {
	key := make([]interface{}, len(fields))
	for i, f := range fields {
		key[i], _ = lookup(raw, f)
	}
	return key
}

func toM(v interface{}) (bson.M, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromM[T any](raw bson.M) (*T, error) {
	data, err := bson.Marshal(raw)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := bson.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeFilter round-trips the filter so its values have the same bson types as stored records.
func normalizeFilter(filter bson.M) (bson.M, error) {
	if len(filter) == 0 {
		return bson.M{}, nil
	}
	return toM(filter)
}

func asMap(v interface{}) (bson.M, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]interface{}:
		return bson.M(m), true
	case bson.D:
		out := bson.M{}
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

func asSlice(v interface{}) ([]interface{}, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []interface{}:
		return a, true
	}
	return nil, false
}

func lookup(doc bson.M, path string) (interface{}, bool) {
	var current interface{} = doc
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func matches(doc bson.M, filter bson.M) bool {
	for path, want := range filter {
		got, present := lookup(doc, path)
		if ops, ok := asMap(want); ok && isOperatorDoc(ops) {
			for op, arg := range ops {
				if !applyOperator(op, got, present, arg) {
					return false
				}
			}
			continue
		}
		if !present || !equalOrContains(got, want) {
			return false
		}
	}
	return true
}

func isOperatorDoc(m bson.M) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !strings.HasPrefix(k, "$") {
			return false
		}
	}
	return true
}

func applyOperator(op string, got interface{}, present bool, arg interface{}) bool {
	switch op {
	case "$eq":
		return present && equalOrContains(got, arg)
	case "$ne":
		return !present || !equalOrContains(got, arg)
	case "$exists":
		want, _ := arg.(bool)
		return present == want
	case "$not":
		inner, ok := asMap(arg)
		if !ok {
			return false
		}
		for innerOp, innerArg := range inner {
			if !applyOperator(innerOp, got, present, innerArg) {
				return true
			}
		}
		return false
	case "$in":
		options, ok := asSlice(arg)
		if !ok || !present {
			return false
		}
		for _, o := range options {
			if equalOrContains(got, o) {
				return true
			}
		}
		return false
	case "$lt", "$lte", "$gt", "$gte":
		if !present {
			return false
		}
		cmp, ok := compareValues(got, arg)
		if !ok {
			return false
		}
		switch op {
		case "$lt":
			return cmp < 0
		case "$lte":
			return cmp <= 0
		case "$gt":
			return cmp > 0
		default:
			return cmp >= 0
		}
	}
	return false
}

// equalOrContains mirrors MongoDB equality, where an array field matches any of its elements.
func equalOrContains(got, want interface{}) bool {
	if reflect.DeepEqual(got, want) {
		return true
	}
	if cmp, ok := compareValues(got, want); ok && cmp == 0 {
		return true
	}
	if items, ok := asSlice(got); ok {
		for _, item := range items {
			if equalOrContains(item, want) {
				return true
			}
		}
	}
	return false
}

func compareValues(a, b interface{}) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return compareOrdered(fa, fb), true
		}
		return 0, false
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return compareOrdered(av, bv), true
		}
	case primitive.DateTime:
		if bv, ok := b.(primitive.DateTime); ok {
			return compareOrdered(int64(av), int64(bv)), true
		}
	case bool:
		if bv, ok := b.(bool); ok && av == bv {
			return 0, true
		}
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func compareOrdered[V int64 | float64 | string](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
