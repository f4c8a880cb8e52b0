package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store used by tests and local development.
// It mirrors the Firestore semantics the repositories rely on: documents
// keyed by collection/id, equality and >= filters, single-field ordering,
// and all-or-nothing batch deletes.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any

	// FailDelete, when set, is consulted for every ref in a batch before
	// anything is removed. Returning an error aborts the whole batch.
	// Tests use it to interrupt a delete mid-flight.
	FailDelete func(ref Ref) error
}

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]map[string]map[string]any)}
}

func (s *MemStore) Get(ctx context.Context, collection, id string) (*Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrDocNotFound
	}
	return &Doc{ID: id, Data: cloneData(data)}, nil
}

func (s *MemStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	return id, s.Set(ctx, collection, id, data)
}

func (s *MemStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	s.collections[collection][id] = cloneData(data)
	return nil
}

func (s *MemStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrDocNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *MemStore) Query(ctx context.Context, collection string, q Query) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Doc, 0)
	for id, data := range s.collections[collection] {
		if matches(data, q.Filters) {
			docs = append(docs, Doc{ID: id, Data: cloneData(data)})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			c := compareValues(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			if q.Desc {
				return c > 0
			}
			return c < 0
		})
	}

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *MemStore) DeleteBatch(ctx context.Context, refs []Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole batch before touching anything.
	if s.FailDelete != nil {
		for _, r := range refs {
			if err := s.FailDelete(r); err != nil {
				return err
			}
		}
	}

	for _, r := range refs {
		delete(s.collections[r.Collection], r.ID)
	}
	return nil
}

// Len reports the number of documents in a collection.
func (s *MemStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func matches(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		v, ok := data[f.Field]
		if !ok {
			return false
		}
		switch f.Op {
		case "==":
			if compareValues(v, f.Value) != 0 {
				return false
			}
		case ">=":
			if compareValues(v, f.Value) < 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return -1
		}
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	case string:
		bv, ok := b.(string)
		if !ok {
			return -1
		}
		return strings.Compare(av, bv)
	default:
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if !aok || !bok {
			return -1
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
