package store

import (
	"context"
	"errors"
	"time"
)

var ErrDocNotFound = errors.New("document not found")

// Doc is a single document as returned by the store.
type Doc struct {
	ID   string
	Data map[string]any
}

func (d *Doc) String(key string) string {
	v, _ := d.Data[key].(string)
	return v
}

func (d *Doc) Float(key string) float64 {
	switch v := d.Data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

func (d *Doc) Time(key string) time.Time {
	v, _ := d.Data[key].(time.Time)
	return v
}

// Ref identifies a document for batch operations.
type Ref struct {
	Collection string
	ID         string
}

// Filter is a field predicate. Supported operators: "==" and ">=".
type Filter struct {
	Field string
	Op    string
	Value any
}

type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Store is the narrow port onto the document database. Production runs on
// Firestore; tests run on the in-memory implementation below.
type Store interface {
	Get(ctx context.Context, collection, id string) (*Doc, error)
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	Set(ctx context.Context, collection, id string, data map[string]any) error
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Query(ctx context.Context, collection string, q Query) ([]Doc, error)
	// DeleteBatch removes every referenced document in a single atomic
	// commit. Either all deletes apply or none do.
	DeleteBatch(ctx context.Context, refs []Ref) error
}
