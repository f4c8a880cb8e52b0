package repository

import (
	"context"
	"errors"
	"time"

	"github.com/projectify-app/projectify-backend/internal/projects/domain"
	"github.com/projectify-app/projectify-backend/internal/store"
)

const Collection = "projects"

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

// Create writes the document and reads it back, mirroring the store's
// read-your-write contract so the caller gets the server-assigned id and the
// exact persisted field values.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	id, err := r.store.Add(ctx, Collection, encode(p))
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrDocNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

// List returns projects newest-first, optionally filtered to one status.
func (r *Repo) List(ctx context.Context, status domain.Status) ([]domain.Project, error) {
	q := store.Query{OrderBy: "createdAt", Desc: true}
	if status != "" {
		q.Filters = []store.Filter{{Field: "status", Op: "==", Value: string(status)}}
	}

	docs, err := r.store.Query(ctx, Collection, q)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(docs))
	for i := range docs {
		out = append(out, *decode(&docs[i]))
	}
	return out, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt time.Time) (*domain.Project, error) {
	err := r.store.Update(ctx, Collection, id, map[string]any{
		"status":    string(status),
		"updatedAt": updatedAt,
	})
	if errors.Is(err, store.ErrDocNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the project and all of its applications in one atomic
// batch.
func (r *Repo) Delete(ctx context.Context, id string, applicationRefs []store.Ref) error {
	refs := make([]store.Ref, 0, len(applicationRefs)+1)
	refs = append(refs, applicationRefs...)
	refs = append(refs, store.Ref{Collection: Collection, ID: id})
	return r.store.DeleteBatch(ctx, refs)
}

func encode(p *domain.Project) map[string]any {
	return map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"startDate":   p.StartDate,
		"endDate":     p.EndDate,
		"budget":      p.Budget,
		"status":      string(p.Status),
		"createdBy":   p.CreatedBy,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

func decode(doc *store.Doc) *domain.Project {
	return &domain.Project{
		ID:          doc.ID,
		Name:        doc.String("name"),
		Description: doc.String("description"),
		StartDate:   doc.String("startDate"),
		EndDate:     doc.String("endDate"),
		Budget:      doc.Float("budget"),
		Status:      domain.Status(doc.String("status")),
		CreatedBy:   doc.String("createdBy"),
		CreatedAt:   doc.Time("createdAt"),
		UpdatedAt:   doc.Time("updatedAt"),
	}
}
