package repository

import (
	"context"
	"errors"
	"time"

	"github.com/projectify-app/projectify-backend/internal/applications/domain"
	"github.com/projectify-app/projectify-backend/internal/store"
)

const Collection = "applications"

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{store: s}
}

func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	id, err := r.store.Add(ctx, Collection, encode(a))
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrDocNotFound) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	return r.query(ctx, store.Query{
		Filters: []store.Filter{{Field: "userId", Op: "==", Value: userID}},
		OrderBy: "appliedAt",
		Desc:    true,
	})
}

// ListAll returns every application, optionally scoped to one project,
// newest-first by applied time.
func (r *Repo) ListAll(ctx context.Context, projectID string) ([]domain.Application, error) {
	q := store.Query{OrderBy: "appliedAt", Desc: true}
	if projectID != "" {
		q.Filters = []store.Filter{{Field: "projectId", Op: "==", Value: projectID}}
	}
	return r.query(ctx, q)
}

// ExistsFor reports whether this applicant already has an application for
// the project. A pre-insert read, not a store-level constraint: sequential
// duplicates are rejected, truly concurrent ones may both land.
func (r *Repo) ExistsFor(ctx context.Context, projectID, userID string) (bool, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{
			{Field: "projectId", Op: "==", Value: projectID},
			{Field: "userId", Op: "==", Value: userID},
		},
		Limit: 1,
	})
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt time.Time) (*domain.Application, error) {
	err := r.store.Update(ctx, Collection, id, map[string]any{
		"status":    string(status),
		"updatedAt": updatedAt,
	})
	if errors.Is(err, store.ErrDocNotFound) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// AppliedSince returns applications submitted at or after the cutoff.
func (r *Repo) AppliedSince(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	return r.query(ctx, store.Query{
		Filters: []store.Filter{{Field: "appliedAt", Op: ">=", Value: cutoff}},
	})
}

// Refs returns batch-delete references for the given applications.
func Refs(apps []domain.Application) []store.Ref {
	refs := make([]store.Ref, 0, len(apps))
	for _, a := range apps {
		refs = append(refs, store.Ref{Collection: Collection, ID: a.ID})
	}
	return refs
}

func (r *Repo) query(ctx context.Context, q store.Query) ([]domain.Application, error) {
	docs, err := r.store.Query(ctx, Collection, q)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Application, 0, len(docs))
	for i := range docs {
		out = append(out, *decode(&docs[i]))
	}
	return out, nil
}

func encode(a *domain.Application) map[string]any {
	return map[string]any{
		"projectId":   a.ProjectID,
		"userId":      a.UserID,
		"userName":    a.UserName,
		"userEmail":   a.UserEmail,
		"projectName": a.ProjectName,
		"status":      string(a.Status),
		"appliedAt":   a.AppliedAt,
		"createdAt":   a.CreatedAt,
		"updatedAt":   a.UpdatedAt,
	}
}

func decode(doc *store.Doc) *domain.Application {
	return &domain.Application{
		ID:          doc.ID,
		ProjectID:   doc.String("projectId"),
		UserID:      doc.String("userId"),
		UserName:    doc.String("userName"),
		UserEmail:   doc.String("userEmail"),
		ProjectName: doc.String("projectName"),
		Status:      domain.Status(doc.String("status")),
		AppliedAt:   doc.Time("appliedAt"),
		CreatedAt:   doc.Time("createdAt"),
		UpdatedAt:   doc.Time("updatedAt"),
	}
}
