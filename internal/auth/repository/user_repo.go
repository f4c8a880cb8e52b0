package repository

import (
	"context"
	"errors"

	"github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/store"
)

const Collection = "users"

type UserRepository struct {
	store store.Store
}

func NewUserRepository(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

// Create writes the profile document keyed by the provider-issued UID.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.store.Set(ctx, Collection, u.ID, map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      string(u.Role),
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrDocNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(doc), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{
		Filters: []store.Filter{{Field: "email", Op: "==", Value: email}},
		Limit:   1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return decode(&docs[0]), nil
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	docs, err := r.store.Query(ctx, Collection, store.Query{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.User, 0, len(docs))
	for i := range docs {
		out = append(out, *decode(&docs[i]))
	}
	return out, nil
}

func decode(doc *store.Doc) *domain.User {
	return &domain.User{
		ID:        doc.ID,
		Name:      doc.String("name"),
		Email:     doc.String("email"),
		Role:      domain.Role(doc.String("role")),
		CreatedAt: doc.Time("createdAt"),
		UpdatedAt: doc.Time("updatedAt"),
	}
}
