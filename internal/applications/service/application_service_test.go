package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectify-app/projectify-backend/internal/applications/domain"
	"github.com/projectify-app/projectify-backend/internal/applications/repository"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/notify"
	projdomain "github.com/projectify-app/projectify-backend/internal/projects/domain"
	projrepo "github.com/projectify-app/projectify-backend/internal/projects/repository"
	"github.com/projectify-app/projectify-backend/internal/store"
)

var (
	adminCaller = &authdomain.User{ID: "admin-1", Name: "Admin", Email: "admin@projectify.test", Role: authdomain.RoleAdmin}
	userCaller  = &authdomain.User{ID: "user-1", Name: "Jamie", Email: "jamie@example.com", Role: authdomain.RoleUser}
	otherCaller = &authdomain.User{ID: "user-2", Name: "Rory", Email: "rory@example.com", Role: authdomain.RoleUser}
)

type sentMail struct {
	to, subject string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recordingMailer) Send(to, subject, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

func (m *recordingMailer) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type fixture struct {
	svc      *Service
	projects *projrepo.Repo
	mailer   *recordingMailer
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemStore()
	projects := projrepo.NewRepo(mem)
	mailer := &recordingMailer{}
	svc := NewService(repository.NewRepo(mem), projects, notify.NewService(mailer, "http://localhost:3000"))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.SetNow(func() time.Time { return now })

	return &fixture{svc: svc, projects: projects, mailer: mailer, now: now}
}

func (f *fixture) seedProject(t *testing.T, status projdomain.Status) *projdomain.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), &projdomain.Project{
		Name:        "Website Redesign",
		Description: "Rebuild the marketing site on the new design system.",
		StartDate:   "2026-04-01",
		EndDate:     "2026-06-30",
		Budget:      5000,
		Status:      status,
		CreatedBy:   adminCaller.Email,
		CreatedAt:   f.now,
		UpdatedAt:   f.now,
	})
	require.NoError(t, err)
	return p
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots applicant and project fields", func(t *testing.T) {
		f := newFixture(t)
		p := f.seedProject(t, projdomain.StatusApproved)

		a, err := f.svc.Submit(ctx, userCaller, p.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, domain.StatusPending, a.Status)
		assert.Equal(t, userCaller.ID, a.UserID)
		assert.Equal(t, "Jamie", a.UserName)
		assert.Equal(t, "jamie@example.com", a.UserEmail)
		assert.Equal(t, p.Name, a.ProjectName)
		assert.Equal(t, f.now, a.AppliedAt)
	})

	t.Run("admins may apply too", func(t *testing.T) {
		f := newFixture(t)
		p := f.seedProject(t, projdomain.StatusApproved)

		_, err := f.svc.Submit(ctx, adminCaller, p.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown project reads as missing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Submit(ctx, userCaller, "missing")
		assert.ErrorIs(t, err, projdomain.ErrProjectNotFound)
	})

	t.Run("non-approved projects cannot be applied to", func(t *testing.T) {
		f := newFixture(t)
		pending := f.seedProject(t, projdomain.StatusPending)

		_, err := f.svc.Submit(ctx, userCaller, pending.ID)
		assert.ErrorIs(t, err, domain.ErrProjectNotApproved)
	})

	t.Run("a second application to the same project is rejected", func(t *testing.T) {
		f := newFixture(t)
		p := f.seedProject(t, projdomain.StatusApproved)

		_, err := f.svc.Submit(ctx, userCaller, p.ID)
		require.NoError(t, err)

		_, err = f.svc.Submit(ctx, userCaller, p.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)

		// A different applicant is unaffected.
		_, err = f.svc.Submit(ctx, otherCaller, p.ID)
		assert.NoError(t, err)
	})

	t.Run("anonymous callers are unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		p := f.seedProject(t, projdomain.StatusApproved)

		_, err := f.svc.Submit(ctx, nil, p.ID)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestListMine(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.seedProject(t, projdomain.StatusApproved)

	_, err := f.svc.Submit(ctx, userCaller, p.ID)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, otherCaller, p.ID)
	require.NoError(t, err)

	t.Run("returns only the caller's applications", func(t *testing.T) {
		mine, err := f.svc.ListMine(ctx, userCaller)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, userCaller.ID, mine[0].UserID)
	})

	t.Run("a caller with no applications gets an empty list", func(t *testing.T) {
		none, err := f.svc.ListMine(ctx, adminCaller)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("anonymous callers are unauthenticated", func(t *testing.T) {
		_, err := f.svc.ListMine(ctx, nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestListAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p1 := f.seedProject(t, projdomain.StatusApproved)
	p2 := f.seedProject(t, projdomain.StatusApproved)

	_, err := f.svc.Submit(ctx, userCaller, p1.ID)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, userCaller, p2.ID)
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, otherCaller, p1.ID)
	require.NoError(t, err)

	t.Run("returns every application", func(t *testing.T) {
		all, err := f.svc.ListAll(ctx, adminCaller, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("scopes to one project", func(t *testing.T) {
		scoped, err := f.svc.ListAll(ctx, adminCaller, p1.ID)
		require.NoError(t, err)
		assert.Len(t, scoped, 2)
	})

	t.Run("non-admins are forbidden", func(t *testing.T) {
		_, err := f.svc.ListAll(ctx, userCaller, "")
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}

func TestApplicationSetStatus(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T) (*fixture, *domain.Application) {
		f := newFixture(t)
		p := f.seedProject(t, projdomain.StatusApproved)
		a, err := f.svc.Submit(ctx, userCaller, p.ID)
		require.NoError(t, err)
		return f, a
	}

	t.Run("approval notifies the applicant exactly once", func(t *testing.T) {
		f, a := submit(t)

		updated, err := f.svc.SetStatus(ctx, a.ID, domain.StatusApproved, adminCaller)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, updated.Status)

		sent := f.mailer.all()
		require.Len(t, sent, 1)
		assert.Equal(t, "jamie@example.com", sent[0].to)
	})

	t.Run("rejection notifies the applicant", func(t *testing.T) {
		f, a := submit(t)

		updated, err := f.svc.SetStatus(ctx, a.ID, domain.StatusRejected, adminCaller)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, updated.Status)
		assert.Len(t, f.mailer.all(), 1)
	})

	t.Run("unknown id reads as missing", func(t *testing.T) {
		f, _ := submit(t)

		_, err := f.svc.SetStatus(ctx, "missing", domain.StatusApproved, adminCaller)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("non-admins are forbidden", func(t *testing.T) {
		f, a := submit(t)

		_, err := f.svc.SetStatus(ctx, a.ID, domain.StatusApproved, userCaller)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})
}
