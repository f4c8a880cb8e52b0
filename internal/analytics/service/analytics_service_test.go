package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/projectify-app/projectify-backend/internal/applications/domain"
	apprepo "github.com/projectify-app/projectify-backend/internal/applications/repository"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	userrepo "github.com/projectify-app/projectify-backend/internal/auth/repository"
	projdomain "github.com/projectify-app/projectify-backend/internal/projects/domain"
	projrepo "github.com/projectify-app/projectify-backend/internal/projects/repository"
	"github.com/projectify-app/projectify-backend/internal/store"
)

var (
	adminCaller = &authdomain.User{ID: "admin-1", Name: "Admin", Email: "admin@projectify.test", Role: authdomain.RoleAdmin}
	userCaller  = &authdomain.User{ID: "user-1", Name: "Jamie", Email: "jamie@example.com", Role: authdomain.RoleUser}
)

// now is fixed so monthly buckets and the recent-activity window are stable.
var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (*Service, *projrepo.Repo, *apprepo.Repo, *userrepo.UserRepository) {
	t.Helper()
	mem := store.NewMemStore()
	projects := projrepo.NewRepo(mem)
	apps := apprepo.NewRepo(mem)
	users := userrepo.NewUserRepository(mem)

	svc := NewService(projects, apps, users)
	svc.SetNow(func() time.Time { return testNow })
	return svc, projects, apps, users
}

func seedProject(t *testing.T, projects *projrepo.Repo, status projdomain.Status, createdAt time.Time) *projdomain.Project {
	t.Helper()
	p, err := projects.Create(context.Background(), &projdomain.Project{
		Name:        "Seeded Project",
		Description: "A project seeded for aggregate checks.",
		StartDate:   "2026-04-01",
		EndDate:     "2026-06-30",
		Status:      status,
		CreatedBy:   adminCaller.Email,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	require.NoError(t, err)
	return p
}

func seedApplication(t *testing.T, apps *apprepo.Repo, status appdomain.Status, appliedAt time.Time) {
	t.Helper()
	_, err := apps.Create(context.Background(), &appdomain.Application{
		ProjectID: "p1", UserID: "u1", Status: status,
		AppliedAt: appliedAt, CreatedAt: appliedAt, UpdatedAt: appliedAt,
	})
	require.NoError(t, err)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc, projects, apps, _ := newFixture(t)

	seedProject(t, projects, projdomain.StatusApproved, testNow)
	seedProject(t, projects, projdomain.StatusPending, testNow.AddDate(0, -1, 0))
	seedProject(t, projects, projdomain.StatusRejected, testNow.AddDate(0, -1, 0))

	seedApplication(t, apps, appdomain.StatusApproved, testNow)
	seedApplication(t, apps, appdomain.StatusPending, testNow)
	seedApplication(t, apps, appdomain.StatusPending, testNow.AddDate(0, -2, 0))

	t.Run("counts entities by status", func(t *testing.T) {
		stats, err := svc.Dashboard(ctx, adminCaller)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalProjects)
		assert.Equal(t, 1, stats.ApprovedProjects)
		assert.Equal(t, 1, stats.PendingProjects)
		assert.Equal(t, 1, stats.RejectedProjects)

		assert.Equal(t, 3, stats.TotalApplications)
		assert.Equal(t, 1, stats.ApprovedApplications)
		assert.Equal(t, 2, stats.PendingApplications)
		assert.Equal(t, 0, stats.RejectedApplications)
	})

	t.Run("buckets the last six months newest last", func(t *testing.T) {
		stats, err := svc.Dashboard(ctx, adminCaller)
		require.NoError(t, err)
		require.Len(t, stats.MonthlyStats, 6)

		months := make([]string, 0, 6)
		for _, m := range stats.MonthlyStats {
			months = append(months, m.Month)
		}
		assert.Equal(t, []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}, months)

		mar := stats.MonthlyStats[5]
		assert.Equal(t, 1, mar.Projects)
		assert.Equal(t, 2, mar.Applications)
		assert.Equal(t, 1, mar.Approvals)

		feb := stats.MonthlyStats[4]
		assert.Equal(t, 2, feb.Projects)
		assert.Equal(t, 0, feb.Applications)

		jan := stats.MonthlyStats[3]
		assert.Equal(t, 1, jan.Applications)
		assert.Equal(t, 0, jan.Approvals)
	})

	t.Run("non-admins are forbidden", func(t *testing.T) {
		_, err := svc.Dashboard(ctx, userCaller)
		assert.ErrorIs(t, err, auth.ErrForbidden)

		_, err = svc.Dashboard(ctx, nil)
		assert.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

func TestProjectsByStatus(t *testing.T) {
	ctx := context.Background()
	svc, projects, _, _ := newFixture(t)

	seedProject(t, projects, projdomain.StatusApproved, testNow)
	seedProject(t, projects, projdomain.StatusApproved, testNow)
	seedProject(t, projects, projdomain.StatusPending, testNow)

	counts, err := svc.ProjectsByStatus(ctx, adminCaller)
	require.NoError(t, err)

	// Fixed order, zero counts included.
	require.Len(t, counts, 3)
	assert.Equal(t, StatusCount{Status: "pending", Count: 1}, counts[0])
	assert.Equal(t, StatusCount{Status: "approved", Count: 2}, counts[1])
	assert.Equal(t, StatusCount{Status: "rejected", Count: 0}, counts[2])
}

func TestApplicationsByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, apps, _ := newFixture(t)

	seedApplication(t, apps, appdomain.StatusRejected, testNow)
	seedApplication(t, apps, appdomain.StatusRejected, testNow)

	counts, err := svc.ApplicationsByStatus(ctx, adminCaller)
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, StatusCount{Status: "pending", Count: 0}, counts[0])
	assert.Equal(t, StatusCount{Status: "approved", Count: 0}, counts[1])
	assert.Equal(t, StatusCount{Status: "rejected", Count: 2}, counts[2])
}

func TestUserActivity(t *testing.T) {
	ctx := context.Background()
	svc, _, apps, users := newFixture(t)

	for _, u := range []*authdomain.User{
		{ID: "admin-1", Email: "admin@projectify.test", Role: authdomain.RoleAdmin},
		{ID: "user-1", Email: "jamie@example.com", Role: authdomain.RoleUser},
		{ID: "user-2", Email: "rory@example.com", Role: authdomain.RoleUser},
	} {
		require.NoError(t, users.Create(ctx, u))
	}

	// One inside the 30-day window, one just outside.
	seedApplication(t, apps, appdomain.StatusPending, testNow.AddDate(0, 0, -10))
	seedApplication(t, apps, appdomain.StatusPending, testNow.AddDate(0, 0, -31))

	activity, err := svc.UserActivity(ctx, adminCaller)
	require.NoError(t, err)

	assert.Equal(t, 3, activity.TotalUsers)
	assert.Equal(t, 1, activity.AdminUsers)
	assert.Equal(t, 2, activity.RegularUsers)
	assert.Equal(t, 1, activity.RecentActivity)
}
