package service

import (
	"context"
	"time"

	appdomain "github.com/projectify-app/projectify-backend/internal/applications/domain"
	apprepo "github.com/projectify-app/projectify-backend/internal/applications/repository"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	userrepo "github.com/projectify-app/projectify-backend/internal/auth/repository"
	projdomain "github.com/projectify-app/projectify-backend/internal/projects/domain"
	projrepo "github.com/projectify-app/projectify-backend/internal/projects/repository"
)

const recentActivityWindow = 30 * 24 * time.Hour

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MonthlyStat struct {
	Month        string `json:"month"`
	Projects     int    `json:"projects"`
	Applications int    `json:"applications"`
	Approvals    int    `json:"approvals"`
}

type DashboardStats struct {
	TotalProjects        int           `json:"totalProjects"`
	ApprovedProjects     int           `json:"approvedProjects"`
	PendingProjects      int           `json:"pendingProjects"`
	RejectedProjects     int           `json:"rejectedProjects"`
	TotalApplications    int           `json:"totalApplications"`
	PendingApplications  int           `json:"pendingApplications"`
	ApprovedApplications int           `json:"approvedApplications"`
	RejectedApplications int           `json:"rejectedApplications"`
	MonthlyStats         []MonthlyStat `json:"monthlyStats"`
}

type UserActivity struct {
	TotalUsers     int `json:"totalUsers"`
	AdminUsers     int `json:"adminUsers"`
	RegularUsers   int `json:"regularUsers"`
	RecentActivity int `json:"recentActivity"`
}

// Service computes read-only aggregates. Nothing is cached: every call
// recomputes from current entity state.
type Service struct {
	projects *projrepo.Repo
	apps     *apprepo.Repo
	users    *userrepo.UserRepository
	now      func() time.Time
}

func NewService(projects *projrepo.Repo, apps *apprepo.Repo, users *userrepo.UserRepository) *Service {
	return &Service{
		projects: projects,
		apps:     apps,
		users:    users,
		now:      time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *Service) SetNow(now func() time.Time) { s.now = now }

func (s *Service) Dashboard(ctx context.Context, caller *authdomain.User) (*DashboardStats, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}
	return s.dashboard(ctx)
}

// dashboard is the policy-free computation, shared with the digest job.
func (s *Service) dashboard(ctx context.Context) (*DashboardStats, error) {
	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}
	apps, err := s.apps.ListAll(ctx, "")
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProjects:     len(projects),
		TotalApplications: len(apps),
	}
	for _, p := range projects {
		switch p.Status {
		case projdomain.StatusApproved:
			stats.ApprovedProjects++
		case projdomain.StatusPending:
			stats.PendingProjects++
		case projdomain.StatusRejected:
			stats.RejectedProjects++
		}
	}
	for _, a := range apps {
		switch a.Status {
		case appdomain.StatusApproved:
			stats.ApprovedApplications++
		case appdomain.StatusPending:
			stats.PendingApplications++
		case appdomain.StatusRejected:
			stats.RejectedApplications++
		}
	}
	stats.MonthlyStats = s.monthlyStats(projects, apps)

	return stats, nil
}

func (s *Service) ProjectsByStatus(ctx context.Context, caller *authdomain.User) ([]StatusCount, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx, "")
	if err != nil {
		return nil, err
	}

	counts := map[projdomain.Status]int{}
	for _, p := range projects {
		counts[p.Status]++
	}
	return []StatusCount{
		{Status: string(projdomain.StatusPending), Count: counts[projdomain.StatusPending]},
		{Status: string(projdomain.StatusApproved), Count: counts[projdomain.StatusApproved]},
		{Status: string(projdomain.StatusRejected), Count: counts[projdomain.StatusRejected]},
	}, nil
}

func (s *Service) ApplicationsByStatus(ctx context.Context, caller *authdomain.User) ([]StatusCount, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	apps, err := s.apps.ListAll(ctx, "")
	if err != nil {
		return nil, err
	}

	counts := map[appdomain.Status]int{}
	for _, a := range apps {
		counts[a.Status]++
	}
	return []StatusCount{
		{Status: string(appdomain.StatusPending), Count: counts[appdomain.StatusPending]},
		{Status: string(appdomain.StatusApproved), Count: counts[appdomain.StatusApproved]},
		{Status: string(appdomain.StatusRejected), Count: counts[appdomain.StatusRejected]},
	}, nil
}

// UserActivity counts users by role plus applications submitted within the
// last 30 days of the call.
func (s *Service) UserActivity(ctx context.Context, caller *authdomain.User) (*UserActivity, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.apps.AppliedSince(ctx, s.now().Add(-recentActivityWindow))
	if err != nil {
		return nil, err
	}

	activity := &UserActivity{
		TotalUsers:     len(users),
		RecentActivity: len(recent),
	}
	for _, u := range users {
		if u.Role == authdomain.RoleAdmin {
			activity.AdminUsers++
		} else {
			activity.RegularUsers++
		}
	}
	return activity, nil
}

// monthlyStats buckets the last six calendar months, newest last.
func (s *Service) monthlyStats(projects []projdomain.Project, apps []appdomain.Application) []MonthlyStat {
	now := s.now()
	out := make([]MonthlyStat, 0, 6)

	for i := 5; i >= 0; i-- {
		month := now.AddDate(0, -i, 0)
		stat := MonthlyStat{Month: month.Format("Jan")}

		for _, p := range projects {
			if sameMonth(p.CreatedAt, month) {
				stat.Projects++
			}
		}
		for _, a := range apps {
			if sameMonth(a.AppliedAt, month) {
				stat.Applications++
				if a.Status == appdomain.StatusApproved {
					stat.Approvals++
				}
			}
		}
		out = append(out, stat)
	}
	return out
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
