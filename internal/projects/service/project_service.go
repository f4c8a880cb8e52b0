package service

import (
	"context"
	"log"
	"strings"
	"time"

	apprepo "github.com/projectify-app/projectify-backend/internal/applications/repository"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/notify"
	"github.com/projectify-app/projectify-backend/internal/projects/domain"
	"github.com/projectify-app/projectify-backend/internal/projects/repository"
)

type Service struct {
	repo     *repository.Repo
	apps     *apprepo.Repo
	notifier *notify.Service
	now      func() time.Time
}

func NewService(repo *repository.Repo, apps *apprepo.Repo, notifier *notify.Service) *Service {
	return &Service{
		repo:     repo,
		apps:     apps,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *Service) SetNow(now func() time.Time) { s.now = now }

// ListVisible applies the visibility rule: non-admins only ever see approved
// projects regardless of the requested filter; admins see everything unless
// they filter, and an explicit status=approved pins the filter for them too.
func (s *Service) ListVisible(ctx context.Context, caller *authdomain.User, statusFilter string) ([]domain.Project, error) {
	if err := auth.Require(caller, auth.CapAuthenticated); err != nil {
		return nil, err
	}

	var filter domain.Status
	if !caller.IsAdmin() || statusFilter == string(domain.StatusApproved) {
		filter = domain.StatusApproved
	} else if statusFilter != "" && statusFilter != "all" {
		filter = domain.Status(statusFilter)
	}

	return s.repo.List(ctx, filter)
}

type CreateInput struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
	Budget      float64
}

func (s *Service) Create(ctx context.Context, caller *authdomain.User, in CreateInput) (*domain.Project, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validate(in); err != nil {
		return nil, err
	}

	now := s.now()
	return s.repo.Create(ctx, &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Status:      domain.StatusPending,
		CreatedBy:   caller.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Get hides non-approved projects from non-admins: they are reported as
// missing, not forbidden, so their existence leaks nothing.
func (s *Service) Get(ctx context.Context, id string, caller *authdomain.User) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusApproved && !caller.IsAdmin() {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

// SetStatus performs the admin transition. Approval fans out a notification
// to every current applicant; dispatch failures never surface because the
// transition has already committed.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status, caller *authdomain.User) (*domain.Project, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	p, err := s.repo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, err
	}

	if status == domain.StatusApproved {
		apps, err := s.apps.ListAll(ctx, id)
		if err != nil {
			log.Printf("[projects] listing applicants of %s for notification failed: %v", id, err)
			return p, nil
		}

		recipients := make([]notify.Recipient, 0, len(apps))
		for _, a := range apps {
			recipients = append(recipients, notify.Recipient{Email: a.UserEmail, Name: a.UserName})
		}
		s.notifier.FanOutProjectApproved(p.Name, p.Description, recipients)
	}

	return p, nil
}

// Delete removes the project and every application referencing it in one
// atomic batch.
func (s *Service) Delete(ctx context.Context, id string, caller *authdomain.User) error {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	apps, err := s.apps.ListAll(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, id, apprepo.Refs(apps))
}

func validate(in CreateInput) error {
	if n := len(in.Name); n < 3 || n > 100 {
		return domain.ValidationError("Project name must be between 3 and 100 characters")
	}
	if n := len(in.Description); n < 10 || n > 1000 {
		return domain.ValidationError("Description must be between 10 and 1000 characters")
	}

	start, err := parseDate(in.StartDate)
	if err != nil {
		return domain.ValidationError("Start date must be a valid ISO date")
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return domain.ValidationError("End date must be a valid ISO date")
	}
	if !end.After(start) {
		return domain.ValidationError("End date must be after start date")
	}

	if in.Budget < 0 {
		return domain.ValidationError("Budget must be a positive number")
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
