package service

import (
	"context"
	"time"

	"github.com/projectify-app/projectify-backend/internal/applications/domain"
	"github.com/projectify-app/projectify-backend/internal/applications/repository"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/notify"
	projdomain "github.com/projectify-app/projectify-backend/internal/projects/domain"
	projrepo "github.com/projectify-app/projectify-backend/internal/projects/repository"
)

type Service struct {
	repo     *repository.Repo
	projects *projrepo.Repo
	notifier *notify.Service
	now      func() time.Time
}

func NewService(repo *repository.Repo, projects *projrepo.Repo, notifier *notify.Service) *Service {
	return &Service{
		repo:     repo,
		projects: projects,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *Service) SetNow(now func() time.Time) { s.now = now }

// Submit creates an application for the caller. Any authenticated identity
// may apply, admins included. The project must exist and be approved at this
// moment; a later rejection does not invalidate the application. Applicant
// and project fields are snapshotted onto the record.
func (s *Service) Submit(ctx context.Context, caller *authdomain.User, projectID string) (*domain.Application, error) {
	if err := auth.Require(caller, auth.CapAuthenticated); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status != projdomain.StatusApproved {
		return nil, domain.ErrProjectNotApproved
	}

	exists, err := s.repo.ExistsFor(ctx, projectID, caller.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyApplied
	}

	now := s.now()
	return s.repo.Create(ctx, &domain.Application{
		ProjectID:   projectID,
		UserID:      caller.ID,
		UserName:    caller.Name,
		UserEmail:   caller.Email,
		ProjectName: project.Name,
		Status:      domain.StatusPending,
		AppliedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) ListMine(ctx context.Context, caller *authdomain.User) ([]domain.Application, error) {
	if err := auth.Require(caller, auth.CapAuthenticated); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, caller.ID)
}

func (s *Service) ListAll(ctx context.Context, caller *authdomain.User, projectID string) ([]domain.Application, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx, projectID)
}

// SetStatus performs the admin transition and notifies the applicant using
// the denormalized name/email/project-name stored on the application, not a
// fresh lookup.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status, caller *authdomain.User) (*domain.Application, error) {
	if err := auth.Require(caller, auth.CapAdmin); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	a, err := s.repo.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.StatusApproved:
		s.notifier.SendApplicationApproved(a.UserEmail, a.UserName, a.ProjectName)
	case domain.StatusRejected:
		s.notifier.SendApplicationRejected(a.UserEmail, a.UserName, a.ProjectName)
	}

	return a, nil
}
