package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/projectify-app/projectify-backend/internal/analytics/service"
	authdomain "github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/notify"
)

// Scheduler mails the admin a daily summary of pending work.
type Scheduler struct {
	analytics  *service.Service
	notifier   *notify.Service
	adminEmail string
	cron       *cron.Cron
}

func NewScheduler(analytics *service.Service, notifier *notify.Service, adminEmail string) *Scheduler {
	return &Scheduler{
		analytics:  analytics,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// Start initializes cron tasks (digest nightly at 12:00AM).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", s.runNightlyDigest)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (digest nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) runNightlyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// The digest runs on behalf of the admin account.
	system := &authdomain.User{Email: s.adminEmail, Role: authdomain.RoleAdmin}

	stats, err := s.analytics.Dashboard(ctx, system)
	if err != nil {
		log.Printf("Nightly digest failed: %v", err)
		return
	}

	s.notifier.SendAdminDigest(s.adminEmail, notify.DigestStats{
		TotalProjects:       stats.TotalProjects,
		PendingProjects:     stats.PendingProjects,
		TotalApplications:   stats.TotalApplications,
		PendingApplications: stats.PendingApplications,
	})

	log.Println("Nightly digest completed at:", time.Now().Format(time.RFC1123))
}
