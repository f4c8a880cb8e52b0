package notify

import (
	"context"
	"log"
	"sync"

	"golang.org/x/time/rate"
)

// Recipient is one target of a fan-out dispatch.
type Recipient struct {
	Email string
	Name  string
}

// DigestStats is the payload of the nightly admin digest.
type DigestStats struct {
	TotalProjects       int
	PendingProjects     int
	TotalApplications   int
	PendingApplications int
}

// Service renders and sends lifecycle emails. Every send is fire-and-forget:
// failures are logged here and never reach the caller, because the state
// transition that triggered the mail has already committed.
type Service struct {
	mailer      Mailer
	limiter     *rate.Limiter
	frontendURL string
}

func NewService(mailer Mailer, frontendURL string) *Service {
	return &Service{
		mailer: mailer,
		// SMTP relays throttle senders; one message per second with a
		// small burst keeps fan-outs under typical limits.
		limiter:     rate.NewLimiter(rate.Limit(1), 5),
		frontendURL: frontendURL,
	}
}

func (s *Service) send(to, subject, html string) {
	if err := s.limiter.Wait(context.Background()); err != nil {
		log.Printf("[mail] throttle wait aborted for %s: %v", to, err)
		return
	}
	if err := s.mailer.Send(to, subject, html); err != nil {
		log.Printf("[mail] send to %s failed: %v", to, err)
	}
}

func (s *Service) SendWelcome(email, name string) {
	subject, html := welcomeTemplate(name, email)
	s.send(email, subject, html)
}

func (s *Service) SendApplicationApproved(email, name, projectName string) {
	subject, html := applicationApprovedTemplate(name, projectName)
	s.send(email, subject, html)
}

func (s *Service) SendApplicationRejected(email, name, projectName string) {
	subject, html := applicationRejectedTemplate(name, projectName, s.frontendURL)
	s.send(email, subject, html)
}

// FanOutProjectApproved mails every applicant of a freshly approved project.
// Each recipient is independent: one failure is logged and the rest still go
// out. Returns after every attempt has completed.
func (s *Service) FanOutProjectApproved(projectName, projectDescription string, recipients []Recipient) {
	var wg sync.WaitGroup
	for _, r := range recipients {
		wg.Add(1)
		go func(r Recipient) {
			defer wg.Done()
			subject, html := projectApprovedTemplate(r.Name, projectName, projectDescription)
			s.send(r.Email, subject, html)
		}(r)
	}
	wg.Wait()
}

func (s *Service) SendAdminDigest(email string, stats DigestStats) {
	subject, html := adminDigestTemplate(stats)
	s.send(email, subject, html)
}
