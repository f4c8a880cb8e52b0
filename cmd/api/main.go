package main

import (
	"context"
	"log"

	"github.com/projectify-app/projectify-backend/config"
	analyticscron "github.com/projectify-app/projectify-backend/internal/analytics/cron"
	analyticshttp "github.com/projectify-app/projectify-backend/internal/analytics/http"
	analyticsservice "github.com/projectify-app/projectify-backend/internal/analytics/service"
	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	applicationshttp "github.com/projectify-app/projectify-backend/internal/applications/http"
	apprepo "github.com/projectify-app/projectify-backend/internal/applications/repository"
	appservice "github.com/projectify-app/projectify-backend/internal/applications/service"
	"github.com/projectify-app/projectify-backend/internal/auth"
	authhttp "github.com/projectify-app/projectify-backend/internal/auth/http"
	authrepo "github.com/projectify-app/projectify-backend/internal/auth/repository"
	authservice "github.com/projectify-app/projectify-backend/internal/auth/service"
	"github.com/projectify-app/projectify-backend/internal/bootstrap"
	"github.com/projectify-app/projectify-backend/internal/notify"
	projectshttp "github.com/projectify-app/projectify-backend/internal/projects/http"
	projrepo "github.com/projectify-app/projectify-backend/internal/projects/repository"
	projservice "github.com/projectify-app/projectify-backend/internal/projects/service"
	"github.com/projectify-app/projectify-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	httpapi.SetProduction(cfg.IsProduction())

	ctx := context.Background()

	app, err := bootstrap.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	authClient, err := bootstrap.AuthClient(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}

	fsClient, err := bootstrap.FirestoreClient(ctx, app)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis.Addr)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	var mailer notify.Mailer = notify.LogMailer{}
	if cfg.Mail.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From)
	}
	notifier := notify.NewService(mailer, cfg.Server.FrontendURL)

	docStore := store.NewFirestore(fsClient)

	userRepo := authrepo.NewUserRepository(docStore)
	projectRepo := projrepo.NewRepo(docStore)
	applicationRepo := apprepo.NewRepo(docStore)

	provider := auth.NewFirebaseProvider(authClient)
	authSvc := authservice.NewAuthService(provider, userRepo, notifier, cfg.App.AdminEmail)
	projectSvc := projservice.NewService(projectRepo, applicationRepo, notifier)
	applicationSvc := appservice.NewService(applicationRepo, projectRepo, notifier)
	analyticsSvc := analyticsservice.NewService(projectRepo, applicationRepo, userRepo)

	if cfg.Digest.Enabled {
		scheduler := analyticscron.NewScheduler(analyticsSvc, notifier, cfg.App.AdminEmail)
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:      "projectify-backend",
		Version:          cfg.App.Version,
		FrontendURL:      cfg.Server.FrontendURL,
		Store:            docStore,
		Redis:            rdb,
		RateLimitMax:     cfg.RateLimit.Max,
		RateLimitWindow:  cfg.RateLimit.Window,
		AuthService:      authSvc,
		AuthHandler:      authhttp.New(authSvc),
		ProjectsHandler:  projectshttp.New(projectSvc),
		AppsHandler:      applicationshttp.New(applicationSvc),
		AnalyticsHandler: analyticshttp.New(analyticsSvc),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
