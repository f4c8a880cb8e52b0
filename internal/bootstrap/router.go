package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	analyticshttp "github.com/projectify-app/projectify-backend/internal/analytics/http"
	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	apimiddleware "github.com/projectify-app/projectify-backend/internal/api/http/middleware"
	applicationshttp "github.com/projectify-app/projectify-backend/internal/applications/http"
	authhttp "github.com/projectify-app/projectify-backend/internal/auth/http"
	authmiddleware "github.com/projectify-app/projectify-backend/internal/auth/middleware"
	authservice "github.com/projectify-app/projectify-backend/internal/auth/service"
	projectshttp "github.com/projectify-app/projectify-backend/internal/projects/http"
	"github.com/projectify-app/projectify-backend/internal/store"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	FrontendURL string

	Store store.Store
	Redis *redis.Client

	RateLimitMax    int
	RateLimitWindow time.Duration

	AuthService      *authservice.AuthService
	AuthHandler      *authhttp.Handler
	ProjectsHandler  *projectshttp.Handler
	AppsHandler      *applicationshttp.Handler
	AnalyticsHandler *analyticshttp.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestIDMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(apimiddleware.RateLimit(dep.Redis, dep.RateLimitMax, dep.RateLimitWindow))

	requireAuth := authmiddleware.RequireAuth(dep.AuthService)
	optionalAuth := authmiddleware.OptionalAuth(dep.AuthService)

	dep.AuthHandler.Routes(api.Group("/auth"), requireAuth)
	dep.ProjectsHandler.Routes(api.Group("/projects"), requireAuth, optionalAuth)
	dep.AppsHandler.Routes(api.Group("/applications"), requireAuth)
	dep.AnalyticsHandler.Routes(api.Group("/analytics"), requireAuth)

	return r
}
