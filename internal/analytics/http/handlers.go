package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	"github.com/projectify-app/projectify-backend/internal/analytics/service"
	"github.com/projectify-app/projectify-backend/internal/auth"
)

type Handler struct {
	analytics *service.Service
}

func New(analytics *service.Service) *Handler {
	return &Handler{analytics: analytics}
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.analytics.Dashboard(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard analytics")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func (h *Handler) ProjectsByStatus(c *gin.Context) {
	data, err := h.analytics.ProjectsByStatus(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch projects by status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *Handler) ApplicationsByStatus(c *gin.Context) {
	data, err := h.analytics.ApplicationsByStatus(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch applications by status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *Handler) UserActivity(c *gin.Context) {
	data, err := h.analytics.UserActivity(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch user activity")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *Handler) Routes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/dashboard", requireAuth, h.Dashboard)
	rg.GET("/projects-by-status", requireAuth, h.ProjectsByStatus)
	rg.GET("/applications-by-status", requireAuth, h.ApplicationsByStatus)
	rg.GET("/user-activity", requireAuth, h.UserActivity)
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		httpapi.Fail(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		httpapi.Fail(c, http.StatusForbidden, "Admin access required")
	default:
		httpapi.Internal(c, fallback, err)
	}
}
