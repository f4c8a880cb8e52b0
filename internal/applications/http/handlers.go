package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	"github.com/projectify-app/projectify-backend/internal/applications/domain"
	"github.com/projectify-app/projectify-backend/internal/applications/service"
	"github.com/projectify-app/projectify-backend/internal/auth"
	projdomain "github.com/projectify-app/projectify-backend/internal/projects/domain"
)

type Handler struct {
	applications *service.Service
}

func New(applications *service.Service) *Handler {
	return &Handler{applications: applications}
}

type submitReq struct {
	ProjectID string `json:"projectId" binding:"required"`
}

func (h *Handler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}

	a, err := h.applications.Submit(c.Request.Context(), auth.CurrentUser(c), req.ProjectID)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"application": a,
	})
}

func (h *Handler) ListMine(c *gin.Context) {
	items, err := h.applications.ListMine(c.Request.Context(), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": items})
}

func (h *Handler) ListAll(c *gin.Context) {
	items, err := h.applications.ListAll(c.Request.Context(), auth.CurrentUser(c), c.Query("projectId"))
	if err != nil {
		respondError(c, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applications": items})
}

func (h *Handler) Approve(c *gin.Context) {
	h.setStatus(c, domain.StatusApproved, "Application approved successfully")
}

func (h *Handler) Reject(c *gin.Context) {
	h.setStatus(c, domain.StatusRejected, "Application rejected successfully")
}

func (h *Handler) setStatus(c *gin.Context, status domain.Status, message string) {
	a, err := h.applications.SetStatus(c.Request.Context(), c.Param("id"), status, auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update application")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "application": a})
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		httpapi.Fail(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		httpapi.Fail(c, http.StatusForbidden, "Admin access required")
	case errors.Is(err, projdomain.ErrProjectNotFound):
		httpapi.Fail(c, http.StatusNotFound, "Project not found")
	case errors.Is(err, domain.ErrApplicationNotFound):
		httpapi.Fail(c, http.StatusNotFound, "Application not found")
	case errors.Is(err, domain.ErrProjectNotApproved):
		httpapi.Fail(c, http.StatusBadRequest, "Cannot apply to non-approved projects")
	case errors.Is(err, domain.ErrAlreadyApplied):
		httpapi.Fail(c, http.StatusBadRequest, "You have already applied to this project")
	default:
		httpapi.Internal(c, fallback, err)
	}
}
