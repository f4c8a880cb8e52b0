package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	"github.com/projectify-app/projectify-backend/internal/auth"
	"github.com/projectify-app/projectify-backend/internal/projects/domain"
	"github.com/projectify-app/projectify-backend/internal/projects/service"
)

type Handler struct {
	projects *service.Service
}

func New(projects *service.Service) *Handler {
	return &Handler{projects: projects}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.projects.ListVisible(c.Request.Context(), auth.CurrentUser(c), c.Query("status"))
	if err != nil {
		respondError(c, err, "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": items})
}

func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Validation failed")
		return
	}

	p, err := h.projects.Create(c.Request.Context(), auth.CurrentUser(c), service.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	})
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Project created successfully",
		"project": p,
	})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.projects.Get(c.Request.Context(), c.Param("id"), auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) Approve(c *gin.Context) {
	h.setStatus(c, domain.StatusApproved, "Project approved successfully")
}

func (h *Handler) Reject(c *gin.Context) {
	h.setStatus(c, domain.StatusRejected, "Project rejected successfully")
}

func (h *Handler) setStatus(c *gin.Context, status domain.Status, message string) {
	p, err := h.projects.SetStatus(c.Request.Context(), c.Param("id"), status, auth.CurrentUser(c))
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "project": p})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("id"), auth.CurrentUser(c)); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project and associated applications deleted successfully",
	})
}

func respondError(c *gin.Context, err error, fallback string) {
	var ve domain.ValidationError
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		httpapi.Fail(c, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		httpapi.Fail(c, http.StatusForbidden, "Admin access required")
	case errors.Is(err, domain.ErrProjectNotFound):
		httpapi.Fail(c, http.StatusNotFound, "Project not found")
	case errors.As(err, &ve):
		httpapi.Fail(c, http.StatusBadRequest, ve.Error())
	default:
		httpapi.Internal(c, fallback, err)
	}
}
