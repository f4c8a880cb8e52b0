package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	httpapi "github.com/projectify-app/projectify-backend/internal/api/http"
	"github.com/projectify-app/projectify-backend/internal/auth"
	"github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

// Register creates an account and returns a token for immediate login.
func (h *Handler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, registrationMessage(err))
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			httpapi.Fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		httpapi.Internal(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Validation failed")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			httpapi.Fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		httpapi.Internal(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	user := auth.CurrentUser(c)
	if err := h.authService.Logout(c.Request.Context(), user.ID); err != nil {
		httpapi.Internal(c, "Logout failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": auth.CurrentUser(c)})
}

// registrationMessage maps binding failures to the user-facing messages the
// frontend shows, distinct from the generic failure message.
func registrationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation failed"
	}

	switch verrs[0].Field() {
	case "Name":
		return "Name must be between 2 and 50 characters"
	case "Email":
		return "Valid email is required"
	case "Password":
		return "Password must be at least 6 characters long"
	}
	return "Validation failed"
}
