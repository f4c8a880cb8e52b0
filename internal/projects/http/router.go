package http

import "github.com/gin-gonic/gin"

func (h *Handler) Routes(rg *gin.RouterGroup, requireAuth, optionalAuth gin.HandlerFunc) {
	rg.GET("", requireAuth, h.List)
	rg.POST("", requireAuth, h.Create)
	rg.GET("/:id", optionalAuth, h.Get)
	rg.PUT("/:id/approve", requireAuth, h.Approve)
	rg.PUT("/:id/reject", requireAuth, h.Reject)
	rg.DELETE("/:id", requireAuth, h.Delete)
}
