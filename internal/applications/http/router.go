package http

import "github.com/gin-gonic/gin"

func (h *Handler) Routes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("", requireAuth, h.Submit)
	rg.GET("/my", requireAuth, h.ListMine)
	rg.GET("", requireAuth, h.ListAll)
	rg.PUT("/:id/approve", requireAuth, h.Approve)
	rg.PUT("/:id/reject", requireAuth, h.Reject)
}
