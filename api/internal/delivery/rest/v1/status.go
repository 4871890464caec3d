package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initStatusRoutes(g *gin.RouterGroup) {
	g.GET("/status", h.status)
	g.GET("/metrics", gin.WrapH(h.metrics.Handler()))
}

func (h *Handler) status(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
