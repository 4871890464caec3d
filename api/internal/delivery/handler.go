package delivery

import (
	"ansadash/api/internal/ansa"
	"ansadash/api/internal/config"
	v1 "ansadash/api/internal/delivery/rest/v1"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/metrics"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	Services *service.Services
	Ansa     ansa.API
	Db       *gorm.DB
	Config   *config.Config
	Metrics  *metrics.Collector
	Log      logger.Logger
}

func (h *Handler) InitAPI(r *gin.Engine) {
	apiGroup := r.Group("/api")

	v1Handler := v1.NewHandler(h.Services, h.Ansa, h.Db, h.Config, h.Metrics, h.Log)

	{
		v1Handler.InitRoutes(apiGroup)
	}
}

func InitHandler(services *service.Services, ansaAPI ansa.API, db *gorm.DB, config *config.Config, m *metrics.Collector, log logger.Logger) *Handler {
	return &Handler{
		Config:   config,
		Metrics:  m,
		Log:      log,
		Services: services,
		Ansa:     ansaAPI,
		Db:       db,
	}
}
