package v1

import (
	"ansadash/api/internal/ansa"
	"ansadash/api/internal/config"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/metrics"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Handler struct {
	services *service.Services
	ansa     ansa.API
	db       *gorm.DB
	config   *config.Config
	metrics  *metrics.Collector
	log      logger.Logger

	validate *validator.Validate
	limiter  *signinLimiter
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	g.Use(h.requestMetrics())

	{
		h.initAuthRoutes(g)
		h.initStatusRoutes(g)
	}

	ansaGroup := g.Group("/ansa", h.sessionMiddleware())
	{
		h.initCustomerRoutes(ansaGroup)
		h.initTransactionRoutes(ansaGroup)
		h.initMerchantRoutes(ansaGroup)
	}
}

func NewHandler(services *service.Services, ansaAPI ansa.API, db *gorm.DB, config *config.Config, m *metrics.Collector, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		metrics:  m,
		log:      log,
		services: services,
		ansa:     ansaAPI,
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		limiter:  newSigninLimiter(),
	}
}
