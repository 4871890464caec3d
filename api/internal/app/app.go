package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ansadash/api/internal/ansa"
	"ansadash/api/internal/config"
	"ansadash/api/internal/delivery"
	"ansadash/api/internal/logger"
	"ansadash/api/internal/metrics"
	"ansadash/api/internal/service"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Db     *gorm.DB
	Log    logger.Logger
}

func (app *App) Start() {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(cors.Default())

	services := service.NewServices(app.Db, app.Log, app.Config)
	ansaClient := ansa.NewClient(app.Config.Ansa.Host, app.Config.Ansa.AdminApiKey, app.Log)
	collector := metrics.New()

	{
		h := delivery.InitHandler(services, ansaClient, app.Db, app.Config, collector, app.Log)

		h.InitAPI(r)
	}

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := services.Sessions.PurgeExpired(app.Db); err != nil {
				app.Log.Warn("session purge failed", "error", err.Error())
			}
		}
	}()

	eChan := make(chan error)
	interrupt := make(chan os.Signal, 1)

	fmt.Println("dashboard api is starting")

	go func() {
		err := r.Run(app.Config.Api.Addr)
		if err != nil {
			eChan <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-eChan:
		app.Log.TemplHTTPError("app fatal error", app.Config.Api.Addr, err)
		return
	case <-interrupt:
		return
	}
}
