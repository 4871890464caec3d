package main

import (
	"ansadash/api/internal/app"
	"ansadash/api/internal/config"
	"ansadash/api/internal/infra/postgres"
	"ansadash/api/internal/logger"
)

func main() {
	config := config.ReadConfig()
	config.DB = postgres.Init(config)

	log := logger.Init(config)

	app := &app.App{
		Config: config,
		Db:     config.DB,
		Log:    log,
	}

	app.Start()
}
