package logger

import (
	"log/slog"
	"os"

	"ansadash/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct {
	*slog.Logger
}

const NA = "N/A"

func Init(config *config.Config) Logger {
	slogOpts := &slog.HandlerOptions{}

	if !config.ProdEnv {
		slogOpts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if config.ProdEnv {
		handler = slog.NewJSONHandler(os.Stdout, slogOpts)
	} else {
		opts := &devslog.Options{
			HandlerOptions:    slogOpts,
			MaxSlicePrintSize: 4,
			SortKeys:          true,
			NewLineAfterLog:   true,
		}
		handler = devslog.NewHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return Logger{logger}
}

func GenErrorId() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return NA
	}
	return id.String()
}
