package app

import (
	"io"
	"log/slog"
)

// App encapsulates the driver's output and logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp builds an App writing its report to outW and its logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger}
}
