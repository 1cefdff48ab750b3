package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zclconf/go-cty/cty"
)

// Version is reported by the driver's --version flag.
const Version = "1.0.0"

// Config holds everything the driver parsed from its command line.
type Config struct {
	Numbers  []int
	Flag     *string
	Bool     bool
	Name     string
	Pair     []int
	Settings map[string]string
	Tags     map[string]struct{}
	Expr     cty.Value
	Timeout  *time.Duration

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.Timeout != nil && *cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s: must not be negative", *cfg.Timeout)
	}
	return &cfg, nil
}
