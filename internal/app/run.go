package app

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/vk/cliarg/internal/ctxlog"
)

// Run prints a report of the parsed configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	sum := 0
	for _, n := range cfg.Numbers {
		sum += n
	}
	logger.Info("Numbers received.", "count", len(cfg.Numbers), "sum", sum)

	flag := "<flag not given>"
	if cfg.Flag != nil {
		flag = *cfg.Flag
	}

	lines := []string{
		fmt.Sprintf("numbers: %d (sum %d)", len(cfg.Numbers), sum),
		"flag: " + flag,
		fmt.Sprintf("bool: %t", cfg.Bool),
	}
	if cfg.Name != "" {
		lines = append(lines, "name: "+cfg.Name)
	}
	if len(cfg.Pair) > 0 {
		lines = append(lines, fmt.Sprintf("pair: %v", cfg.Pair))
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Settings)) {
		lines = append(lines, fmt.Sprintf("set: %s=%s", key, cfg.Settings[key]))
	}
	if len(cfg.Tags) > 0 {
		lines = append(lines, "tags: "+strings.Join(slices.Sorted(maps.Keys(cfg.Tags)), ","))
	}
	if cfg.Expr.IsKnown() && !cfg.Expr.IsNull() {
		lines = append(lines, fmt.Sprintf("expr: %d value(s)", cfg.Expr.LengthInt()))
	}
	if cfg.Timeout != nil {
		lines = append(lines, "timeout: "+cfg.Timeout.String())
	}

	if _, err := fmt.Fprintln(a.outW, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
