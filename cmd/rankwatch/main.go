package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"rankwatch/internal/adapters/ctftime"
	"rankwatch/internal/adapters/snapshot"
	"rankwatch/internal/adapters/webhook"
	app "rankwatch/internal/app"
	"rankwatch/internal/config"
	"rankwatch/internal/domain/format"
	"rankwatch/pkg/logger"
	"rankwatch/pkg/metrics"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Error(ctx, "run failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	teamFlag := flag.Int64("team", 0, "ranking-source team id to track (overrides config)")
	countryFlag := flag.String("country", "", "leaderboard country code (overrides config)")
	flag.Parse()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if *teamFlag > 0 {
		cfg.TeamID = *teamFlag
	}
	if *countryFlag != "" {
		cfg.Country = *countryFlag
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	runLogger := logger.Get().With(
		logger.String("run_id", uuid.New().String()),
		logger.Int64("team_id", cfg.TeamID),
	)

	timeout := time.Duration(cfg.HTTPTimeoutMS) * time.Millisecond

	svc := app.New(
		app.WithTeamID(cfg.TeamID),
		app.WithCountry(cfg.Country),
		app.WithLogger(runLogger),
		app.WithSource(ctftime.New(
			ctftime.WithBaseURL(cfg.APIBaseURL),
			ctftime.WithTimeout(timeout),
		)),
		app.WithStore(snapshot.NewFileStore(
			snapshot.WithPath(cfg.SnapshotPath),
		)),
		app.WithNotifier(webhook.New(cfg.WebhookURL,
			webhook.WithName(cfg.WebhookName),
			webhook.WithAvatar(cfg.WebhookAvatar),
			webhook.WithTimeout(timeout),
		)),
		app.WithFormatter(format.New(
			format.WithLinks(cfg.UseLinks),
			format.WithPoints(cfg.IncludePoints),
		)),
	)

	if err := svc.Run(ctx); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			// Metrics export is best effort; the run itself succeeded.
			runLogger.Warn(ctx, "metrics export failed", logger.Error(err))
		}
	}
	return nil
}
