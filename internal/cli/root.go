package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/soft-challenge/soft75/internal/config"
	"github.com/soft-challenge/soft75/pkg/habits"
	"github.com/soft-challenge/soft75/pkg/notify"
	"github.com/soft-challenge/soft75/pkg/storage"
	"github.com/soft-challenge/soft75/pkg/tracker"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "soft75",
	Short: "soft75 - 75-day soft challenge habit tracker",
	Long: `soft75 tracks five daily habits over a 75-day challenge: diet, water,
reading, workout, and a progress photo. State lives in a local database;
toggle habits per day, watch the completion percentage climb, and reset
when you want to start over.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.soft75/config.yaml)")
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// initCatalog loads the habit catalog, falling back to the built-in one.
func initCatalog(cfg *config.Config) (*habits.Catalog, error) {
	if cfg.Habits.File == "" {
		return habits.Default(), nil
	}
	return habits.LoadFile(cfg.Habits.File)
}

// initNotifiers creates milestone notifiers from config.
func initNotifiers(cfg *config.Config) []notify.Notifier {
	var notifiers []notify.Notifier

	if cfg.Notify.Webhook.Enabled && cfg.Notify.Webhook.URL != "" {
		notifiers = append(notifiers, notify.NewWebhookNotifier(
			cfg.Notify.Webhook.URL,
			cfg.Notify.Webhook.Secret,
		))
	}

	return notifiers
}

// initTracker creates a fully wired, hydrated tracker. The returned
// logger is the one the tracker logs through; commands that log should
// use it rather than building their own.
func initTracker(ctx context.Context, cfg *config.Config) (*tracker.Tracker, storage.Store, *slog.Logger, error) {
	logger := newLogger(cfg)

	policy, err := tracker.PolicyFromName(cfg.Policy.Pic)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := storage.NewSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, nil, nil, err
	}

	milestones := tracker.NewMilestoneNotifier(initNotifiers(cfg), logger)
	tr := tracker.NewTracker(store, policy, store, milestones, logger)
	tr.Load(ctx)

	return tr, store, logger, nil
}
