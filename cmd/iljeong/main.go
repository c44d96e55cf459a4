package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/iljeong-app/iljeong/event"
	"github.com/iljeong-app/iljeong/internal/clock"
	"github.com/iljeong-app/iljeong/internal/config"
	"github.com/iljeong-app/iljeong/notify"
	"github.com/iljeong-app/iljeong/server"
	"github.com/iljeong-app/iljeong/storage"
	"github.com/iljeong-app/iljeong/storage/memory"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "iljeong",
	Short: "Calendar event manager with conflict detection and reminders",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the event API server and the reminder scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	store := memory.New()
	if cfg.SeedFile != "" {
		events, err := storage.LoadEvents(cfg.SeedFile)
		if err != nil {
			return err
		}
		if err := store.Replace(context.Background(), events); err != nil {
			return err
		}
		logger.Info("seed file loaded", "path", cfg.SeedFile, "events", len(events))

		if cfg.WatchSeed {
			watcher := storage.NewWatcher(cfg.SeedFile, store, logger)
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Close()
		}
	}

	var clk clock.Clock = clock.System{}
	if cfg.NTP.Enabled {
		ntpClock, err := clock.NewNTP(cfg.NTP.Server)
		if err != nil {
			logger.Warn("ntp unavailable, falling back to system clock", "err", err)
		} else {
			clk = ntpClock
			logger.Info("using ntp-corrected clock", "server", cfg.NTP.Server)
		}
	}

	if cfg.Notify.Enabled {
		tick, err := cfg.Notify.TickDuration()
		if err != nil {
			return err
		}
		scheduler := notify.NewScheduler(
			func(ctx context.Context) ([]event.Event, error) { return store.List(ctx, nil) },
			func(n notify.Notification) {
				logger.Info("reminder", "id", n.ID, "message", n.Message)
			},
			clk, tick, logger,
		)
		if err := scheduler.Start(); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	logger.Info("starting event server", "addr", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, server.New(store, logger))
}
