package cli

import (
	"context"

	"sysdash/internal/collector"
	"sysdash/internal/config"
	"sysdash/internal/logging"
	"sysdash/ui/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// dashboardCommand runs the interactive dashboard until the user quits.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return runDashboard(cmd.Context(), cfg, collector.SystemSources(cfg), log)
}

func runDashboard(ctx context.Context, cfg config.Config, src collector.Sources, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	trackers, err := collector.New(src, cfg, log)
	if err != nil {
		return err
	}
	if err := trackers.Connect(ctx); err != nil {
		return err
	}
	defer trackers.Close(context.Background())

	log.Info("dashboard starting",
		zap.Int("capacity", cfg.History.Capacity),
		zap.Duration("interval", cfg.Refresh.Interval),
		zap.Bool("all_partitions", cfg.Disks.AllPartitions))

	return tui.Run(ctx, trackers, tui.Options{
		Period:  cfg.Refresh.Interval,
		QuitKey: cfg.UI.QuitKey,
		Logger:  log,
	})
}
