package cli

import (
	"context"
	"io"
	"time"

	"sysdash/internal/collector"
	"sysdash/internal/config"
	"sysdash/internal/engine"
	sderrors "sysdash/internal/errors"
	"sysdash/internal/logging"
	"sysdash/ui/console"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSnapshotCmd() *cobra.Command {
	var samples uint64

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Sample a few ticks and print the result as text",
		Long: `Run the refresh loop without a terminal UI for a fixed number of ticks,
then print the last frame. The first CPU reading is always 0%, so the
default of 2 samples reports utilization over one interval. Samples are
spaced at least 100ms apart so the CPU counters have time to advance.

Examples:
  sysdash snapshot
  sysdash snapshot --samples 5 --interval 200ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runSnapshot(cmd.Context(), cfg, collector.SystemSources(cfg), samples, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().Uint64Var(&samples, "samples", 2, "number of ticks to sample before printing")
	return cmd
}

// minSnapshotSpacing keeps two CPU time reads from landing in the same
// kernel accounting tick.
const minSnapshotSpacing = 100 * time.Millisecond

func snapshotPeriod(interval time.Duration) time.Duration {
	return max(interval, minSnapshotSpacing)
}

func runSnapshot(ctx context.Context, cfg config.Config, src collector.Sources, samples uint64, w io.Writer, log *zap.Logger) error {
	if samples == 0 {
		return sderrors.New(sderrors.ErrConfig, "--samples must be at least 1", "")
	}

	trackers, err := collector.New(src, cfg, log)
	if err != nil {
		return err
	}
	if err := trackers.Connect(ctx); err != nil {
		return err
	}
	defer trackers.Close(context.Background())

	rec := &console.Recorder{}
	loop, err := engine.NewLoop(trackers, rec, engine.SleepPoller{},
		engine.WithPeriod(snapshotPeriod(cfg.Refresh.Interval)),
		engine.WithLogger(log))
	if err != nil {
		return err
	}

	if err := loop.RunTicks(ctx, samples); err != nil {
		return err
	}

	f, ok := rec.Last()
	if !ok {
		// interrupted before the first tick
		return nil
	}
	console.PrintFrame(w, f)
	return nil
}
