// Package cli wires configuration, logging, trackers and renderers into the
// sysdash command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"sysdash/internal/config"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysdash",
		Short: "Live terminal dashboard for CPU, memory and disk usage",
		Long: `sysdash polls the host on a fixed interval and draws scrolling CPU and
memory charts, one usage gauge per disk and a system info panel.

Press q (or ctrl+c) to quit.

Examples:
  sysdash
  sysdash --interval 500ms --capacity 120
  sysdash --log-file /tmp/sysdash.log --log-level debug
  sysdash snapshot`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dashboardCommand(cmd)
		},
	}

	addGlobalFlags(cmd)

	cmd.AddCommand(newSnapshotCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func addGlobalFlags(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./sysdash.yaml, then ~/.config/sysdash/config.yaml)")
	f.Int("capacity", d.History.Capacity, "samples kept per chart series")
	f.Duration("interval", d.Refresh.Interval, "minimum time between refreshes")
	f.Bool("all-partitions", d.Disks.AllPartitions, "include virtual filesystems in the disk gauges")
	f.String("quit-key", d.UI.QuitKey, "key that quits the dashboard (ctrl+c always works)")
	f.String("log-file", d.Log.File, "write logs to this file (disabled when empty)")
	f.String("log-level", d.Log.Level, "log level: debug, info, warn, error")
}

// loadConfig resolves the effective config for cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(cfgFile, cmd.Flags())
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
		stop()
		os.Exit(1)
	}
}
