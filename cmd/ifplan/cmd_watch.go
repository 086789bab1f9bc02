package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ifplan-network/ifplan/pkg/network"
	"github.com/ifplan-network/ifplan/pkg/probe"
	"github.com/ifplan-network/ifplan/pkg/util"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow prober link events",
	Long: `Subscribe to the prober's link events, reconcile them into the
registry, and print device changes until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := probe.NewWatcher(redisAddr, mdl, util.Logger.WithField("component", "probe"))
		if err := w.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to prober at %s: %w", redisAddr, err)
		}
		defer w.Close()

		w.OnUpdate = func(dev *network.Device) {
			fmt.Printf("update: %s\n", dev.Name)
		}

		if err := w.Snapshot(ctx); err != nil {
			return err
		}
		fmt.Printf("watching %d device(s); ctrl-c to stop\n", len(mdl.List(false)))

		err := w.Run(ctx)
		if err == context.Canceled {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
