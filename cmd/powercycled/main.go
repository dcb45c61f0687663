// cmd/powercycled/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/powercycle-harness/internal/bus/socketcan"
	"github.com/tamzrod/powercycle-harness/internal/config"
	"github.com/tamzrod/powercycle-harness/internal/driver"
	"github.com/tamzrod/powercycle-harness/internal/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "powercycled",
		Short: "Suspend/wake power-cycle driver for the eMMC mount harness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "harness.yaml", "Harness configuration file")
	return cmd
}

func run(cfgPath string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	config.Normalize(cfg)

	h := cfg.Harness

	if len(h.Check.Command) == 0 {
		return errors.New("check.command is required for the driver")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Bus transmitter
	// --------------------

	tx, err := socketcan.New(ctx, socketcan.Config{
		Interface: h.Bus.Interface,
		FrameID:   h.Bus.FrameID,
	})
	if err != nil {
		return err
	}
	defer tx.Close()

	// --------------------
	// Metrics endpoint (optional)
	// --------------------

	if h.Metrics.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())

		go func() {
			if err := http.ListenAndServe(h.Metrics.Listen, mux); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	// --------------------
	// Timer cascade
	// --------------------

	d, err := driver.New(
		driver.Config{
			Tick:      time.Duration(h.Bus.TickMs) * time.Millisecond,
			Cycle:     time.Duration(h.Schedule.CycleMs) * time.Millisecond,
			PreSleep:  time.Duration(h.Schedule.PreSleepMs) * time.Millisecond,
			WakeDelay: time.Duration(h.Schedule.WakeMs) * time.Millisecond,
			Resleep:   time.Duration(h.Schedule.ResleepMs) * time.Millisecond,
		},
		tx,
		&driver.ExecLauncher{Command: h.Check.Command},
	)
	if err != nil {
		return err
	}

	log.Printf("power-cycle driver up: bus=%s id=0x%X cycle=%dms",
		h.Bus.Interface, h.Bus.FrameID, h.Schedule.CycleMs)

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}

	log.Printf("power-cycle driver stopped")
	return nil
}
