// cmd/mountcheck/main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/powercycle-harness/internal/bench"
	"github.com/tamzrod/powercycle-harness/internal/bridge/adb"
	"github.com/tamzrod/powercycle-harness/internal/checker"
	"github.com/tamzrod/powercycle-harness/internal/config"
	"github.com/tamzrod/powercycle-harness/internal/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "mountcheck",
		Short: "Verify the eMMC mount on the controller after wake-up",
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

	logFile, err := report.NewLog(h.Log.File)
	if err != nil {
		return err
	}

	// --------------------
	// Bridge session + check
	// --------------------

	bridge, err := adb.Open(adb.Config{
		Path:   h.Bridge.ADBPath,
		Serial: h.Bridge.Serial,
	})
	if err != nil {
		return err
	}
	defer bridge.Close()

	res, err := checker.Run(bridge, checker.Config{
		Username:       h.Bridge.Username,
		Password:       h.Bridge.Password,
		LoginTimeout:   time.Duration(h.Bridge.LoginTimeoutMs) * time.Millisecond,
		CommandTimeout: time.Duration(h.Bridge.CommandTimeoutMs) * time.Millisecond,
		MountPath:      h.Mount.Path,
		Keyword:        h.Mount.Keyword,
	})
	if err != nil {
		return err
	}

	// --------------------
	// Traceability + summary
	// --------------------

	if err := logFile.Append(res); err != nil {
		log.Printf("log append failed: %v", err)
	} else {
		fmt.Printf("Check complete! Results saved to: %s\n", h.Log.File)
	}

	fmt.Println(report.Summary(res))

	// --------------------
	// Bench status memory (opt-in)
	// --------------------

	if h.Bench.Endpoint != "" {
		if err := publishBenchStatus(h.Bench, res); err != nil {
			log.Printf("bench status publish failed: %v", err)
		}
	}

	// A failed mount is a reported outcome, not a harness error.
	return nil
}

// publishBenchStatus delivers the check outcome into the test bench's
// status memory. The cycle counter lives on the bench; each one-shot
// check reads it back and increments it.
func publishBenchStatus(b config.BenchConfig, res checker.Result) error {
	cli, err := bench.Dial(bench.ClientConfig{
		Endpoint: b.Endpoint,
		UnitID:   b.UnitID,
		Timeout:  time.Duration(b.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer cli.Close()

	var cycle uint16
	base := b.BaseSlot * bench.SlotsPerDevice
	if regs, err := cli.ReadRegisters(base+bench.SlotCycleCount, 1); err == nil {
		cycle = regs[0]
	}
	if cycle < 65535 {
		cycle++
	}

	w, err := bench.NewWriter(cli, b.BaseSlot, b.DeviceName)
	if err != nil {
		return err
	}

	return w.WriteStatus(bench.SnapshotFrom(res, cycle))
}
