// internal/driver/driver.go
package driver

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tamzrod/powercycle-harness/internal/bus"
	"github.com/tamzrod/powercycle-harness/internal/frame"
	"github.com/tamzrod/powercycle-harness/internal/metrics"
)

// Config is the minimal runtime config the driver needs.
type Config struct {
	Tick      time.Duration // cyclic broadcast period
	Cycle     time.Duration // full sleep/wake cycle period
	PreSleep  time.Duration // cycle start -> sleep transition
	WakeDelay time.Duration // sleep -> wake transition
	Resleep   time.Duration // wake -> next sleep transition
}

// Driver walks the fixed sleep/wake timer cascade and notifies the
// checker on every wake transition. Single goroutine, select-driven.
type Driver struct {
	cfg    Config
	tx     bus.Transmitter
	launch Launcher
}

// New creates a driver with immutable config.
func New(cfg Config, tx bus.Transmitter, launch Launcher) (*Driver, error) {
	if tx == nil {
		return nil, errors.New("driver: transmitter required")
	}
	if launch == nil {
		return nil, errors.New("driver: launcher required")
	}
	if cfg.Tick <= 0 {
		return nil, errors.New("driver: tick must be > 0")
	}
	if cfg.Cycle <= 0 {
		return nil, errors.New("driver: cycle must be > 0")
	}
	if cfg.PreSleep <= 0 || cfg.WakeDelay <= 0 || cfg.Resleep <= 0 {
		return nil, errors.New("driver: cascade delays must be > 0")
	}
	if cfg.PreSleep+cfg.WakeDelay+cfg.Resleep > cfg.Cycle {
		return nil, errors.New("driver: cascade does not fit inside one cycle")
	}
	return &Driver{cfg: cfg, tx: tx, launch: launch}, nil
}

// Run executes the cascade until ctx is done.
//
// Per cycle window: broadcasting awake -> sleep (flag 1, cyclic stops)
// -> wake (flag 0, cyclic resumes, checker launched, exactly once)
// -> sleep again -> silent until the cycle timer restarts the cascade.
// All transitions are time-driven; nothing is event- or condition-driven.
func (d *Driver) Run(ctx context.Context) error {
	state := frame.StateAwake
	broadcasting := true

	ticker := time.NewTicker(d.cfg.Tick)
	defer ticker.Stop()

	cycle := time.NewTicker(d.cfg.Cycle)
	defer cycle.Stop()

	// One-shot transition arms. A nil channel never selects.
	sleepC := time.After(d.cfg.PreSleep)
	var wakeC <-chan time.Time

	// Guards the one-launch-per-cycle invariant.
	checked := false

	d.send(ctx, state)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			// A tick can sit buffered across a ticker.Stop.
			if !broadcasting {
				continue
			}
			d.send(ctx, state)

		case <-sleepC:
			sleepC = nil
			state = frame.StateAsleep
			metrics.Transitions.WithLabelValues("asleep").Inc()

			// Final announcement, then the cyclic timer goes quiet.
			d.send(ctx, state)
			ticker.Stop()
			broadcasting = false

			if !checked {
				wakeC = time.After(d.cfg.WakeDelay)
			}
			// Otherwise stay asleep until the cycle restart arms the wake.

		case <-wakeC:
			wakeC = nil
			state = frame.StateAwake
			metrics.Transitions.WithLabelValues("awake").Inc()

			ticker.Reset(d.cfg.Tick)
			broadcasting = true
			d.send(ctx, state)

			checked = true
			metrics.CheckLaunches.Inc()
			if err := d.launch.Launch(ctx); err != nil {
				// Fire and forget: the driver never observes the
				// checker outcome, only a failed launch.
				log.Printf("driver: check launch failed: %v", err)
			}

			sleepC = time.After(d.cfg.Resleep)

		case <-cycle.C:
			checked = false
			if state == frame.StateAsleep && wakeC == nil {
				wakeC = time.After(d.cfg.WakeDelay)
			}
		}
	}
}

func (d *Driver) send(ctx context.Context, state frame.State) {
	if err := d.tx.Transmit(ctx, state); err != nil {
		metrics.BusErrors.Inc()
		log.Printf("driver: bus transmit failed: %v", err)
		return
	}
	metrics.FramesSent.WithLabelValues(state.String()).Inc()
}
