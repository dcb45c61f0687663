// internal/config/normalize.go
package config

import "path"

// Defaults match the bench simulation script this harness replaces:
// 100ms cyclic broadcast, 8s full cycle, sleep after 2s, wake 1s later,
// next sleep 2s after wake.
const (
	defaultTickMs     = 100
	defaultCycleMs    = 8000
	defaultPreSleepMs = 2000
	defaultWakeMs     = 1000
	defaultResleepMs  = 2000

	defaultLoginTimeoutMs   = 3000
	defaultCommandTimeoutMs = 3000

	defaultBenchTimeoutMs = 2000

	deviceNameMaxChars = 16
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	h := &cfg.Harness

	// ---- bus ----

	if h.Bus.TickMs == 0 {
		h.Bus.TickMs = defaultTickMs
	}

	// ---- schedule ----

	if h.Schedule.CycleMs == 0 {
		h.Schedule.CycleMs = defaultCycleMs
	}
	if h.Schedule.PreSleepMs == 0 {
		h.Schedule.PreSleepMs = defaultPreSleepMs
	}
	if h.Schedule.WakeMs == 0 {
		h.Schedule.WakeMs = defaultWakeMs
	}
	if h.Schedule.ResleepMs == 0 {
		h.Schedule.ResleepMs = defaultResleepMs
	}

	// ---- bridge ----

	if h.Bridge.ADBPath == "" {
		h.Bridge.ADBPath = "adb"
	}
	if h.Bridge.LoginTimeoutMs == 0 {
		h.Bridge.LoginTimeoutMs = defaultLoginTimeoutMs
	}
	if h.Bridge.CommandTimeoutMs == 0 {
		h.Bridge.CommandTimeoutMs = defaultCommandTimeoutMs
	}

	// ---- mount ----

	// The grep keyword defaults to the last path element.
	if h.Mount.Keyword == "" && h.Mount.Path != "" {
		h.Mount.Keyword = path.Base(h.Mount.Path)
	}

	// ---- log ----

	if h.Log.File == "" {
		h.Log.File = "emmc_mount_check.log"
	}

	// ---- bench ----

	if h.Bench.Endpoint != "" && h.Bench.TimeoutMs == 0 {
		h.Bench.TimeoutMs = defaultBenchTimeoutMs
	}
	if len(h.Bench.DeviceName) > deviceNameMaxChars {
		h.Bench.DeviceName = h.Bench.DeviceName[:deviceNameMaxChars]
	}
}
