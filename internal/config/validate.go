// internal/config/validate.go
package config

import (
	"fmt"
)

// maxStandardFrameID is the largest 11-bit CAN identifier.
const maxStandardFrameID = 0x7FF

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	h := &cfg.Harness

	// ------------------------------------------------------------
	// BUS VALIDATION
	// ------------------------------------------------------------

	if h.Bus.Interface == "" {
		return fmt.Errorf("bus: interface required")
	}
	if h.Bus.FrameID > maxStandardFrameID {
		return fmt.Errorf(
			"bus: frame_id 0x%X exceeds 11-bit identifier range (max 0x%X)",
			h.Bus.FrameID,
			maxStandardFrameID,
		)
	}
	if h.Bus.TickMs < 0 {
		return fmt.Errorf("bus: tick_ms must not be negative")
	}

	// ------------------------------------------------------------
	// SCHEDULE VALIDATION
	// ------------------------------------------------------------

	if h.Schedule.CycleMs < 0 || h.Schedule.PreSleepMs < 0 ||
		h.Schedule.WakeMs < 0 || h.Schedule.ResleepMs < 0 {
		return fmt.Errorf("schedule: delays must not be negative")
	}

	// The cascade must fit inside one cycle period. Zero values are
	// allowed here; Normalize fills them in before this can matter,
	// so only check explicitly configured schedules.
	if h.Schedule.CycleMs > 0 {
		sum := h.Schedule.PreSleepMs + h.Schedule.WakeMs + h.Schedule.ResleepMs
		if sum > h.Schedule.CycleMs {
			return fmt.Errorf(
				"schedule: pre_sleep+wake+resleep (%dms) exceeds cycle period (%dms)",
				sum,
				h.Schedule.CycleMs,
			)
		}
	}

	// ------------------------------------------------------------
	// MOUNT VALIDATION
	// ------------------------------------------------------------

	if h.Mount.Path == "" {
		return fmt.Errorf("mount: path required")
	}

	// ------------------------------------------------------------
	// BENCH STATUS MEMORY VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	// device_name sanity (ASCII only)
	if h.Bench.DeviceName != "" {
		for i := 0; i < len(h.Bench.DeviceName); i++ {
			if h.Bench.DeviceName[i] > 0x7F {
				return fmt.Errorf("bench: device_name must contain ASCII characters only")
			}
		}
	}

	// bench is opt-in; remaining fields only matter when an endpoint is set
	if h.Bench.Endpoint == "" {
		if h.Bench.DeviceName != "" {
			return fmt.Errorf("bench: device_name is set but no endpoint is configured")
		}
		return nil
	}

	if h.Bench.TimeoutMs < 0 {
		return fmt.Errorf("bench: timeout_ms must not be negative")
	}

	return nil
}
