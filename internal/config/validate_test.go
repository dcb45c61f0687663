// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func harness() *Config {
	return &Config{
		Harness: HarnessConfig{
			Bus: BusConfig{
				Interface: "vcan0",
				FrameID:   0x5A0,
				TickMs:    100,
			},
			Schedule: ScheduleConfig{
				CycleMs:    8000,
				PreSleepMs: 2000,
				WakeMs:     1000,
				ResleepMs:  2000,
			},
			Mount: MountConfig{
				Path:    "/mnt/emmc_mount",
				Keyword: "emmc_mount",
			},
		},
	}
}

// ---- tests ----

func TestValidate_MinimalValid(t *testing.T) {
	if err := Validate(harness()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingInterface(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bus.Interface = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected interface error, got nil")
	}
}

func TestValidate_FrameIDOutOfRange(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bus.FrameID = 0x800 // first id past the 11-bit range

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected frame id error, got nil")
	}
}

func TestValidate_FrameIDAtLimitAllowed(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bus.FrameID = 0x7FF

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ScheduleOverflowsCycle(t *testing.T) {
	cfg := harness()
	cfg.Harness.Schedule.ResleepMs = 6000 // 2000+1000+6000 > 8000

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected schedule error, got nil")
	}
}

func TestValidate_ScheduleExactlyFillsCycle(t *testing.T) {
	cfg := harness()
	cfg.Harness.Schedule.ResleepMs = 5000 // 2000+1000+5000 == 8000

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingMountPath(t *testing.T) {
	cfg := harness()
	cfg.Harness.Mount.Path = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected mount path error, got nil")
	}
}

func TestValidate_BenchDeviceNameWithoutEndpoint(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bench.DeviceName = "bench-a"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected bench coupling error, got nil")
	}
}

func TestValidate_BenchNonASCIIDeviceName(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bench.Endpoint = "10.0.0.5:502"
	cfg.Harness.Bench.DeviceName = "b\xC3\xA9nch"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error, got nil")
	}
}

func TestNormalize_FillsScheduleDefaults(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bus.TickMs = 0
	cfg.Harness.Schedule = ScheduleConfig{}

	Normalize(cfg)

	if cfg.Harness.Bus.TickMs != 100 {
		t.Fatalf("tick default: got %d", cfg.Harness.Bus.TickMs)
	}
	if cfg.Harness.Schedule.CycleMs != 8000 {
		t.Fatalf("cycle default: got %d", cfg.Harness.Schedule.CycleMs)
	}
	if cfg.Harness.Schedule.PreSleepMs != 2000 ||
		cfg.Harness.Schedule.WakeMs != 1000 ||
		cfg.Harness.Schedule.ResleepMs != 2000 {
		t.Fatalf("cascade defaults: got %+v", cfg.Harness.Schedule)
	}
}

func TestNormalize_KeywordFromPath(t *testing.T) {
	cfg := harness()
	cfg.Harness.Mount.Keyword = ""

	Normalize(cfg)

	if cfg.Harness.Mount.Keyword != "emmc_mount" {
		t.Fatalf("keyword: got %q", cfg.Harness.Mount.Keyword)
	}
}

func TestNormalize_TruncatesDeviceName(t *testing.T) {
	cfg := harness()
	cfg.Harness.Bench.Endpoint = "10.0.0.5:502"
	cfg.Harness.Bench.DeviceName = "a-very-long-bench-name"

	Normalize(cfg)

	if got := cfg.Harness.Bench.DeviceName; len(got) != 16 {
		t.Fatalf("device name not truncated: %q", got)
	}
}
