// internal/config/config.go
package config

type Config struct {
	Harness HarnessConfig `yaml:"harness"`
}

type HarnessConfig struct {
	Bus      BusConfig      `yaml:"bus"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Check    CheckConfig    `yaml:"check"`
	Bridge   BridgeConfig   `yaml:"bridge"`
	Mount    MountConfig    `yaml:"mount"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Bench    BenchConfig    `yaml:"bench"`
}

// ---- BUS ----

type BusConfig struct {
	Interface string `yaml:"interface"`
	FrameID   uint32 `yaml:"frame_id"`
	TickMs    int    `yaml:"tick_ms"`
}

// ---- SCHEDULE ----

// Each delay is measured from the transition that arms it.
type ScheduleConfig struct {
	CycleMs    int `yaml:"cycle_ms"`     // full sleep/wake cycle period
	PreSleepMs int `yaml:"pre_sleep_ms"` // cycle start -> sleep
	WakeMs     int `yaml:"wake_ms"`      // sleep -> wake
	ResleepMs  int `yaml:"resleep_ms"`   // wake -> next sleep
}

// ---- CHECK LAUNCH ----

type CheckConfig struct {
	Command []string `yaml:"command"`
}

// ---- BRIDGE ----

type BridgeConfig struct {
	ADBPath          string `yaml:"adb_path"`
	Serial           string `yaml:"serial"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	LoginTimeoutMs   int    `yaml:"login_timeout_ms"`
	CommandTimeoutMs int    `yaml:"command_timeout_ms"`
}

// ---- MOUNT ----

type MountConfig struct {
	Path    string `yaml:"path"`
	Keyword string `yaml:"keyword"`
}

// ---- LOG ----

type LogConfig struct {
	File string `yaml:"file"`
}

// ---- METRICS ----

type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// ---- BENCH STATUS MEMORY (OPT-IN) ----

type BenchConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	BaseSlot   uint16 `yaml:"base_slot"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	DeviceName string `yaml:"device_name"`
}
