// internal/bench/block.go
package bench

import "github.com/tamzrod/powercycle-harness/internal/checker"

// Bench status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per device.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealth holds the harness health state.
const SlotHealth = 0

// SlotLastVerdict holds the last mount-check verdict code.
const SlotLastVerdict = 1

// SlotCycleCount holds the number of completed check cycles.
const SlotCycleCount = 2

// ---- RESERVED RANGE ----

// Slots 3-10 are reserved for future use.
const SlotReservedStart = 3
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// Device name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a passing mount check.
const HealthOK uint16 = 1

// HealthError represents a failing or errored mount check.
const HealthError uint16 = 2

// ---- VERDICT CODES ----

const (
	VerdictNone         uint16 = 0
	VerdictMountedNFS   uint16 = 1
	VerdictMountedLocal uint16 = 2
	VerdictNotFound     uint16 = 3
	VerdictCheckError   uint16 = 4
)

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health      uint16
	LastVerdict uint16
	CycleCount  uint16
}

// SnapshotFrom maps one check result into a deliverable snapshot.
func SnapshotFrom(res checker.Result, cycleCount uint16) Snapshot {
	s := Snapshot{CycleCount: cycleCount}

	switch {
	case !res.LoginOK:
		s.Health = HealthError
		s.LastVerdict = VerdictCheckError
	case res.Verdict == "Yes":
		s.Health = HealthOK
		s.LastVerdict = VerdictMountedNFS
	case res.Verdict == "No":
		s.Health = HealthOK
		s.LastVerdict = VerdictMountedLocal
	case res.Mounted:
		s.Health = HealthOK
		s.LastVerdict = VerdictNone
	default:
		s.Health = HealthError
		s.LastVerdict = VerdictNotFound
	}

	return s
}
