// internal/bench/writer.go
package bench

import (
	"errors"
	"fmt"
	"strings"
)

// registerWriter is the exact contract the bench writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type registerWriter interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Writer delivers status snapshots into the bench status memory.
// On any write failure, the next successful call re-asserts the full block.
type Writer struct {
	cli      registerWriter
	baseSlot uint16

	needFull bool
	last     Snapshot
	nameRegs []uint16
}

// NewWriter builds a bench status writer over an open register client.
func NewWriter(cli registerWriter, baseSlot uint16, deviceName string) (*Writer, error) {
	if cli == nil {
		return nil, errors.New("bench writer: client required")
	}

	return &Writer{
		cli:      cli,
		baseSlot: baseSlot,
		needFull: true, // full re-assert on first successful write
		last: Snapshot{
			Health:      HealthUnknown,
			LastVerdict: VerdictNone,
			CycleCount:  0,
		},
		nameRegs: encodeDeviceNameRegs(deviceName),
	}, nil
}

// WriteStatus delivers one snapshot. Unchanged slots are skipped once
// the full block has been asserted.
func (w *Writer) WriteStatus(s Snapshot) error {
	baseAddr := w.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if w.needFull {
		if err := w.cli.WriteRegisters(baseAddr, w.fullBlockRegs(s)); err != nil {
			w.needFull = true
			return fmt.Errorf("bench writer: full block write failed: %w", err)
		}

		w.needFull = false
		w.last = s
		return nil
	}

	var errs []string

	writeSlot := func(slot uint16, val uint16, name string) bool {
		if err := w.cli.WriteRegisters(baseAddr+slot, []uint16{val}); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", slot, name, err))
			return false
		}
		return true
	}

	if w.last.Health != s.Health {
		if writeSlot(SlotHealth, s.Health, "health") {
			w.last.Health = s.Health
		}
	}

	if w.last.LastVerdict != s.LastVerdict {
		if writeSlot(SlotLastVerdict, s.LastVerdict, "verdict") {
			w.last.LastVerdict = s.LastVerdict
		}
	}

	if w.last.CycleCount != s.CycleCount {
		if writeSlot(SlotCycleCount, s.CycleCount, "cycle") {
			w.last.CycleCount = s.CycleCount
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		w.needFull = true
		return errors.New("bench writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (w *Writer) baseAddr() uint16 {
	// Each device owns a fixed SlotsPerDevice block.
	return w.baseSlot * SlotsPerDevice
}

func (w *Writer) fullBlockRegs(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	// Slots 0-2: live status
	regs[SlotHealth] = s.Health
	regs[SlotLastVerdict] = s.LastVerdict
	regs[SlotCycleCount] = s.CycleCount

	// Slots 3-10 are RESERVED, left as zero.

	// Device name always lives at the end of the block.
	for i := 0; i < SlotDeviceNameSlots && i < len(w.nameRegs); i++ {
		regs[SlotDeviceNameStart+i] = w.nameRegs[i]
	}

	return regs
}

// encodeDeviceNameRegs packs up to 16 ASCII characters into 8 uint16
// registers, two big-endian bytes per register.
func encodeDeviceNameRegs(name string) []uint16 {
	out := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < DeviceNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
