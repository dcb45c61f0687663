// internal/frame/frame.go
package frame

import "fmt"

// Power-state frame layout constants.
// These values define the wire format and MUST NOT be configurable.

// DataLength is the fixed frame payload size in bytes.
const DataLength = 8

// ByteState is the payload index carrying the power-state flag.
// Bytes 1-7 are reserved and transmitted as zero.
const ByteState = 0

// State is the simulated controller power state.
type State uint8

const (
	// StateAwake means the controller is out of suspend.
	StateAwake State = 0

	// StateAsleep means the controller is in the suspend window.
	StateAsleep State = 1
)

func (s State) String() string {
	switch s {
	case StateAwake:
		return "awake"
	case StateAsleep:
		return "asleep"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Encode packs a power state into a full frame payload.
// No IO. No side effects.
func Encode(s State) [DataLength]byte {
	var data [DataLength]byte
	data[ByteState] = byte(s)
	return data
}

// Decode extracts the power state from a received payload.
// The payload must be full-length and carry a known flag value.
func Decode(data []byte) (State, error) {
	if len(data) != DataLength {
		return 0, fmt.Errorf("frame: payload length %d, want %d", len(data), DataLength)
	}

	switch State(data[ByteState]) {
	case StateAwake:
		return StateAwake, nil
	case StateAsleep:
		return StateAsleep, nil
	default:
		return 0, fmt.Errorf("frame: unknown power-state flag %d", data[ByteState])
	}
}
