// internal/frame/frame_test.go
package frame

import "testing"

func TestEncode_AwakeFlag(t *testing.T) {
	data := Encode(StateAwake)

	if data[ByteState] != 0 {
		t.Fatalf("awake flag: got %d, want 0", data[ByteState])
	}
}

func TestEncode_AsleepFlag(t *testing.T) {
	data := Encode(StateAsleep)

	if data[ByteState] != 1 {
		t.Fatalf("asleep flag: got %d, want 1", data[ByteState])
	}
}

func TestEncode_ReservedBytesZero(t *testing.T) {
	data := Encode(StateAsleep)

	for i := 1; i < DataLength; i++ {
		if data[i] != 0 {
			t.Fatalf("reserved byte %d: got %d, want 0", i, data[i])
		}
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, s := range []State{StateAwake, StateAsleep} {
		data := Encode(s)

		got, err := Decode(data[:])
		if err != nil {
			t.Fatalf("Decode(%v) err=%v", s, err)
		}
		if got != s {
			t.Fatalf("Decode(%v) got %v", s, got)
		}
	}
}

func TestDecode_ShortPayloadRejected(t *testing.T) {
	if _, err := Decode([]byte{0}); err == nil {
		t.Fatalf("expected length error, got nil")
	}
}

func TestDecode_UnknownFlagRejected(t *testing.T) {
	data := make([]byte, DataLength)
	data[ByteState] = 2

	if _, err := Decode(data); err == nil {
		t.Fatalf("expected flag error, got nil")
	}
}

func TestState_String(t *testing.T) {
	if StateAwake.String() != "awake" || StateAsleep.String() != "asleep" {
		t.Fatalf("unexpected state names: %s / %s", StateAwake, StateAsleep)
	}
}
