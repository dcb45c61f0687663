// internal/bus/bus.go
package bus

import (
	"context"

	"github.com/tamzrod/powercycle-harness/internal/frame"
)

// Transmitter abstracts the bus operation needed by the driver.
// The driver depends on frame content only, never on the transport.
type Transmitter interface {
	Transmit(ctx context.Context, state frame.State) error
	Close() error
}
