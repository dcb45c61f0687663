// internal/bus/socketcan/client.go
package socketcan

import (
	"context"
	"errors"
	"net"

	"go.einride.tech/can"
	"go.einride.tech/can/pkg/socketcan"

	"github.com/tamzrod/powercycle-harness/internal/frame"
)

// Client implements bus.Transmitter on a SocketCAN interface.
// This adapter is wire-format only: it packs the payload and sends.
type Client struct {
	conn    net.Conn
	tx      *socketcan.Transmitter
	frameID uint32
}

// Config is minimal transport config.
type Config struct {
	Interface string
	FrameID   uint32
}

// New opens the CAN interface and prepares a transmitter.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Interface == "" {
		return nil, errors.New("socketcan: interface required")
	}

	conn, err := socketcan.DialContext(ctx, "can", cfg.Interface)
	if err != nil {
		return nil, err
	}

	return &Client{
		conn:    conn,
		tx:      socketcan.NewTransmitter(conn),
		frameID: cfg.FrameID,
	}, nil
}

// Transmit sends one power-state frame.
func (c *Client) Transmit(ctx context.Context, state frame.State) error {
	if c == nil || c.tx == nil {
		return errors.New("socketcan: not connected")
	}

	return c.tx.TransmitFrame(ctx, can.Frame{
		ID:     c.frameID,
		Length: frame.DataLength,
		Data:   can.Data(frame.Encode(state)),
	})
}

// Close closes the CAN socket.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
