// internal/bridge/adb/client.go
package adb

import (
	"errors"
	"io"
	"os/exec"
	"time"
)

// Client is one `adb shell` bridge session to the controller.
// It exposes the raw prompt stream; login and command handling
// belong to the checker session layer.
type Client struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
}

// Config is minimal bridge config.
type Config struct {
	Path   string // adb binary, default resolved by caller
	Serial string // optional -s target
}

// Open starts the adb shell subprocess with stderr folded into stdout,
// matching what an interactive serial console would present.
func Open(cfg Config) (*Client, error) {
	if cfg.Path == "" {
		return nil, errors.New("adb bridge: path required")
	}

	var args []string
	if cfg.Serial != "" {
		args = append(args, "-s", cfg.Serial)
	}
	args = append(args, "shell")

	cmd := exec.Command(cfg.Path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return &Client{cmd: cmd, stdin: stdin, stdout: stdout}, nil
}

// Read implements io.Reader over the shell output stream.
func (c *Client) Read(p []byte) (int, error) { return c.stdout.Read(p) }

// Write implements io.Writer into the shell input stream.
func (c *Client) Write(p []byte) (int, error) { return c.stdin.Write(p) }

// Close ends the session: graceful stdin close first, kill after a
// one second grace period if the subprocess lingers.
func (c *Client) Close() error {
	if c == nil || c.cmd == nil {
		return nil
	}

	_ = c.stdin.Close()

	done := make(chan error, 1)
	go func() { done <- c.cmd.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		_ = c.cmd.Process.Kill()
		return <-done
	}
}
