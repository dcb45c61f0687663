// internal/driver/launch.go
package driver

import (
	"context"
	"errors"
	"os/exec"
)

// Launcher starts the external mount check.
// Fire and forget: no exit code, no timeout, no retry.
type Launcher interface {
	Launch(ctx context.Context) error
}

// ExecLauncher runs a fixed command line as a detached child process.
type ExecLauncher struct {
	Command []string
}

// Launch starts the command without waiting for it.
// The child is reaped in the background so it never turns into a zombie.
func (l *ExecLauncher) Launch(ctx context.Context) error {
	if len(l.Command) == 0 {
		return errors.New("launcher: empty command")
	}

	cmd := exec.Command(l.Command[0], l.Command[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() { _ = cmd.Wait() }()
	return nil
}
