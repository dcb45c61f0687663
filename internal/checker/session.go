// internal/checker/session.go
package checker

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Console prompt markers of the controller's Linux shell.
const (
	loginPrompt    = "login:"
	passwordPrompt = "Password:"
	shellPrompt    = "#"
)

// session drives the prompt dialogue over a raw bridge stream.
// It owns a background pump goroutine so every wait is bounded.
type session struct {
	w      io.Writer
	chunks <-chan []byte

	// buf is the sliding scan window over unconsumed output.
	buf string
}

func newSession(rw io.ReadWriter) *session {
	ch := make(chan []byte, 16)

	go func() {
		defer close(ch)
		for {
			b := make([]byte, 256)
			n, err := rw.Read(b)
			if n > 0 {
				ch <- b[:n]
			}
			if err != nil {
				return
			}
		}
	}()

	return &session{w: rw, chunks: ch}
}

// login answers the login/password prompts and waits for the shell
// prompt. A timeout without the prompt is an authentication failure.
func (s *session) login(username, password string, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		if strings.Contains(s.buf, loginPrompt) {
			s.buf = strings.Replace(s.buf, loginPrompt, "", 1)
			if err := s.sendLine(username); err != nil {
				return fmt.Errorf("send username: %w", err)
			}
		} else if strings.Contains(s.buf, passwordPrompt) {
			s.buf = strings.Replace(s.buf, passwordPrompt, "", 1)
			if err := s.sendLine(password); err != nil {
				return fmt.Errorf("send password: %w", err)
			}
		}

		if strings.Contains(s.buf, shellPrompt) {
			s.buf = ""
			return nil
		}

		// Keep the scan window small; prompts are short.
		if len(s.buf) > 100 {
			s.buf = s.buf[len(s.buf)-50:]
		}

		select {
		case chunk, ok := <-s.chunks:
			if !ok {
				return fmt.Errorf("bridge closed before shell prompt")
			}
			s.buf += string(chunk)
		case <-deadline.C:
			return fmt.Errorf("no shell prompt within %v", timeout)
		}
	}
}

// run issues one command and captures output until the next shell
// prompt or the per-command timeout, whichever comes first.
func (s *session) run(cmd string, timeout time.Duration) (string, error) {
	if err := s.sendLine(cmd); err != nil {
		return "", fmt.Errorf("send command: %w", err)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var out strings.Builder
	out.WriteString(s.buf)
	s.buf = ""

	for {
		if i := strings.Index(out.String(), shellPrompt); i >= 0 {
			captured := out.String()
			s.buf = captured[i+len(shellPrompt):]
			return captured[:i], nil
		}

		select {
		case chunk, ok := <-s.chunks:
			if !ok {
				return out.String(), nil
			}
			out.Write(chunk)
		case <-deadline.C:
			// Timeout is not fatal: the transcript keeps whatever
			// arrived, mirroring a slow console.
			return out.String(), nil
		}
	}
}

func (s *session) sendLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}
