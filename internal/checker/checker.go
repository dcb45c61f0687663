// internal/checker/checker.go
package checker

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Config is the minimal runtime config one check needs.
type Config struct {
	Username       string
	Password       string
	LoginTimeout   time.Duration
	CommandTimeout time.Duration

	MountPath string
	Keyword   string
}

// Result is the outcome of one mount verification.
// It is computed fresh per invocation and never persisted here.
type Result struct {
	At         time.Time
	LoginOK    bool
	Verdict    string // Yes | No | Unknown (...) | Error: ...
	Mounted    bool
	Transcript string
}

// commands is the fixed inspection sequence run after login.
// Each command degrades to a marker echo instead of a bare grep miss.
func commands(path, keyword string) []string {
	return []string{
		fmt.Sprintf("df -h | grep %s || echo '%s not found'", keyword, path),
		fmt.Sprintf("mount | grep %s || echo '%s not mounted'", keyword, path),
		fmt.Sprintf("cat /proc/mounts | grep %s || true", keyword),
	}
}

// Run performs one login-then-inspect pass over an open bridge stream.
// All failure modes end up in the Result; the error return is reserved
// for an unusable configuration.
func Run(rw io.ReadWriter, cfg Config) (Result, error) {
	if cfg.MountPath == "" {
		return Result{}, fmt.Errorf("checker: mount path required")
	}
	if cfg.Keyword == "" {
		return Result{}, fmt.Errorf("checker: keyword required")
	}

	res := Result{At: time.Now()}

	s := newSession(rw)

	if err := s.login(cfg.Username, cfg.Password, cfg.LoginTimeout); err != nil {
		res.Verdict = fmt.Sprintf("Error: %v", err)
		return res, nil
	}
	res.LoginOK = true

	var transcript strings.Builder
	var outputs []string

	for _, cmd := range commands(cfg.MountPath, cfg.Keyword) {
		out, err := s.run(cmd, cfg.CommandTimeout)
		if err != nil {
			res.Verdict = fmt.Sprintf("Error: %v", err)
			res.Transcript = transcript.String()
			return res, nil
		}

		outputs = append(outputs, out)
		fmt.Fprintf(&transcript, "Command: %s\nOutput:\n%s\n\n", cmd, out)
	}

	res.Transcript = strings.TrimSpace(transcript.String())
	res.Verdict, res.Mounted = classify(outputs, cfg.MountPath, cfg.Keyword)
	return res, nil
}
