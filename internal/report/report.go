// internal/report/report.go
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tamzrod/powercycle-harness/internal/checker"
)

const (
	header     = "eMMC Mount Check Log"
	timeLayout = "2006-01-02 15:04:05"
)

var (
	blockSeparator   = strings.Repeat("=", 80)
	summarySeparator = strings.Repeat("=", 40)
)

// Log appends check results to a traceability file.
type Log struct {
	path string
}

// NewLog creates the log file with a header on first use.
func NewLog(path string) (*Log, error) {
	if path == "" {
		return nil, fmt.Errorf("report: log path required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("report: create log dir: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(header+"\n"+blockSeparator+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("report: create log: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("report: stat log: %w", err)
	}

	return &Log{path: path}, nil
}

// Append writes one check block followed by a separator line.
func (l *Log) Append(res checker.Result) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Block(res) + "\n" + blockSeparator + "\n"); err != nil {
		return fmt.Errorf("report: append: %w", err)
	}
	return nil
}

// Block formats one check result for the log file.
func Block(res checker.Result) string {
	return fmt.Sprintf(
		"[Check Time] %s\n[Login Status] %s\n[NFS Mounted] %s\n\n[Command Output]\n%s\n",
		res.At.Format(timeLayout),
		loginStatus(res),
		res.Verdict,
		res.Transcript,
	)
}

// Summary formats the on-screen banner printed after each check.
func Summary(res checker.Result) string {
	var b strings.Builder

	b.WriteString(summarySeparator + "\n")
	fmt.Fprintf(&b, "Time: %s\n", res.At.Format(timeLayout))
	fmt.Fprintf(&b, "Login: %s\n", loginStatus(res))
	fmt.Fprintf(&b, "NFS Mounted: %s\n", res.Verdict)
	fmt.Fprintf(&b, "Mount Check: %s\n", passFail(res))
	b.WriteString(summarySeparator)

	return b.String()
}

func loginStatus(res checker.Result) string {
	if res.LoginOK {
		return "Success"
	}
	return "Failed"
}

func passFail(res checker.Result) string {
	if res.Mounted {
		return "PASS"
	}
	return "FAIL"
}
