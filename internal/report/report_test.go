// internal/report/report_test.go
package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tamzrod/powercycle-harness/internal/checker"
)

func sampleResult() checker.Result {
	return checker.Result{
		At:         time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		LoginOK:    true,
		Verdict:    "No",
		Mounted:    true,
		Transcript: "Command: df -h | grep emmc_mount\nOutput:\n/dev/mmcblk0p3 /mnt/emmc_mount",
	}
}

func TestNewLog_CreatesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.log")

	if _, err := NewLog(path); err != nil {
		t.Fatalf("NewLog() err=%v", err)
	}
	if _, err := NewLog(path); err != nil {
		t.Fatalf("NewLog() second open err=%v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	if got := strings.Count(string(raw), "eMMC Mount Check Log"); got != 1 {
		t.Fatalf("header written %d times, want 1", got)
	}
	if !strings.Contains(string(raw), strings.Repeat("=", 80)) {
		t.Fatalf("missing header separator")
	}
}

func TestNewLog_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "check.log")

	if _, err := NewLog(path); err != nil {
		t.Fatalf("NewLog() err=%v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log not created: %v", err)
	}
}

func TestAppend_BlockFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.log")

	l, err := NewLog(path)
	if err != nil {
		t.Fatalf("NewLog() err=%v", err)
	}

	if err := l.Append(sampleResult()); err != nil {
		t.Fatalf("Append() err=%v", err)
	}
	if err := l.Append(sampleResult()); err != nil {
		t.Fatalf("Append() second err=%v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(raw)

	for _, want := range []string{
		"[Check Time] 2025-03-14 09:30:00",
		"[Login Status] Success",
		"[NFS Mounted] No",
		"[Command Output]",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("log missing %q:\n%s", want, content)
		}
	}

	// header separator + one per appended block
	if got := strings.Count(content, strings.Repeat("=", 80)); got != 3 {
		t.Fatalf("separator count: got %d, want 3", got)
	}
}

func TestSummary_PassFail(t *testing.T) {
	res := sampleResult()

	if s := Summary(res); !strings.Contains(s, "Mount Check: PASS") {
		t.Fatalf("summary missing PASS:\n%s", s)
	}

	res.Mounted = false
	res.LoginOK = false
	res.Verdict = "Unknown (/mnt/emmc_mount not found)"

	s := Summary(res)
	if !strings.Contains(s, "Mount Check: FAIL") {
		t.Fatalf("summary missing FAIL:\n%s", s)
	}
	if !strings.Contains(s, "Login: Failed") {
		t.Fatalf("summary missing failed login:\n%s", s)
	}
}
