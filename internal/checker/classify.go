// internal/checker/classify.go
package checker

import (
	"regexp"
	"strings"
)

// NFS signatures in mount output: fstype tokens or a host:port/ export.
var nfsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bnfs\b`),
	regexp.MustCompile(`(?i)\bnfs4\b`),
	regexp.MustCompile(`:[0-9]+/`),
}

// classify turns raw command outputs into a mount verdict.
//
// Only genuine mount lines count: fallback marker echoes and echoed
// command pipelines also contain the keyword and must be ignored.
func classify(outputs []string, path, keyword string) (verdict string, mounted bool) {
	var lines []string
	for _, out := range outputs {
		for _, line := range strings.Split(out, "\n") {
			if isNoise(line, path) {
				continue
			}
			lines = append(lines, line)
		}
	}

	evidence := strings.Join(lines, "\n")

	for _, p := range nfsPatterns {
		if p.MatchString(evidence) {
			return "Yes", true
		}
	}

	if strings.Contains(evidence, keyword) {
		return "No", true
	}

	return "Unknown (" + path + " not found)", false
}

// isNoise filters lines that mention the keyword without being mount
// evidence: the not-found/not-mounted marker echoes and the console's
// echo of the inspection command itself.
func isNoise(line, path string) bool {
	if strings.Contains(line, path+" not found") {
		return true
	}
	if strings.Contains(line, path+" not mounted") {
		return true
	}
	if strings.Contains(line, "| grep ") {
		return true
	}
	return false
}
