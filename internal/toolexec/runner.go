// Package toolexec runs external measurement tools. Adapters depend on
// the Runner interface so their parsing logic is testable without the
// tools installed.
package toolexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ludo-technologies/qscan/domain"
)

// Runner locates and executes external binaries.
type Runner interface {
	// LookPath reports where the named binary lives, or an error when it
	// is not on PATH
	LookPath(name string) (string, error)

	// Run executes the binary with the given arguments and returns its
	// stdout. A non-zero exit is an error carrying a stderr excerpt.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// LookPath reports where the named binary lives
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the binary and returns its stdout
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%s %s: %w%s", name, strings.Join(args, " "), err, stderrExcerpt(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

const maxStderrExcerpt = 512

func stderrExcerpt(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return ""
	}
	if len(s) > maxStderrExcerpt {
		s = s[:maxStderrExcerpt] + "..."
	}
	return ": " + s
}

// ProbeVersion implements the common availability probe: find the
// binary on PATH, then ask it for its version. The first output line is
// reported as the version.
func ProbeVersion(ctx context.Context, r Runner, bin string, args ...string) domain.Availability {
	if _, err := r.LookPath(bin); err != nil {
		return domain.Availability{
			Available: false,
			Reason:    fmt.Sprintf("%s not found in PATH", bin),
		}
	}

	out, err := r.Run(ctx, bin, args...)
	if err != nil {
		return domain.Availability{
			Available: false,
			Reason:    fmt.Sprintf("version probe failed: %v", err),
		}
	}

	return domain.Availability{
		Available: true,
		Version:   firstLine(string(out)),
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
