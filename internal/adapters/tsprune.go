package adapters

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/toolexec"
)

// TsPruneAdapter measures dead code by running ts-prune, which lists
// exported symbols nothing references. It needs a tsconfig.json in the
// target; without one the measurement fails and becomes a warning.
type TsPruneAdapter struct {
	runner toolexec.Runner
}

// NewTsPruneAdapter creates a ts-prune adapter using the real binary.
func NewTsPruneAdapter() *TsPruneAdapter {
	return &TsPruneAdapter{runner: toolexec.ExecRunner{}}
}

// NewTsPruneAdapterWithRunner creates a ts-prune adapter with a custom runner.
func NewTsPruneAdapterWithRunner(r toolexec.Runner) *TsPruneAdapter {
	return &TsPruneAdapter{runner: r}
}

// ID returns the unique adapter identifier
func (a *TsPruneAdapter) ID() string { return "ts-prune" }

// Name returns the human-readable tool name
func (a *TsPruneAdapter) Name() string { return "ts-prune unused export finder" }

// Axes returns the axes this adapter can measure
func (a *TsPruneAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisDeadCode} }

// CheckAvailability probes for the ts-prune binary. Not every ts-prune
// build answers --version, so a failed version probe still counts as
// available when the binary is on PATH.
func (a *TsPruneAdapter) CheckAvailability(ctx context.Context) domain.Availability {
	if _, err := a.runner.LookPath("ts-prune"); err != nil {
		return domain.Availability{Available: false, Reason: "ts-prune not found in PATH"}
	}
	if out, err := a.runner.Run(ctx, "ts-prune", "--version"); err == nil {
		return domain.Availability{Available: true, Version: strings.TrimSpace(string(out))}
	}
	return domain.Availability{Available: true}
}

// Measure runs ts-prune against the target's tsconfig and counts
// findings per file. Output lines look like:
//
//	src/util/format.ts:12 - padLeft
//	src/index.ts:3 - main (used in module)
//
// Findings marked "(used in module)" are internal uses and skipped.
func (a *TsPruneAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisDeadCode {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("ts-prune cannot measure axis %s", axis), nil)
	}

	tsconfig := filepath.Join(target, "tsconfig.json")
	if _, err := os.Stat(tsconfig); err != nil {
		return nil, domain.NewToolFailureError(fmt.Sprintf("no tsconfig.json in %s", target), err)
	}

	out, err := a.runner.Run(ctx, "ts-prune", "-p", tsconfig)
	if err != nil {
		return nil, domain.NewToolFailureError("ts-prune run failed", err)
	}

	return parseTsPruneOutput(out), nil
}

func parseTsPruneOutput(out []byte) *domain.AxisMeasurement {
	perFile := make(map[string]int)
	total := 0

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasSuffix(line, "(used in module)") {
			continue
		}
		path, rest, found := strings.Cut(line, ":")
		if !found || path == "" || !strings.Contains(rest, " - ") {
			continue
		}
		perFile[path]++
		total++
	}

	paths := make([]string, 0, len(perFile))
	for path := range perFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	files := make([]domain.FileMeasurement, 0, len(paths))
	for _, path := range paths {
		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricUnusedExports, float64(perFile[path])),
			},
		})
	}

	return &domain.AxisMeasurement{
		Axis: domain.AxisDeadCode,
		Aggregates: []domain.MetricValue{
			value(MetricUnusedExports, float64(total)),
		},
		Files: files,
	}
}
