package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/toolexec"
)

// JscpdAdapter measures copy-paste duplication by running jscpd.
type JscpdAdapter struct {
	runner toolexec.Runner
}

// NewJscpdAdapter creates a jscpd adapter using the real binary.
func NewJscpdAdapter() *JscpdAdapter {
	return &JscpdAdapter{runner: toolexec.ExecRunner{}}
}

// NewJscpdAdapterWithRunner creates a jscpd adapter with a custom runner.
func NewJscpdAdapterWithRunner(r toolexec.Runner) *JscpdAdapter {
	return &JscpdAdapter{runner: r}
}

// ID returns the unique adapter identifier
func (a *JscpdAdapter) ID() string { return "jscpd" }

// Name returns the human-readable tool name
func (a *JscpdAdapter) Name() string { return "jscpd copy-paste detector" }

// Axes returns the axes this adapter can measure
func (a *JscpdAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisDuplication} }

// CheckAvailability probes for the jscpd binary
func (a *JscpdAdapter) CheckAvailability(ctx context.Context) domain.Availability {
	return toolexec.ProbeVersion(ctx, a.runner, "jscpd", "--version")
}

// jscpdReport mirrors the parts of jscpd's JSON report qscan consumes.
type jscpdReport struct {
	Statistics struct {
		Total struct {
			Lines           int64   `json:"lines"`
			Clones          int64   `json:"clones"`
			DuplicatedLines int64   `json:"duplicatedLines"`
			Percentage      float64 `json:"percentage"`
		} `json:"total"`
		Formats map[string]struct {
			Sources map[string]struct {
				Clones          int64   `json:"clones"`
				DuplicatedLines int64   `json:"duplicatedLines"`
				Percentage      float64 `json:"percentage"`
			} `json:"sources"`
		} `json:"formats"`
	} `json:"statistics"`
}

// Measure runs jscpd against the target. jscpd only writes its JSON
// report to a file, so the run goes through a temporary output
// directory.
func (a *JscpdAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisDuplication {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("jscpd cannot measure axis %s", axis), nil)
	}

	outDir, err := os.MkdirTemp("", "qscan-jscpd-")
	if err != nil {
		return nil, domain.NewToolFailureError("creating temp dir failed", err)
	}
	defer os.RemoveAll(outDir)

	// jscpd exits non-zero in some threshold configurations even when a
	// report was written; the report file decides success.
	_, runErr := a.runner.Run(ctx, "jscpd", "--silent", "--reporters", "json", "--output", outDir, target)

	reportPath := filepath.Join(outDir, "jscpd-report.json")
	data, err := os.ReadFile(reportPath)
	if err != nil {
		if runErr != nil {
			return nil, domain.NewToolFailureError("jscpd run failed", runErr)
		}
		return nil, domain.NewToolFailureError("jscpd wrote no report", err)
	}

	return parseJscpdReport(data)
}

func parseJscpdReport(data []byte) (*domain.AxisMeasurement, error) {
	var report jscpdReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, domain.NewToolFailureError("jscpd produced an unparseable report", err)
	}

	type fileDup struct {
		clones          int64
		duplicatedLines int64
	}
	perFile := make(map[string]fileDup)
	for _, format := range report.Statistics.Formats {
		for path, src := range format.Sources {
			if src.Clones == 0 && src.DuplicatedLines == 0 {
				continue
			}
			fd := perFile[path]
			fd.clones += src.Clones
			fd.duplicatedLines += src.DuplicatedLines
			perFile[path] = fd
		}
	}

	paths := make([]string, 0, len(perFile))
	for path := range perFile {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	files := make([]domain.FileMeasurement, 0, len(paths))
	for _, path := range paths {
		fd := perFile[path]
		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricDuplicatedLines, float64(fd.duplicatedLines)),
				value(MetricCloneCount, float64(fd.clones)),
			},
		})
	}

	total := report.Statistics.Total
	return &domain.AxisMeasurement{
		Axis: domain.AxisDuplication,
		Aggregates: []domain.MetricValue{
			value(MetricDuplicationPct, total.Percentage),
			value(MetricDuplicatedLines, float64(total.DuplicatedLines)),
			value(MetricCloneCount, float64(total.Clones)),
		},
		Files: files,
	}, nil
}
