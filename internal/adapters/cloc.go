package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/toolexec"
)

// clocLanguages are the cloc language names counted as JS/TS source.
var clocLanguages = map[string]bool{
	"JavaScript": true,
	"TypeScript": true,
	"JSX":        true,
}

// ClocAdapter measures code size by running cloc. It is the size
// fallback when scc is not installed.
type ClocAdapter struct {
	runner toolexec.Runner
}

// NewClocAdapter creates a cloc adapter using the real binary.
func NewClocAdapter() *ClocAdapter {
	return &ClocAdapter{runner: toolexec.ExecRunner{}}
}

// NewClocAdapterWithRunner creates a cloc adapter with a custom runner.
func NewClocAdapterWithRunner(r toolexec.Runner) *ClocAdapter {
	return &ClocAdapter{runner: r}
}

// ID returns the unique adapter identifier
func (a *ClocAdapter) ID() string { return "cloc" }

// Name returns the human-readable tool name
func (a *ClocAdapter) Name() string { return "cloc (Count Lines of Code)" }

// Axes returns the axes this adapter can measure
func (a *ClocAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisSize} }

// CheckAvailability probes for the cloc binary
func (a *ClocAdapter) CheckAvailability(ctx context.Context) domain.Availability {
	return toolexec.ProbeVersion(ctx, a.runner, "cloc", "--version")
}

// clocFileEntry mirrors one per-file object of cloc's JSON output.
type clocFileEntry struct {
	Blank    int64  `json:"blank"`
	Comment  int64  `json:"comment"`
	Code     int64  `json:"code"`
	Language string `json:"language"`
}

// Measure runs cloc against the target and normalizes its JSON output.
// cloc's --by-file JSON is a single object keyed by file path, plus
// "header" and "SUM" bookkeeping entries.
func (a *ClocAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisSize {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("cloc cannot measure axis %s", axis), nil)
	}

	out, err := a.runner.Run(ctx, "cloc", "--by-file", "--json", "--quiet", target)
	if err != nil {
		return nil, domain.NewToolFailureError("cloc run failed", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, domain.NewToolFailureError("cloc produced unparseable output", err)
	}

	return buildClocMeasurement(raw)
}

func buildClocMeasurement(raw map[string]json.RawMessage) (*domain.AxisMeasurement, error) {
	paths := make([]string, 0, len(raw))
	for path := range raw {
		if path == "header" || path == "SUM" {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var code, comment, total int64
	var files []domain.FileMeasurement

	for _, path := range paths {
		var entry clocFileEntry
		if err := json.Unmarshal(raw[path], &entry); err != nil {
			return nil, domain.NewToolFailureError(fmt.Sprintf("cloc entry for %s is unparseable", path), err)
		}
		if !clocLanguages[entry.Language] {
			continue
		}

		lines := entry.Code + entry.Comment + entry.Blank
		code += entry.Code
		comment += entry.Comment
		total += lines

		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricCodeLines, float64(entry.Code)),
				value(MetricCommentLines, float64(entry.Comment)),
				value(MetricTotalLines, float64(lines)),
			},
		})
	}

	return &domain.AxisMeasurement{
		Axis: domain.AxisSize,
		Aggregates: []domain.MetricValue{
			value(MetricCodeLines, float64(code)),
			value(MetricCommentLines, float64(comment)),
			value(MetricTotalLines, float64(total)),
			value(MetricFileCount, float64(len(files))),
		},
		Files: files,
	}, nil
}
