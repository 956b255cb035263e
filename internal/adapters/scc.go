package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/toolexec"
)

// sccLanguages are the scc language names counted as JS/TS source.
var sccLanguages = map[string]bool{
	"JavaScript": true,
	"TypeScript": true,
	"JSX":        true,
	"TSX":        true,
}

// SCCAdapter measures code size by running scc.
type SCCAdapter struct {
	runner toolexec.Runner
}

// NewSCCAdapter creates an scc adapter using the real binary.
func NewSCCAdapter() *SCCAdapter {
	return &SCCAdapter{runner: toolexec.ExecRunner{}}
}

// NewSCCAdapterWithRunner creates an scc adapter with a custom runner.
func NewSCCAdapterWithRunner(r toolexec.Runner) *SCCAdapter {
	return &SCCAdapter{runner: r}
}

// ID returns the unique adapter identifier
func (a *SCCAdapter) ID() string { return "scc" }

// Name returns the human-readable tool name
func (a *SCCAdapter) Name() string { return "scc (Sloc, Cloc and Code)" }

// Axes returns the axes this adapter can measure
func (a *SCCAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisSize} }

// CheckAvailability probes for the scc binary
func (a *SCCAdapter) CheckAvailability(ctx context.Context) domain.Availability {
	return toolexec.ProbeVersion(ctx, a.runner, "scc", "--version")
}

// sccFile mirrors the per-file entries of scc's JSON output.
type sccFile struct {
	Language string `json:"Language"`
	Location string `json:"Location"`
	Lines    int64  `json:"Lines"`
	Code     int64  `json:"Code"`
	Comment  int64  `json:"Comment"`
}

// sccLanguageSummary mirrors one language block of scc's JSON output.
type sccLanguageSummary struct {
	Name    string    `json:"Name"`
	Lines   int64     `json:"Lines"`
	Code    int64     `json:"Code"`
	Comment int64     `json:"Comment"`
	Count   int64     `json:"Count"`
	Files   []sccFile `json:"Files"`
}

// Measure runs scc against the target and normalizes its JSON output.
func (a *SCCAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisSize {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("scc cannot measure axis %s", axis), nil)
	}

	out, err := a.runner.Run(ctx, "scc", "--by-file", "--format", "json", target)
	if err != nil {
		return nil, domain.NewToolFailureError("scc run failed", err)
	}

	var summaries []sccLanguageSummary
	if err := json.Unmarshal(out, &summaries); err != nil {
		return nil, domain.NewToolFailureError("scc produced unparseable output", err)
	}

	return buildSCCMeasurement(summaries), nil
}

func buildSCCMeasurement(summaries []sccLanguageSummary) *domain.AxisMeasurement {
	var code, comment, total, count int64
	var files []domain.FileMeasurement

	for _, lang := range summaries {
		if !sccLanguages[lang.Name] {
			continue
		}
		code += lang.Code
		comment += lang.Comment
		total += lang.Lines
		count += lang.Count

		for _, f := range lang.Files {
			files = append(files, domain.FileMeasurement{
				Path: f.Location,
				Metrics: []domain.MetricValue{
					value(MetricCodeLines, float64(f.Code)),
					value(MetricCommentLines, float64(f.Comment)),
					value(MetricTotalLines, float64(f.Lines)),
				},
			})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &domain.AxisMeasurement{
		Axis: domain.AxisSize,
		Aggregates: []domain.MetricValue{
			value(MetricCodeLines, float64(code)),
			value(MetricCommentLines, float64(comment)),
			value(MetricTotalLines, float64(total)),
			value(MetricFileCount, float64(count)),
		},
		Files: files,
	}
}
