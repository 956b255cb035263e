package adapters

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/toolexec"
)

// LizardAdapter measures cyclomatic complexity by running lizard.
type LizardAdapter struct {
	runner toolexec.Runner
}

// NewLizardAdapter creates a lizard adapter using the real binary.
func NewLizardAdapter() *LizardAdapter {
	return &LizardAdapter{runner: toolexec.ExecRunner{}}
}

// NewLizardAdapterWithRunner creates a lizard adapter with a custom runner.
func NewLizardAdapterWithRunner(r toolexec.Runner) *LizardAdapter {
	return &LizardAdapter{runner: r}
}

// ID returns the unique adapter identifier
func (a *LizardAdapter) ID() string { return "lizard" }

// Name returns the human-readable tool name
func (a *LizardAdapter) Name() string { return "lizard complexity analyzer" }

// Axes returns the axes this adapter can measure
func (a *LizardAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisComplexity} }

// CheckAvailability probes for the lizard binary
func (a *LizardAdapter) CheckAvailability(ctx context.Context) domain.Availability {
	return toolexec.ProbeVersion(ctx, a.runner, "lizard", "--version")
}

// lizard CSV columns: NLOC, CCN, token, param, length, location, file,
// function, long_name, start, end
const (
	lizardColCCN  = 1
	lizardColFile = 6
	lizardMinCols = 8
)

// Measure runs lizard against the target and aggregates its per-function
// CSV rows into per-file and target-wide complexity metrics.
func (a *LizardAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisComplexity {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("lizard cannot measure axis %s", axis), nil)
	}

	out, err := a.runner.Run(ctx, "lizard", "-l", "javascript", "-l", "typescript", "--csv", target)
	if err != nil {
		return nil, domain.NewToolFailureError("lizard run failed", err)
	}

	return buildLizardMeasurement(out)
}

type fileComplexity struct {
	functions int
	sumCCN    int
	maxCCN    int
}

func buildLizardMeasurement(csvOut []byte) (*domain.AxisMeasurement, error) {
	reader := csv.NewReader(bytes.NewReader(csvOut))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewToolFailureError("lizard produced unparseable CSV", err)
	}

	perFile := make(map[string]*fileComplexity)
	var paths []string
	totalFunctions, totalCCN, maxCCN := 0, 0, 0

	for _, record := range records {
		if len(record) < lizardMinCols {
			continue
		}
		ccn, err := strconv.Atoi(record[lizardColCCN])
		if err != nil {
			continue
		}
		path := record[lizardColFile]

		fc, ok := perFile[path]
		if !ok {
			fc = &fileComplexity{}
			perFile[path] = fc
			paths = append(paths, path)
		}
		fc.functions++
		fc.sumCCN += ccn
		if ccn > fc.maxCCN {
			fc.maxCCN = ccn
		}

		totalFunctions++
		totalCCN += ccn
		if ccn > maxCCN {
			maxCCN = ccn
		}
	}

	sort.Strings(paths)

	files := make([]domain.FileMeasurement, 0, len(paths))
	for _, path := range paths {
		fc := perFile[path]
		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricCyclomaticAvg, float64(fc.sumCCN)/float64(fc.functions)),
				value(MetricCyclomaticMax, float64(fc.maxCCN)),
				value(MetricFunctionCount, float64(fc.functions)),
			},
		})
	}

	avg := 0.0
	if totalFunctions > 0 {
		avg = float64(totalCCN) / float64(totalFunctions)
	}

	return &domain.AxisMeasurement{
		Axis: domain.AxisComplexity,
		Aggregates: []domain.MetricValue{
			value(MetricCyclomaticAvg, avg),
			value(MetricCyclomaticMax, float64(maxCCN)),
			value(MetricFunctionCount, float64(totalFunctions)),
		},
		Files: files,
	}, nil
}
