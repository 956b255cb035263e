package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ludo-technologies/qscan/domain"
)

// BuiltinSizeAdapter is the last-resort size adapter. It walks the
// target itself and counts lines, so size measurement works even when
// neither scc nor cloc is installed. Comment detection is approximate
// (line-level // and /* ... */ only).
type BuiltinSizeAdapter struct {
	excludePatterns []string
}

// NewBuiltinSizeAdapter creates the builtin size adapter.
func NewBuiltinSizeAdapter(excludePatterns []string) *BuiltinSizeAdapter {
	return &BuiltinSizeAdapter{excludePatterns: excludePatterns}
}

// ID returns the unique adapter identifier
func (a *BuiltinSizeAdapter) ID() string { return "builtin-size" }

// Name returns the human-readable tool name
func (a *BuiltinSizeAdapter) Name() string { return "builtin line counter" }

// Axes returns the axes this adapter can measure
func (a *BuiltinSizeAdapter) Axes() []domain.Axis { return []domain.Axis{domain.AxisSize} }

// CheckAvailability always succeeds; the counter ships with qscan.
func (a *BuiltinSizeAdapter) CheckAvailability(_ context.Context) domain.Availability {
	return domain.Availability{Available: true, Version: "builtin"}
}

// Measure counts lines in every JS/TS file under the target.
func (a *BuiltinSizeAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisSize {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("builtin-size cannot measure axis %s", axis), nil)
	}

	paths, err := collectJSFiles(target, a.excludePatterns)
	if err != nil {
		return nil, domain.AdapterError{AdapterID: a.ID(), Message: "collecting files failed", Cause: err}
	}
	sort.Strings(paths)

	var code, comment, total int64
	var files []domain.FileMeasurement

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		counts, err := countLines(path)
		if err != nil {
			return nil, domain.AdapterError{AdapterID: a.ID(), Message: fmt.Sprintf("counting lines in %s failed", path), Cause: err}
		}

		code += counts.code
		comment += counts.comment
		total += counts.total

		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricCodeLines, float64(counts.code)),
				value(MetricCommentLines, float64(counts.comment)),
				value(MetricTotalLines, float64(counts.total)),
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

type lineCounts struct {
	code    int64
	comment int64
	total   int64
}

func countLines(path string) (lineCounts, error) {
	f, err := os.Open(path)
	if err != nil {
		return lineCounts{}, err
	}
	defer f.Close()

	var counts lineCounts
	inBlockComment := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		counts.total++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			// blank
		case inBlockComment:
			counts.comment++
			if strings.Contains(line, "*/") {
				inBlockComment = false
			}
		case strings.HasPrefix(line, "//"):
			counts.comment++
		case strings.HasPrefix(line, "/*"):
			counts.comment++
			if !strings.Contains(line[2:], "*/") {
				inBlockComment = true
			}
		default:
			counts.code++
		}
	}
	return counts, scanner.Err()
}
