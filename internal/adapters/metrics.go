// Package adapters contains the tool adapters: thin, swappable leaves
// that run one external measurement tool (or a builtin fallback) and
// normalize its output into the shared metric schema.
package adapters

import "github.com/ludo-technologies/qscan/domain"

// Metric descriptors are declared once and shared by pointer across
// every measurement that reports them.
var (
	MetricCodeLines = &domain.MetricDescriptor{
		ID:             "code-lines",
		Name:           "Code lines",
		Unit:           "lines",
		Interpretation: "physical lines containing code",
	}

	MetricCommentLines = &domain.MetricDescriptor{
		ID:             "comment-lines",
		Name:           "Comment lines",
		Unit:           "lines",
		Interpretation: "physical lines containing only comments",
	}

	MetricTotalLines = &domain.MetricDescriptor{
		ID:             "total-lines",
		Name:           "Total lines",
		Unit:           "lines",
		Interpretation: "all physical lines including blanks",
	}

	MetricFileCount = &domain.MetricDescriptor{
		ID:             "file-count",
		Name:           "Files",
		Unit:           "files",
		Interpretation: "number of source files measured",
	}

	MetricCyclomaticAvg = &domain.MetricDescriptor{
		ID:             "cyclomatic-avg",
		Name:           "Avg cyclomatic complexity",
		Min:            1,
		Interpretation: "mean cyclomatic complexity across functions",
	}

	MetricCyclomaticMax = &domain.MetricDescriptor{
		ID:             "cyclomatic-max",
		Name:           "Max cyclomatic complexity",
		Min:            1,
		Interpretation: "highest cyclomatic complexity of any function",
	}

	MetricFunctionCount = &domain.MetricDescriptor{
		ID:             "function-count",
		Name:           "Functions",
		Interpretation: "number of functions measured",
	}

	MetricDuplicationPct = &domain.MetricDescriptor{
		ID:             "duplication-pct",
		Name:           "Duplication",
		Unit:           "%",
		Max:            boundPct,
		Interpretation: "share of lines that are part of a detected clone",
	}

	MetricCloneCount = &domain.MetricDescriptor{
		ID:             "clone-count",
		Name:           "Clones",
		Interpretation: "number of detected clone pairs",
	}

	MetricDuplicatedLines = &domain.MetricDescriptor{
		ID:             "duplicated-lines",
		Name:           "Duplicated lines",
		Unit:           "lines",
		Interpretation: "lines that are part of a detected clone",
	}

	MetricUnusedExports = &domain.MetricDescriptor{
		ID:             "unused-exports",
		Name:           "Unused exports",
		Interpretation: "exported symbols with no references",
	}
)

var boundPct = ptr(100.0)

func ptr(f float64) *float64 { return &f }

func value(d *domain.MetricDescriptor, v float64) domain.MetricValue {
	return domain.MetricValue{Descriptor: d, Value: v}
}
