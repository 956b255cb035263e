package service

import (
	"sort"

	"github.com/ludo-technologies/qscan/domain"
)

// Report transforms are pure: each returns a new report and never
// mutates its input, so one orchestration result can feed several output
// formats. The intended composition is sort first, then limit; the
// functions themselves do not enforce it.

// SortFiles returns a copy of the report in which every axis's per-file
// entries are reordered descending by the named metric. Files lacking
// the metric are stable-sorted to the end, keeping their relative order.
func SortFiles(report *domain.QualityReport, metricID string) *domain.QualityReport {
	out := cloneReport(report)
	for i := range out.Axes {
		files := out.Axes[i].Files
		sort.SliceStable(files, func(a, b int) bool {
			va, oka := files[a].Metric(metricID)
			vb, okb := files[b].Metric(metricID)
			if oka != okb {
				return oka
			}
			return va > vb
		})
	}
	return out
}

// LimitFiles returns a copy of the report in which every axis with more
// than n per-file entries is truncated to the first n, recording the
// pre-truncation total in FileTotalCount. Axes at or under the limit are
// unchanged and carry no count.
func LimitFiles(report *domain.QualityReport, n int) *domain.QualityReport {
	out := cloneReport(report)
	if n < 0 {
		return out
	}
	for i := range out.Axes {
		am := &out.Axes[i]
		if len(am.Files) > n {
			am.FileTotalCount = len(am.Files)
			am.Files = am.Files[:n:n]
		}
	}
	return out
}

// cloneReport deep-copies the slices a transform may reorder or
// truncate. Metric descriptors stay shared by pointer; they are
// immutable by contract.
func cloneReport(report *domain.QualityReport) *domain.QualityReport {
	out := *report

	out.Axes = make([]domain.AxisMeasurement, len(report.Axes))
	copy(out.Axes, report.Axes)
	for i := range out.Axes {
		am := &out.Axes[i]

		aggregates := make([]domain.MetricValue, len(am.Aggregates))
		copy(aggregates, am.Aggregates)
		am.Aggregates = aggregates

		files := make([]domain.FileMeasurement, len(am.Files))
		copy(files, am.Files)
		for j := range files {
			metrics := make([]domain.MetricValue, len(files[j].Metrics))
			copy(metrics, files[j].Metrics)
			files[j].Metrics = metrics
		}
		am.Files = files
	}

	out.Warnings = make([]domain.Warning, len(report.Warnings))
	copy(out.Warnings, report.Warnings)

	return &out
}
