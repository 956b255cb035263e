package service

import (
	"testing"

	"github.com/ludo-technologies/qscan/domain"
)

var testMetric = &domain.MetricDescriptor{ID: "code-lines", Name: "Code lines", Unit: "lines"}

func fileWith(path string, value float64) domain.FileMeasurement {
	return domain.FileMeasurement{
		Path:    path,
		Metrics: []domain.MetricValue{{Descriptor: testMetric, Value: value}},
	}
}

func fileWithout(path string) domain.FileMeasurement {
	return domain.FileMeasurement{Path: path}
}

func reportWith(files ...domain.FileMeasurement) *domain.QualityReport {
	return &domain.QualityReport{
		Target:      "src",
		GeneratedAt: "2026-03-14T09:26:53Z",
		Axes: []domain.AxisMeasurement{
			{Axis: domain.AxisSize, ToolID: "scc", Files: files},
		},
	}
}

func filePaths(am domain.AxisMeasurement) []string {
	paths := make([]string, len(am.Files))
	for i, f := range am.Files {
		paths[i] = f.Path
	}
	return paths
}

func TestSortFiles(t *testing.T) {
	t.Run("DescendingByMetric", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 10), fileWith("b.ts", 500), fileWith("c.ts", 100))

		sorted := SortFiles(report, "code-lines")

		got := filePaths(sorted.Axes[0])
		want := []string{"b.ts", "c.ts", "a.ts"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("MissingMetricSortsLast", func(t *testing.T) {
		report := reportWith(
			fileWithout("x.ts"),
			fileWith("a.ts", 5),
			fileWithout("y.ts"),
			fileWith("b.ts", 50),
		)

		sorted := SortFiles(report, "code-lines")

		got := filePaths(sorted.Axes[0])
		want := []string{"b.ts", "a.ts", "x.ts", "y.ts"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 10), fileWith("b.ts", 500))

		_ = SortFiles(report, "code-lines")

		got := filePaths(report.Axes[0])
		if got[0] != "a.ts" || got[1] != "b.ts" {
			t.Errorf("Expected input untouched, got %v", got)
		}
	})

	t.Run("UnknownMetricKeepsOrder", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 10), fileWith("b.ts", 500))

		sorted := SortFiles(report, "no-such-metric")

		got := filePaths(sorted.Axes[0])
		if got[0] != "a.ts" || got[1] != "b.ts" {
			t.Errorf("Expected original order preserved, got %v", got)
		}
	})
}

func TestLimitFiles(t *testing.T) {
	t.Run("TruncatesAndRecordsTotal", func(t *testing.T) {
		report := reportWith(
			fileWith("a.ts", 1), fileWith("b.ts", 2), fileWith("c.ts", 3),
			fileWith("d.ts", 4), fileWith("e.ts", 5),
		)

		limited := LimitFiles(report, 2)

		am := limited.Axes[0]
		if len(am.Files) != 2 {
			t.Fatalf("Expected 2 files, got %d", len(am.Files))
		}
		if am.FileTotalCount != 5 {
			t.Errorf("Expected FileTotalCount 5, got %d", am.FileTotalCount)
		}
		if am.Files[0].Path != "a.ts" || am.Files[1].Path != "b.ts" {
			t.Errorf("Expected first two files kept, got %v", filePaths(am))
		}
	})

	t.Run("UnderLimitLeftUntouched", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 1), fileWith("b.ts", 2))

		limited := LimitFiles(report, 10)

		am := limited.Axes[0]
		if len(am.Files) != 2 {
			t.Errorf("Expected all files kept, got %d", len(am.Files))
		}
		if am.FileTotalCount != 0 {
			t.Errorf("Expected no FileTotalCount without truncation, got %d", am.FileTotalCount)
		}
	})

	t.Run("ExactLimitRecordsNoTotal", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 1), fileWith("b.ts", 2))

		limited := LimitFiles(report, 2)

		if limited.Axes[0].FileTotalCount != 0 {
			t.Errorf("Expected no FileTotalCount at exact limit, got %d", limited.Axes[0].FileTotalCount)
		}
	})

	t.Run("NegativeLimitIsNoOp", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 1), fileWith("b.ts", 2))

		limited := LimitFiles(report, -1)

		if len(limited.Axes[0].Files) != 2 {
			t.Errorf("Expected files untouched, got %d", len(limited.Axes[0].Files))
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		report := reportWith(fileWith("a.ts", 1), fileWith("b.ts", 2), fileWith("c.ts", 3))

		_ = LimitFiles(report, 1)

		if len(report.Axes[0].Files) != 3 || report.Axes[0].FileTotalCount != 0 {
			t.Errorf("Expected input untouched, got %+v", report.Axes[0])
		}
	})
}
