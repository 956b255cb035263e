package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/version"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// ReportEnvelope wraps a QualityReport with tool metadata for
// machine-readable output.
type ReportEnvelope struct {
	Version     string                   `json:"version" yaml:"version"`
	Target      string                   `json:"target" yaml:"target"`
	GeneratedAt string                   `json:"generated_at" yaml:"generated_at"`
	Axes        []domain.AxisMeasurement `json:"axes" yaml:"axes"`
	Warnings    []domain.Warning         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newEnvelope(report *domain.QualityReport) ReportEnvelope {
	return ReportEnvelope{
		Version:     version.Version,
		Target:      report.Target,
		GeneratedAt: report.GeneratedAt,
		Axes:        report.Axes,
		Warnings:    report.Warnings,
	}
}

// Format formats the report according to the specified format
func (f *OutputFormatterImpl) Format(report *domain.QualityReport, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(report, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the formatted report to the writer
func (f *OutputFormatterImpl) Write(report *domain.QualityReport, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(report, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(report, writer)
	case domain.OutputFormatText:
		return f.writeText(report, writer)
	default:
		return domain.NewUnsupportedError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

func (f *OutputFormatterImpl) writeJSON(report *domain.QualityReport, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newEnvelope(report))
}

func (f *OutputFormatterImpl) writeYAML(report *domain.QualityReport, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	return encoder.Encode(newEnvelope(report))
}

func (f *OutputFormatterImpl) writeText(report *domain.QualityReport, writer io.Writer) error {
	fmt.Fprintf(writer, "Quality Report: %s\n", report.Target)
	fmt.Fprintf(writer, "Generated: %s\n", report.GeneratedAt)

	for _, am := range report.Axes {
		fmt.Fprintf(writer, "\n%s (measured by %s)\n", strings.ToUpper(string(am.Axis)), am.ToolID)

		for _, mv := range am.Aggregates {
			fmt.Fprintf(writer, "  %-20s %s\n", mv.Descriptor.Name+":", formatValue(mv))
		}

		if len(am.Files) > 0 {
			if am.FileTotalCount > 0 {
				fmt.Fprintf(writer, "  Files (top %d of %d):\n", len(am.Files), am.FileTotalCount)
			} else {
				fmt.Fprintf(writer, "  Files:\n")
			}
			for _, file := range am.Files {
				fmt.Fprintf(writer, "    %s  %s\n", file.Path, formatFileMetrics(file))
			}
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(writer, "\nWarnings:\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w.Message)
		}
	}

	return nil
}

// formatValue renders a metric value with its unit, trimming float noise
// for whole numbers.
func formatValue(mv domain.MetricValue) string {
	s := strconv.FormatFloat(mv.Value, 'f', -1, 64)
	if mv.Value != float64(int64(mv.Value)) {
		s = strconv.FormatFloat(mv.Value, 'f', 2, 64)
	}
	if mv.Descriptor.Unit != "" {
		return s + " " + mv.Descriptor.Unit
	}
	return s
}

func formatFileMetrics(file domain.FileMeasurement) string {
	parts := make([]string, 0, len(file.Metrics))
	for _, mv := range file.Metrics {
		parts = append(parts, fmt.Sprintf("%s=%s", mv.Descriptor.ID, strconv.FormatFloat(mv.Value, 'f', -1, 64)))
	}
	return strings.Join(parts, " ")
}
