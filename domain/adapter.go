package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Availability is the result of probing a tool adapter. When Available
// is false, Reason explains why (missing binary, probe failure); when
// true, Version carries the probed tool version if known.
type Availability struct {
	Available bool   `json:"available" yaml:"available"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ToolAdapter is the collaborator contract for external measurement
// tools. Adapters are stateless and safe to call concurrently; a failing
// adapter must report its failure as an error, never affect siblings.
type ToolAdapter interface {
	// ID returns the unique adapter identifier, e.g. "scc"
	ID() string

	// Name returns the human-readable tool name
	Name() string

	// Axes returns the axes this adapter can measure
	Axes() []Axis

	// CheckAvailability probes whether the underlying tool can run,
	// typically by locating the binary and asking for its version.
	CheckAvailability(ctx context.Context) Availability

	// Measure runs the tool against the target path and normalizes its
	// output into an AxisMeasurement for the given axis.
	Measure(ctx context.Context, target string, axis Axis) (*AxisMeasurement, error)
}

// MeasureRequest describes one orchestration run.
type MeasureRequest struct {
	// Target is the file or directory to measure
	Target string

	// Axes is the requested axis list; empty means all known axes
	Axes []Axis

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// SortBy names the per-file metric to sort file lists by; empty
	// disables sorting
	SortBy string

	// TopFiles truncates per-file lists to the top N entries; 0 keeps all
	TopFiles int

	// ConfigPath is an explicit config file path
	ConfigPath string

	// NoProgress disables progress bars
	NoProgress bool
}

// OutputFormatter renders a quality report for the caller.
type OutputFormatter interface {
	// Format formats the report according to the specified format
	Format(report *QualityReport, format OutputFormat) (string, error)

	// Write writes the formatted report to the writer
	Write(report *QualityReport, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader loads measurement configuration.
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*MeasureRequest, error)

	// LoadDefaultConfig loads configuration from discovered config files,
	// falling back to built-in defaults
	LoadDefaultConfig() *MeasureRequest

	// MergeConfig merges CLI flags over a base configuration
	MergeConfig(base *MeasureRequest, override *MeasureRequest) *MeasureRequest
}

// ProgressManager creates progress tasks for long-running phases.
type ProgressManager interface {
	// StartTask creates a new progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress is actually displayed
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task.
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}
