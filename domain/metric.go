package domain

// MetricDescriptor holds the static metadata for one measured quantity.
// Descriptors are immutable and shared by pointer across every value of
// that metric; adapters declare them once as package-level variables.
type MetricDescriptor struct {
	// ID is the stable identifier, e.g. "code-lines"
	ID string `json:"id" yaml:"id"`

	// Name is the human-readable display name
	Name string `json:"name" yaml:"name"`

	// Unit is the unit of measurement, e.g. "lines", "%"; may be empty
	Unit string `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Min is the inclusive lower bound of valid values
	Min float64 `json:"min" yaml:"min"`

	// Max is the inclusive upper bound; nil means unbounded
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Interpretation is a neutral description of what the value means.
	// It never carries pass/fail judgement.
	Interpretation string `json:"interpretation,omitempty" yaml:"interpretation,omitempty"`
}

// MetricValue pairs a descriptor with a measured value.
type MetricValue struct {
	Descriptor *MetricDescriptor `json:"descriptor" yaml:"descriptor"`
	Value      float64           `json:"value" yaml:"value"`
}

// FileMeasurement holds the metric values measured for a single file.
type FileMeasurement struct {
	Path    string        `json:"path" yaml:"path"`
	Metrics []MetricValue `json:"metrics" yaml:"metrics"`
}

// Metric returns the value of the named metric, if present.
func (f FileMeasurement) Metric(id string) (float64, bool) {
	for _, m := range f.Metrics {
		if m.Descriptor != nil && m.Descriptor.ID == id {
			return m.Value, true
		}
	}
	return 0, false
}

// AxisMeasurement is one axis's normalized result: aggregate metrics for
// the whole target plus optional per-file breakdowns.
type AxisMeasurement struct {
	// Axis identifies the measured dimension
	Axis Axis `json:"axis" yaml:"axis"`

	// ToolID is the id of the adapter that produced this measurement
	ToolID string `json:"tool_id" yaml:"tool_id"`

	// Aggregates are the summary metric values for the whole target
	Aggregates []MetricValue `json:"aggregates" yaml:"aggregates"`

	// Files are per-file metric collections, possibly truncated
	Files []FileMeasurement `json:"files,omitempty" yaml:"files,omitempty"`

	// FileTotalCount records the pre-truncation file count. It is set
	// only when truncation actually removed entries; zero otherwise.
	FileTotalCount int `json:"file_total_count,omitempty" yaml:"file_total_count,omitempty"`
}

// Warning records one axis that could not be measured or whose adapter
// failed. AdapterID is empty for unavailable-axis warnings.
type Warning struct {
	Axis      Axis   `json:"axis" yaml:"axis"`
	AdapterID string `json:"adapter_id,omitempty" yaml:"adapter_id,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

// QualityReport is the orchestration output: the measurements that
// succeeded, in request order, plus warnings for everything that did not.
// A report is immutable once returned; transforms produce new reports.
type QualityReport struct {
	// Target is the measured path
	Target string `json:"target" yaml:"target"`

	// GeneratedAt is the RFC3339 generation timestamp
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`

	// Axes are the successful measurements, ordered deterministically
	Axes []AxisMeasurement `json:"axes" yaml:"axes"`

	// Warnings explain every axis missing from Axes
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
