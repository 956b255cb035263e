package app

import (
	"context"
	"fmt"
	"os"

	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/service"
)

// Measurer runs one orchestrated measurement. Implemented by
// service.Orchestrator; tests substitute fakes.
type Measurer interface {
	Measure(ctx context.Context, req domain.MeasureRequest) (*domain.QualityReport, error)
}

// MeasureUseCase orchestrates the full measurement workflow: validate
// the request, measure, apply report transforms, and write the result.
type MeasureUseCase struct {
	measurer  Measurer
	formatter domain.OutputFormatter
}

// NewMeasureUseCase creates a new measure use case
func NewMeasureUseCase(measurer Measurer, formatter domain.OutputFormatter) *MeasureUseCase {
	return &MeasureUseCase{
		measurer:  measurer,
		formatter: formatter,
	}
}

// Execute performs the complete measurement workflow
func (uc *MeasureUseCase) Execute(ctx context.Context, req domain.MeasureRequest) error {
	if err := uc.validateRequest(req); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	report, err := uc.measurer.Measure(ctx, req)
	if err != nil {
		return err
	}

	if req.SortBy != "" {
		report = service.SortFiles(report, req.SortBy)
	}
	if req.TopFiles > 0 {
		report = service.LimitFiles(report, req.TopFiles)
	}

	writer := req.OutputWriter
	if writer == nil {
		writer = os.Stdout
	}

	format := req.OutputFormat
	if format == "" {
		format = domain.OutputFormatText
	}

	return uc.formatter.Write(report, format, writer)
}

// validateRequest validates the measure request
func (uc *MeasureUseCase) validateRequest(req domain.MeasureRequest) error {
	if req.Target == "" {
		return fmt.Errorf("no target path specified")
	}

	if _, err := os.Stat(req.Target); err != nil {
		return fmt.Errorf("target path %s: %w", req.Target, err)
	}

	for _, axis := range req.Axes {
		if !axis.Valid() {
			return fmt.Errorf("unknown axis %q", axis)
		}
	}

	if req.TopFiles < 0 {
		return fmt.Errorf("top files count cannot be negative")
	}

	switch req.OutputFormat {
	case "", domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q", req.OutputFormat)
	}

	return nil
}

// MeasureUseCaseBuilder provides a builder pattern for creating MeasureUseCase
type MeasureUseCaseBuilder struct {
	measurer  Measurer
	formatter domain.OutputFormatter
}

// NewMeasureUseCaseBuilder creates a new builder
func NewMeasureUseCaseBuilder() *MeasureUseCaseBuilder {
	return &MeasureUseCaseBuilder{}
}

// WithMeasurer sets the measurer
func (b *MeasureUseCaseBuilder) WithMeasurer(measurer Measurer) *MeasureUseCaseBuilder {
	b.measurer = measurer
	return b
}

// WithFormatter sets the output formatter
func (b *MeasureUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *MeasureUseCaseBuilder {
	b.formatter = formatter
	return b
}

// Build creates the MeasureUseCase with the configured dependencies
func (b *MeasureUseCaseBuilder) Build() (*MeasureUseCase, error) {
	if b.measurer == nil {
		return nil, fmt.Errorf("measurer is required")
	}

	uc := &MeasureUseCase{
		measurer:  b.measurer,
		formatter: b.formatter,
	}

	if uc.formatter == nil {
		uc.formatter = service.NewOutputFormatter()
	}

	return uc, nil
}
