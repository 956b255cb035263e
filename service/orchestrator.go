package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ludo-technologies/qscan/domain"
	"golang.org/x/sync/errgroup"
)

// Orchestrator resolves one available adapter per requested axis, runs
// the resolved adapters concurrently, and merges their results into a
// single report. It holds no state across invocations.
type Orchestrator struct {
	registry *ToolRegistry
	clock    func() time.Time
	progress domain.ProgressManager
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithClock overrides the timestamp source, for deterministic reports in
// tests.
func WithClock(clock func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// WithProgress attaches a progress manager to the probe and measure
// phases.
func WithProgress(pm domain.ProgressManager) OrchestratorOption {
	return func(o *Orchestrator) {
		o.progress = pm
	}
}

// NewOrchestrator creates an orchestrator over the given registry.
func NewOrchestrator(registry *ToolRegistry, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		registry: registry,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolution is one (axis, adapter) pair picked during the probe phase.
type resolution struct {
	axis    domain.Axis
	adapter domain.ToolAdapter
}

// Measure runs the full orchestration for one request. Individual
// adapter failures are recovered into report warnings; only total
// failure (no axis measured) is returned as an error.
func (o *Orchestrator) Measure(ctx context.Context, req domain.MeasureRequest) (*domain.QualityReport, error) {
	axes := req.Axes
	if len(axes) == 0 {
		axes = domain.AllAxes()
	}

	if len(o.registry.RegisteredIDs()) == 0 {
		return nil, &domain.OrchestrationError{Message: "no adapters registered"}
	}

	resolutions, unavailable := o.resolveAdapters(ctx, axes)

	if len(resolutions) == 0 {
		return nil, &domain.OrchestrationError{
			Message: fmt.Sprintf("no available adapter for axes: %s", joinAxes(unavailable)),
		}
	}

	measurements, axisErrors := o.runMeasurements(ctx, req.Target, resolutions)

	if len(measurements) == 0 && len(axisErrors) > 0 {
		return nil, &domain.OrchestrationError{
			Message:    domain.AllAdaptersFailedMessage,
			AxisErrors: axisErrors,
		}
	}

	warnings := buildWarnings(unavailable, axisErrors)

	return &domain.QualityReport{
		Target:      req.Target,
		GeneratedAt: o.clock().Format(time.RFC3339),
		Axes:        measurements,
		Warnings:    warnings,
	}, nil
}

// resolveAdapters picks the first available adapter for every axis.
// Axes are probed concurrently with each other; candidates for the same
// axis are probed sequentially in registration order, stopping at the
// first that reports available. Each goroutine writes only its own slot.
func (o *Orchestrator) resolveAdapters(ctx context.Context, axes []domain.Axis) ([]resolution, []domain.Axis) {
	task := o.startTask("Resolving tools", len(axes))
	defer task.Complete()

	picked := make([]domain.ToolAdapter, len(axes))

	g, gCtx := errgroup.WithContext(ctx)
	for i, axis := range axes {
		i, axis := i, axis
		g.Go(func() error {
			for _, candidate := range o.registry.AdaptersForAxis(axis) {
				avail := candidate.CheckAvailability(gCtx)
				if avail.Available {
					picked[i] = candidate
					break
				}
			}
			task.Increment(1)
			// Always nil: an axis without an available adapter becomes a
			// warning, and must not cancel sibling probes.
			return nil
		})
	}
	_ = g.Wait()

	var resolutions []resolution
	var unavailable []domain.Axis
	for i, axis := range axes {
		if picked[i] != nil {
			resolutions = append(resolutions, resolution{axis: axis, adapter: picked[i]})
		} else {
			unavailable = append(unavailable, axis)
		}
	}
	return resolutions, unavailable
}

// runMeasurements invokes every resolved adapter concurrently against
// the target and partitions the outcomes, preserving resolution order.
// Branches share no mutable state beyond their own result slot, and a
// failing branch never cancels its siblings.
func (o *Orchestrator) runMeasurements(ctx context.Context, target string, resolutions []resolution) ([]domain.AxisMeasurement, []domain.AxisError) {
	task := o.startTask("Measuring", len(resolutions))
	defer task.Complete()

	results := make([]*domain.AxisMeasurement, len(resolutions))
	failures := make([]error, len(resolutions))

	var g errgroup.Group
	for i, res := range resolutions {
		i, res := i, res
		g.Go(func() error {
			m, err := res.adapter.Measure(ctx, target, res.axis)
			if err != nil {
				failures[i] = err
			} else {
				m.Axis = res.axis
				m.ToolID = res.adapter.ID()
				results[i] = m
			}
			task.Increment(1)
			return nil
		})
	}
	_ = g.Wait()

	var measurements []domain.AxisMeasurement
	var axisErrors []domain.AxisError
	for i, res := range resolutions {
		if results[i] != nil {
			measurements = append(measurements, *results[i])
		} else {
			axisErrors = append(axisErrors, domain.AxisError{
				Axis:      res.axis,
				AdapterID: res.adapter.ID(),
				Err:       failures[i],
			})
		}
	}
	return measurements, axisErrors
}

// buildWarnings assembles the warning list: unavailable-axis warnings
// first, then adapter failures, each group in axis processing order.
func buildWarnings(unavailable []domain.Axis, axisErrors []domain.AxisError) []domain.Warning {
	var warnings []domain.Warning
	for _, axis := range unavailable {
		warnings = append(warnings, domain.Warning{
			Axis:    axis,
			Message: fmt.Sprintf("no available adapter for axis %s", axis),
		})
	}
	for _, ae := range axisErrors {
		warnings = append(warnings, domain.Warning{
			Axis:      ae.Axis,
			AdapterID: ae.AdapterID,
			Message:   fmt.Sprintf("adapter %s failed: %v", ae.AdapterID, ae.Err),
		})
	}
	return warnings
}

func (o *Orchestrator) startTask(description string, total int) domain.TaskProgress {
	if o.progress != nil {
		return o.progress.StartTask(description, total)
	}
	return &NoOpTaskProgress{}
}

func joinAxes(axes []domain.Axis) string {
	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
