// Package testutil provides helper functions for testing qscan components
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/ludo-technologies/qscan/domain"
)

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// FixedClock returns a clock function pinned to the given instant.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// FakeAdapter is a configurable ToolAdapter for orchestration tests.
// The zero value is available and measures nothing.
type FakeAdapter struct {
	AdapterID    string
	AdapterName  string
	AdapterAxes  []domain.Axis
	Availability domain.Availability
	MeasureFunc  func(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error)
	Delay        time.Duration
}

// NewFakeAdapter creates an available fake adapter for the given axes.
func NewFakeAdapter(id string, axes ...domain.Axis) *FakeAdapter {
	return &FakeAdapter{
		AdapterID:    id,
		AdapterName:  id + " (fake)",
		AdapterAxes:  axes,
		Availability: domain.Availability{Available: true, Version: "fake"},
	}
}

// ID returns the configured adapter id
func (f *FakeAdapter) ID() string { return f.AdapterID }

// Name returns the configured adapter name
func (f *FakeAdapter) Name() string { return f.AdapterName }

// Axes returns the configured axes
func (f *FakeAdapter) Axes() []domain.Axis { return f.AdapterAxes }

// CheckAvailability returns the configured availability
func (f *FakeAdapter) CheckAvailability(_ context.Context) domain.Availability {
	return f.Availability
}

// Measure sleeps for Delay, then delegates to MeasureFunc. Without a
// MeasureFunc it returns an empty measurement.
func (f *FakeAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.MeasureFunc != nil {
		return f.MeasureFunc(ctx, target, axis)
	}
	return &domain.AxisMeasurement{Axis: axis}, nil
}
