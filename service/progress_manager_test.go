package service

import (
	"testing"
)

func TestNewProgressManagerDisabled(t *testing.T) {
	pm := NewProgressManager(false)

	if pm.IsInteractive() {
		t.Error("Expected non-interactive manager when disabled")
	}

	// No-op tasks must be safe to use in any order.
	task := pm.StartTask("probing", 3)
	task.Increment(1)
	task.Describe("still probing")
	task.Complete()
	pm.Close()
}

func TestNewProgressManagerWithoutTTY(t *testing.T) {
	// Test runs never have stderr on a terminal, so even an enabled
	// manager degrades to the no-op implementation.
	pm := NewProgressManager(true)

	if pm.IsInteractive() {
		t.Skip("stderr is a terminal in this environment")
	}

	task := pm.StartTask("measuring", 2)
	task.Increment(2)
	task.Complete()
	pm.Close()
}
