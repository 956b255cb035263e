package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/ludo-technologies/qscan/domain"
)

// fakeRunner serves canned tool output so parsing is tested without the
// tools installed.
type fakeRunner struct {
	lookPathErr error
	output      []byte
	runErr      error
	gotName     string
	gotArgs     []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.lookPathErr != nil {
		return "", f.lookPathErr
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.output, f.runErr
}

func TestDefaultRegistryOrder(t *testing.T) {
	registry := DefaultRegistry(nil)

	ids := registry.RegisteredIDs()
	want := []string{"lizard", "builtin-complexity", "scc", "cloc", "builtin-size", "jscpd", "ts-prune"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d adapters, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Expected adapter %d to be %s, got %s", i, want[i], ids[i])
		}
	}

	// External tools must precede their builtin fallbacks per axis.
	size := registry.AdaptersForAxis(domain.AxisSize)
	if len(size) != 3 || size[0].ID() != "scc" || size[1].ID() != "cloc" || size[2].ID() != "builtin-size" {
		t.Errorf("Unexpected size fallback chain: %v", adapterIDs(size))
	}
	complexity := registry.AdaptersForAxis(domain.AxisComplexity)
	if len(complexity) != 2 || complexity[0].ID() != "lizard" || complexity[1].ID() != "builtin-complexity" {
		t.Errorf("Unexpected complexity fallback chain: %v", adapterIDs(complexity))
	}
}

func adapterIDs(adapters []domain.ToolAdapter) []string {
	ids := make([]string, len(adapters))
	for i, a := range adapters {
		ids[i] = a.ID()
	}
	return ids
}

func TestAdapterRejectsWrongAxis(t *testing.T) {
	tests := []struct {
		name    string
		adapter domain.ToolAdapter
		axis    domain.Axis
	}{
		{"scc", NewSCCAdapterWithRunner(&fakeRunner{}), domain.AxisComplexity},
		{"cloc", NewClocAdapterWithRunner(&fakeRunner{}), domain.AxisDeadCode},
		{"lizard", NewLizardAdapterWithRunner(&fakeRunner{}), domain.AxisSize},
		{"jscpd", NewJscpdAdapterWithRunner(&fakeRunner{}), domain.AxisSize},
		{"ts-prune", NewTsPruneAdapterWithRunner(&fakeRunner{}), domain.AxisComplexity},
		{"builtin-size", NewBuiltinSizeAdapter(nil), domain.AxisDuplication},
		{"builtin-complexity", NewBuiltinComplexityAdapter(nil), domain.AxisSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.adapter.Measure(context.Background(), ".", tt.axis)
			if err == nil {
				t.Fatal("Expected error for unsupported axis")
			}
			var de domain.DomainError
			if !errors.As(err, &de) || de.Code != domain.ErrCodeUnsupported {
				t.Errorf("Expected UNSUPPORTED domain error, got %v", err)
			}
		})
	}
}

func TestBuiltinAdaptersAlwaysAvailable(t *testing.T) {
	ctx := context.Background()

	for _, adapter := range []domain.ToolAdapter{
		NewBuiltinSizeAdapter(nil),
		NewBuiltinComplexityAdapter(nil),
	} {
		avail := adapter.CheckAvailability(ctx)
		if !avail.Available || avail.Version != "builtin" {
			t.Errorf("Expected %s always available, got %+v", adapter.ID(), avail)
		}
	}
}
