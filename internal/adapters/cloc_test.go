package adapters

import (
	"context"
	"testing"

	"github.com/ludo-technologies/qscan/domain"
)

const clocOutput = `{
  "header": {"cloc_version": "1.98", "n_files": 3},
  "src/app.ts": {"blank": 10, "comment": 20, "code": 70, "language": "TypeScript"},
  "src/util.js": {"blank": 5, "comment": 5, "code": 40, "language": "JavaScript"},
  "README.md": {"blank": 2, "comment": 0, "code": 30, "language": "Markdown"},
  "SUM": {"blank": 17, "comment": 25, "code": 140}
}`

func TestClocAdapterMeasure(t *testing.T) {
	runner := &fakeRunner{output: []byte(clocOutput)}
	adapter := NewClocAdapterWithRunner(runner)

	m, err := adapter.Measure(context.Background(), "src", domain.AxisSize)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if runner.gotName != "cloc" {
		t.Errorf("Expected cloc invocation, got %s", runner.gotName)
	}

	// Markdown, header and SUM entries are skipped.
	if len(m.Files) != 2 {
		t.Fatalf("Expected 2 file entries, got %d", len(m.Files))
	}
	if m.Files[0].Path != "src/app.ts" || m.Files[1].Path != "src/util.js" {
		t.Errorf("Unexpected file order: %s, %s", m.Files[0].Path, m.Files[1].Path)
	}

	if got, _ := aggregate(m, "code-lines"); got != 110 {
		t.Errorf("Expected 110 code lines, got %v", got)
	}
	if got, _ := aggregate(m, "comment-lines"); got != 25 {
		t.Errorf("Expected 25 comment lines, got %v", got)
	}
	if got, _ := aggregate(m, "total-lines"); got != 150 {
		t.Errorf("Expected 150 total lines, got %v", got)
	}
	if got, _ := aggregate(m, "file-count"); got != 2 {
		t.Errorf("Expected 2 files counted, got %v", got)
	}

	if v, ok := m.Files[0].Metric("total-lines"); !ok || v != 100 {
		t.Errorf("Expected 100 total lines for src/app.ts, got %v", v)
	}
}

func TestClocAdapterUnparseableOutput(t *testing.T) {
	adapter := NewClocAdapterWithRunner(&fakeRunner{output: []byte("<xml/>")})

	if _, err := adapter.Measure(context.Background(), "src", domain.AxisSize); err == nil {
		t.Error("Expected error for unparseable output")
	}
}
