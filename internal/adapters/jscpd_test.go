package adapters

import (
	"testing"
)

const jscpdReportJSON = `{
  "statistics": {
    "total": {
      "lines": 1000,
      "clones": 4,
      "duplicatedLines": 120,
      "percentage": 12
    },
    "formats": {
      "typescript": {
        "sources": {
          "src/b.ts": {"clones": 3, "duplicatedLines": 90, "percentage": 30},
          "src/a.ts": {"clones": 1, "duplicatedLines": 30, "percentage": 10},
          "src/clean.ts": {"clones": 0, "duplicatedLines": 0, "percentage": 0}
        }
      }
    }
  }
}`

func TestParseJscpdReport(t *testing.T) {
	m, err := parseJscpdReport([]byte(jscpdReportJSON))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, _ := aggregate(m, "duplication-pct"); got != 12 {
		t.Errorf("Expected 12%% duplication, got %v", got)
	}
	if got, _ := aggregate(m, "clone-count"); got != 4 {
		t.Errorf("Expected 4 clones, got %v", got)
	}
	if got, _ := aggregate(m, "duplicated-lines"); got != 120 {
		t.Errorf("Expected 120 duplicated lines, got %v", got)
	}

	// Clean files are dropped; remaining entries are path-sorted.
	if len(m.Files) != 2 {
		t.Fatalf("Expected 2 file entries, got %d", len(m.Files))
	}
	if m.Files[0].Path != "src/a.ts" || m.Files[1].Path != "src/b.ts" {
		t.Errorf("Unexpected file order: %s, %s", m.Files[0].Path, m.Files[1].Path)
	}
	if v, _ := m.Files[1].Metric("duplicated-lines"); v != 90 {
		t.Errorf("Expected 90 duplicated lines for src/b.ts, got %v", v)
	}
	if v, _ := m.Files[1].Metric("clone-count"); v != 3 {
		t.Errorf("Expected 3 clones for src/b.ts, got %v", v)
	}
}

func TestParseJscpdReportUnparseable(t *testing.T) {
	if _, err := parseJscpdReport([]byte("nope")); err == nil {
		t.Error("Expected error for unparseable report")
	}
}
