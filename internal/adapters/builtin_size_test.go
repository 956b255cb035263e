package adapters

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/qscan/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestBuiltinSizeAdapterMeasure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", `// header comment
const x = 1;

/* block
   comment */
const y = 2;
`)
	writeFile(t, dir, "b.js", "console.log('hi');\n")
	writeFile(t, dir, "notes.txt", "not source\n")

	adapter := NewBuiltinSizeAdapter(nil)
	m, err := adapter.Measure(context.Background(), dir, domain.AxisSize)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got, _ := aggregate(m, "file-count"); got != 2 {
		t.Errorf("Expected 2 files, got %v", got)
	}
	// a.ts: 2 code + 3 comment + 1 blank = 6 total; b.js: 1 code.
	if got, _ := aggregate(m, "code-lines"); got != 3 {
		t.Errorf("Expected 3 code lines, got %v", got)
	}
	if got, _ := aggregate(m, "comment-lines"); got != 3 {
		t.Errorf("Expected 3 comment lines, got %v", got)
	}
	if got, _ := aggregate(m, "total-lines"); got != 7 {
		t.Errorf("Expected 7 total lines, got %v", got)
	}

	if len(m.Files) != 2 {
		t.Fatalf("Expected 2 file entries, got %d", len(m.Files))
	}
}

func TestBuiltinSizeAdapterHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".gitignore", "generated/\n")
	writeFile(t, dir, "kept.ts", "const a = 1;\n")
	writeFile(t, dir, "generated/skipped.ts", "const b = 2;\n")
	writeFile(t, dir, "node_modules/dep/index.js", "module.exports = {};\n")

	adapter := NewBuiltinSizeAdapter(nil)
	m, err := adapter.Measure(context.Background(), dir, domain.AxisSize)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(m.Files) != 1 || !strings.HasSuffix(m.Files[0].Path, "kept.ts") {
		t.Errorf("Expected only kept.ts measured, got %+v", m.Files)
	}
}

func TestBuiltinSizeAdapterExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kept.ts", "const a = 1;\n")
	writeFile(t, dir, "dist/bundle.js", "var x=1;\n")

	adapter := NewBuiltinSizeAdapter([]string{"dist/"})
	m, err := adapter.Measure(context.Background(), dir, domain.AxisSize)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(m.Files) != 1 || !strings.HasSuffix(m.Files[0].Path, "kept.ts") {
		t.Errorf("Expected dist/ excluded, got %+v", m.Files)
	}
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sample.ts", `// comment
const a = 1; // trailing comments count as code

/* one-line block */
/* multi
line */
const b = 2;
`)

	counts, err := countLines(filepath.Join(dir, "sample.ts"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if counts.total != 7 {
		t.Errorf("Expected 7 total lines, got %d", counts.total)
	}
	if counts.code != 2 {
		t.Errorf("Expected 2 code lines, got %d", counts.code)
	}
	if counts.comment != 4 {
		t.Errorf("Expected 4 comment lines, got %d", counts.comment)
	}
}

func TestCollectJSFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "only.tsx", "export const A = () => null;\n")

	paths, err := collectJSFiles(filepath.Join(dir, "only.tsx"), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Errorf("Expected the file itself, got %v", paths)
	}

	paths, err = collectJSFiles(filepath.Join(dir, "only.tsx"), []string{"ignored"})
	if err != nil || len(paths) != 1 {
		t.Errorf("Expected patterns not to affect a direct file target, got %v, %v", paths, err)
	}
}
