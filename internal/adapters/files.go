package adapters

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// jsExtensions covers the JavaScript/TypeScript file families qscan
// measures.
var jsExtensions = map[string]bool{
	".js": true, ".jsx": true, ".mjs": true, ".cjs": true,
	".ts": true, ".tsx": true, ".mts": true, ".cts": true,
}

func isJSFile(path string) bool {
	return jsExtensions[strings.ToLower(filepath.Ext(path))]
}

// alwaysSkippedDirs are never measured regardless of ignore files.
var alwaysSkippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// collectJSFiles walks target and returns all JS/TS files, honoring the
// target's .gitignore plus extra gitignore-style exclude patterns.
// Returned paths are relative to target and lexically ordered by the
// walk, which keeps builtin measurements deterministic.
func collectJSFiles(target string, excludePatterns []string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if isJSFile(target) {
			return []string{target}, nil
		}
		return nil, nil
	}

	ignore := compileIgnore(target, excludePatterns)

	var files []string
	err = filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(target, path)
		if relErr != nil {
			return relErr
		}

		if info.IsDir() {
			if alwaysSkippedDirs[info.Name()] {
				return filepath.SkipDir
			}
			if rel != "." && ignore != nil && ignore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !isJSFile(path) {
			return nil
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	return files, err
}

// compileIgnore merges the target's .gitignore with extra patterns.
// A missing or unreadable .gitignore is not an error.
func compileIgnore(target string, extraPatterns []string) *gitignore.GitIgnore {
	var lines []string

	if data, err := os.ReadFile(filepath.Join(target, ".gitignore")); err == nil {
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	lines = append(lines, extraPatterns...)

	if len(lines) == 0 {
		return nil
	}
	return gitignore.CompileIgnoreLines(lines...)
}
