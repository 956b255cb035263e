package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/qscan/domain"
)

func TestMeasureCmdFlags(t *testing.T) {
	cmd := measureCmd()

	for _, flag := range []string{"axes", "format", "json", "sort-by", "top", "config", "no-progress"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected measure command to define --%s", flag)
		}
	}
}

func TestRequestFromFlags(t *testing.T) {
	selectAxes = []string{"size", "complexity"}
	outputFormat = ""
	jsonOutput = true
	sortBy = "code-lines"
	topFiles = 5
	configPath = ""
	noProgress = false
	t.Cleanup(func() {
		selectAxes = nil
		jsonOutput = false
		sortBy = ""
		topFiles = 0
	})

	req, err := requestFromFlags("src")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if req.Target != "src" {
		t.Errorf("Expected target src, got %s", req.Target)
	}
	if len(req.Axes) != 2 {
		t.Errorf("Expected 2 axes, got %v", req.Axes)
	}
	if string(req.OutputFormat) != "json" {
		t.Errorf("Expected --json shorthand to win, got %s", req.OutputFormat)
	}
	if req.TopFiles != 5 || req.SortBy != "code-lines" {
		t.Errorf("Unexpected request: %+v", req)
	}
}

func TestRequestFromFlagsRejectsUnknownAxis(t *testing.T) {
	selectAxes = []string{"vibes"}
	t.Cleanup(func() { selectAxes = nil })

	if _, err := requestFromFlags("src"); err == nil {
		t.Error("Expected error for unknown axis")
	}
}

func TestApplyExplicitZeroFlags(t *testing.T) {
	t.Run("TopZeroOverridesConfigLimit", func(t *testing.T) {
		cmd := measureCmd()
		if err := cmd.Flags().Set("top", "0"); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		t.Cleanup(func() { topFiles = 0 })

		req := &domain.MeasureRequest{TopFiles: 10}
		applyExplicitZeroFlags(cmd, req)

		if req.TopFiles != 0 {
			t.Errorf("Expected explicit --top 0 to win, got %d", req.TopFiles)
		}
	})

	t.Run("UnsetTopKeepsConfigLimit", func(t *testing.T) {
		cmd := measureCmd()
		t.Cleanup(func() { topFiles = 0 })

		req := &domain.MeasureRequest{TopFiles: 10}
		applyExplicitZeroFlags(cmd, req)

		if req.TopFiles != 10 {
			t.Errorf("Expected config limit kept, got %d", req.TopFiles)
		}
	})

	t.Run("EmptySortByClearsConfigSort", func(t *testing.T) {
		cmd := measureCmd()
		if err := cmd.Flags().Set("sort-by", ""); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		t.Cleanup(func() { sortBy = "" })

		req := &domain.MeasureRequest{SortBy: "code-lines"}
		applyExplicitZeroFlags(cmd, req)

		if req.SortBy != "" {
			t.Errorf("Expected explicit empty sort to win, got %q", req.SortBy)
		}
	})
}

func TestInitCmd(t *testing.T) {
	t.Run("CreatesConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "qscan.yaml")

		cmd := initCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		if err := runInit(cmd, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Expected config file written: %v", err)
		}
		if !strings.Contains(string(data), "axes:") {
			t.Errorf("Expected template content, got %q", string(data))
		}
	})

	t.Run("RefusesToOverwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "qscan.yaml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("Failed to seed file: %v", err)
		}

		cmd := initCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		if err := runInit(cmd, nil); err == nil {
			t.Error("Expected error without --force")
		}
	})

	t.Run("ForceOverwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "qscan.yaml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("Failed to seed file: %v", err)
		}

		cmd := initCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		if err := cmd.Flags().Set("force", "true"); err != nil {
			t.Fatalf("Failed to set flag: %v", err)
		}
		if err := runInit(cmd, nil); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	})
}

func TestToolsCmdExists(t *testing.T) {
	cmd := toolsCmd()
	if cmd.Use != "tools" {
		t.Errorf("Unexpected command use: %s", cmd.Use)
	}
}
