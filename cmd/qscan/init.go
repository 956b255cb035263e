package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/qscan/internal/config"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a qscan configuration file",
		Long: `Generate a documented qscan configuration file with sensible defaults.

By default, creates qscan.yaml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create qscan.yaml in current directory
  qscan init

  # Custom output path
  qscan init --config custom.yaml

  # Overwrite existing file
  qscan init --force

  # Generate smaller config with essential options only
  qscan init --minimal

  # Interactive setup wizard
  qscan init --interactive
  qscan init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", "qscan.yaml",
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	// Get flag values from command
	outPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	preset := config.PresetFull

	// Run interactive setup if requested
	if interactive {
		var err error
		preset, outPath, err = runInteractiveSetup(outPath)
		if err != nil {
			return err
		}
	}

	// Check if file exists
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", outPath)
		}
	}

	// Check if parent directory exists
	dir := filepath.Dir(outPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	// Generate config content
	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetConfigTemplate(preset)
	}

	// Write to file
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Print success message with absolute path if possible, otherwise use relative path
	displayPath := outPath
	if absPath, err := filepath.Abs(outPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'qscan measure .' to measure your project.")

	return nil
}

func runInteractiveSetup(defaultOutPath string) (config.Preset, string, error) {
	fmt.Println()
	fmt.Println("qscan Configuration Setup")
	fmt.Println("=========================")
	fmt.Println()

	// Preset selection
	presets := []struct {
		Label       string
		Description string
		Value       config.Preset
	}{
		{"Full (recommended)", "All axes, text output, documented defaults", config.PresetFull},
		{"CI", "All axes, JSON output, no progress bars", config.PresetCI},
		{"Quick", "Complexity and size only", config.PresetQuick},
	}

	presetTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }} - {{ .Description | faint }}",
		Inactive: "   {{ .Label | white }} - {{ .Description | faint }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	presetPrompt := promptui.Select{
		Label:     "Which preset fits your workflow?",
		Items:     presets,
		Templates: presetTemplates,
	}

	presetIdx, _, err := presetPrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("preset selection cancelled: %w", err)
	}
	selectedPreset := presets[presetIdx].Value

	fmt.Println()

	// Output path prompt
	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultOutPath,
	}

	outPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("output path input cancelled: %w", err)
	}

	// Use default if empty
	if outPath == "" {
		outPath = defaultOutPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outPath)

	return selectedPreset, outPath, nil
}
