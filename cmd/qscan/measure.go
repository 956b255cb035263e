package main

import (
	"context"
	"os"

	"github.com/ludo-technologies/qscan/app"
	"github.com/ludo-technologies/qscan/domain"
	"github.com/ludo-technologies/qscan/internal/adapters"
	"github.com/ludo-technologies/qscan/internal/config"
	"github.com/ludo-technologies/qscan/service"
	"github.com/spf13/cobra"
)

var (
	selectAxes   []string
	outputFormat string
	jsonOutput   bool
	sortBy       string
	topFiles     int
	configPath   string
	noProgress   bool
)

func measureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure [path]",
		Short: "Measure quality metrics of a JavaScript/TypeScript project",
		Long: `Measure quality metrics of a JavaScript/TypeScript project.

Each axis is measured by the first available tool registered for it;
missing tools fall back to the next candidate or a builtin.

Examples:
  qscan measure src/
  qscan measure --axes complexity,size src/
  qscan measure --json --top 5 --sort-by cyclomatic-max src/
  qscan measure --format yaml src/`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMeasure,
	}

	cmd.Flags().StringSliceVarP(&selectAxes, "axes", "a", nil,
		"Axes to measure (comma-separated): complexity,size,duplication,deadcode (default: all)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "",
		"Per-file metric to sort file lists by (e.g. code-lines, cyclomatic-max)")
	cmd.Flags().IntVar(&topFiles, "top", 0,
		"Keep only the top N files per axis (0 keeps all)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"Disable progress bars")

	return cmd
}

func runMeasure(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	loader := service.NewConfigurationLoader()

	var base *domain.MeasureRequest
	if configPath != "" {
		loaded, err := loader.LoadConfig(configPath)
		if err != nil {
			return err
		}
		base = loaded
	} else {
		base = loader.LoadDefaultConfig()
	}

	override, err := requestFromFlags(target)
	if err != nil {
		return err
	}
	req := loader.MergeConfig(base, override)
	applyExplicitZeroFlags(cmd, req)

	// Builtin fallback adapters honor the configured exclude patterns.
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	registry := adapters.DefaultRegistry(cfg.Analysis.ExcludePatterns)

	// Progress is suppressed for machine-readable output so pipes stay
	// clean even when stderr is a TTY.
	pm := service.NewProgressManager(!req.NoProgress && req.OutputFormat == domain.OutputFormatText)
	defer pm.Close()

	orchestrator := service.NewOrchestrator(registry, service.WithProgress(pm))
	useCase := app.NewMeasureUseCase(orchestrator, service.NewOutputFormatter())

	return useCase.Execute(context.Background(), *req)
}

// applyExplicitZeroFlags re-applies flags whose zero value is
// meaningful. MergeConfig cannot tell --top 0 ("keep all files") apart
// from an unset flag, so an explicitly passed zero must win over a
// config file limit after the merge.
func applyExplicitZeroFlags(cmd *cobra.Command, req *domain.MeasureRequest) {
	if cmd.Flags().Changed("top") {
		req.TopFiles = topFiles
	}
	if cmd.Flags().Changed("sort-by") {
		req.SortBy = sortBy
	}
}

// requestFromFlags builds the flag-level request merged over the config
// file request.
func requestFromFlags(target string) (*domain.MeasureRequest, error) {
	axes, err := domain.ParseAxes(selectAxes)
	if err != nil {
		return nil, err
	}

	format := domain.OutputFormat(outputFormat)
	if jsonOutput {
		format = domain.OutputFormatJSON
	}

	return &domain.MeasureRequest{
		Target:       target,
		Axes:         axes,
		OutputFormat: format,
		OutputWriter: os.Stdout,
		SortBy:       sortBy,
		TopFiles:     topFiles,
		ConfigPath:   configPath,
		NoProgress:   noProgress,
	}, nil
}
