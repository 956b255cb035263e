package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ludo-technologies/qscan/internal/adapters"
	"github.com/ludo-technologies/qscan/internal/config"
	"github.com/spf13/cobra"
)

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List measurement tools and their availability",
		Long: `List every registered measurement tool, the axes it covers, and
whether it can run on this machine. Tools listed first for an axis are
preferred; later ones are fallbacks.`,
		RunE: runTools,
	}
}

func runTools(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	registry := adapters.DefaultRegistry(cfg.Analysis.ExcludePatterns)
	ctx := context.Background()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tAXES\tSTATUS")

	for _, id := range registry.RegisteredIDs() {
		adapter, ok := registry.Adapter(id)
		if !ok {
			continue
		}

		axes := make([]string, 0, len(adapter.Axes()))
		for _, axis := range adapter.Axes() {
			axes = append(axes, string(axis))
		}

		avail := adapter.CheckAvailability(ctx)
		status := "unavailable"
		switch {
		case avail.Available && avail.Version != "":
			status = "available (" + avail.Version + ")"
		case avail.Available:
			status = "available"
		case avail.Reason != "":
			status = "unavailable: " + avail.Reason
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", id, strings.Join(axes, ","), status)
	}

	return w.Flush()
}
