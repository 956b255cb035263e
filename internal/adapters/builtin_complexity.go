package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ludo-technologies/qscan/domain"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// BuiltinComplexityAdapter is the complexity fallback when lizard is not
// installed. It parses JS/TS with tree-sitter and counts branch points
// per function, which matches cyclomatic complexity for structured code.
type BuiltinComplexityAdapter struct {
	excludePatterns []string
}

// NewBuiltinComplexityAdapter creates the builtin complexity adapter.
func NewBuiltinComplexityAdapter(excludePatterns []string) *BuiltinComplexityAdapter {
	return &BuiltinComplexityAdapter{excludePatterns: excludePatterns}
}

// ID returns the unique adapter identifier
func (a *BuiltinComplexityAdapter) ID() string { return "builtin-complexity" }

// Name returns the human-readable tool name
func (a *BuiltinComplexityAdapter) Name() string { return "builtin tree-sitter complexity" }

// Axes returns the axes this adapter can measure
func (a *BuiltinComplexityAdapter) Axes() []domain.Axis {
	return []domain.Axis{domain.AxisComplexity}
}

// CheckAvailability always succeeds; the parser ships with qscan.
func (a *BuiltinComplexityAdapter) CheckAvailability(_ context.Context) domain.Availability {
	return domain.Availability{Available: true, Version: "builtin"}
}

// Measure parses every JS/TS file under the target and derives
// complexity metrics from branch counts.
func (a *BuiltinComplexityAdapter) Measure(ctx context.Context, target string, axis domain.Axis) (*domain.AxisMeasurement, error) {
	if axis != domain.AxisComplexity {
		return nil, domain.NewUnsupportedError(fmt.Sprintf("builtin-complexity cannot measure axis %s", axis), nil)
	}

	paths, err := collectJSFiles(target, a.excludePatterns)
	if err != nil {
		return nil, domain.AdapterError{AdapterID: a.ID(), Message: "collecting files failed", Cause: err}
	}
	sort.Strings(paths)

	var files []domain.FileMeasurement
	totalFunctions, totalBranches, maxCCN := 0, 0, 0

	for _, path := range paths {
		counts, err := countBranches(ctx, path)
		if err != nil {
			return nil, domain.AdapterError{AdapterID: a.ID(), Message: fmt.Sprintf("parsing %s failed", path), Cause: err}
		}
		if counts.functions == 0 {
			continue
		}

		// Per-file cyclomatic approximation: every function starts at 1,
		// every branch point adds 1.
		fileCCN := counts.functions + counts.branches
		avg := float64(fileCCN) / float64(counts.functions)
		fileMax := 1 + counts.branches

		files = append(files, domain.FileMeasurement{
			Path: path,
			Metrics: []domain.MetricValue{
				value(MetricCyclomaticAvg, avg),
				value(MetricFunctionCount, float64(counts.functions)),
			},
		})

		totalFunctions += counts.functions
		totalBranches += counts.branches
		if fileMax > maxCCN {
			maxCCN = fileMax
		}
	}

	avg := 0.0
	if totalFunctions > 0 {
		avg = float64(totalFunctions+totalBranches) / float64(totalFunctions)
	}

	return &domain.AxisMeasurement{
		Axis: domain.AxisComplexity,
		Aggregates: []domain.MetricValue{
			value(MetricCyclomaticAvg, avg),
			value(MetricCyclomaticMax, float64(maxCCN)),
			value(MetricFunctionCount, float64(totalFunctions)),
		},
		Files: files,
	}, nil
}

// branchNodeKinds are the tree-sitter node kinds that open a new branch.
var branchNodeKinds = map[string]bool{
	"if_statement":       true,
	"for_statement":      true,
	"for_in_statement":   true,
	"while_statement":    true,
	"do_statement":       true,
	"switch_case":        true,
	"catch_clause":       true,
	"ternary_expression": true,
}

// functionNodeKinds are the tree-sitter node kinds that define a function.
var functionNodeKinds = map[string]bool{
	"function_declaration":           true,
	"function_expression":            true,
	"function":                       true,
	"arrow_function":                 true,
	"method_definition":              true,
	"generator_function":             true,
	"generator_function_declaration": true,
}

type branchCounts struct {
	functions int
	branches  int
}

func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

func countBranches(ctx context.Context, path string) (branchCounts, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return branchCounts{}, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(languageFor(path))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return branchCounts{}, err
	}
	defer tree.Close()

	var counts branchCounts
	walkNode(tree.RootNode(), func(n *sitter.Node) {
		kind := n.Type()
		switch {
		case functionNodeKinds[kind]:
			counts.functions++
		case branchNodeKinds[kind]:
			counts.branches++
		case kind == "binary_expression":
			if op := n.ChildByFieldName("operator"); op != nil {
				switch op.Type() {
				case "&&", "||", "??":
					counts.branches++
				}
			}
		}
	})
	return counts, nil
}

// walkNode visits named nodes only. Anonymous token nodes share type
// names with the constructs they spell (the "function" keyword token
// reports Type() == "function"), so visiting them would double-count.
// The operator check above is unaffected: ChildByFieldName reaches
// anonymous children regardless of the traversal.
func walkNode(n *sitter.Node, visit func(*sitter.Node)) {
	visit(n)
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walkNode(n.NamedChild(i), visit)
	}
}
