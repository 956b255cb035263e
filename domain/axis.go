package domain

import "fmt"

// Axis represents one measurable quality dimension of a codebase.
// The set of axes is closed and known at compile time.
type Axis string

const (
	// AxisComplexity measures cyclomatic complexity of functions
	AxisComplexity Axis = "complexity"

	// AxisSize measures physical code size (lines of code, comments)
	AxisSize Axis = "size"

	// AxisDuplication measures copy-pasted code across files
	AxisDuplication Axis = "duplication"

	// AxisDeadCode measures unused exports and unreachable code
	AxisDeadCode Axis = "deadcode"
)

// AllAxes returns every known axis in canonical order. The canonical
// order also defines report ordering when a request names no axes.
func AllAxes() []Axis {
	return []Axis{AxisComplexity, AxisSize, AxisDuplication, AxisDeadCode}
}

// Valid reports whether a is a member of the closed axis set.
func (a Axis) Valid() bool {
	switch a {
	case AxisComplexity, AxisSize, AxisDuplication, AxisDeadCode:
		return true
	}
	return false
}

// ParseAxis converts a user-supplied name into an Axis.
func ParseAxis(s string) (Axis, error) {
	a := Axis(s)
	if !a.Valid() {
		return "", NewInvalidInputError(fmt.Sprintf("unknown axis: %q", s), nil)
	}
	return a, nil
}

// ParseAxes converts a list of names into axes, dropping duplicates
// while preserving first-occurrence order.
func ParseAxes(names []string) ([]Axis, error) {
	seen := make(map[Axis]bool, len(names))
	axes := make([]Axis, 0, len(names))
	for _, name := range names {
		a, err := ParseAxis(name)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		axes = append(axes, a)
	}
	return axes, nil
}
