package config

// Preset identifies an init template flavor.
type Preset string

const (
	// PresetFull measures every axis with documented defaults
	PresetFull Preset = "full"

	// PresetCI measures every axis with machine-readable output
	PresetCI Preset = "ci"

	// PresetQuick measures complexity and size only
	PresetQuick Preset = "quick"
)

const fullConfigTemplate = `# qscan configuration
# Quality metrics are collected by external measurement tools; qscan only
# orchestrates them. Run 'qscan tools' to see which tools are available.

# Axes to measure. Remove entries to skip an axis.
# Available: complexity, size, duplication, deadcode
axes:
  - complexity
  - size
  - duplication
  - deadcode

output:
  # Output format: text, json, yaml
  format: text

  # Per-file metric to sort file lists by (e.g. code-lines,
  # cyclomatic-max, duplicated-lines). Empty keeps tool order.
  sort_by: ""

  # Keep only the top N files per axis. 0 keeps all files.
  top_files: 10

analysis:
  # Extra gitignore-style patterns the builtin fallback tools skip.
  exclude_patterns:
    - node_modules/
    - dist/
    - build/

progress:
  # Show progress bars on a TTY.
  enabled: true
`

const ciConfigTemplate = `# qscan configuration (CI preset)
axes:
  - complexity
  - size
  - duplication
  - deadcode

output:
  format: json
  sort_by: ""
  top_files: 25

progress:
  enabled: false
`

const quickConfigTemplate = `# qscan configuration (quick preset)
axes:
  - complexity
  - size

output:
  format: text
  top_files: 10
`

const minimalConfigTemplate = `axes: []

output:
  format: text
  top_files: 10
`

// GetConfigTemplate returns the documented config template for a preset.
func GetConfigTemplate(preset Preset) string {
	switch preset {
	case PresetCI:
		return ciConfigTemplate
	case PresetQuick:
		return quickConfigTemplate
	default:
		return fullConfigTemplate
	}
}

// GetMinimalConfigTemplate returns a bare-bones config.
func GetMinimalConfigTemplate() string {
	return minimalConfigTemplate
}
