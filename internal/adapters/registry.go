package adapters

import (
	"github.com/ludo-technologies/qscan/service"
)

// DefaultRegistry builds the standard tool registry. Registration order
// doubles as fallback order: for each axis the first registered adapter
// that probes available wins, so external tools come before their
// builtin fallbacks.
func DefaultRegistry(excludePatterns []string) *service.ToolRegistry {
	registry := service.NewToolRegistry()
	registry.Register(NewLizardAdapter())
	registry.Register(NewBuiltinComplexityAdapter(excludePatterns))
	registry.Register(NewSCCAdapter())
	registry.Register(NewClocAdapter())
	registry.Register(NewBuiltinSizeAdapter(excludePatterns))
	registry.Register(NewJscpdAdapter())
	registry.Register(NewTsPruneAdapter())
	return registry
}
