package traverse

import "github.com/treekit/treekit"

// Option configures a single traversal call.
type Option func(*config)

type config struct {
	includeRoot bool
	prune       treekit.Predicate
}

func newConfig(opts []Option) config {
	cfg := config{includeRoot: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ExcludeRoot starts the walk at the root's children instead of the root
// itself. The children keep depth 1 and their enumeration indices.
func ExcludeRoot() Option {
	return func(cfg *config) {
		cfg.includeRoot = false
	}
}

// Prune stops descent below nodes matching p. The matching node is still
// yielded; its descendants are not expanded.
func Prune(p treekit.Predicate) Option {
	return func(cfg *config) {
		cfg.prune = p
	}
}
