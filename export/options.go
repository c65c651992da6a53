package export

import (
	"errors"
	"fmt"

	"github.com/treekit/treekit"
)

// ErrUnknownStyle is returned when a style or shape name has no entry in
// the corresponding table.
var ErrUnknownStyle = errors.New("export: unknown style")

// Style holds the three branch glyphs of a text rendering: the branch to
// a non-last child, the branch to a last child, and the vertical
// continuation drawn while a branch above is still open.
type Style struct {
	Branch   string
	Last     string
	Vertical string
}

// Styles are the named text styles.
var Styles = map[string]Style{
	"square":       {Branch: "├─", Last: "└─", Vertical: "│ "},
	"square-4":     {Branch: "├──", Last: "└──", Vertical: "│  "},
	"square-arrow": {Branch: "├→", Last: "└→", Vertical: "│ "},
	"round":        {Branch: "├─", Last: "╰─", Vertical: "│ "},
	"round-4":      {Branch: "├──", Last: "╰──", Vertical: "│  "},
	"round-arrow":  {Branch: "├→", Last: "╰→", Vertical: "│ "},
	"ascii":        {Branch: "|--", Last: "`--", Vertical: "|  "},
	"ascii-arrow":  {Branch: "|->", Last: "`->", Vertical: "|  "},
	"list":         {Branch: "-", Last: "-", Vertical: " "},
}

// Option configures a single rendering call.
type Option func(*config)

type config struct {
	styleName string
	styleSpec *Style
	formatter func(treekit.Node) string
	prune     treekit.Predicate
	shape     string
	direction string
}

func newConfig(opts []Option) config {
	cfg := config{
		styleName: "square",
		formatter: Label,
		shape:     "box",
		direction: "TD",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg *config) style() (Style, error) {
	if cfg.styleSpec != nil {
		return *cfg.styleSpec, nil
	}
	st, ok := Styles[cfg.styleName]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, cfg.styleName)
	}
	return st, nil
}

// pruneOr returns the configured prune predicate, or def when none was
// set.
func (cfg *config) pruneOr(def treekit.Predicate) treekit.Predicate {
	if cfg.prune != nil {
		return cfg.prune
	}
	return def
}

// WithStyle selects a named text style from Styles.
func WithStyle(name string) Option {
	return func(cfg *config) {
		cfg.styleName = name
		cfg.styleSpec = nil
	}
}

// WithStyleSpec supplies explicit branch glyphs.
func WithStyleSpec(st Style) Option {
	return func(cfg *config) { cfg.styleSpec = &st }
}

// WithFormatter overrides how a node is rendered as text.
func WithFormatter(f func(treekit.Node) string) Option {
	return func(cfg *config) { cfg.formatter = f }
}

// WithPrune stops descent below nodes matching p. The matching node is
// still rendered.
func WithPrune(p treekit.Predicate) Option {
	return func(cfg *config) { cfg.prune = p }
}

// WithMaxDepth is shorthand for WithPrune(treekit.MaxDepth(d)).
func WithMaxDepth(d int) Option {
	return WithPrune(treekit.MaxDepth(d))
}

// WithShape selects a named mermaid node shape from Shapes.
func WithShape(name string) Option {
	return func(cfg *config) { cfg.shape = name }
}

// WithDirection sets the mermaid graph direction (TD, LR, ...).
func WithDirection(dir string) Option {
	return func(cfg *config) { cfg.direction = dir }
}

// Label renders a node as text, preferring its Labeled capability and
// falling back to fmt. It is the default formatter.
func Label(n treekit.Node) string {
	if l, ok := n.(treekit.Labeled); ok {
		return l.Label()
	}
	return fmt.Sprint(n)
}
