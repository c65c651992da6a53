package adapt

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/cache"
)

// ErrUnsupported is returned when no conversion is registered for a
// value's type.
var ErrUnsupported = errors.New("adapt: no tree conversion registered for type")

// ConvertFunc turns a foreign value into a tree node.
type ConvertFunc func(v any) (treekit.Node, error)

// Registry maps concrete and interface types to conversion functions.
// Lookups by concrete type are memoized, so the implements-scan for
// interface registrations runs once per concrete type.
type Registry struct {
	mu       sync.RWMutex
	exact    map[reflect.Type]ConvertFunc
	resolved *cache.LRU[reflect.Type, ConvertFunc]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:    make(map[reflect.Type]ConvertFunc),
		resolved: cache.New[reflect.Type, ConvertFunc](256),
	}
}

// Register binds a conversion to a type. Interface types match any value
// implementing them; concrete types match exactly and win over interface
// matches. Registering drops previously memoized lookups.
func (r *Registry) Register(t reflect.Type, fn ConvertFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exact[t] = fn
	r.resolved = cache.New[reflect.Type, ConvertFunc](256)
}

// RegisterFor binds a typed conversion function, deriving the lookup type
// from T.
func RegisterFor[T any](r *Registry, fn func(T) (treekit.Node, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.Register(t, func(v any) (treekit.Node, error) {
		return fn(v.(T))
	})
}

// Convert turns a value into a tree node. Values that already implement
// Node pass through unchanged.
func (r *Registry) Convert(v any) (treekit.Node, error) {
	if n, ok := v.(treekit.Node); ok {
		return n, nil
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnsupported)
	}
	t := reflect.TypeOf(v)
	fn, ok := r.resolve(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	return fn(v)
}

func (r *Registry) resolve(t reflect.Type) (ConvertFunc, bool) {
	r.mu.RLock()
	resolved := r.resolved
	fn, ok := r.exact[t]
	r.mu.RUnlock()
	if ok {
		return fn, true
	}
	if fn, ok := resolved.Get(t); ok {
		return fn, fn != nil
	}

	r.mu.RLock()
	var match ConvertFunc
	for rt, rfn := range r.exact {
		if rt.Kind() == reflect.Interface && t.Implements(rt) {
			match = rfn
			break
		}
	}
	r.mu.RUnlock()

	// Negative results are memoized too; nil means "scanned, no match".
	resolved.Set(t, match)
	return match, match != nil
}

// DefaultRegistry holds the conversions for the adapters in this package:
// nested maps and slices, raw JSON bytes, parsed YAML nodes, and io/fs
// filesystems.
var DefaultRegistry = func() *Registry {
	r := NewRegistry()
	RegisterFor(r, func(v map[string]any) (treekit.Node, error) { return NewMap(v), nil })
	RegisterFor(r, func(v []any) (treekit.Node, error) { return NewMap(v), nil })
	RegisterFor(r, func(v []byte) (treekit.Node, error) { return NewJSON(v) })
	RegisterFor(r, func(v *yaml.Node) (treekit.Node, error) { return NewYAML(v), nil })
	RegisterFor(r, func(v fs.FS) (treekit.Node, error) { return NewFS(v), nil })
	return r
}()

// Any converts a value using the default registry.
func Any(v any) (treekit.Node, error) {
	return DefaultRegistry.Convert(v)
}
