package router

import (
	"fmt"
	"strings"
)

// View is a renderable unit bound to a path. The table holds and returns
// views; it never inspects them.
type View interface {
	Render() string
}

// Route binds a path to a view. Paths are matched by exact string comparison.
type Route[V View] struct {
	Path string
	View V
}

// Table is the ordered, immutable set of routes built at startup.
type Table[V View] struct {
	routes []Route[V]
}

// NewTable validates routes and returns a table holding them in declaration
// order. Paths must begin with "/" and must be unique; a duplicate path is
// rejected rather than shadowed.
func NewTable[V View](routes ...Route[V]) (*Table[V], error) {
	seen := make(map[string]int, len(routes))
	out := make([]Route[V], 0, len(routes))
	for i, r := range routes {
		if err := validatePath(r.Path); err != nil {
			return nil, &RouteError{Op: "new table", Path: r.Path, Err: err}
		}
		if first, ok := seen[r.Path]; ok {
			return nil, &RouteError{
				Op:   "new table",
				Path: r.Path,
				Err:  fmt.Errorf("%w: declared at index %d and %d", ErrDuplicateRoute, first, i),
			}
		}
		seen[r.Path] = i
		out = append(out, r)
	}
	return &Table[V]{routes: out}, nil
}

// Resolve returns the first route whose path equals path.
func (t *Table[V]) Resolve(path string) (Route[V], error) {
	for _, r := range t.routes {
		if r.Path == path {
			return r, nil
		}
	}
	return Route[V]{}, &RouteError{Op: "resolve", Path: path, Err: ErrRouteNotFound}
}

// Routes returns a copy of the routes in declaration order.
func (t *Table[V]) Routes() []Route[V] {
	out := make([]Route[V], len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table[V]) Len() int {
	return len(t.routes)
}

func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: must start with /", ErrInvalidPath)
	}
	return nil
}
