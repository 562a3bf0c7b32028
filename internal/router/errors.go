package router

import (
	"errors"
	"fmt"
)

var (
	// ErrRouteNotFound is returned when no route matches a path.
	ErrRouteNotFound = errors.New("route not found")
	// ErrDuplicateRoute is returned when two routes declare the same path.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrInvalidPath is returned for empty or relative paths.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNoHistory is returned by Back/Forward at either end of the stack.
	ErrNoHistory = errors.New("no history entry")
	// ErrClosed is returned by navigation calls after Close.
	ErrClosed = errors.New("router closed")
)

// RouteError describes a failed table or router operation on a path.
type RouteError struct {
	Op   string // "resolve", "navigate", "new", ...
	Path string
	Err  error
}

func (e *RouteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) ErrRouteNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}
