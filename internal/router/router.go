package router

import (
	"context"
	"fmt"
	"sync"
)

// Active is a snapshot of the route currently displayed.
type Active[V View] struct {
	Path     string
	Location string
	View     V
	Matched  bool
}

// Option configures a Router.
type Option func(*options)

type options struct {
	history  *History
	notFound View
	observer Observers
}

// WithHistory sets the history the router drives. The default is an empty
// web-mode history rooted at "/".
func WithHistory(h *History) Option {
	return func(o *options) { o.history = h }
}

// WithNotFound sets the view activated for paths no route matches. Its
// dynamic type must be the router's view type.
func WithNotFound(v View) Option {
	return func(o *options) { o.notFound = v }
}

// WithObserver adds an observer. May be given more than once.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = append(o.observer, obs)
		}
	}
}

// Router is the process-wide navigation context: it owns the table, the
// history and the active route.
type Router[V View] struct {
	table    *Table[V]
	observer Observers

	mu          sync.RWMutex
	history     *History
	notFound    V
	hasNotFound bool
	active      Active[V]
	started     bool
	closed      bool

	// Observer events waiting for delivery, in the order they were applied.
	pending    []event
	delivering bool
}

type event struct {
	ctx   context.Context
	t     Transition
	close bool
}

// New creates a router over table. Nothing is active until Start.
func New[V View](table *Table[V], opts ...Option) (*Router[V], error) {
	if table == nil {
		return nil, fmt.Errorf("new router: nil table")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.history == nil {
		o.history = NewHistory(HistoryModeWeb, "/")
	}
	r := &Router[V]{
		table:    table,
		history:  o.history,
		observer: o.observer,
	}
	if o.notFound != nil {
		v, ok := o.notFound.(V)
		if !ok {
			return nil, fmt.Errorf("new router: not-found view has type %T", o.notFound)
		}
		r.notFound = v
		r.hasNotFound = true
	}
	return r, nil
}

// Table returns the router's navigation table.
func (r *Router[V]) Table() *Table[V] {
	return r.table
}

// Start performs the initial navigation. An empty path re-activates the
// current history entry (a restored session) or "/" on an empty history.
// A path different from the current entry is pushed, as if typed into the
// address bar.
func (r *Router[V]) Start(ctx context.Context, path string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	cur := r.history.Current()
	if path == "" {
		path = cur
	}
	if path == "" {
		path = "/"
	}
	view, matched, err := r.lookup("start", path)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if cur != path {
		r.history.Push(path)
	}
	t := r.activate(NavStart, path, view, matched)
	r.started = true
	r.notify(event{ctx: ctx, t: t})
	return nil
}

// Navigate resolves path, pushes a history entry and activates its view.
// Navigating to the active path leaves the history unchanged.
func (r *Router[V]) Navigate(ctx context.Context, path string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.started && path == r.active.Path {
		r.mu.Unlock()
		return nil
	}
	view, matched, err := r.lookup("navigate", path)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.history.Push(path)
	t := r.activate(NavPush, path, view, matched)
	r.started = true
	r.notify(event{ctx: ctx, t: t})
	return nil
}

// Replace resolves path and overwrites the current history entry, for
// programmatic redirects.
func (r *Router[V]) Replace(ctx context.Context, path string) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	view, matched, err := r.lookup("replace", path)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.history.Replace(path)
	t := r.activate(NavReplace, path, view, matched)
	r.started = true
	r.notify(event{ctx: ctx, t: t})
	return nil
}

// Back activates the previous history entry.
func (r *Router[V]) Back(ctx context.Context) error {
	return r.traverse(ctx, NavBack)
}

// Forward activates the next history entry.
func (r *Router[V]) Forward(ctx context.Context) error {
	return r.traverse(ctx, NavForward)
}

func (r *Router[V]) traverse(ctx context.Context, kind NavKind) error {
	op := kind.String()
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	step, undo := r.history.Back, r.history.Forward
	if kind == NavForward {
		step, undo = r.history.Forward, r.history.Back
	}
	path, ok := step()
	if !ok {
		r.mu.Unlock()
		return &RouteError{Op: op, Err: ErrNoHistory}
	}
	view, matched, err := r.lookup(op, path)
	if err != nil {
		// Entry no longer resolves (stale session); stay where we were.
		undo()
		r.mu.Unlock()
		return err
	}
	t := r.activate(kind, path, view, matched)
	r.notify(event{ctx: ctx, t: t})
	return nil
}

// notify queues ev and releases r.mu. Whichever caller finds no delivery in
// progress delivers the queue in order, outside the lock, so observers may
// call back into the router.
func (r *Router[V]) notify(ev event) {
	r.pending = append(r.pending, ev)
	if r.delivering {
		r.mu.Unlock()
		return
	}
	r.delivering = true
	for len(r.pending) > 0 {
		batch := r.pending
		r.pending = nil
		r.mu.Unlock()
		for _, ev := range batch {
			if ev.close {
				r.observer.OnClose()
				continue
			}
			r.observer.OnNavigate(ev.ctx, ev.t)
		}
		r.mu.Lock()
	}
	r.delivering = false
	r.mu.Unlock()
}

// lookup resolves path, falling back to the not-found view when configured.
// Caller holds r.mu.
func (r *Router[V]) lookup(op, path string) (V, bool, error) {
	route, err := r.table.Resolve(path)
	if err == nil {
		return route.View, true, nil
	}
	if r.hasNotFound && IsNotFound(err) {
		return r.notFound, false, nil
	}
	var zero V
	return zero, false, &RouteError{Op: op, Path: path, Err: ErrRouteNotFound}
}

// activate swaps the active route. Caller holds r.mu.
func (r *Router[V]) activate(kind NavKind, path string, view V, matched bool) Transition {
	from := r.active.Path
	r.active = Active[V]{
		Path:     path,
		Location: r.history.Format(path),
		View:     view,
		Matched:  matched,
	}
	return Transition{
		From:     from,
		To:       path,
		Location: r.active.Location,
		Kind:     kind,
		Matched:  matched,
	}
}

// Current returns the active route. The zero Active is returned before Start.
func (r *Router[V]) Current() Active[V] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Location returns the address-bar text.
func (r *Router[V]) Location() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.Location()
}

// CanBack reports whether Back would move.
func (r *Router[V]) CanBack() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.CanBack()
}

// CanForward reports whether Forward would move.
func (r *Router[V]) CanForward() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.CanForward()
}

// Snapshot returns a copy of the history entries and the current index.
func (r *Router[V]) Snapshot() ([]string, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.Entries(), r.history.Index()
}

// Restore re-seeds the history from a saved session. It is only allowed
// before Start; the restored current entry is activated by Start(ctx, "").
func (r *Router[V]) Restore(entries []string, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if r.started {
		return fmt.Errorf("restore history: router already started")
	}
	return r.history.Restore(entries, index)
}

// HistoryMode returns the address-bar strategy in use.
func (r *Router[V]) HistoryMode() HistoryMode {
	return r.history.Mode()
}

// Close ends the router's lifetime. Later navigation returns ErrClosed.
// Close is idempotent.
func (r *Router[V]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.notify(event{close: true})
}
