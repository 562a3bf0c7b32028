// Package router implements the navigation table: an ordered, immutable set of
// path-to-view bindings plus the history stack and address bar that track the
// active path.
//
// Core pieces:
//   - Table: exact-match lookup over routes declared once at startup
//   - History: entry stack and address-bar rendering (web or hash mode)
//   - Router: the process-wide navigation context tying both together
//   - Observer: hooks notified after every transition
//
// A Router is safe for concurrent use; resolution, history update and
// activation happen as one step under its lock. Observers are called outside
// that lock, one at a time, in the order transitions were applied; with
// concurrent writers a transition may be delivered by another writer's call.
package router
