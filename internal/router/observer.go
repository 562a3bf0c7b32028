package router

import "context"

// NavKind identifies what kind of navigation produced a transition.
type NavKind int

const (
	NavStart NavKind = iota
	NavPush
	NavReplace
	NavBack
	NavForward
)

func (k NavKind) String() string {
	switch k {
	case NavStart:
		return "start"
	case NavPush:
		return "push"
	case NavReplace:
		return "replace"
	case NavBack:
		return "back"
	case NavForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Transition describes a completed change of the active route.
type Transition struct {
	From     string // previous path; "" on the first navigation
	To       string
	Location string // address-bar text after the transition
	Kind     NavKind
	Matched  bool // false when the not-found view was activated
}

// Observer is notified after every transition. Calls happen outside the
// router's lock, so observers may read the router.
type Observer interface {
	OnNavigate(ctx context.Context, t Transition)
	OnClose()
}

// NoopObserver implements Observer with no-ops. Embed it to override a subset.
type NoopObserver struct{}

func (NoopObserver) OnNavigate(context.Context, Transition) {}
func (NoopObserver) OnClose()                               {}

// Observers fans out to each observer in order.
type Observers []Observer

func (obs Observers) OnNavigate(ctx context.Context, t Transition) {
	for _, o := range obs {
		o.OnNavigate(ctx, t)
	}
}

func (obs Observers) OnClose() {
	for _, o := range obs {
		o.OnClose()
	}
}
