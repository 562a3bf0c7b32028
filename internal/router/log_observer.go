package router

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogObserver logs transitions: debug for matched routes, warn when the
// not-found view is shown.
type LogObserver struct {
	Log *logrus.Entry
}

// NewLogObserver returns an observer writing to log.
func NewLogObserver(log *logrus.Entry) *LogObserver {
	return &LogObserver{Log: log}
}

func (o *LogObserver) OnNavigate(_ context.Context, t Transition) {
	entry := o.Log.WithFields(logrus.Fields{
		"from":     t.From,
		"to":       t.To,
		"kind":     t.Kind.String(),
		"location": t.Location,
	})
	if !t.Matched {
		entry.Warn("no route matched, showing not-found view")
		return
	}
	entry.Debug("navigated")
}

func (o *LogObserver) OnClose() {
	o.Log.Debug("router closed")
}
