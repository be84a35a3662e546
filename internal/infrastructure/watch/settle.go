// Package watch turns raw filesystem events on the intake directory into
// one notification per settled document.
package watch

import (
	"sync"
	"time"
)

// SettleTimer holds back the notification for one intake file until no new
// write has arrived for a quiet period. Documents copied into the intake
// directory in chunks fire many Create and Write events; only the last one
// matters, because the file is complete when the writes stop.
type SettleTimer struct {
	quiet  time.Duration
	notify func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewSettleTimer creates a timer that calls notify once the file has been
// quiet for the given duration.
func NewSettleTimer(quiet time.Duration, notify func()) *SettleTimer {
	return &SettleTimer{
		quiet:  quiet,
		notify: notify,
	}
}

// Touch restarts the quiet period. Call it on every write event for the
// file; notify fires only after the last one.
func (t *SettleTimer) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.quiet, t.notify)
}

// Cancel drops the pending notification, if any.
func (t *SettleTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
}
