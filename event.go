package wall

import (
	"fmt"
	"time"
)

// ============================================================================
// Pointer Events
// ============================================================================

// PointerAction identifies the kind of pointer event.
type PointerAction uint8

const (
	PointerDown PointerAction = iota + 1
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return fmt.Sprintf("PointerAction(%d)", uint8(a))
}

// PointerEvent is a single touch or mouse sample in viewport coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   int
}

// ============================================================================
// Timers
// ============================================================================
//
// The long-press timer is the only deferred work in the wall. Hosts choose
// where its callback runs:
//   TimeScheduler{}                      // timer goroutine, caller serializes
//   PostScheduler{Post: p.Send-wrapper}  // posted back to the UI thread

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeScheduler runs callbacks on the runtime timer goroutine.
type TimeScheduler struct{}

func (TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// PostScheduler waits on a runtime timer and then hands the callback to
// Post, which must queue it onto the UI thread.
type PostScheduler struct {
	Post func(func())
}

func (s PostScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { s.Post(f) })
}
