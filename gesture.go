package wall

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	// DefaultScrollThreshold is how far a pointer may move on either axis
	// before a press becomes a scroll.
	DefaultScrollThreshold = 10

	// DefaultLongPressTimeout is how long a press must rest before it is
	// reported as a long click.
	DefaultLongPressTimeout = 500 * time.Millisecond
)

// TouchState is the state of the gesture controller.
type TouchState uint8

const (
	TouchResting TouchState = iota
	TouchClick
	TouchScroll
)

func (s TouchState) String() string {
	switch s {
	case TouchResting:
		return "resting"
	case TouchClick:
		return "click"
	case TouchScroll:
		return "scroll"
	}
	return fmt.Sprintf("TouchState(%d)", uint8(s))
}

// GestureTarget is what the gesture controller drives. *Wall implements it.
type GestureTarget interface {
	HasItems() bool
	Scroll(delta int) int
	PerformItemClick(x, y int) bool
	PerformItemLongClick(x, y int) bool
}

// Gesture turns raw pointer events into scrolling, clicks and long clicks.
// Only one pointer is tracked at a time.
type Gesture struct {
	target    GestureTarget
	scheduler Scheduler
	logger    *slog.Logger

	threshold int
	longPress time.Duration

	state          TouchState
	startX, startY int
	lastY          int

	timer Timer
	// generation invalidates timers that fire after they were cancelled.
	generation uint64
}

// GestureOption configures a Gesture.
type GestureOption func(*Gesture)

// WithScrollThreshold sets the movement needed to start scrolling.
func WithScrollThreshold(px int) GestureOption {
	return func(g *Gesture) { g.threshold = max(px, 0) }
}

// WithLongPressTimeout sets the long-press delay. Zero or less disables long
// clicks.
func WithLongPressTimeout(d time.Duration) GestureOption {
	return func(g *Gesture) { g.longPress = d }
}

// WithScheduler sets where the long-press callback runs.
func WithScheduler(s Scheduler) GestureOption {
	return func(g *Gesture) {
		if s != nil {
			g.scheduler = s
		}
	}
}

// WithGestureLogger sets the logger.
func WithGestureLogger(l *slog.Logger) GestureOption {
	return func(g *Gesture) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGesture creates a controller for target.
func NewGesture(target GestureTarget, opts ...GestureOption) *Gesture {
	g := &Gesture{
		target:    target,
		scheduler: TimeScheduler{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		threshold: DefaultScrollThreshold,
		longPress: DefaultLongPressTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the current touch state.
func (g *Gesture) State() TouchState { return g.state }

// HandlePointer processes one pointer event. It reports whether the event was
// consumed; nothing is consumed while the target shows no items.
func (g *Gesture) HandlePointer(ev PointerEvent) bool {
	if !g.target.HasItems() {
		return false
	}

	switch ev.Action {
	case PointerDown:
		g.cancelLongPress()
		g.startX, g.startY = ev.X, ev.Y
		g.lastY = ev.Y
		g.setState(TouchClick)
		g.armLongPress()

	case PointerMove:
		switch g.state {
		case TouchClick:
			if abs(ev.X-g.startX) <= g.threshold && abs(ev.Y-g.startY) <= g.threshold {
				return true
			}
			g.cancelLongPress()
			g.setState(TouchScroll)
			g.scrollTo(ev.Y)
		case TouchScroll:
			g.scrollTo(ev.Y)
		}

	case PointerUp:
		if g.state == TouchClick {
			g.target.PerformItemClick(ev.X, ev.Y)
		}
		g.cancelLongPress()
		g.setState(TouchResting)

	case PointerCancel:
		g.cancelLongPress()
		g.setState(TouchResting)
	}
	return true
}

func (g *Gesture) scrollTo(y int) {
	delta := y - g.lastY
	g.lastY = y
	if delta != 0 {
		g.target.Scroll(-delta)
	}
}

func (g *Gesture) setState(s TouchState) {
	if g.state != s {
		g.logger.Debug("touch state", "from", g.state, "to", s)
	}
	g.state = s
}

func (g *Gesture) armLongPress() {
	if g.longPress <= 0 {
		return
	}
	gen := g.generation
	x, y := g.startX, g.startY
	g.timer = g.scheduler.AfterFunc(g.longPress, func() {
		if gen != g.generation || g.state != TouchClick {
			return
		}
		g.logger.Debug("long press", "x", x, "y", y)
		g.timer = nil
		if g.target.PerformItemLongClick(x, y) {
			// A handled long click swallows the release.
			g.setState(TouchResting)
		}
	})
}

func (g *Gesture) cancelLongPress() {
	g.generation++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
