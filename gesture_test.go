package wall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y int }

type fakeTarget struct {
	items      bool
	handleLong bool
	scrolls    []int
	clicks     []point
	longClicks []point
}

func (f *fakeTarget) HasItems() bool { return f.items }

func (f *fakeTarget) Scroll(delta int) int {
	f.scrolls = append(f.scrolls, delta)
	return delta
}

func (f *fakeTarget) PerformItemClick(x, y int) bool {
	f.clicks = append(f.clicks, point{x, y})
	return true
}

func (f *fakeTarget) PerformItemLongClick(x, y int) bool {
	f.longClicks = append(f.longClicks, point{x, y})
	return f.handleLong
}

func newTestGesture(target *fakeTarget, opts ...GestureOption) (*Gesture, *fakeScheduler) {
	sched := &fakeScheduler{}
	g := NewGesture(target, append([]GestureOption{WithScheduler(sched)}, opts...)...)
	return g, sched
}

func down(x, y int) PointerEvent { return PointerEvent{Action: PointerDown, X: x, Y: y} }
func move(x, y int) PointerEvent { return PointerEvent{Action: PointerMove, X: x, Y: y} }
func up(x, y int) PointerEvent { return PointerEvent{Action: PointerUp, X: x, Y: y} }

func TestGestureDragScrolls(t *testing.T) {
	target := &fakeTarget{items: true}
	g, sched := newTestGesture(target)

	require.True(t, g.HandlePointer(down(10, 10)))
	assert.Equal(t, TouchClick, g.State())
	require.Len(t, sched.timers, 1)
	assert.Equal(t, DefaultLongPressTimeout, sched.timers[0].d)

	g.HandlePointer(move(10, 25))
	assert.Equal(t, TouchScroll, g.State())
	assert.Equal(t, []int{-15}, target.scrolls)
	assert.True(t, sched.timers[0].stopped)

	g.HandlePointer(move(10, 5))
	assert.Equal(t, []int{-15, 20}, target.scrolls)

	g.HandlePointer(up(10, 5))
	assert.Equal(t, TouchResting, g.State())
	assert.Empty(t, target.clicks, "a drag is not a click")
}

func TestGestureThresholdPerAxis(t *testing.T) {
	tests := []struct {
		name   string
		to     point
		scroll bool
	}{
		{"inside", point{18, 18}, false},
		{"on the threshold", point{20, 0}, false},
		{"horizontal", point{21, 10}, true},
		{"vertical up", point{10, -1}, true},
		{"diagonal inside", point{19, 19}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{items: true}
			g, _ := newTestGesture(target)
			g.HandlePointer(down(10, 10))
			g.HandlePointer(move(tt.to.x, tt.to.y))
			if tt.scroll {
				assert.Equal(t, TouchScroll, g.State())
			} else {
				assert.Equal(t, TouchClick, g.State())
				assert.Empty(t, target.scrolls)
			}
		})
	}
}

func TestGestureClick(t *testing.T) {
	target := &fakeTarget{items: true}
	g, sched := newTestGesture(target, WithScrollThreshold(4))

	g.HandlePointer(down(30, 40))
	g.HandlePointer(move(32, 43))
	g.HandlePointer(up(33, 44))
	assert.Equal(t, []point{{33, 44}}, target.clicks)
	assert.Equal(t, TouchResting, g.State())

	// the cancelled long press must not fire
	sched.fireAll()
	assert.Empty(t, target.longClicks)
}

func TestGestureLongPress(t *testing.T) {
	target := &fakeTarget{items: true, handleLong: true}
	g, sched := newTestGesture(target, WithLongPressTimeout(300*time.Millisecond))

	g.HandlePointer(down(12, 14))
	g.HandlePointer(move(15, 16))
	require.Len(t, sched.timers, 1)
	assert.Equal(t, 300*time.Millisecond, sched.timers[0].d)

	sched.fireAll()
	assert.Equal(t, []point{{12, 14}}, target.longClicks)
	assert.Equal(t, TouchResting, g.State())

	g.HandlePointer(up(15, 16))
	assert.Empty(t, target.clicks, "handled long press swallows the release")
}

func TestGestureUnhandledLongPressStillClicks(t *testing.T) {
	target := &fakeTarget{items: true}
	g, sched := newTestGesture(target)

	g.HandlePointer(down(1, 1))
	sched.fireAll()
	assert.Len(t, target.longClicks, 1)
	g.HandlePointer(up(1, 1))
	assert.Len(t, target.clicks, 1)
}

func TestGestureLongPressAfterCancel(t *testing.T) {
	tests := []struct {
		name   string
		events []PointerEvent
	}{
		{"scrolled", []PointerEvent{down(0, 0), move(0, 50)}},
		{"released", []PointerEvent{down(0, 0), up(0, 0)}},
		{"cancelled", []PointerEvent{down(0, 0), {Action: PointerCancel}}},
		{"pressed again", []PointerEvent{down(0, 0), up(0, 0), down(5, 5), move(5, 80)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &fakeTarget{items: true}
			g, sched := newTestGesture(target)
			for _, ev := range tt.events {
				g.HandlePointer(ev)
			}
			sched.fireAll()
			assert.Empty(t, target.longClicks)
		})
	}
}

func TestGestureIgnoredWithoutItems(t *testing.T) {
	target := &fakeTarget{}
	g, sched := newTestGesture(target)
	assert.False(t, g.HandlePointer(down(1, 1)))
	assert.Equal(t, TouchResting, g.State())
	assert.Empty(t, sched.timers)
}

func TestGestureLongPressDisabled(t *testing.T) {
	target := &fakeTarget{items: true}
	g, sched := newTestGesture(target, WithLongPressTimeout(0))
	g.HandlePointer(down(1, 1))
	assert.Empty(t, sched.timers)
}

func TestGestureDrivesWall(t *testing.T) {
	w, _ := newTestWall(t, uniformSource(20, 100, 100))
	w.Measure(Exact(100), Exact(250))
	w.Layout()

	var clicked []int
	w.SetOnItemClick(func(_ Surface, index int, _ int64) { clicked = append(clicked, index) })

	g, _ := newTestGesture(&fakeTarget{})
	g.target = w
	g.HandlePointer(down(50, 200))
	g.HandlePointer(move(50, 80))
	assert.Equal(t, 120, w.ScrollOffset())
	g.HandlePointer(up(50, 80))

	g.HandlePointer(down(50, 10))
	g.HandlePointer(up(50, 10))
	assert.Equal(t, []int{1}, clicked)
}

func TestPostScheduler(t *testing.T) {
	posted := make(chan func(), 1)
	s := PostScheduler{Post: func(f func()) { posted <- f }}

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })
	select {
	case f := <-posted:
		assert.False(t, ran, "callback runs only when the UI thread takes it")
		f()
	case <-time.After(5 * time.Second):
		t.Fatal("timer never posted")
	}
	assert.True(t, ran)

	timer := s.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
