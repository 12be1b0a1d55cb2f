package wall

import (
	"time"
)

type fakeSurface struct {
	index           int
	naturalW        int
	naturalH        int
	intrinsicHeight int

	measuredW, measuredH int
	bounds               Rect
	measures             int
}

func (s *fakeSurface) Measure(width, height MeasureSpec) {
	s.measures++
	s.measuredW = ResolveSize(s.naturalW, width)
	switch height.Mode {
	case Unspecified:
		s.measuredH = s.intrinsicHeight
	default:
		s.measuredH = ResolveSize(s.naturalH, height)
	}
}

func (s *fakeSurface) MeasuredSize() (int, int) { return s.measuredW, s.measuredH }

func (s *fakeSurface) Layout(bounds Rect) { s.bounds = bounds }

type size struct{ w, h int }

type fakeSource struct {
	sizes []size

	// intrinsic heights for items with a zero natural size
	intrinsic map[int]int

	views  map[int]int
	reused int
}

func newFakeSource(sizes ...size) *fakeSource {
	return &fakeSource{sizes: sizes, intrinsic: map[int]int{}, views: map[int]int{}}
}

// uniformSource returns n items of the same natural size.
func uniformSource(n, w, h int) *fakeSource {
	sizes := make([]size, n)
	for i := range sizes {
		sizes[i] = size{w, h}
	}
	return newFakeSource(sizes...)
}

// variedSource returns n items with a repeating mix of aspect ratios.
func variedSource(n int) *fakeSource {
	pattern := []size{{100, 100}, {100, 50}, {100, 200}, {100, 75}, {40, 90}, {120, 60}, {100, 130}}
	sizes := make([]size, n)
	for i := range sizes {
		sizes[i] = pattern[i%len(pattern)]
	}
	return newFakeSource(sizes...)
}

func (f *fakeSource) Count() int { return len(f.sizes) }

func (f *fakeSource) ItemView(index int, reuse Surface, _ Host) Surface {
	f.views[index]++
	s, ok := reuse.(*fakeSurface)
	if ok {
		f.reused++
	} else {
		s = &fakeSurface{}
	}
	sz := f.sizes[index]
	*s = fakeSurface{
		index:           index,
		naturalW:        sz.w,
		naturalH:        sz.h,
		intrinsicHeight: f.intrinsic[index],
		measuredW:       sz.w,
		measuredH:       sz.h,
	}
	return s
}

func (f *fakeSource) ItemID(index int) int64 { return int64(index) + 1000 }

type fakeHost struct {
	children  map[Surface]bool
	scrolled  int
	relayouts int
	width     int
	height    int
}

func newFakeHost() *fakeHost {
	return &fakeHost{children: map[Surface]bool{}}
}

func (h *fakeHost) SetMeasuredSize(width, height int) { h.width, h.height = width, height }
func (h *fakeHost) PlaceChild(s Surface, _ bool) { h.children[s] = true }
func (h *fakeHost) RemoveChild(s Surface) { delete(h.children, s) }
func (h *fakeHost) RequestRelayout() { h.relayouts++ }
func (h *fakeHost) ScrollBy(dy int) { h.scrolled += dy }

// fakeScheduler holds timers until the test fires them.
type fakeScheduler struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// fireAll runs every pending timer, including stopped ones, the way a timer
// that lost the race with Stop would.
func (s *fakeScheduler) fireAll() {
	for _, t := range s.timers {
		if !t.fired {
			t.fired = true
			t.f()
		}
	}
}

// layoutOf captures shown indices and content rectangles per column.
type placed struct {
	Index  int
	Bounds Rect
}

func layoutOf(w *Wall) [][]placed {
	out := make([][]placed, w.ColumnCount())
	for _, it := range w.Items() {
		out[it.Column] = append(out[it.Column], placed{Index: it.Item.Index(), Bounds: it.Bounds})
	}
	return out
}

// historyOf returns every index a column has ever held, top to bottom.
func historyOf(c *Column) []int {
	var out []int
	for _, d := range c.HiddenAbove() {
		out = append(out, d.Index)
	}
	for _, d := range c.ShownDescriptors() {
		out = append(out, d.Index)
	}
	for _, d := range c.HiddenBelow() {
		out = append(out, d.Index)
	}
	return out
}
