package wall

// Surface is the renderable handle for one item. The host platform provides
// the implementation; the wall only measures and positions it.
type Surface interface {
	// Measure asks the surface to size itself under the given constraints.
	Measure(width, height MeasureSpec)

	// MeasuredSize returns the size chosen by the last Measure call. When a
	// surface is handed back by DataSource.ItemView this is its natural size.
	MeasuredSize() (width, height int)

	// Layout positions the surface in content coordinates.
	Layout(bounds Rect)
}

// DataSource supplies the items shown by the wall.
type DataSource interface {
	// Count returns the number of items.
	Count() int

	// ItemView returns a surface filled with the content for index. reuse is
	// a detached surface that may be recycled, or nil.
	ItemView(index int, reuse Surface, container Host) Surface

	// ItemID returns the stable identifier reported to click listeners.
	ItemID(index int) int64
}

// Host is the container the wall lives in. It owns the visual tree; the wall
// tells it which surfaces are attached and where the content is scrolled.
type Host interface {
	// SetMeasuredSize records the size the wall chose in Measure.
	SetMeasuredSize(width, height int)

	// PlaceChild attaches a laid out surface. front is true when the surface
	// was added above the first shown item of its column.
	PlaceChild(s Surface, front bool)

	// RemoveChild detaches a surface.
	RemoveChild(s Surface)

	// RequestRelayout schedules a new measure and layout pass.
	RequestRelayout()

	// ScrollBy shifts the attached surfaces vertically by dy.
	ScrollBy(dy int)
}

// ItemClickFunc is called when an item is tapped.
type ItemClickFunc func(s Surface, index int, id int64)

// ItemLongClickFunc is called when an item is long pressed. It reports
// whether the long press was handled.
type ItemLongClickFunc func(s Surface, index int, id int64) bool
