package wall

// Layout places surfaces for the current scroll offset. The first pass
// starts from the first item; later passes evict what left the viewport and
// fill both ends.
func (w *Wall) Layout() {
	if w.source == nil || len(w.columns) == 0 {
		return
	}
	if w.restored {
		w.materialize()
	}

	if !w.HasItems() {
		for _, col := range w.columns {
			col.reset()
		}
		if w.scrollOffset != 0 && w.host != nil {
			w.host.ScrollBy(-w.scrollOffset)
		}
		w.scrollOffset = 0
		w.lastVisited = -1
		w.fillDown(0)
		return
	}

	w.evict(w.scrollOffset)
	w.fillUp(w.scrollOffset)
	w.fillDown(w.scrollOffset)
}

// Scroll moves the content by delta (positive scrolls towards later items)
// and returns the distance actually applied. Scrolling stops at the top, and
// at the bottom once the data source is exhausted and no column has items
// hidden below.
func (w *Wall) Scroll(delta int) int {
	if w.source == nil || len(w.columns) == 0 || delta == 0 {
		return 0
	}
	start := w.scrollOffset
	if start+delta < 0 {
		delta = -start
	}
	if delta > 0 && w.atEnd() {
		delta = min(delta, max(w.bottomLimit()-start, 0))
	}
	if delta == 0 {
		return 0
	}

	w.scrollOffset += delta
	w.evict(w.scrollOffset)
	if delta > 0 {
		w.fillDown(w.scrollOffset)
		// The fill may have reached the last item during this jump.
		if w.atEnd() && w.scrollOffset > w.bottomLimit() {
			w.scrollOffset = max(w.bottomLimit(), start)
			w.fillUp(w.scrollOffset)
		}
	} else {
		w.fillUp(w.scrollOffset)
	}
	// A long jump can fill through items that are already out of view again.
	w.evict(w.scrollOffset)

	applied := w.scrollOffset - start
	if applied != 0 && w.host != nil {
		w.host.ScrollBy(applied)
	}
	return applied
}

// bottomLimit is the largest offset that still shows the end of the tallest
// column.
func (w *Wall) bottomLimit() int {
	return max(w.columns[highestColumn(w.bottoms())].Bottom()-w.viewportHeight, 0)
}

// Rescale rebuilds the geometry of every column for a new column width and
// moves the live surfaces to their new bounds. The data source is not
// consulted.
func (w *Wall) Rescale(columnWidth float64) {
	w.logger.Debug("rescale", "from", w.columnWidth, "to", columnWidth)
	w.columnWidth = columnWidth
	for ci, col := range w.columns {
		col.Rescale(columnWidth)
		for _, p := range col.Shown() {
			if p.Surface != nil {
				p.Surface.Layout(w.itemBounds(ci, p))
			}
		}
	}
}

// evict detaches items that lie completely outside the viewport. A column
// always keeps at least one shown item so it never loses its position.
func (w *Wall) evict(offset int) {
	for ci, col := range w.columns {
		for col.Len() > 1 {
			p := col.PeekTop()
			// Complement of the fillUp condition: the slot (height plus
			// spacing) must end below the viewport top to stay.
			if p.Bottom()+w.verticalSpacing-offset > 0 {
				break
			}
			w.logger.Debug("evict top", "column", ci, "index", p.Index())
			col.PopTop()
			w.release(p)
		}
		for col.Len() > 1 {
			p := col.PeekBottom()
			if p.Top-offset <= w.viewportHeight {
				break
			}
			w.logger.Debug("evict bottom", "column", ci, "index", p.Index())
			col.PopBottom()
			w.release(p)
		}
	}
}

// fillDown appends items to the shortest column until every column reaches
// past the bottom of the viewport or runs out of items. Items hidden below a
// column come back first; only then is the next unvisited index requested.
func (w *Wall) fillDown(offset int) {
	count := w.source.Count()
	done := make([]bool, len(w.columns))
	for {
		ci := w.lowestLiveColumn(done)
		if ci < 0 {
			return
		}
		col := w.columns[ci]
		if col.Bottom()-offset > w.viewportHeight {
			return
		}

		var p *PlacedItem
		if d, ok := col.TakeBelow(); ok {
			p = w.obtain(d)
		} else if w.lastVisited < count-1 {
			w.lastVisited++
			p = w.obtainNew(w.lastVisited)
		} else {
			done[ci] = true
			continue
		}

		col.PushBottom(p)
		w.attach(ci, p, false)
		w.logger.Debug("fill down", "column", ci, "index", p.Index(), "bottom", col.Bottom())
	}
}

// fillUp restores items hidden above each column until the column top
// reaches the top of the viewport. Only previously visited items can appear
// above a column, so the data source is only asked for surfaces.
func (w *Wall) fillUp(offset int) {
	for ci, col := range w.columns {
		for col.Top()-offset > 0 {
			d, ok := col.TakeAbove()
			if !ok {
				break
			}
			p := w.obtain(d)
			col.PushTop(p)
			w.attach(ci, p, true)
			w.logger.Debug("fill up", "column", ci, "index", p.Index(), "top", col.Top())
		}
	}
}

// materialize requests surfaces for shown items restored from saved state.
func (w *Wall) materialize() {
	for ci, col := range w.columns {
		for _, p := range col.Shown() {
			if p.Surface != nil {
				continue
			}
			p.Surface = w.source.ItemView(p.Index(), w.cache.Get(), w.host)
			p.Surface.Measure(Exact(int(w.columnWidth)), Exact(p.Height))
			w.attach(ci, p, false)
		}
	}
	w.restored = false
}

// obtain builds a surface for a known descriptor.
func (w *Wall) obtain(d ItemDescriptor) *PlacedItem {
	h := d.HeightAt(w.columnWidth)
	s := w.source.ItemView(d.Index, w.cache.Get(), w.host)
	s.Measure(Exact(int(w.columnWidth)), Exact(h))
	return &PlacedItem{Descriptor: d, Surface: s, Height: h}
}

// obtainNew builds a surface and a descriptor for an index seen for the
// first time.
func (w *Wall) obtainNew(index int) *PlacedItem {
	s := w.source.ItemView(index, w.cache.Get(), w.host)
	d := w.describe(index, s)
	return &PlacedItem{Descriptor: d, Surface: s, Height: d.HeightAt(w.columnWidth)}
}

// attach lays out p in column ci and hands it to the host.
func (w *Wall) attach(ci int, p *PlacedItem, front bool) {
	p.Surface.Layout(w.itemBounds(ci, p))
	if w.host != nil {
		w.host.PlaceChild(p.Surface, front)
	}
}

// release detaches the surface of an evicted item and caches it.
func (w *Wall) release(p *PlacedItem) {
	if p.Surface == nil {
		return
	}
	if w.host != nil {
		w.host.RemoveChild(p.Surface)
	}
	w.cache.Put(p.Surface)
	p.Surface = nil
}

// atEnd reports whether there is nothing left to reveal below the columns.
func (w *Wall) atEnd() bool {
	if w.lastVisited < w.source.Count()-1 {
		return false
	}
	for _, col := range w.columns {
		if col.HasHiddenBelow() {
			return false
		}
	}
	return true
}

func (w *Wall) lowestLiveColumn(done []bool) int {
	best := -1
	for i, col := range w.columns {
		if done[i] {
			continue
		}
		if best < 0 || col.Bottom() < w.columns[best].Bottom() {
			best = i
		}
	}
	return best
}
