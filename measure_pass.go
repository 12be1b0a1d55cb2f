package wall

// Measure sizes the wall for the given constraints and reports the result to
// the host. The column width is derived from the available width; the height
// comes from a dry run of fill-down that stops once the shortest column
// passes the viewport. The dry run never changes the real columns and never
// advances the visited index.
func (w *Wall) Measure(width, height MeasureSpec) (int, int) {
	usableWidth := max(width.Size-w.padding.Horizontal(), 0)
	w.viewportHeight = max(height.Size-w.padding.Vertical(), 0)
	w.measuredWidth = width.Size

	if w.source == nil {
		mw, mh := ResolveSize(0, width), ResolveSize(0, height)
		if w.host != nil {
			w.host.SetMeasuredSize(mw, mh)
		}
		return mw, mh
	}

	n := w.columnCount
	columnWidth := float64(usableWidth-w.horizontalSpacing*(n-1)) / float64(n)
	if columnWidth < 0 {
		columnWidth = 0
	}

	w.ensureColumns()
	if columnWidth != w.columnWidth {
		if w.hasHistory() {
			w.Rescale(columnWidth)
		} else {
			w.columnWidth = columnWidth
		}
	}

	w.contentHeight = w.simulateFill()
	mh := ResolveSize(w.contentHeight, height)
	w.logger.Debug("measure",
		"width", width, "height", height,
		"columnWidth", w.columnWidth, "content", w.contentHeight)

	if w.host != nil {
		w.host.SetMeasuredSize(width.Size, mh)
	}
	return width.Size, mh
}

// simulateFill replays fill-down on a copy of the column bottoms and returns
// the resulting content height including vertical padding. Known items
// hidden below a column are replayed from their descriptors; new items are
// requested from the data source, measured and put straight back into the
// surface cache.
func (w *Wall) simulateFill() int {
	n := len(w.columns)
	bottoms := w.bottoms()
	below := make([][]ItemDescriptor, n)
	cursor := make([]int, n)
	done := make([]bool, n)
	for i, col := range w.columns {
		below[i] = col.HiddenBelow()
	}

	last := w.lastVisited
	count := w.source.Count()
	for {
		ci := lowestColumn(bottoms, done)
		if ci < 0 || bottoms[ci] > w.viewportHeight {
			break
		}

		var h int
		switch {
		case cursor[ci] < len(below[ci]):
			h = below[ci][cursor[ci]].HeightAt(w.columnWidth)
			cursor[ci]++
		case last < count-1:
			last++
			s := w.source.ItemView(last, w.cache.Get(), w.host)
			d := w.describe(last, s)
			h = d.HeightAt(w.columnWidth)
			w.cache.Put(s)
		default:
			done[ci] = true
			continue
		}
		bottoms[ci] += h + w.verticalSpacing
	}

	return bottoms[highestColumn(bottoms)] + w.padding.Vertical()
}

// describe builds the descriptor for a surface freshly returned by the data
// source and measures the surface at the column width. Items without a
// usable natural size are measured with an unspecified height and keep the
// height they choose.
func (w *Wall) describe(index int, s Surface) ItemDescriptor {
	nw, nh := s.MeasuredSize()
	d := ItemDescriptor{NaturalWidth: nw, NaturalHeight: nh, Index: index}
	widthSpec := Exact(int(w.columnWidth))
	if d.Intrinsic() {
		s.Measure(widthSpec, UnspecifiedSize())
		_, d.IntrinsicHeight = s.MeasuredSize()
		d.IntrinsicHeight = max(d.IntrinsicHeight, 0)
		return d
	}
	s.Measure(widthSpec, Exact(d.HeightAt(w.columnWidth)))
	return d
}

// hasHistory reports whether any column holds shown or hidden items.
func (w *Wall) hasHistory() bool {
	for _, col := range w.columns {
		if col.Len() > 0 || col.HasHiddenAbove() || col.HasHiddenBelow() {
			return true
		}
	}
	return false
}
