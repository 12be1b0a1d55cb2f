// Package wall implements a virtualized multi-column ("masonry") layout.
//
// Items from a DataSource are placed into a fixed number of columns, always
// into the currently shortest column, and scaled to the column width while
// keeping their aspect ratio. Only the items that intersect the viewport are
// materialized as surfaces; items that scroll out of view are detached, their
// surfaces cached for reuse, and their descriptors kept in per-column history
// so scrolling back rebuilds exactly the same layout.
//
// All methods must be called from the single UI thread that also delivers
// host layout callbacks and pointer events.
package wall

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrSelectionUnsupported is returned by the selection methods. The wall has
// no notion of a selected item.
var ErrSelectionUnsupported = fmt.Errorf("wall: selection: %w", errors.ErrUnsupported)

// Wall is the layout engine. Create one with New.
type Wall struct {
	host   Host
	source DataSource
	cache  *SurfaceCache
	logger *slog.Logger

	columns     []*Column
	columnCount int
	columnWidth float64

	horizontalSpacing int
	verticalSpacing   int
	padding           Insets

	scrollOffset   int
	viewportHeight int
	measuredWidth  int
	contentHeight  int

	// lastVisited is the highest index ever requested from the data source
	// during fill-down. It never decreases except on SetDataSource.
	lastVisited int

	// restored is set when columns were rebuilt from saved state and shown
	// items still lack surfaces.
	restored bool

	onItemClick     ItemClickFunc
	onItemLongClick ItemLongClickFunc
}

// Option configures a Wall.
type Option func(*Wall)

// WithColumns sets the number of columns. Values below 1 are corrected to 1.
func WithColumns(n int) Option {
	return func(w *Wall) { w.columnCount = n }
}

// WithSpacing sets the horizontal gap between columns and the vertical gap
// between items.
func WithSpacing(horizontal, vertical int) Option {
	return func(w *Wall) {
		w.horizontalSpacing = max(horizontal, 0)
		w.verticalSpacing = max(vertical, 0)
	}
}

// WithPadding sets the padding around the columns.
func WithPadding(p Insets) Option {
	return func(w *Wall) { w.padding = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(w *Wall) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithCacheSize bounds the surface cache.
func WithCacheSize(n int) Option {
	return func(w *Wall) { w.cache = NewSurfaceCache(n) }
}

// WithItemClick sets the item click listener.
func WithItemClick(fn ItemClickFunc) Option {
	return func(w *Wall) { w.onItemClick = fn }
}

// WithItemLongClick sets the item long click listener.
func WithItemLongClick(fn ItemLongClickFunc) Option {
	return func(w *Wall) { w.onItemLongClick = fn }
}

// New creates a wall attached to host.
func New(host Host, opts ...Option) *Wall {
	w := &Wall{
		host:        host,
		cache:       NewSurfaceCache(DefaultCacheSize),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		columnCount: 1,
		lastVisited: -1,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.columnCount < 1 {
		w.logger.Warn("column count corrected", "configured", w.columnCount, "using", 1)
		w.columnCount = 1
	}
	if w.padding.Left < 0 || w.padding.Top < 0 || w.padding.Right < 0 || w.padding.Bottom < 0 {
		w.padding = Insets{
			Left:   max(w.padding.Left, 0),
			Top:    max(w.padding.Top, 0),
			Right:  max(w.padding.Right, 0),
			Bottom: max(w.padding.Bottom, 0),
		}
	}
	return w
}

// SetDataSource binds a new data source. Every attached surface is removed,
// history is dropped and the wall starts over from the first item.
func (w *Wall) SetDataSource(ds DataSource) {
	w.detachAll()
	w.source = ds
	w.columns = nil
	w.cache.Clear()
	if w.scrollOffset != 0 && w.host != nil {
		w.host.ScrollBy(-w.scrollOffset)
	}
	w.scrollOffset = 0
	w.lastVisited = -1
	w.contentHeight = 0
	w.restored = false
	if w.host != nil {
		w.host.RequestRelayout()
	}
}

// DataSource returns the bound data source.
func (w *Wall) DataSource() DataSource { return w.source }

// SetOnItemClick replaces the item click listener.
func (w *Wall) SetOnItemClick(fn ItemClickFunc) { w.onItemClick = fn }

// SetOnItemLongClick replaces the item long click listener.
func (w *Wall) SetOnItemLongClick(fn ItemLongClickFunc) { w.onItemLongClick = fn }

// SetSelection is not supported and always returns ErrSelectionUnsupported.
func (w *Wall) SetSelection(position int) error {
	return ErrSelectionUnsupported
}

// SelectedSurface is not supported and always returns ErrSelectionUnsupported.
func (w *Wall) SelectedSurface() (Surface, error) {
	return nil, ErrSelectionUnsupported
}

// ColumnCount returns the number of columns.
func (w *Wall) ColumnCount() int { return w.columnCount }

// ColumnWidth returns the current column width.
func (w *Wall) ColumnWidth() float64 { return w.columnWidth }

// ScrollOffset returns how far the content is scrolled, never negative.
func (w *Wall) ScrollOffset() int { return w.scrollOffset }

// ViewportHeight returns the usable height inside the vertical padding.
func (w *Wall) ViewportHeight() int { return w.viewportHeight }

// Viewport returns the area items are shown in, in host coordinates. The
// padding around it does not scroll; hosts clip items to this area.
func (w *Wall) Viewport() Rect {
	return Rect{
		X:      w.padding.Left,
		Y:      w.padding.Top,
		Width:  max(w.measuredWidth-w.padding.Horizontal(), 0),
		Height: w.viewportHeight,
	}
}

// ContentHeight returns the height computed by the last Measure call.
func (w *Wall) ContentHeight() int { return w.contentHeight }

// LastVisitedIndex returns the highest index requested from the data source,
// or -1 before the first layout.
func (w *Wall) LastVisitedIndex() int { return w.lastVisited }

// Column returns column i, or nil before the first Measure.
func (w *Wall) Column(i int) *Column {
	if i < 0 || i >= len(w.columns) {
		return nil
	}
	return w.columns[i]
}

// ItemRect describes a shown item and where it sits in content coordinates.
type ItemRect struct {
	Column int
	Item   *PlacedItem
	Bounds Rect
}

// Items returns every shown item, column by column, top first.
func (w *Wall) Items() []ItemRect {
	var out []ItemRect
	for ci, col := range w.columns {
		for _, p := range col.Shown() {
			out = append(out, ItemRect{Column: ci, Item: p, Bounds: w.itemBounds(ci, p)})
		}
	}
	return out
}

// ScrollMetrics reports the values a host needs to draw a scrollbar: the
// current offset, the visible extent and the total scrollable range.
func (w *Wall) ScrollMetrics() (offset, extent, rng int) {
	rng = w.contentHeight
	if len(w.columns) > 0 {
		rng = max(rng, w.columns[highestColumn(w.bottoms())].Bottom()+w.padding.Vertical())
	}
	return w.scrollOffset, w.viewportHeight, rng
}

// ItemAt returns the shown item under the viewport point (x, y). Points in
// the top or bottom padding hit nothing. The scan is linear and the first
// match wins.
func (w *Wall) ItemAt(x, y int) (PlacedItem, bool) {
	if y < w.padding.Top || y >= w.padding.Top+w.viewportHeight {
		return PlacedItem{}, false
	}
	cy := y + w.scrollOffset
	for ci, col := range w.columns {
		for _, p := range col.Shown() {
			if w.itemBounds(ci, p).Contains(x, cy) {
				return *p, true
			}
		}
	}
	return PlacedItem{}, false
}

// PerformItemClick dispatches a click to the item under (x, y). It reports
// whether an item was hit.
func (w *Wall) PerformItemClick(x, y int) bool {
	p, ok := w.ItemAt(x, y)
	if !ok || w.source == nil {
		return false
	}
	id := w.source.ItemID(p.Index())
	w.logger.Debug("item click", "index", p.Index(), "id", id)
	if w.onItemClick != nil {
		w.onItemClick(p.Surface, p.Index(), id)
	}
	return true
}

// PerformItemLongClick dispatches a long click to the item under (x, y). It
// returns the listener's result, or false when no item was hit.
func (w *Wall) PerformItemLongClick(x, y int) bool {
	p, ok := w.ItemAt(x, y)
	if !ok || w.source == nil {
		return false
	}
	id := w.source.ItemID(p.Index())
	w.logger.Debug("item long click", "index", p.Index(), "id", id)
	if w.onItemLongClick == nil {
		return false
	}
	return w.onItemLongClick(p.Surface, p.Index(), id)
}

// HasItems reports whether any item is currently shown.
func (w *Wall) HasItems() bool {
	for _, col := range w.columns {
		if col.Len() > 0 {
			return true
		}
	}
	return false
}

// columnLeft returns the content x coordinate of column ci.
func (w *Wall) columnLeft(ci int) int {
	return w.padding.Left + int(w.columnWidth*float64(ci)) + w.horizontalSpacing*ci
}

// itemBounds returns the content rectangle of p in column ci.
func (w *Wall) itemBounds(ci int, p *PlacedItem) Rect {
	return Rect{
		X:      w.columnLeft(ci),
		Y:      w.padding.Top + p.Top,
		Width:  int(w.columnWidth),
		Height: p.Height,
	}
}

func (w *Wall) bottoms() []int {
	out := make([]int, len(w.columns))
	for i, col := range w.columns {
		out[i] = col.Bottom()
	}
	return out
}

// detachAll removes every live surface from the host.
func (w *Wall) detachAll() {
	for _, col := range w.columns {
		for _, p := range col.Shown() {
			if p.Surface != nil && w.host != nil {
				w.host.RemoveChild(p.Surface)
			}
		}
	}
}

func (w *Wall) ensureColumns() {
	if len(w.columns) == w.columnCount {
		return
	}
	w.columns = make([]*Column, w.columnCount)
	for i := range w.columns {
		w.columns[i] = NewColumn(w.verticalSpacing)
	}
}
