package wall

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// StateVersion identifies the layout of SavedState.
const StateVersion = 1

// SavedState is the persisted form of a wall. Surfaces are never saved; the
// shown items are requested from the data source again after a restore.
type SavedState struct {
	Version          int           `toml:"version"`
	ColumnCount      int           `toml:"column_count"`
	Columns          []SavedColumn `toml:"columns"`
	ContentHeight    int           `toml:"content_height"`
	ScrollOffset     int           `toml:"scroll_offset"`
	LastVisitedIndex int           `toml:"last_visited_index"`
	ColumnWidth      float64       `toml:"column_width"`
}

// SavedColumn is the persisted form of a Column.
type SavedColumn struct {
	Top         int              `toml:"top"`
	Bottom      int              `toml:"bottom"`
	Spacing     int              `toml:"spacing"`
	Shown       []ItemDescriptor `toml:"shown"`
	HiddenAbove []ItemDescriptor `toml:"hidden_above"`
	HiddenBelow []ItemDescriptor `toml:"hidden_below"`
}

// SaveState captures the column assignment, history and scroll position.
func (w *Wall) SaveState() *SavedState {
	s := &SavedState{
		Version:          StateVersion,
		ColumnCount:      w.columnCount,
		ContentHeight:    w.contentHeight,
		ScrollOffset:     w.scrollOffset,
		LastVisitedIndex: w.lastVisited,
		ColumnWidth:      w.columnWidth,
	}
	for _, col := range w.columns {
		s.Columns = append(s.Columns, SavedColumn{
			Top:         col.Top(),
			Bottom:      col.Bottom(),
			Spacing:     col.Spacing(),
			Shown:       col.ShownDescriptors(),
			HiddenAbove: col.HiddenAbove(),
			HiddenBelow: col.HiddenBelow(),
		})
	}
	return s
}

// RestoreState replaces the layout with a saved one. Values that are not a
// SavedState, or whose shape does not validate, are ignored and the wall
// returns to its initial state. It reports whether the state was applied.
func (w *Wall) RestoreState(v any) bool {
	var s *SavedState
	switch st := v.(type) {
	case *SavedState:
		s = st
	case SavedState:
		s = &st
	}
	if s == nil {
		w.logger.Warn("ignoring unrecognized saved state", "type", fmt.Sprintf("%T", v))
		w.resetLayout()
		return false
	}
	if err := s.Validate(); err != nil {
		w.logger.Warn("ignoring saved state", "err", err)
		w.resetLayout()
		return false
	}

	w.detachAll()
	if s.ColumnCount != w.columnCount {
		w.logger.Info("restoring column count from saved state", "configured", w.columnCount, "saved", s.ColumnCount)
	}
	w.columnCount = s.ColumnCount
	if spacing := s.Columns[0].Spacing; spacing != w.verticalSpacing {
		w.logger.Info("restoring vertical spacing from saved state", "configured", w.verticalSpacing, "saved", spacing)
		w.verticalSpacing = spacing
	}
	w.columnWidth = s.ColumnWidth
	w.columns = make([]*Column, s.ColumnCount)
	shown := false
	for i, sc := range s.Columns {
		col := NewColumn(w.verticalSpacing)
		for _, d := range sc.HiddenAbove {
			col.hiddenAbove.PushBack(d)
		}
		col.top, col.bottom = sc.Top, sc.Top
		for _, d := range sc.Shown {
			col.PushBottom(&PlacedItem{Descriptor: d, Height: d.HeightAt(s.ColumnWidth)})
			shown = true
		}
		for _, d := range sc.HiddenBelow {
			col.hiddenBelow.PushBack(d)
		}
		w.columns[i] = col
	}

	if w.host != nil && s.ScrollOffset != w.scrollOffset {
		w.host.ScrollBy(s.ScrollOffset - w.scrollOffset)
	}
	w.scrollOffset = s.ScrollOffset
	w.lastVisited = s.LastVisitedIndex
	w.contentHeight = s.ContentHeight
	w.restored = shown
	if w.host != nil {
		w.host.RequestRelayout()
	}
	return true
}

// RestoreBytes decodes an encoded state and restores it. Undecodable input is
// treated like an unrecognized state.
func (w *Wall) RestoreBytes(data []byte) bool {
	s, err := DecodeState(bytes.NewReader(data))
	if err != nil {
		w.logger.Warn("ignoring undecodable saved state", "err", err)
		w.resetLayout()
		return false
	}
	return w.RestoreState(s)
}

// Validate checks that the state describes a consistent layout.
func (s *SavedState) Validate() error {
	if s.Version != StateVersion {
		return fmt.Errorf("unsupported state version %d", s.Version)
	}
	if s.ColumnCount < 1 || len(s.Columns) != s.ColumnCount {
		return fmt.Errorf("column count %d does not match %d saved columns", s.ColumnCount, len(s.Columns))
	}
	if s.ScrollOffset < 0 || s.LastVisitedIndex < -1 || s.ColumnWidth < 0 {
		return fmt.Errorf("negative offset, index or width")
	}
	for i, c := range s.Columns {
		if c.Spacing < 0 {
			return fmt.Errorf("column %d: negative spacing", i)
		}
		if c.Spacing != s.Columns[0].Spacing {
			return fmt.Errorf("column %d: spacing %d differs from column 0 (%d)", i, c.Spacing, s.Columns[0].Spacing)
		}
		top := 0
		for _, d := range c.HiddenAbove {
			top += d.HeightAt(s.ColumnWidth) + c.Spacing
		}
		if top != c.Top {
			return fmt.Errorf("column %d: top %d does not match hidden items (%d)", i, c.Top, top)
		}
		bottom := c.Top
		for _, d := range c.Shown {
			bottom += d.HeightAt(s.ColumnWidth) + c.Spacing
		}
		if bottom != c.Bottom {
			return fmt.Errorf("column %d: bottom %d does not match shown items (%d)", i, c.Bottom, bottom)
		}
		for _, list := range [][]ItemDescriptor{c.HiddenAbove, c.Shown, c.HiddenBelow} {
			for _, d := range list {
				if d.Index < 0 || d.Index > s.LastVisitedIndex {
					return fmt.Errorf("column %d: index %d outside visited range", i, d.Index)
				}
			}
		}
	}
	return nil
}

// EncodeState writes s as TOML.
func EncodeState(w io.Writer, s *SavedState) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode wall state: %w", err)
	}
	return nil
}

// DecodeState reads a TOML encoded state. Unknown keys are rejected.
func DecodeState(r io.Reader) (*SavedState, error) {
	var s SavedState
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode wall state: %w", err)
	}
	return &s, nil
}

// resetLayout drops the layout but keeps the data source and configuration.
func (w *Wall) resetLayout() {
	w.detachAll()
	w.columns = nil
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
