// Package wallview hosts a wall in a terminal using Bubble Tea. Items are
// drawn as coloured tiles, one terminal cell per layout unit.
package wallview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/wall"
)

// Tile is the terminal surface for one item.
type Tile struct {
	Index int
	Label string
	Color lipgloss.Color

	// Natural size in cells. Zero means the tile sizes itself from its label.
	Width, Height int

	measuredW, measuredH int
	Bounds               wall.Rect
}

// Measure implements wall.Surface. With an unspecified height the tile is as
// tall as its label wrapped to the measured width.
func (t *Tile) Measure(width, height wall.MeasureSpec) {
	t.measuredW = wall.ResolveSize(t.Width, width)
	if height.Mode == wall.Unspecified {
		t.measuredH = len(t.Lines(t.measuredW))
		return
	}
	t.measuredH = wall.ResolveSize(t.Height, height)
}

// MeasuredSize implements wall.Surface.
func (t *Tile) MeasuredSize() (int, int) { return t.measuredW, t.measuredH }

// Layout implements wall.Surface.
func (t *Tile) Layout(bounds wall.Rect) { t.Bounds = bounds }

// Lines wraps the label to width.
func (t *Tile) Lines(width int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(t.Label)
	return strings.Split(wrapped, "\n")
}

// Style returns the style used to paint the tile.
func (t *Tile) Style() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Color).
		Foreground(lipgloss.Color("0"))
}

// reset prepares a recycled tile for a new item.
func (t *Tile) reset(index int, label string, color lipgloss.Color, w, h int) {
	*t = Tile{
		Index:     index,
		Label:     label,
		Color:     color,
		Width:     w,
		Height:    h,
		measuredW: w,
		measuredH: h,
	}
}
