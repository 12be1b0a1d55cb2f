package wallview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Scrollbar draws a one column vertical scrollbar.
type Scrollbar struct {
	// Range is the total height of the content.
	Range int
	// Extent is the visible height.
	Extent int
	// Offset is the scroll position.
	Offset int

	ThumbStyle lipgloss.Style
	TrackStyle lipgloss.Style
	ThumbChar  string
	TrackChar  string
}

// NewScrollbar returns a scrollbar with the default look.
func NewScrollbar() Scrollbar {
	return Scrollbar{
		ThumbStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("57")),
		TrackStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ThumbChar:  "█",
		TrackChar:  "│",
	}
}

// Thumb returns the first row and the height of the thumb for a bar of
// height rows.
func (s Scrollbar) Thumb(height int) (top, size int) {
	if height <= 0 {
		return 0, 0
	}
	if s.Range <= s.Extent || s.Range <= 0 {
		return 0, height
	}
	size = max(height*s.Extent/s.Range, 1)
	maxOffset := s.Range - s.Extent
	offset := min(max(s.Offset, 0), maxOffset)
	top = (height - size) * offset / maxOffset
	return top, size
}

// View renders the scrollbar as height rows.
func (s Scrollbar) View(height int) string {
	if height <= 0 {
		return ""
	}
	top, size := s.Thumb(height)
	rows := make([]string, height)
	for i := range rows {
		if i >= top && i < top+size {
			rows[i] = s.ThumbStyle.Render(s.ThumbChar)
		} else {
			rows[i] = s.TrackStyle.Render(s.TrackChar)
		}
	}
	return strings.Join(rows, "\n")
}
