package wallview

import (
	"slices"
	"strings"
)

// Render paints the visible tiles of c into a width by height block of
// terminal rows. Tiles are clipped to the block and to the canvas clip rows.
func Render(c *Canvas, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	type segment struct {
		tile *Tile
		row  int
	}
	lo, hi := 0, height
	if c.clipped {
		lo, hi = max(lo, c.clip.Y), min(hi, c.clip.Bottom())
	}
	rows := make([][]segment, height)
	for _, t := range c.Children() {
		b := t.Bounds
		top := b.Y - c.Offset()
		for y := max(top, lo); y < min(top+b.Height, hi); y++ {
			rows[y] = append(rows[y], segment{tile: t, row: y - top})
		}
	}

	lines := make([]string, height)
	for y, segs := range rows {
		slices.SortFunc(segs, func(a, b segment) int { return a.tile.Bounds.X - b.tile.Bounds.X })
		var sb strings.Builder
		cursor := 0
		for _, s := range segs {
			b := s.tile.Bounds
			x := max(b.X, cursor)
			w := min(b.Right(), width) - x
			if w <= 0 {
				continue
			}
			sb.WriteString(strings.Repeat(" ", x-cursor))
			text := ""
			if wrapped := s.tile.Lines(b.Width); s.row < len(wrapped) {
				text = wrapped[s.row]
			}
			sb.WriteString(s.tile.Style().Width(w).MaxWidth(w).MaxHeight(1).Render(text))
			cursor = x + w
		}
		sb.WriteString(strings.Repeat(" ", width-cursor))
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
