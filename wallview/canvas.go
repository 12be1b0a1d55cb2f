package wallview

import (
	"slices"

	"github.com/agiangrant/wall"
)

// Canvas is the wall.Host for the terminal. It keeps the attached tiles in
// paint order and the scroll offset applied to them.
type Canvas struct {
	children []*Tile
	width    int
	height   int
	offset   int
	dirty    bool

	clip    wall.Rect
	clipped bool
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) SetMeasuredSize(width, height int) {
	c.width, c.height = width, height
}

// PlaceChild attaches a tile. Other surface types are ignored.
func (c *Canvas) PlaceChild(s wall.Surface, front bool) {
	t, ok := s.(*Tile)
	if !ok {
		return
	}
	if front {
		c.children = slices.Insert(c.children, 0, t)
		return
	}
	c.children = append(c.children, t)
}

func (c *Canvas) RemoveChild(s wall.Surface) {
	c.children = slices.DeleteFunc(c.children, func(t *Tile) bool { return wall.Surface(t) == s })
}

func (c *Canvas) RequestRelayout() { c.dirty = true }

func (c *Canvas) ScrollBy(dy int) { c.offset += dy }

// Children returns the attached tiles in paint order.
func (c *Canvas) Children() []*Tile { return c.children }

// Offset returns the accumulated scroll offset.
func (c *Canvas) Offset() int { return c.offset }

// SetClip limits painting to the rows of r, usually the wall's viewport.
func (c *Canvas) SetClip(r wall.Rect) {
	c.clip, c.clipped = r, true
}

// MeasuredSize returns the size last reported by the wall.
func (c *Canvas) MeasuredSize() (int, int) { return c.width, c.height }

// TakeRelayout reports whether a relayout was requested and clears the flag.
func (c *Canvas) TakeRelayout() bool {
	d := c.dirty
	c.dirty = false
	return d
}
