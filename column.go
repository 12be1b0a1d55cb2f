package wall

import "github.com/agiangrant/wall/internal/deque"

// Column is one vertical strip of the wall. It holds the run of items that
// are currently shown plus the descriptors of the items hidden above and
// below that run, so items can be rebuilt in the same place later.
//
// Top and Bottom are measured from the top of the first item ever placed in
// the column, not from the viewport.
type Column struct {
	top, bottom int
	spacing     int

	shown       *deque.Deque[*PlacedItem]
	hiddenAbove *deque.Deque[ItemDescriptor]
	hiddenBelow *deque.Deque[ItemDescriptor]
}

// NewColumn creates an empty column with the given vertical spacing.
func NewColumn(spacing int) *Column {
	return &Column{
		spacing:     spacing,
		shown:       deque.New[*PlacedItem](),
		hiddenAbove: deque.New[ItemDescriptor](),
		hiddenBelow: deque.New[ItemDescriptor](),
	}
}

// Top returns the column-space top of the first shown item.
func (c *Column) Top() int { return c.top }

// Bottom returns the column-space bottom of the last shown item, including
// its trailing spacing.
func (c *Column) Bottom() int { return c.bottom }

// Spacing returns the vertical gap below each item.
func (c *Column) Spacing() int { return c.spacing }

// Len returns the number of shown items.
func (c *Column) Len() int { return c.shown.Len() }

// PeekTop returns the first shown item, or nil.
func (c *Column) PeekTop() *PlacedItem {
	p, _ := c.shown.Front()
	return p
}

// PeekBottom returns the last shown item, or nil.
func (c *Column) PeekBottom() *PlacedItem {
	p, _ := c.shown.Back()
	return p
}

// PushBottom appends p below the last shown item.
func (c *Column) PushBottom(p *PlacedItem) {
	p.Top = c.bottom
	c.bottom += p.Height + c.spacing
	c.shown.PushBack(p)
}

// PushTop inserts p above the first shown item.
func (c *Column) PushTop(p *PlacedItem) {
	c.top -= p.Height + c.spacing
	p.Top = c.top
	c.shown.PushFront(p)
}

// PopTop removes the first shown item and records its descriptor as the
// nearest item hidden above.
func (c *Column) PopTop() *PlacedItem {
	p, ok := c.shown.PopFront()
	if !ok {
		return nil
	}
	c.top += p.Height + c.spacing
	c.hiddenAbove.PushBack(p.Descriptor)
	return p
}

// PopBottom removes the last shown item and records its descriptor as the
// nearest item hidden below.
func (c *Column) PopBottom() *PlacedItem {
	p, ok := c.shown.PopBack()
	if !ok {
		return nil
	}
	c.bottom -= p.Height + c.spacing
	c.hiddenBelow.PushFront(p.Descriptor)
	return p
}

// TakeAbove removes the nearest descriptor hidden above the shown run.
func (c *Column) TakeAbove() (ItemDescriptor, bool) { return c.hiddenAbove.PopBack() }

// TakeBelow removes the nearest descriptor hidden below the shown run.
func (c *Column) TakeBelow() (ItemDescriptor, bool) { return c.hiddenBelow.PopFront() }

// HasHiddenAbove reports whether items exist above the shown run.
func (c *Column) HasHiddenAbove() bool { return !c.hiddenAbove.Empty() }

// HasHiddenBelow reports whether items exist below the shown run.
func (c *Column) HasHiddenBelow() bool { return !c.hiddenBelow.Empty() }

// Shown returns the shown items, top first.
func (c *Column) Shown() []*PlacedItem { return c.shown.Values() }

// ShownDescriptors returns the descriptors of the shown items, top first.
func (c *Column) ShownDescriptors() []ItemDescriptor {
	out := make([]ItemDescriptor, 0, c.shown.Len())
	c.shown.All(func(_ int, p *PlacedItem) bool {
		out = append(out, p.Descriptor)
		return true
	})
	return out
}

// HiddenAbove returns the descriptors hidden above, farthest first.
func (c *Column) HiddenAbove() []ItemDescriptor { return c.hiddenAbove.Values() }

// HiddenBelow returns the descriptors hidden below, nearest first.
func (c *Column) HiddenBelow() []ItemDescriptor { return c.hiddenBelow.Values() }

// Rescale recomputes the column geometry for a new column width. The top is
// rebuilt from the hidden-above history, the bottom continues through the
// shown items, whose live surfaces are measured again at the new size.
// Items hidden below are not part of the materialized run and are skipped.
func (c *Column) Rescale(columnWidth float64) {
	top := 0
	c.hiddenAbove.All(func(_ int, d ItemDescriptor) bool {
		top += d.HeightAt(columnWidth) + c.spacing
		return true
	})

	widthSpec := Exact(int(columnWidth))
	bottom := top
	c.shown.All(func(_ int, p *PlacedItem) bool {
		p.Height = p.Descriptor.HeightAt(columnWidth)
		p.Top = bottom
		if p.Surface != nil {
			p.Surface.Measure(widthSpec, Exact(p.Height))
		}
		bottom += p.Height + c.spacing
		return true
	})

	c.top = top
	c.bottom = bottom
}

// reset drops every shown item and all history.
func (c *Column) reset() {
	c.top, c.bottom = 0, 0
	c.shown.Clear()
	c.hiddenAbove.Clear()
	c.hiddenBelow.Clear()
}

// lowestColumn returns the index of the column with the smallest value,
// skipping columns marked in skip. Ties go to the lowest index. It returns
// -1 when every column is skipped.
func lowestColumn(bottoms []int, skip []bool) int {
	best := -1
	for i, b := range bottoms {
		if skip != nil && skip[i] {
			continue
		}
		if best < 0 || b < bottoms[best] {
			best = i
		}
	}
	return best
}

// highestColumn returns the index of the column with the largest value.
// Ties go to the lowest index.
func highestColumn(bottoms []int) int {
	best := -1
	for i, b := range bottoms {
		if best < 0 || b > bottoms[best] {
			best = i
		}
	}
	return best
}
