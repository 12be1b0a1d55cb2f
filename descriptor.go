package wall

// ItemDescriptor records the natural size of one data-source item and its
// index. It is created the first time the wall measures the item and kept in
// column history for the lifetime of the layout, so the item can be rebuilt
// at any column width without asking the data source for its size again.
type ItemDescriptor struct {
	NaturalWidth  int `toml:"width"`
	NaturalHeight int `toml:"height"`
	Index         int `toml:"index"`

	// IntrinsicHeight is only set for items that reported a zero natural
	// width or height. Such items are laid out at the column width with an
	// unspecified height once, and the height they chose is reused afterwards.
	IntrinsicHeight int `toml:"intrinsic_height,omitempty"`
}

// Intrinsic reports whether the item has no usable aspect ratio.
func (d ItemDescriptor) Intrinsic() bool {
	return d.NaturalWidth <= 0 || d.NaturalHeight <= 0
}

// HeightAt returns the height of the item scaled to columnWidth, preserving
// the natural aspect ratio.
func (d ItemDescriptor) HeightAt(columnWidth float64) int {
	if d.Intrinsic() {
		return d.IntrinsicHeight
	}
	h := int(float64(d.NaturalHeight) * columnWidth / float64(d.NaturalWidth))
	if h < 0 {
		return 0
	}
	return h
}

// PlacedItem pairs a live surface with the descriptor it was built from.
// Top and Height are in column space (the top of the first item ever placed
// in the column is 0). Surface is nil for items restored from saved state
// until the next layout pass requests them again.
type PlacedItem struct {
	Descriptor ItemDescriptor
	Surface    Surface
	Top        int
	Height     int
}

// Index returns the data-source index of the item.
func (p *PlacedItem) Index() int { return p.Descriptor.Index }

// Bottom returns the column-space bottom edge, excluding spacing.
func (p *PlacedItem) Bottom() int { return p.Top + p.Height }
