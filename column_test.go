package wall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(index, w, h int, columnWidth float64) *PlacedItem {
	d := ItemDescriptor{NaturalWidth: w, NaturalHeight: h, Index: index}
	return &PlacedItem{Descriptor: d, Height: d.HeightAt(columnWidth)}
}

func TestColumnPushPop(t *testing.T) {
	c := NewColumn(5)
	c.PushBottom(item(0, 10, 10, 10))
	c.PushBottom(item(1, 10, 20, 10))
	c.PushBottom(item(2, 10, 30, 10))
	require.Equal(t, 0, c.Top())
	require.Equal(t, 75, c.Bottom())
	assert.Equal(t, 40, c.PeekBottom().Top)

	p := c.PopTop()
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 15, c.Top())
	assert.Equal(t, 15, c.PeekTop().Top)

	p = c.PopBottom()
	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 40, c.Bottom())
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.HasHiddenAbove())
	assert.True(t, c.HasHiddenBelow())

	d, ok := c.TakeAbove()
	require.True(t, ok)
	c.PushTop(&PlacedItem{Descriptor: d, Height: d.HeightAt(10)})
	assert.Equal(t, 0, c.Top())
	assert.Equal(t, 0, c.PeekTop().Top)

	d, ok = c.TakeBelow()
	require.True(t, ok)
	c.PushBottom(&PlacedItem{Descriptor: d, Height: d.HeightAt(10)})
	assert.Equal(t, 75, c.Bottom())
	assert.Equal(t, []int{0, 1, 2}, indices(c.ShownDescriptors()))

	_, ok = c.TakeAbove()
	assert.False(t, ok)
}

func TestColumnHistoryOrder(t *testing.T) {
	c := NewColumn(0)
	for i := range 6 {
		c.PushBottom(item(i, 10, 10, 10))
	}
	c.PopTop()
	c.PopTop()
	c.PopBottom()
	c.PopBottom()

	// farthest first above, nearest first below
	assert.Equal(t, []int{0, 1}, indices(c.HiddenAbove()))
	assert.Equal(t, []int{4, 5}, indices(c.HiddenBelow()))

	d, _ := c.TakeAbove()
	assert.Equal(t, 1, d.Index)
	d, _ = c.TakeBelow()
	assert.Equal(t, 4, d.Index)
}

func TestColumnRescale(t *testing.T) {
	c := NewColumn(4)
	sizes := []struct{ w, h int }{{100, 50}, {100, 100}, {50, 100}, {100, 30}}
	for i, sz := range sizes {
		p := item(i, sz.w, sz.h, 100)
		p.Surface = &fakeSurface{}
		c.PushBottom(p)
	}
	c.PopTop()
	c.PopBottom()

	c.Rescale(200)
	assert.Equal(t, 104, c.Top())
	shown := c.Shown()
	require.Len(t, shown, 2)
	assert.Equal(t, 104, shown[0].Top)
	assert.Equal(t, 200, shown[0].Height)
	assert.Equal(t, 308, shown[1].Top)
	assert.Equal(t, 400, shown[1].Height)
	assert.Equal(t, 712, c.Bottom())

	s := shown[1].Surface.(*fakeSurface)
	assert.Equal(t, 200, s.measuredW)
	assert.Equal(t, 400, s.measuredH)

	c.Rescale(100)
	assert.Equal(t, 54, c.Top())
	assert.Equal(t, 54+104+204, c.Bottom())
}

func TestColumnSelection(t *testing.T) {
	tests := []struct {
		name    string
		bottoms []int
		skip    []bool
		lowest  int
		highest int
	}{
		{"single", []int{7}, nil, 0, 0},
		{"ties go left", []int{5, 5, 5}, nil, 0, 0},
		{"mixed", []int{30, 10, 40, 10}, nil, 1, 2},
		{"skip lowest", []int{30, 10, 40}, []bool{false, true, false}, 0, 2},
		{"all skipped", []int{1, 2}, []bool{true, true}, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.lowest, lowestColumn(tt.bottoms, tt.skip))
			assert.Equal(t, tt.highest, highestColumn(tt.bottoms))
		})
	}
}

func TestDescriptorHeightAt(t *testing.T) {
	tests := []struct {
		name  string
		d     ItemDescriptor
		width float64
		want  int
	}{
		{"square", ItemDescriptor{NaturalWidth: 100, NaturalHeight: 100}, 50, 50},
		{"truncates", ItemDescriptor{NaturalWidth: 3, NaturalHeight: 1}, 10, 3},
		{"fractional width", ItemDescriptor{NaturalWidth: 50, NaturalHeight: 50}, 280.0 / 3, 93},
		{"zero width is intrinsic", ItemDescriptor{NaturalHeight: 40, IntrinsicHeight: 12}, 300, 12},
		{"zero height is intrinsic", ItemDescriptor{NaturalWidth: 40, IntrinsicHeight: 9}, 300, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.HeightAt(tt.width))
		})
	}
}
