package wallview

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/wall"
)

// Palette is the set of tile colours, cycled by index.
var Palette = []lipgloss.Color{"204", "214", "227", "120", "81", "111", "177", "210"}

// DemoSource is a deterministic wall.DataSource of randomly sized tiles.
// Every seventh tile has no natural size and is sized from its label.
type DemoSource struct {
	sizes [][2]int
}

// NewDemoSource creates n tiles from seed.
func NewDemoSource(n int, seed uint64) *DemoSource {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	d := &DemoSource{sizes: make([][2]int, max(n, 0))}
	for i := range d.sizes {
		if i%7 == 6 {
			continue
		}
		d.sizes[i] = [2]int{8 + r.IntN(12), 3 + r.IntN(10)}
	}
	return d
}

func (d *DemoSource) Count() int { return len(d.sizes) }

func (d *DemoSource) ItemView(index int, reuse wall.Surface, _ wall.Host) wall.Surface {
	t, ok := reuse.(*Tile)
	if !ok {
		t = &Tile{}
	}
	w, h := d.sizes[index][0], d.sizes[index][1]
	label := fmt.Sprintf("#%d %dx%d", index, w, h)
	if w == 0 {
		label = fmt.Sprintf("#%d sized by its own text, which wraps to fit the column", index)
	}
	t.reset(index, label, Palette[index%len(Palette)], w, h)
	return t
}

func (d *DemoSource) ItemID(index int) int64 { return int64(index) }

// Size returns the natural size of tile index.
func (d *DemoSource) Size(index int) (int, int) {
	return d.sizes[index][0], d.sizes[index][1]
}
