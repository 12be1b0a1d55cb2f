// Package snapshot renders the visible part of a wall to an image.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/agiangrant/wall"
)

// DefaultPalette colours items by index.
var DefaultPalette = []string{"#ef476f", "#f78c6b", "#ffd166", "#06d6a0", "#118ab2", "#073b4c", "#8338ec", "#3a86ff"}

const scrollbarWidth = 6

// Renderer draws wall snapshots. Layout units are multiplied by Scale to get
// pixels.
type Renderer struct {
	context *gg.Context
	Scale   float64
	Palette []string
}

// NewRenderer creates a renderer for a width by height pixel image.
func NewRenderer(width, height int, scale float64) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		context: gg.NewContext(width, height),
		Scale:   scale,
		Palette: DefaultPalette,
	}
}

// Draw paints every shown item of w that intersects the viewport, labelled
// with its index, and a scrollbar along the right edge. Items are clipped to
// the viewport so nothing is drawn over the padding.
func (r *Renderer) Draw(w *wall.Wall) {
	dc := r.context
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	offset, extent, rng := w.ScrollMetrics()
	height := float64(dc.Height())
	vp := w.Viewport()
	dc.DrawRectangle(0, float64(vp.Y)*r.Scale, float64(dc.Width()), float64(vp.Height)*r.Scale)
	dc.Clip()
	for _, it := range w.Items() {
		b := it.Bounds
		x := float64(b.X) * r.Scale
		y := float64(b.Y-offset) * r.Scale
		bw := float64(b.Width) * r.Scale
		bh := float64(b.Height) * r.Scale
		if y+bh <= 0 || y >= height {
			continue
		}

		dc.SetHexColor(r.Palette[it.Item.Index()%len(r.Palette)])
		dc.DrawRoundedRectangle(x, y, bw, bh, min(4, bw/2, bh/2))
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprintf("%d", it.Item.Index()), x+bw/2, y+bh/2, 0.5, 0.5)
	}
	dc.ResetClip()

	r.drawScrollbar(offset, extent, rng)
}

func (r *Renderer) drawScrollbar(offset, extent, rng int) {
	if rng <= extent || rng <= 0 {
		return
	}
	dc := r.context
	x := float64(dc.Width() - scrollbarWidth)
	h := float64(dc.Height())

	dc.SetRGBA(0, 0, 0, 0.1)
	dc.DrawRectangle(x, 0, scrollbarWidth, h)
	dc.Fill()

	thumb := max(h*float64(extent)/float64(rng), 4)
	top := (h - thumb) * float64(min(offset, rng-extent)) / float64(rng-extent)
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawRoundedRectangle(x+1, top, scrollbarWidth-2, thumb, 2)
	dc.Fill()
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image { return r.context.Image() }

// EncodePNG writes the image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.context.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// SavePNG writes the image to path.
func (r *Renderer) SavePNG(path string) error {
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
