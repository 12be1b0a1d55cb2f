package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/wall"
	"github.com/agiangrant/wall/snapshot"
	"github.com/agiangrant/wall/wallview"
)

// Snapshot implements the 'wall snapshot' command
func Snapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file (default: nearest wall.toml)")
	width := fs.Int("width", 480, "Image width in pixels")
	height := fs.Int("height", 640, "Image height in pixels")
	scale := fs.Float64("scale", 8, "Pixels per layout unit")
	items := fs.Int("items", 200, "Number of demo tiles")
	seed := fs.Uint64("seed", 1, "Seed for the demo tile sizes")
	scroll := fs.Int("scroll", 0, "Scroll by this many layout units before rendering")
	out := fs.String("out", "wall.png", "Output PNG file")
	statePath := fs.String("state", "", "Restore the position saved in this file first")
	saveStatePath := fs.String("save-state", "", "Save the final position to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *width <= 0 || *height <= 0 || *scale <= 0 {
		return fmt.Errorf("width, height and scale must be positive")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	w := wall.New(wallview.NewCanvas(), cfg.Options(logger)...)
	w.SetDataSource(wallview.NewDemoSource(*items, *seed))
	if err := restoreState(w, *statePath, logger); err != nil {
		return err
	}

	w.Measure(wall.Exact(int(float64(*width)/(*scale))), wall.Exact(int(float64(*height)/(*scale))))
	w.Layout()
	applied := scrollBy(w, *scroll)

	r := snapshot.NewRenderer(*width, *height, *scale)
	r.Draw(w)
	if err := r.SavePNG(*out); err != nil {
		return err
	}
	if err := saveState(w, *saveStatePath); err != nil {
		return err
	}

	fmt.Printf("  ✓ Wrote %s (scrolled %d, offset %d, %d items shown)\n", *out, applied, w.ScrollOffset(), len(w.Items()))
	return nil
}

// scrollBy scrolls in steps of at most one viewport so each step only has
// to fill what came into view. It returns the distance actually scrolled.
func scrollBy(w *wall.Wall, delta int) int {
	step := max(w.ViewportHeight(), 1)
	total := 0
	for delta != 0 {
		d := max(min(delta, step), -step)
		applied := w.Scroll(d)
		if applied == 0 {
			break
		}
		total += applied
		delta -= applied
	}
	return total
}
