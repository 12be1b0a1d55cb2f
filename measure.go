package wall

import "fmt"

// MeasureMode describes how a size constraint should be interpreted.
type MeasureMode uint8

const (
	// Unspecified lets the child pick any size.
	Unspecified MeasureMode = iota
	// Exactly forces the child to the given size.
	Exactly
	// AtMost lets the child be as large as it wants up to the given size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is a size constraint passed between the host, the wall and the
// item surfaces.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Exact returns an Exactly constraint of size n (negative sizes clamp to 0).
func Exact(n int) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: max(n, 0)} }

// AtMostSize returns an AtMost constraint of size n.
func AtMostSize(n int) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: max(n, 0)} }

// UnspecifiedSize returns an Unspecified constraint.
func UnspecifiedSize() MeasureSpec { return MeasureSpec{Mode: Unspecified} }

func (s MeasureSpec) String() string {
	return fmt.Sprintf("%s %d", s.Mode, s.Size)
}

// ResolveSize reconciles a desired size with a constraint.
func ResolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}

// Rect is an axis-aligned rectangle in integer pixels.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Insets holds padding on each side.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Uniform returns insets with the same value on every side.
func Uniform(n int) Insets { return Insets{Left: n, Top: n, Right: n, Bottom: n} }

// Horizontal returns Left+Right.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical returns Top+Bottom.
func (i Insets) Vertical() int { return i.Top + i.Bottom }
