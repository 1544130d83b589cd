package pix

// Region is an axis-aligned rectangle in pixel coordinates. It is a
// view descriptor: it owns no pixels. Width and height are never
// negative.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a region. Negative width or height clamps to
// zero.
func NewRegion(x, y, width, height int) Region {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Right is the exclusive right edge.
func (r Region) Right() int { return r.X + r.Width }

// Bottom is the exclusive bottom edge.
func (r Region) Bottom() int { return r.Y + r.Height }

// Empty reports whether the region covers no pixels.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the point lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two regions. When they do not
// overlap the result is the canonical empty region (zero width and
// height) at the computed left/top corner.
func (r Region) Intersect(o Region) Region {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Region{X: left, Y: top}
	}
	return Region{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Translate returns the region shifted by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	return Region{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
