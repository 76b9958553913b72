package ca

// Point is an integer coordinate in (x, y, t) space-time. Arithmetic on
// Points is componentwise.
type Point struct {
	X, Y, T int
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.T + q.T}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.T - q.T}
}

// AffineTransform maps (x, y) by a 2x2 integer matrix plus a translation,
// and shifts t by an independent integer offset.
type AffineTransform struct {
	A11, A12, A21, A22 int
	Bx, By, Bt         int
}

// Identity is the affine transform that leaves every point fixed.
var Identity = AffineTransform{A11: 1, A22: 1}

// Apply returns A*p + b, where A acts on (x, y) and t is shifted by Bt.
func (t AffineTransform) Apply(p Point) Point {
	return Point{
		X: t.A11*p.X + t.A12*p.Y + t.Bx,
		Y: t.A21*p.X + t.A22*p.Y + t.By,
		T: p.T + t.Bt,
	}
}

// SpatialOnly reports whether the transform leaves t unchanged.
func (t AffineTransform) SpatialOnly() bool {
	return t.Bt == 0
}

// Limits is an inclusive integer interval.
type Limits struct {
	Min, Max int
}

func (l Limits) Contains(v int) bool {
	return v >= l.Min && v <= l.Max
}

func (l Limits) Len() int {
	if l.Max < l.Min {
		return 0
	}
	return l.Max - l.Min + 1
}

// Bounds is a rectangular region of space-time: inclusive x, y and t ranges.
type Bounds struct {
	X, Y, T Limits
}

// NewBounds builds Bounds from a width, a height and a last generation
// index maxGen (inclusive, so maxGen+1 generations), all starting at zero
// — the common case for a fresh grid.
func NewBounds(width, height, maxGen int) Bounds {
	return Bounds{
		X: Limits{0, width - 1},
		Y: Limits{0, height - 1},
		T: Limits{0, maxGen},
	}
}

func (b Bounds) Contains(p Point) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.T.Contains(p.T)
}

// Translate shifts the bounds by a vector, keeping their extent.
func (b Bounds) Translate(v Point) Bounds {
	return Bounds{
		X: Limits{b.X.Min + v.X, b.X.Max + v.X},
		Y: Limits{b.Y.Min + v.Y, b.Y.Max + v.Y},
		T: Limits{b.T.Min + v.T, b.T.Max + v.T},
	}
}

func (b Bounds) SizeX() int { return b.X.Len() }
func (b Bounds) SizeY() int { return b.Y.Len() }
func (b Bounds) SizeT() int { return b.T.Len() }

// ImageClosure computes the smallest set of points containing p and closed
// under applying each transform in transforms to each element, restricted
// to bounds. A transform that maps a point outside bounds silently drops
// that image — this is how boundary cells fall out of a symmetry group.
func ImageClosure(p Point, transforms []AffineTransform, bounds Bounds) map[Point]bool {
	images := map[Point]bool{p: true}
	frontier := []Point{p}

	for len(frontier) > 0 {
		var next []Point
		for _, q := range frontier {
			for _, t := range transforms {
				img := t.Apply(q)
				if !bounds.Contains(img) {
					continue
				}
				if images[img] {
					continue
				}
				images[img] = true
				next = append(next, img)
			}
		}
		frontier = next
	}

	return images
}
