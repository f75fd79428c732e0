// ABOUTME: Geometry resolver mapping position, content size and container bounds to rects
// ABOUTME: Pure arithmetic: on-screen Final rect and OffScreen rect used as the animation endpoint

package present

// Rect is an axis-aligned rectangle in container units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Lerp interpolates every component of r toward to by t.
func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X:      lerp(r.X, to.X, t),
		Y:      lerp(r.Y, to.Y, t),
		Width:  lerp(r.Width, to.Width, t),
		Height: lerp(r.Height, to.Height, t),
	}
}

func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// Geometry holds the resolved endpoints of an overlay animation.
type Geometry struct {
	// Final is where the content rests while presented.
	Final Rect
	// OffScreen is where the content starts when entering and ends when exiting.
	OffScreen Rect
}

// DefaultPointSize is the side of the square a center overlay scales from.
const DefaultPointSize = 10

// Resolver computes Geometry. The zero value uses DefaultPointSize.
type Resolver struct {
	// PointSize is the side of the degenerate square used for Center.
	PointSize float64
}

// Resolve computes the geometry for content of the given size inside bounds.
// Oversized content is not clamped; margins simply go negative.
func (r Resolver) Resolve(pos Position, size Size, bounds Rect) Geometry {
	x := bounds.X + (bounds.Width-size.Width)/2
	var g Geometry

	switch pos {
	case Top:
		g.Final = Rect{X: x, Y: bounds.Y, Width: size.Width, Height: size.Height}
		g.OffScreen = g.Final
		g.OffScreen.Y = bounds.Y - size.Height
	case Center:
		g.Final = Rect{
			X:      x,
			Y:      bounds.Y + (bounds.Height-size.Height)/2,
			Width:  size.Width,
			Height: size.Height,
		}
		pt := r.PointSize
		if pt <= 0 {
			pt = DefaultPointSize
		}
		g.OffScreen = Rect{
			X:      g.Final.MidX() - pt/2,
			Y:      g.Final.MidY() - pt/2,
			Width:  pt,
			Height: pt,
		}
	default:
		g.Final = Rect{
			X:      x,
			Y:      bounds.Y + bounds.Height - size.Height,
			Width:  size.Width,
			Height: size.Height,
		}
		g.OffScreen = g.Final
		g.OffScreen.Y = bounds.Y + bounds.Height
	}
	return g
}

// Resolve computes geometry with the default resolver.
func Resolve(pos Position, size Size, bounds Rect) Geometry {
	return Resolver{}.Resolve(pos, size, bounds)
}
