package textline

// Point represents a 2D position in pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents a 2D extent in pixels.
type Size struct {
	Width, Height float64
}

// Bounds is an axis-aligned rectangle given by its top-left origin and size.
type Bounds struct {
	Origin Point
	Size   Size
}

// UpperRight returns the top-right corner of the rectangle.
func (b Bounds) UpperRight() Point {
	return Point{X: b.Origin.X + b.Size.Width, Y: b.Origin.Y}
}

// LowerRight returns the bottom-right corner of the rectangle.
func (b Bounds) LowerRight() Point {
	return Point{X: b.Origin.X + b.Size.Width, Y: b.Origin.Y + b.Size.Height}
}

// Intersects reports whether the two rectangles overlap.
// Touching edges do not count as overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Origin.X < o.Origin.X+o.Size.Width &&
		o.Origin.X < b.Origin.X+b.Size.Width &&
		b.Origin.Y < o.Origin.Y+o.Size.Height &&
		o.Origin.Y < b.Origin.Y+b.Size.Height
}
