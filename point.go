package chaosgame

// Point is a 2D point on the integer pixel grid.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
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

// Lerp moves from p toward q by the fraction t and truncates the result
// toward zero on both axes.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: int(float64(p.X) + float64(q.X-p.X)*t),
		Y: int(float64(p.Y) + float64(q.Y-p.Y)*t),
	}
}

// Float returns the coordinates as float64 values.
func (p Point) Float() (x, y float64) {
	return float64(p.X), float64(p.Y)
}
