package chaosgame

import (
	"image"
	"math"
)

// Polygon is a closed shape over integer vertices with an implicit edge
// from the last vertex back to the first. The zero value has no vertices.
type Polygon struct {
	vertices []Point
	bounds   image.Rectangle
}

// NewPolygon creates a Polygon from consecutive perimeter vertices.
// The slice is copied.
func NewPolygon(vertices []Point) Polygon {
	vs := make([]Point, len(vertices))
	copy(vs, vertices)

	var b image.Rectangle
	for i, v := range vs {
		if i == 0 {
			b = image.Rect(v.X, v.Y, v.X, v.Y)
			continue
		}
		b.Min.X = min(b.Min.X, v.X)
		b.Min.Y = min(b.Min.Y, v.Y)
		b.Max.X = max(b.Max.X, v.X)
		b.Max.Y = max(b.Max.Y, v.Y)
	}
	return Polygon{vertices: vs, bounds: b}
}

// PolygonVertices places sides vertices by walking a circle of the given
// radius: each vertex is reached from its predecessor by a step of length
// radius at angle 2π/sides·i, starting from the origin. Every vertex is then
// offset by center/2 (integer halving on both axes).
//
// Coordinates are truncated toward zero before the offset is applied.
// A non-positive side count yields no vertices.
func PolygonVertices(sides, radius int, center Point) []Point {
	if sides <= 0 {
		return nil
	}
	theta := 2 * math.Pi / float64(sides)
	r := float64(radius)
	offset := Point{X: center.X / 2, Y: center.Y / 2}

	vertices := make([]Point, sides)
	var x, y float64
	for i := range vertices {
		vertices[i] = Point{X: int(x), Y: int(y)}.Add(offset)
		x += r * math.Cos(theta*float64(i))
		y += r * math.Sin(theta*float64(i))
	}
	return vertices
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex.
func (p Polygon) Vertex(i int) Point {
	return p.vertices[i]
}

// Vertices returns a copy of the vertices in perimeter order.
func (p Polygon) Vertices() []Point {
	vs := make([]Point, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Bounds returns the axis-aligned bounding box. Max holds the largest vertex
// coordinates, so the box of a single vertex is empty.
func (p Polygon) Bounds() image.Rectangle {
	return p.bounds
}

// Contains reports whether (x, y) lies inside the polygon using the even-odd
// crossing rule. Edges are half-open: points on left and top edges are inside,
// points on right and bottom edges are not.
func (p Polygon) Contains(x, y float64) bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	b := p.bounds
	if x < float64(b.Min.X) || x >= float64(b.Max.X) || y < float64(b.Min.Y) || y >= float64(b.Max.Y) {
		return false
	}

	inside := false
	a := p.vertices[n-1]
	for _, c := range p.vertices {
		if a.Y != c.Y {
			lo, hi := min(a.Y, c.Y), max(a.Y, c.Y)
			if y >= float64(lo) && y < float64(hi) {
				ax, ay := a.Float()
				cx, cy := c.Float()
				if x < ax+(y-ay)*(cx-ax)/(cy-ay) {
					inside = !inside
				}
			}
		}
		a = c
	}
	return inside
}

// Centroid returns the area centroid truncated to the pixel grid. Polygons
// without area fall back to the mean of their vertices.
func (p Polygon) Centroid() Point {
	n := len(p.vertices)
	if n == 0 {
		return Point{}
	}

	var area, cx, cy float64
	a := p.vertices[n-1]
	for _, c := range p.vertices {
		ax, ay := a.Float()
		bx, by := c.Float()
		cross := ax*by - bx*ay
		area += cross
		cx += (ax + bx) * cross
		cy += (ay + by) * cross
		a = c
	}
	if area == 0 {
		var sx, sy int
		for _, v := range p.vertices {
			sx += v.X
			sy += v.Y
		}
		return Point{X: sx / n, Y: sy / n}
	}
	area *= 0.5
	return Point{X: int(cx / (6 * area)), Y: int(cy / (6 * area))}
}

// SamplePoint draws points uniformly from the polygon's bounding box,
// truncated to the pixel grid, until one lies inside the polygon.
//
// The loop has no iteration cap: a polygon without area never terminates.
// Use an Engine with WithMaxSampleAttempts for a bounded variant.
func SamplePoint(p Polygon, rnd Source) Point {
	pt, _ := samplePoint(p, rnd, 0)
	return pt
}

// samplePoint is SamplePoint with an optional attempt limit. A limit <= 0
// means unbounded. It reports false when the limit was exhausted, in which
// case the returned point is the centroid.
func samplePoint(p Polygon, rnd Source, limit int) (Point, bool) {
	b := p.bounds
	minX, minY := float64(b.Min.X), float64(b.Min.Y)
	w, h := float64(b.Dx()), float64(b.Dy())

	for attempt := 0; limit <= 0 || attempt < limit; attempt++ {
		pt := Point{
			X: int(minX + w*rnd.Float64()),
			Y: int(minY + h*rnd.Float64()),
		}
		if p.Contains(pt.Float()) {
			return pt, true
		}
	}
	return p.Centroid(), false
}

// RandomVertex returns one of the polygon's vertices chosen uniformly.
// It panics if the polygon has no vertices.
func RandomVertex(p Polygon, rnd Source) Point {
	return p.vertices[rnd.IntN(len(p.vertices))]
}
