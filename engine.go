package chaosgame

import "sync"

// polygonState tracks the one-way transition from "no canvas seen yet" to
// "polygon laid out".
type polygonState uint8

const (
	polygonPending polygonState = iota
	polygonReady
)

// Frame is a snapshot of the engine for one redraw. Both slices are copies
// owned by the caller.
type Frame struct {
	// Vertices of the polygon outline, in perimeter order.
	Vertices []Point

	// Points generated so far, in insertion order.
	Points []Point
}

// Engine plays the Chaos Game: it lays out a regular polygon, picks a random
// first point inside it, and then repeatedly moves the last point toward a
// randomly chosen vertex.
//
// Engine is safe for concurrent use. A Driver may advance it from one
// goroutine while a window thread calls Render.
type Engine struct {
	mu sync.Mutex

	sides            int
	fraction         float64
	distanceFraction float64 // 1 - fraction, the share of the step actually taken

	rnd         Source
	maxAttempts int

	state   polygonState
	polygon Polygon
	points  []Point
}

// New creates an Engine for a polygon with the given number of sides and
// contraction fraction.
//
// Arguments are not validated: sides < 3 or a fraction outside [0, 1]
// produce degenerate or out-of-range geometry. Validate input upstream.
func New(sides int, fraction float64, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = newTimeSource()
	}
	return &Engine{
		sides:            sides,
		fraction:         fraction,
		distanceFraction: 1.0 - fraction,
		rnd:              o.source,
		maxAttempts:      o.maxAttempts,
	}
}

// Sides returns the configured number of polygon sides.
func (e *Engine) Sides() int {
	return e.sides
}

// Fraction returns the contraction fraction passed to New.
func (e *Engine) Fraction() float64 {
	return e.fraction
}

// DistanceFraction returns 1 - Fraction, the multiplier applied to the
// vector from the last point to the chosen vertex.
func (e *Engine) DistanceFraction() float64 {
	return e.distanceFraction
}

// Layout computes the polygon for a canvas of the given size if it has not
// been computed yet, and reports whether this call did so. The polygon has
// radius width/2 around (width/2, height/2) and is never recomputed: later
// canvas sizes are ignored.
func (e *Engine) Layout(width, height int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layout(width, height)
}

func (e *Engine) layout(width, height int) bool {
	if e.state == polygonReady {
		return false
	}
	center := Pt(width/2, height/2)
	e.polygon = NewPolygon(PolygonVertices(e.sides, width/2, center))
	e.state = polygonReady

	Logger().Debug("chaosgame: polygon laid out",
		"sides", e.sides,
		"width", width,
		"height", height,
		"bounds", e.polygon.Bounds())
	return true
}

// Polygon returns the laid out polygon. ok is false until the first Layout
// or Render.
func (e *Engine) Polygon() (p Polygon, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != polygonReady {
		return Polygon{}, false
	}
	return e.polygon, true
}

// Advance appends exactly one point and reports true. The first point is
// sampled uniformly inside the polygon; every later point lies
// DistanceFraction of the way from the previous point to a freshly chosen
// random vertex.
//
// Advance does nothing and reports false while the polygon has not been laid
// out or has no vertices.
func (e *Engine) Advance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advance()
}

// AdvanceN calls Advance n times under a single lock and returns how many
// points were appended.
func (e *Engine) AdvanceN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	added := 0
	for range n {
		if !e.advance() {
			break
		}
		added++
	}
	return added
}

func (e *Engine) advance() bool {
	if e.state != polygonReady || e.polygon.Len() == 0 {
		return false
	}
	if len(e.points) == 0 {
		pt, ok := samplePoint(e.polygon, e.rnd, e.maxAttempts)
		if !ok {
			Logger().Warn("chaosgame: no sample inside polygon, using centroid",
				"attempts", e.maxAttempts,
				"centroid", pt)
		}
		e.points = append(e.points, pt)
		return true
	}
	last := e.points[len(e.points)-1]
	v := RandomVertex(e.polygon, e.rnd)
	e.points = append(e.points, last.Lerp(v, e.distanceFraction))
	return true
}

// Len returns the number of points generated so far.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.points)
}

// Points returns a copy of the generated points in insertion order.
func (e *Engine) Points() []Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	pts := make([]Point, len(e.points))
	copy(pts, e.points)
	return pts
}

// Render lays out the polygon on first use (see Layout) and returns a
// snapshot of the outline and all points for drawing.
func (e *Engine) Render(width, height int) Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.layout(width, height)

	f := Frame{
		Vertices: e.polygon.Vertices(),
		Points:   make([]Point, len(e.points)),
	}
	copy(f.Points, e.points)
	return f
}
