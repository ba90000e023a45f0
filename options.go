package chaosgame

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Wall-clock seeded, unbounded sampling
//	e := chaosgame.New(3, 0.5)
//
//	// Reproducible run
//	e := chaosgame.New(3, 0.5, chaosgame.WithSeed(42))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	source      Source
	maxAttempts int
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		source:      nil, // Will be seeded from the clock if nil
		maxAttempts: 0,   // Unbounded rejection sampling
	}
}

// WithRandom injects the random source. The Engine takes ownership of it:
// do not draw from the same Source elsewhere while the Engine is in use.
//
// Example:
//
//	rnd := rand.New(rand.NewPCG(1, 2))
//	e := chaosgame.New(5, 0.6, chaosgame.WithRandom(rnd))
func WithRandom(src Source) Option {
	return func(o *engineOptions) {
		o.source = src
	}
}

// WithSeed seeds the Engine's random source with NewSource(seed).
// It replaces any Source set by an earlier WithRandom.
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.source = NewSource(seed)
	}
}

// WithMaxSampleAttempts caps the rejection loop that picks the first point.
// When n candidates in a row fall outside the polygon, the polygon centroid
// is used instead and a warning is logged.
//
// n <= 0 keeps the loop unbounded, which never returns for a polygon without
// area.
func WithMaxSampleAttempts(n int) Option {
	return func(o *engineOptions) {
		o.maxAttempts = n
	}
}
