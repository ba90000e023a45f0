package chaosgame

import (
	"math/rand/v2"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.source != nil {
		t.Error("default source should be nil until New seeds it")
	}
	if o.maxAttempts != 0 {
		t.Errorf("default maxAttempts = %d, want 0 (unbounded)", o.maxAttempts)
	}
}

// TestNewSeedsFromClock tests that New supplies a Source when none is given.
func TestNewSeedsFromClock(t *testing.T) {
	e := New(3, 0.5)
	if e.rnd == nil {
		t.Fatal("New() left the random source nil")
	}
}

// TestWithRandom tests dependency injection of the random source.
func TestWithRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	e := New(3, 0.5, WithRandom(rnd))
	if e.rnd != Source(rnd) {
		t.Error("rnd is not the injected source")
	}
}

func TestWithSeedOverridesWithRandom(t *testing.T) {
	src := &scriptedSource{floats: []float64{0.5}, ints: []int{0}}

	e := New(3, 0.5, WithRandom(src), WithSeed(4))
	if e.rnd == Source(src) {
		t.Error("WithSeed after WithRandom kept the injected source")
	}
}

func TestWithMaxSampleAttempts(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{-3, -3},
		{1000, 1000},
	}

	for _, tt := range tests {
		e := New(3, 0.5, WithMaxSampleAttempts(tt.n))
		if e.maxAttempts != tt.want {
			t.Errorf("WithMaxSampleAttempts(%d): maxAttempts = %d, want %d", tt.n, e.maxAttempts, tt.want)
		}
	}
}

func TestNewSourceDeterministic(t *testing.T) {
	a, b := NewSource(11), NewSource(11)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
		if x, y := a.IntN(7), b.IntN(7); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}
