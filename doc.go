// Package chaosgame plays the Chaos Game on a regular polygon.
//
// # Overview
//
// Starting from a random point inside a regular polygon, the game repeatedly
// picks a random vertex and moves the point part of the way toward it. With
// three sides and a fraction of 0.5 the accumulated points form a Sierpinski
// triangle; other side counts and fractions give other self-similar clouds.
//
// # Quick Start
//
//	e := chaosgame.New(3, 0.5, chaosgame.WithSeed(1))
//	e.Layout(800, 800)
//	e.AdvanceN(50_000)
//
//	dc := gg.NewContext(800, 800)
//	_ = chaosgame.Draw(dc, e.Render(800, 800), chaosgame.DefaultStyle())
//	_ = dc.SavePNG("sierpinski.png")
//
// # Geometry
//
// The polygon is computed once, from the first canvas size the engine sees.
// Its vertices are reached by a cumulative walk of equal steps (the
// circumradius) turning by 2π/sides, and the whole walk is offset by half of
// the canvas center. Points live on the integer pixel grid; every coordinate
// is truncated toward zero.
//
// The fraction passed to New is the contraction fraction. The engine stores
// its complement and moves each new point that share of the way from the
// previous point to the chosen vertex, so a fraction of 0 lands exactly on
// the vertex.
//
// # Concurrency
//
// Engine guards its state with a mutex. Driver advances an engine on a ticker
// from its own goroutine while a window renders snapshots.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package chaosgame
