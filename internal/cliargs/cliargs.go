// Package cliargs parses the positional arguments shared by the chaosgame
// commands: a polygon side count and a contraction fraction.
package cliargs

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors returned by Parse. Match them with errors.Is.
var (
	// ErrArgCount is returned when there are not exactly two arguments.
	ErrArgCount = errors.New("cliargs: expected 2 arguments")

	// ErrSides is returned when the side count is not an integer >= 3.
	ErrSides = errors.New("cliargs: invalid number of sides")

	// ErrFraction is returned when the fraction is not a number in [0, 1].
	ErrFraction = errors.New("cliargs: invalid fraction")
)

// Help lines printed after an argument error.
const (
	SidesHelp    = "First argument must be an integer for the number of regular polygon sides."
	FractionHelp = "Second argument must be a double (fraction) for the distance between the current point and the next randomly picked vertex."
)

// MinSides is the smallest polygon accepted on the command line.
const MinSides = 3

// Args are the parsed positional arguments.
type Args struct {
	Sides    int
	Fraction float64
}

// Parse validates exactly two arguments: sides and fraction.
func Parse(args []string) (Args, error) {
	if len(args) != 2 {
		return Args{}, fmt.Errorf("%w: got %d", ErrArgCount, len(args))
	}

	sides, err := strconv.Atoi(args[0])
	if err != nil {
		return Args{}, fmt.Errorf("%w: %q is not an integer", ErrSides, args[0])
	}
	if sides < MinSides {
		return Args{}, fmt.Errorf("%w: %d is less than %d", ErrSides, sides, MinSides)
	}

	fraction, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return Args{}, fmt.Errorf("%w: %q is not a number", ErrFraction, args[1])
	}
	if fraction < 0 || fraction > 1 {
		return Args{}, fmt.Errorf("%w: %v is outside [0, 1]", ErrFraction, fraction)
	}

	return Args{Sides: sides, Fraction: fraction}, nil
}

// Help returns the explanatory lines for an error from Parse.
func Help(err error) []string {
	switch {
	case errors.Is(err, ErrArgCount):
		return []string{SidesHelp, FractionHelp}
	case errors.Is(err, ErrSides):
		return []string{SidesHelp}
	case errors.Is(err, ErrFraction):
		return []string{FractionHelp}
	}
	return nil
}
