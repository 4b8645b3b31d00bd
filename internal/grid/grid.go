// Package grid implements placement puzzles on rectangular boards with
// Tetris-like polyomino pieces.
//
// A piece is a list of integer (i, j) offsets in a canonical orientation.
// Placements position a piece by translation plus one of the eight rigid
// motions: the four rotations U, R, D, L, optionally composed with a flip
// across the i-axis (FU, FR, FD, FL).  Placements that occupy the same set
// of board squares are deduplicated, so symmetric pieces do not produce
// duplicate solutions.
package grid

import "fmt"

// Square is a single cell on a grid board.
type Square struct {
	I, J int
}

// Name implements puzzle.Atom.
func (s Square) Name() string {
	return fmt.Sprintf("square_%d_%d", s.I, s.J)
}

// Orientation is one of the eight rigid motions of a piece: four rotations,
// each optionally preceded by a flip across the i-axis.
type Orientation uint8

const (
	U Orientation = iota // identity
	R                    // rotate 90 degrees clockwise
	D                    // rotate 180 degrees
	L                    // rotate 90 degrees counter-clockwise
	FU                   // flip, then U
	FR                   // flip, then R
	FD                   // flip, then D
	FL                   // flip, then L
)

// Orientations lists all eight orientations in enumeration order.
var Orientations = [8]Orientation{U, R, D, L, FU, FR, FD, FL}

var orientationNames = [8]string{"U", "R", "D", "L", "FU", "FR", "FD", "FL"}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// transform applies the orientation to a canonical offset: flip across the
// i-axis first, then rotate.
func (o Orientation) transform(i, j int) (int, int) {
	if o >= FU {
		i = -i
	}
	switch o % 4 {
	case R:
		return j, -i
	case D:
		return -i, -j
	case L:
		return -j, i
	default:
		return i, j
	}
}

// Placement positions a piece at translation (I, J) in orientation O.
type Placement struct {
	I, J int
	O    Orientation
}

// Name implements puzzle.Placement.
func (p Placement) Name() string {
	return fmt.Sprintf("placement_%d_%d_%s", p.I, p.J, p.O)
}
