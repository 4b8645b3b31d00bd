package grid

import "github.com/fatih/color"

// Stock pieces.  Offsets are in the canonical orientation; rotations and
// flips are handled by placement enumeration.

// SmallL is the three-square L piece.
func SmallL(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{0, 0}, {1, 0}, {0, 1}})
}

// BigL is the four-square L piece.
func BigL(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{0, 0}, {1, 0}, {0, 1}, {0, 2}})
}

// T is the four-square T piece.
func T(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}})
}

// Two is the domino: two squares in a line.
func Two(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{0, 0}, {1, 0}})
}

// Three is the straight tromino: three squares in a line.
func Three(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{-1, 0}, {0, 0}, {1, 0}})
}

// Four is the straight tetromino: four squares in a line.
func Four(id string, c *color.Color) *Piece {
	return NewPiece(id, c, [][2]int{{-1, 0}, {0, 0}, {1, 0}, {2, 0}})
}
