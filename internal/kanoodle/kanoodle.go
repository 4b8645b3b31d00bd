// Package kanoodle defines the piece set and board of the Kanoodle puzzle
// game: twelve pieces totaling 55 squares on an 11 x 5 board.
//
// https://www.educationalinsights.com/shop/collections/kanoodle
package kanoodle

import (
	"github.com/fatih/color"

	"github.com/nicolas-bolle/puzzlesolver/internal/grid"
)

// PieceA is the orange piece.
func PieceA() *grid.Piece {
	return grid.NewPiece("A", color.New(color.FgHiYellow),
		[][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}})
}

// PieceB is the red piece.
func PieceB() *grid.Piece {
	return grid.NewPiece("B", color.New(color.FgRed),
		[][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}})
}

// PieceC is the dark blue piece.
func PieceC() *grid.Piece {
	return grid.NewPiece("C", color.New(color.FgBlue),
		[][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {1, 3}})
}

// PieceD is the light pink piece.
func PieceD() *grid.Piece {
	return grid.NewPiece("D", color.New(color.FgHiMagenta),
		[][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {1, 3}})
}

// PieceE is the dark green piece.
func PieceE() *grid.Piece {
	return grid.NewPiece("E", color.New(color.FgGreen),
		[][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}})
}

// PieceF is the white piece.
func PieceF() *grid.Piece {
	return grid.NewPiece("F", color.New(color.FgHiWhite),
		[][2]int{{0, 0}, {1, 0}, {1, 1}})
}

// PieceG is the light blue piece.
func PieceG() *grid.Piece {
	return grid.NewPiece("G", color.New(color.FgHiCyan),
		[][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}})
}

// PieceH is the pink piece.
func PieceH() *grid.Piece {
	return grid.NewPiece("H", color.New(color.FgMagenta),
		[][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}})
}

// PieceI is the yellow piece.
func PieceI() *grid.Piece {
	return grid.NewPiece("I", color.New(color.FgYellow),
		[][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}})
}

// PieceJ is the purple piece.
func PieceJ() *grid.Piece {
	return grid.NewPiece("J", color.New(color.FgHiBlue),
		[][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}})
}

// PieceK is the light green piece.
func PieceK() *grid.Piece {
	return grid.NewPiece("K", color.New(color.FgHiGreen),
		[][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})
}

// PieceL is the gray piece.
func PieceL() *grid.Piece {
	return grid.NewPiece("L", color.New(color.FgHiBlack),
		[][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}})
}

// Pieces returns all twelve Kanoodle pieces in booklet order.
func Pieces() []*grid.Piece {
	return []*grid.Piece{
		PieceA(), PieceB(), PieceC(), PieceD(), PieceE(), PieceF(),
		PieceG(), PieceH(), PieceI(), PieceJ(), PieceK(), PieceL(),
	}
}

// Board returns the full 11 x 5 Kanoodle board with every piece required.
func Board() *grid.Board {
	return grid.NewBoard(11, 5, Pieces(), nil, nil)
}
