package grid

import "github.com/fatih/color"

// Demo boards of increasing trickiness, handy for tests and the demo
// binary.

// Demo1 is a 3x3 board tiled by a small L, a T, and a domino.
func Demo1() *Board {
	return NewBoard(3, 3, []*Piece{
		SmallL("L", color.New(color.FgBlue)),
		T("T", color.New(color.FgHiYellow)),
		Two("I", color.New(color.FgWhite)),
	}, nil, nil)
}

// Demo2 is a 3x3 board whose pieces total ten squares: unsolvable.
func Demo2() *Board {
	return NewBoard(3, 3, []*Piece{
		SmallL("L", color.New(color.FgBlue)),
		T("T", color.New(color.FgHiYellow)),
		Three("I", color.New(color.FgWhite)),
	}, nil, nil)
}

// Demo3 is a 4x3 board with four primary pieces.
func Demo3() *Board {
	return NewBoard(4, 3, []*Piece{
		SmallL("L", color.New(color.FgBlue)),
		T("T", color.New(color.FgHiYellow)),
		Two("2", color.New(color.FgWhite)),
		Three("3", color.New(color.FgGreen)),
	}, nil, nil)
}

// Demo4 is a 3x2 board where all seven pieces are optional (secondary).
func Demo4() *Board {
	return NewBoard(3, 2, nil, []*Piece{
		BigL("L", color.New(color.FgRed)),
		Two("2", color.New(color.FgHiYellow)),
		SmallL("l.1", color.New(color.FgYellow)),
		SmallL("l.2", color.New(color.FgGreen)),
		Three("3.1", color.New(color.FgBlue)),
		Three("3.2", color.New(color.FgMagenta)),
		Four("4", color.New(color.FgHiMagenta)),
	}, nil)
}

// Demo5 is a 3x2 board covered by a single tertiary domino, placeable any
// number of times.
func Demo5() *Board {
	return NewBoard(3, 2, nil, nil, []*Piece{
		Two("2", color.New(color.FgBlue)),
	})
}
