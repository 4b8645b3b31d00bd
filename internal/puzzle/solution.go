package puzzle

import "github.com/nicolas-bolle/puzzlesolver/internal/set"

// PlacedPiece pairs a piece with one of its placements.
type PlacedPiece struct {
	Piece     Piece
	Placement Placement
}

// Solution is an ordered list of placed pieces satisfying the board's
// constraints: every primary piece placed exactly once, secondary pieces at
// most once, tertiary pieces any number of times, primary atoms covered
// exactly once and secondary atoms at most once.
type Solution struct {
	Board  Board
	Placed []PlacedPiece
}

// newSolution assembles a Solution and runs the structural validity check.
// A failure means the cover matrix and the board disagree, which should not
// happen; it is reported as an *InternalError.
func newSolution(b Board, placed []PlacedPiece) (*Solution, error) {
	s := &Solution{Board: b, Placed: placed}
	if err := s.check(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Solution) check() error {
	pieceCounts := make(map[string]int)
	atomCounts := make(map[string]int)
	for _, pp := range s.Placed {
		pieceCounts[pp.Piece.Name()]++
		for _, a := range pp.Piece.Atoms(s.Board, pp.Placement) {
			atomCounts[a.Name()]++
		}
	}

	for _, p := range s.Board.PrimaryPieces() {
		if n := pieceCounts[p.Name()]; n != 1 {
			return internalErrorf("expected exactly 1 placement of '%s', found %d", p.Name(), n)
		}
	}
	for _, p := range s.Board.SecondaryPieces() {
		if n := pieceCounts[p.Name()]; n > 1 {
			return internalErrorf("expected at most 1 placement of '%s', found %d", p.Name(), n)
		}
	}

	known := set.NewSet[string]()
	for _, p := range s.Board.PrimaryPieces() {
		known.Add(p.Name())
	}
	for _, p := range s.Board.SecondaryPieces() {
		known.Add(p.Name())
	}
	for _, p := range s.Board.TertiaryPieces() {
		known.Add(p.Name())
	}
	for _, pp := range s.Placed {
		if !known.Contains(pp.Piece.Name()) {
			return internalErrorf("placed piece '%s' is not on the board", pp.Piece.Name())
		}
	}

	for _, a := range s.Board.SecondaryAtoms() {
		if n := atomCounts[a.Name()]; n > 1 {
			return internalErrorf("secondary atom '%s' covered %d times", a.Name(), n)
		}
	}
	for _, a := range s.Board.PrimaryAtoms() {
		if n := atomCounts[a.Name()]; n != 1 {
			return internalErrorf("primary atom '%s' covered %d times", a.Name(), n)
		}
	}
	inventory := set.Union(atomNameSet(s.Board.PrimaryAtoms()), atomNameSet(s.Board.SecondaryAtoms()))
	for name := range atomCounts {
		if !inventory.Contains(name) {
			return internalErrorf("covered atom '%s' is not on the board", name)
		}
	}

	return nil
}

// Pieces returns the placed pieces in placement order.
func (s *Solution) Pieces() []Piece {
	pieces := make([]Piece, len(s.Placed))
	for i, pp := range s.Placed {
		pieces[i] = pp.Piece
	}
	return pieces
}
