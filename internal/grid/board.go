package grid

import (
	"iter"

	"github.com/nicolas-bolle/puzzlesolver/internal/puzzle"
	"github.com/nicolas-bolle/puzzlesolver/internal/set"
)

// Board is an n x m rectangular board: n columns of squares along the i
// axis, m along the j axis.  Every square is a primary atom (must be
// covered exactly once); grid boards have no secondary atoms.
type Board struct {
	n, m int

	primary   []puzzle.Piece
	secondary []puzzle.Piece
	tertiary  []puzzle.Piece

	atoms     []puzzle.Atom
	atomNames *set.Set[string]
}

// NewBoard creates an n x m board with the given piece inventories:
// primary pieces must be placed exactly once, secondary pieces at most
// once, tertiary pieces any number of times.
func NewBoard(n, m int, primary, secondary, tertiary []*Piece) *Board {
	b := &Board{
		n:         n,
		m:         m,
		primary:   asPuzzlePieces(primary),
		secondary: asPuzzlePieces(secondary),
		tertiary:  asPuzzlePieces(tertiary),
		atomNames: set.NewSet[string](),
	}
	for i := range n {
		for j := range m {
			sq := Square{I: i, J: j}
			b.atoms = append(b.atoms, sq)
			b.atomNames.Add(sq.Name())
		}
	}
	return b
}

// N returns the board's extent along the i axis.
func (b *Board) N() int { return b.n }

// M returns the board's extent along the j axis.
func (b *Board) M() int { return b.m }

// PrimaryPieces implements puzzle.Board.
func (b *Board) PrimaryPieces() []puzzle.Piece { return b.primary }

// SecondaryPieces implements puzzle.Board.
func (b *Board) SecondaryPieces() []puzzle.Piece { return b.secondary }

// TertiaryPieces implements puzzle.Board.
func (b *Board) TertiaryPieces() []puzzle.Piece { return b.tertiary }

// PrimaryAtoms implements puzzle.Board.
func (b *Board) PrimaryAtoms() []puzzle.Atom { return b.atoms }

// SecondaryAtoms implements puzzle.Board.
func (b *Board) SecondaryAtoms() []puzzle.Atom { return nil }

// Solutions lazily enumerates the board's solutions.  A compile failure
// (invalid inventories) or a failed decode postcheck is yielded as the
// error of the final pair.
func (b *Board) Solutions() iter.Seq2[*puzzle.Solution, error] {
	return func(yield func(*puzzle.Solution, error) bool) {
		s, err := puzzle.NewSolver(b)
		if err != nil {
			yield(nil, err)
			return
		}
		for sol, err := range s.Solutions() {
			if !yield(sol, err) {
				return
			}
		}
	}
}

func asPuzzlePieces(pieces []*Piece) []puzzle.Piece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]puzzle.Piece, len(pieces))
	for i, p := range pieces {
		out[i] = p
	}
	return out
}
