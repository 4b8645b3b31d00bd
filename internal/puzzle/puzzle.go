// Package puzzle compiles piece-placement puzzles into generalized exact
// cover problems and decodes the covers back into placements.
//
// A puzzle is described by a Board: three piece inventories and two atom
// inventories.  In the exact cover formulation each row is one placed piece
// and each column is either an atom or a piece "key":
//
//   - primary atoms must be filled exactly once (primary columns)
//   - secondary atoms may be filled at most once (secondary columns)
//   - primary pieces must be placed exactly once (key primary column)
//   - secondary pieces may be placed at most once (key secondary column)
//   - tertiary pieces may be placed any number of times (no key column)
package puzzle

import (
	"fmt"
	"iter"

	"github.com/nicolas-bolle/puzzlesolver/internal/dlx"
	"github.com/nicolas-bolle/puzzlesolver/internal/set"
)

// Atom is a single fillable cell of a board, identified by a stable name.
type Atom interface {
	Name() string
}

// Placement is one rigid positioning of a piece, identified by a stable name.
type Placement interface {
	Name() string
}

// Piece is anything that can be placed on a board.  Placements enumerates
// the legal placements on the given board; Atoms reports the atoms occupied
// by one of those placements.
type Piece interface {
	Name() string
	Placements(b Board) []Placement
	Atoms(b Board, p Placement) []Atom
}

// Board describes one puzzle instance.
type Board interface {
	PrimaryPieces() []Piece
	SecondaryPieces() []Piece
	TertiaryPieces() []Piece
	PrimaryAtoms() []Atom
	SecondaryAtoms() []Atom
}

// Solver holds the compiled exact cover instance for one board together
// with the side table used to decode covers back into placements.
type Solver struct {
	board  Board
	matrix *dlx.Matrix
	rows   map[string]PlacedPiece
}

// NewSolver validates the board and compiles it into an exact cover
// problem.  Identity collisions, overlapping piece classes, and pieces
// referring to atoms outside the board's inventory are reported as a
// *dlx.SchemaError.
func NewSolver(b Board) (*Solver, error) {
	if err := validateBoard(b); err != nil {
		return nil, err
	}

	atomNames := set.Union(atomNameSet(b.PrimaryAtoms()), atomNameSet(b.SecondaryAtoms()))

	var rowNames, primaryCols, secondaryCols []string
	entries := make(map[string][]string)
	rows := make(map[string]PlacedPiece)

	for _, a := range b.PrimaryAtoms() {
		primaryCols = append(primaryCols, a.Name())
	}
	for _, a := range b.SecondaryAtoms() {
		secondaryCols = append(secondaryCols, a.Name())
	}

	addPiece := func(p Piece, keyed bool) error {
		for _, pl := range p.Placements(b) {
			rowName := fmt.Sprintf("%s_%s", p.Name(), pl.Name())
			var cols []string
			for _, a := range p.Atoms(b, pl) {
				if !atomNames.Contains(a.Name()) {
					return &dlx.SchemaError{
						Message: fmt.Sprintf("Extra elements found such as '%s'", a.Name()),
					}
				}
				cols = append(cols, a.Name())
			}
			if keyed {
				cols = append(cols, p.Name())
			}
			entries[rowName] = cols
			rows[rowName] = PlacedPiece{Piece: p, Placement: pl}
			rowNames = append(rowNames, rowName)
		}
		return nil
	}

	// Primary pieces get a key column that must be covered exactly once,
	// secondary pieces one that may be covered at most once, tertiary
	// pieces none at all.
	for _, p := range b.PrimaryPieces() {
		if err := addPiece(p, true); err != nil {
			return nil, err
		}
		primaryCols = append(primaryCols, p.Name())
	}
	for _, p := range b.SecondaryPieces() {
		if err := addPiece(p, true); err != nil {
			return nil, err
		}
		secondaryCols = append(secondaryCols, p.Name())
	}
	for _, p := range b.TertiaryPieces() {
		if err := addPiece(p, false); err != nil {
			return nil, err
		}
	}

	matrix, err := dlx.New(rowNames, primaryCols, secondaryCols, entries)
	if err != nil {
		return nil, err
	}

	return &Solver{board: b, matrix: matrix, rows: rows}, nil
}

// validateBoard checks the board inventories before compilation.
func validateBoard(b Board) error {
	primaryPieces := pieceNames(b.PrimaryPieces())
	secondaryPieces := pieceNames(b.SecondaryPieces())
	tertiaryPieces := pieceNames(b.TertiaryPieces())
	primaryAtoms := atomNames(b.PrimaryAtoms())
	secondaryAtoms := atomNames(b.SecondaryAtoms())

	for _, names := range [][]string{
		primaryPieces, secondaryPieces, tertiaryPieces,
		primaryAtoms, secondaryAtoms,
	} {
		if err := dlx.CheckDistinct(names); err != nil {
			return err
		}
	}

	allPieces := concat(primaryPieces, secondaryPieces, tertiaryPieces)
	if err := dlx.CheckDisjoint(primaryPieces, secondaryPieces); err != nil {
		return err
	}
	if err := dlx.CheckDisjoint(primaryPieces, tertiaryPieces); err != nil {
		return err
	}
	if err := dlx.CheckDisjoint(secondaryPieces, tertiaryPieces); err != nil {
		return err
	}

	allAtoms := concat(primaryAtoms, secondaryAtoms)
	if err := dlx.CheckDisjoint(primaryAtoms, secondaryAtoms); err != nil {
		return err
	}
	return dlx.CheckDisjoint(allAtoms, allPieces)
}

// Solutions lazily enumerates the puzzle's solutions in the deterministic
// order induced by the board's inventories.  A non-nil error means a
// decoded cover failed the structural postcheck (*InternalError); the
// enumeration stops after yielding it.
func (s *Solver) Solutions() iter.Seq2[*Solution, error] {
	return func(yield func(*Solution, error) bool) {
		for cover := range s.matrix.Solutions() {
			sol, err := s.decode(cover)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(sol, nil) {
				return
			}
		}
	}
}

// Matrix exposes the compiled cover matrix, mainly for introspection.
func (s *Solver) Matrix() *dlx.Matrix {
	return s.matrix
}

// decode maps a cover (a list of row names) back to placed pieces and runs
// the structural validity check.
func (s *Solver) decode(cover []string) (*Solution, error) {
	placed := make([]PlacedPiece, 0, len(cover))
	for _, rowName := range cover {
		pp, ok := s.rows[rowName]
		if !ok {
			return nil, internalErrorf("unknown row '%s' in cover", rowName)
		}
		placed = append(placed, pp)
	}
	return newSolution(s.board, placed)
}

func pieceNames(pieces []Piece) []string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Name()
	}
	return names
}

func atomNames(atoms []Atom) []string {
	names := make([]string, len(atoms))
	for i, a := range atoms {
		names[i] = a.Name()
	}
	return names
}

func atomNameSet(atoms []Atom) *set.Set[string] {
	s := set.NewSet[string]()
	for _, a := range atoms {
		s.Add(a.Name())
	}
	return s
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
