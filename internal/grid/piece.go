package grid

import (
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/nicolas-bolle/puzzlesolver/internal/puzzle"
	"github.com/nicolas-bolle/puzzlesolver/internal/set"
)

// Piece is a polyomino identified by an id, with its shape given as integer
// (i, j) offsets in the canonical orientation.  The color is only used for
// terminal rendering.
type Piece struct {
	id     string
	color  *color.Color
	coords [][2]int

	// Placement enumeration is quadratic in board size, and Board.Solutions
	// recompiles the puzzle on every call; memoize per board.
	cachedBoard      *Board
	cachedPlacements []puzzle.Placement
}

// NewPiece creates a piece from its canonical offsets.
func NewPiece(id string, c *color.Color, coords [][2]int) *Piece {
	if c == nil {
		c = color.New(color.FgWhite)
	}
	return &Piece{id: id, color: c, coords: coords}
}

// ID returns the piece's short identifier.
func (p *Piece) ID() string {
	return p.id
}

// Name implements puzzle.Piece.
func (p *Piece) Name() string {
	return "piece-" + p.id
}

// Size returns the number of squares the piece occupies.
func (p *Piece) Size() int {
	return len(p.coords)
}

// Placements enumerates the piece's legal placements on the board,
// deduplicated by occupied square set: for every translation within the
// scan window and every orientation, a placement is kept iff it lies
// entirely on the board and no earlier placement occupies the same squares.
// The scan window is [-r, max(N,M)+r) on both axes, where r is the largest
// absolute offset magnitude of the piece.
func (p *Piece) Placements(b puzzle.Board) []puzzle.Placement {
	gb, ok := b.(*Board)
	if !ok {
		return nil
	}
	if p.cachedBoard == gb {
		return p.cachedPlacements
	}

	r := 0
	for _, c := range p.coords {
		r = max(r, abs(c[0]), abs(c[1]))
	}
	bound := max(gb.n, gb.m) + r

	var placements []puzzle.Placement
	seen := set.NewSet[string]()

	for i := -r; i < bound; i++ {
		for j := -r; j < bound; j++ {
			for _, o := range Orientations {
				pl := Placement{I: i, J: j, O: o}
				squares := p.squaresAt(pl)

				names := make([]string, len(squares))
				for k, sq := range squares {
					names[k] = sq.Name()
				}
				if !gb.atomNames.ContainsAll(names...) {
					continue
				}

				slices.Sort(names)
				key := strings.Join(names, "|")
				if !seen.Contains(key) {
					seen.Add(key)
					placements = append(placements, pl)
				}
			}
		}
	}

	p.cachedBoard = gb
	p.cachedPlacements = placements
	return placements
}

// Atoms implements puzzle.Piece: the squares occupied by the placement.
func (p *Piece) Atoms(_ puzzle.Board, pl puzzle.Placement) []puzzle.Atom {
	gpl, ok := pl.(Placement)
	if !ok {
		return nil
	}
	squares := p.squaresAt(gpl)
	atoms := make([]puzzle.Atom, len(squares))
	for i, sq := range squares {
		atoms[i] = sq
	}
	return atoms
}

// squaresAt applies the placement's orientation and translation to the
// canonical offsets.
func (p *Piece) squaresAt(pl Placement) []Square {
	squares := make([]Square, len(p.coords))
	for k, c := range p.coords {
		i, j := pl.O.transform(c[0], c[1])
		squares[k] = Square{I: i + pl.I, J: j + pl.J}
	}
	return squares
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
