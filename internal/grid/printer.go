package grid

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/nicolas-bolle/puzzlesolver/internal/puzzle"
)

// Print writes the piece's shape to stdout, one "[]" per square, with the
// j axis pointing up.
func (p *Piece) Print() {
	minI, maxI := p.coords[0][0], p.coords[0][0]
	minJ, maxJ := p.coords[0][1], p.coords[0][1]
	for _, c := range p.coords {
		minI = min(minI, c[0])
		maxI = max(maxI, c[0])
		minJ = min(minJ, c[1])
		maxJ = max(maxJ, c[1])
	}

	occupied := make(map[[2]int]bool, len(p.coords))
	for _, c := range p.coords {
		occupied[[2]int{c[0], c[1]}] = true
	}

	for j := maxJ; j >= minJ; j-- {
		var line strings.Builder
		for i := minI; i <= maxI; i++ {
			if occupied[[2]int{i, j}] {
				line.WriteString("[]")
			} else {
				line.WriteString("  ")
			}
		}
		p.color.Println(line.String())
	}
}

// Print writes the board's dimensions and piece inventories to stdout.
func (b *Board) Print() {
	fmt.Printf("%d x %d grid board\n", b.n, b.m)
	for range b.m {
		fmt.Println(strings.Repeat("· ", b.n))
	}

	printPieceGroup("Primary pieces", b.primary)
	printPieceGroup("Secondary pieces", b.secondary)
	printPieceGroup("Tertiary pieces", b.tertiary)
}

func printPieceGroup(label string, pieces []puzzle.Piece) {
	fmt.Println()
	if len(pieces) == 0 {
		fmt.Println(color.HiBlackString("No %s", strings.ToLower(label)))
		return
	}
	fmt.Println(color.HiCyanString(label))
	for _, p := range pieces {
		if gp, ok := p.(*Piece); ok {
			fmt.Println()
			gp.Print()
		}
	}
}

// PrintSolution writes a colored cell map of the solution to stdout: each
// square shows the first character of the id of the piece covering it.
// Only solutions on grid boards can be rendered.
func PrintSolution(sol *puzzle.Solution) {
	b, ok := sol.Board.(*Board)
	if !ok {
		fmt.Println("not a grid board solution")
		return
	}

	type cell struct {
		ch rune
		c  *color.Color
	}
	cells := make(map[[2]int]cell)
	for _, pp := range sol.Placed {
		gp, ok := pp.Piece.(*Piece)
		if !ok {
			continue
		}
		pl, ok := pp.Placement.(Placement)
		if !ok {
			continue
		}
		ch := []rune(gp.id)[0]
		for _, sq := range gp.squaresAt(pl) {
			cells[[2]int{sq.I, sq.J}] = cell{ch: ch, c: gp.color}
		}
	}

	for j := b.m - 1; j >= 0; j-- {
		for i := range b.n {
			if c, ok := cells[[2]int{i, j}]; ok {
				fmt.Print(c.c.Sprintf("%c ", c.ch))
			} else {
				fmt.Print(color.HiBlackString("· "))
			}
		}
		fmt.Println()
	}
}
