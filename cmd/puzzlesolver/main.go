package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/nicolas-bolle/puzzlesolver/internal/grid"
	"github.com/nicolas-bolle/puzzlesolver/internal/kanoodle"
	"github.com/nicolas-bolle/puzzlesolver/internal/puzzle"
)

func main() {
	fmt.Println("Polyomino Puzzle Solver")
	fmt.Println("=======================")

	demos := []struct {
		name  string
		board *grid.Board
	}{
		{"Demo 1: 3x3, L + T + domino", grid.Demo1()},
		{"Demo 2: 3x3, L + T + tromino (impossible)", grid.Demo2()},
		{"Demo 3: 4x3, four pieces", grid.Demo3()},
		{"Demo 4: 3x2, seven optional pieces", grid.Demo4()},
		{"Demo 5: 3x2, tertiary domino", grid.Demo5()},
	}

	for i, demo := range demos {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Board"), i+1, color.HiYellowString(demo.name))
		demo.board.Print()
		solveBoard(demo.board)
		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	solveKanoodle()
}

func solveBoard(b *grid.Board) {
	fmt.Println(color.HiGreenString("\nSolving..."))
	start := time.Now()

	count := 0
	var first *puzzle.Solution
	for sol, err := range b.Solutions() {
		if err != nil {
			fmt.Printf("%s %v\n", color.HiRedString("✗ solver error:"), err)
			return
		}
		if first == nil {
			first = sol
		}
		count++
	}
	elapsed := time.Since(start)

	if count == 0 {
		fmt.Printf("%s (%.3fms)\n", color.HiRedString("✗ No solutions"), ms(elapsed))
		return
	}

	fmt.Printf("%s (%.3fms)\n",
		color.HiGreenString("✓ Found %d solutions", count), ms(elapsed))
	fmt.Println(color.HiBlueString("First solution:"))
	grid.PrintSolution(first)
}

func solveKanoodle() {
	fmt.Printf("\n%s\n", color.HiYellowString("Kanoodle: 11x5 board, 12 pieces"))

	board := kanoodle.Board()
	solver, err := puzzle.NewSolver(board)
	if err != nil {
		fmt.Printf("%s %v\n", color.HiRedString("✗ compile error:"), err)
		return
	}

	info := solver.Matrix().Info()
	fmt.Printf("Constraint matrix: %s columns, %s rows, %s nodes (%.2f%% dense)\n",
		color.HiYellowString("%d", info.Columns),
		color.HiYellowString("%d", info.Rows),
		color.HiYellowString("%d", info.TotalNodes),
		info.Density)

	fmt.Println(color.HiGreenString("\nSearching for the first solution..."))
	start := time.Now()
	var first *puzzle.Solution
	for sol, err := range solver.Solutions() {
		if err != nil {
			fmt.Printf("%s %v\n", color.HiRedString("✗ solver error:"), err)
			return
		}
		first = sol
		break
	}
	elapsed := time.Since(start)

	if first == nil {
		fmt.Println(color.HiRedString("✗ No solution found"))
		return
	}

	fmt.Printf("%s (%.3fms)\n", color.HiGreenString("✓ Solved!"), ms(elapsed))
	grid.PrintSolution(first)
}

func ms(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
