package dlx

import (
	"iter"
	"time"
)

// Solutions returns a lazy enumeration of every exact cover: each yielded
// value is a fresh list of row names covering every primary column exactly
// once and each secondary column at most once.  Solutions are produced in
// the deterministic order induced by input row and column order.
//
// The matrix is restored to its pristine state when the sequence finishes,
// including when the consumer breaks out early, so Solutions may be called
// again for a fresh, identical enumeration.
func (m *Matrix) Solutions() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		m.partial = m.partial[:0]
		m.search(yield)
	}
}

// search is the recursive step of Algorithm X.  It returns false once the
// consumer has stopped the enumeration; covers applied on the way down are
// unwound regardless, so an abandoned search still leaves the matrix clean.
func (m *Matrix) search(yield func([]string) bool) bool {
	if m.root.right == &m.root.node {
		// No uncovered primary columns remain: emit a snapshot.
		soln := make([]string, len(m.partial))
		copy(soln, m.partial)
		return yield(soln)
	}

	col := m.chooseColumn()
	m.cover(col)

	cont := true
	for r := col.down; r != &col.node && cont; r = r.down {
		m.partial = append(m.partial, r.row.name)

		for j := r.right; j != r; j = j.right {
			m.cover(j.column)
		}

		cont = m.search(yield)

		// Backtrack: uncover in reverse order.
		for j := r.left; j != r; j = j.left {
			m.uncover(j.column)
		}

		m.partial = m.partial[:len(m.partial)-1]
	}

	m.uncover(col)
	return cont
}

// chooseColumn selects the uncovered primary column with the fewest live
// entries, breaking ties by header-list order (leftmost wins).
func (m *Matrix) chooseColumn() *column {
	var chosen *column
	minSize := int(^uint(0) >> 1) // max int

	for c := m.root.right; c != &m.root.node; c = c.right {
		if c.column.size < minSize {
			chosen = c.column
			minSize = c.column.size
		}
	}

	return chosen
}

// Stats tracks search effort for one enumeration.
type Stats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     Info
}

// SolutionsWithStats behaves like Solutions while accumulating search
// statistics into stats.  TimeElapsed is set when the enumeration ends,
// whether it ran to completion or the consumer stopped early.
func (m *Matrix) SolutionsWithStats(stats *Stats) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		*stats = Stats{MatrixSize: m.Info()}
		start := time.Now()
		defer func() {
			stats.TimeElapsed = time.Since(start)
		}()

		m.partial = m.partial[:0]
		m.searchWithStats(yield, stats)
	}
}

func (m *Matrix) searchWithStats(yield func([]string) bool, stats *Stats) bool {
	stats.NodesVisited++

	if m.root.right == &m.root.node {
		stats.SolutionsFound++
		soln := make([]string, len(m.partial))
		copy(soln, m.partial)
		return yield(soln)
	}

	col := m.chooseColumn()
	m.cover(col)

	cont := true
	for r := col.down; r != &col.node && cont; r = r.down {
		m.partial = append(m.partial, r.row.name)

		for j := r.right; j != r; j = j.right {
			m.cover(j.column)
		}

		cont = m.searchWithStats(yield, stats)

		for j := r.left; j != r; j = j.left {
			m.uncover(j.column)
		}

		m.partial = m.partial[:len(m.partial)-1]
		stats.BacktrackCount++
	}

	m.uncover(col)
	return cont
}
