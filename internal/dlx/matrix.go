// Package dlx solves the generalized exact cover problem using Knuth's
// dancing links technique for Algorithm X.
//
// A problem is given in row-first sparse form: named rows, named primary
// columns (each must be covered exactly once), named secondary columns (each
// may be covered at most once), and the set of columns each row fills.
// Solutions are enumerated lazily as lists of row names.
//
// See Knuth's paper at http://arxiv.org/abs/cs/0011047.
package dlx

import (
	"slices"
)

// node represents a "1" in the sparse matrix.  The four neighbor links each
// form a circular doubly-linked list; column and row point back at the
// node's column header and shared row label.
type node struct {
	left, right, up, down *node
	column                *column
	row                   *rowLabel
}

// column is a column header.  It embeds a node so it can be threaded into
// the same linked lists as its entries.
type column struct {
	node
	size int    // number of live entries in this column
	name string // column identifier
}

// rowLabel is shared by every entry of one row.
type rowLabel struct {
	name string
}

// newNode returns a node with all four neighbor links pointing at itself.
func newNode() *node {
	n := &node{}
	n.left = n
	n.right = n
	n.up = n
	n.down = n
	return n
}

// Matrix is the dancing links sparse matrix for one exact cover problem.
// The root's horizontal list threads only the currently uncovered primary
// column headers; secondary headers are reachable only through their
// entries.  A Matrix must not be shared between concurrent enumerations.
type Matrix struct {
	root    *column
	columns map[string]*column

	rowNames  []string
	primary   []string
	secondary []string
	entries   map[string][]string

	partial []string // row names selected so far during search
}

// New validates the schema and builds the linked structure.  Row names,
// primary column names, and secondary column names must each be pairwise
// distinct; the primary and secondary sets must be disjoint; entries must
// reference known rows and columns.  Violations are reported as a
// *SchemaError.  Rows absent from entries are built empty and can never
// join a solution.
func New(rowNames, primaryCols, secondaryCols []string, entries map[string][]string) (*Matrix, error) {
	if err := CheckDistinct(rowNames); err != nil {
		return nil, err
	}
	if err := CheckDistinct(primaryCols); err != nil {
		return nil, err
	}
	if err := CheckDistinct(secondaryCols); err != nil {
		return nil, err
	}
	if err := CheckDisjoint(primaryCols, secondaryCols); err != nil {
		return nil, err
	}

	entryRows := make([]string, 0, len(entries))
	for name := range entries {
		entryRows = append(entryRows, name)
	}
	slices.Sort(entryRows)
	if err := CheckSubset(entryRows, rowNames); err != nil {
		return nil, err
	}

	allCols := make([]string, 0, len(primaryCols)+len(secondaryCols))
	allCols = append(allCols, primaryCols...)
	allCols = append(allCols, secondaryCols...)
	for _, rowName := range rowNames {
		if err := CheckSubset(entries[rowName], allCols); err != nil {
			return nil, err
		}
	}

	m := &Matrix{
		rowNames:  slices.Clone(rowNames),
		primary:   slices.Clone(primaryCols),
		secondary: slices.Clone(secondaryCols),
		entries:   entries,
	}
	m.build()
	return m, nil
}

// build allocates the root, the column headers, and one entry node per "1",
// threading everything into the toroidal linked structure.
func (m *Matrix) build() {
	m.root = &column{name: "root"}
	m.root.left = &m.root.node
	m.root.right = &m.root.node

	m.columns = make(map[string]*column, len(m.primary)+len(m.secondary))
	for _, name := range m.primary {
		col := m.newColumn(name)

		// Thread primary headers into the root's horizontal list,
		// appending to the left of the root to preserve input order.
		col.left = m.root.left
		col.right = &m.root.node
		m.root.left.right = &col.node
		m.root.left = &col.node
	}
	for _, name := range m.secondary {
		// Secondary headers exist but are never part of the header list.
		m.newColumn(name)
	}

	for _, rowName := range m.rowNames {
		row := &rowLabel{name: rowName}
		var first *node
		for _, colName := range m.entries[rowName] {
			col := m.columns[colName]
			n := newNode()
			n.column = col
			n.row = row

			// Append to the bottom of the column.
			n.down = &col.node
			n.up = col.up
			col.up.down = n
			col.up = n
			col.size++

			// Link into the row's own circular list.
			if first == nil {
				first = n
			} else {
				n.left = first.left
				n.right = first
				first.left.right = n
				first.left = n
			}
		}
	}
}

func (m *Matrix) newColumn(name string) *column {
	col := &column{name: name}
	col.left = &col.node
	col.right = &col.node
	col.up = &col.node
	col.down = &col.node
	col.column = col
	m.columns[name] = col
	return col
}

// cover removes col from the header list, then unlinks every row that has an
// entry in col from all other columns those rows touch.
func (m *Matrix) cover(col *column) {
	col.right.left = col.left
	col.left.right = col.right

	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.column.size--
		}
	}
}

// uncover is the exact inverse of cover.  Traversal order is reversed so
// that relinking restores the original neighbor pointers.
func (m *Matrix) uncover(col *column) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.column.size++
			j.down.up = j
			j.up.down = j
		}
	}

	col.right.left = &col.node
	col.left.right = &col.node
}

// Info describes the constraint matrix as built.
type Info struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of non-zero entries
}

// Info returns size information for the matrix.
func (m *Matrix) Info() Info {
	info := Info{
		Columns: len(m.primary) + len(m.secondary),
		Rows:    len(m.rowNames),
	}
	for _, rowName := range m.rowNames {
		info.TotalNodes += len(m.entries[rowName])
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// RowNames returns the row names in input order.
func (m *Matrix) RowNames() []string {
	return slices.Clone(m.rowNames)
}

// PrimaryColumns returns the primary column names in input order.
func (m *Matrix) PrimaryColumns() []string {
	return slices.Clone(m.primary)
}

// SecondaryColumns returns the secondary column names in input order.
func (m *Matrix) SecondaryColumns() []string {
	return slices.Clone(m.secondary)
}
