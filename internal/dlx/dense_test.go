package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDenseBasic(t *testing.T) {
	primary := [][]int{
		{1, 0, 0, 1, 0, 0, 1}, // A
		{1, 0, 0, 1, 0, 0, 0}, // B
		{0, 0, 0, 1, 1, 0, 1}, // C
		{0, 0, 1, 0, 1, 1, 0}, // D
		{0, 1, 1, 0, 0, 1, 1}, // E
		{0, 0, 0, 0, 0, 0, 1}, // F
		{0, 1, 0, 0, 0, 0, 0}, // G
	}
	rowNames := []string{"A", "B", "C", "D", "E", "F", "G"}

	m, err := FromDense(primary, nil, rowNames, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ADG", "BDFG"}, sortedSolutions(m))
}

func TestFromDenseSecondaryProblem(t *testing.T) {
	// The secondary column is optional to cover and won't be covered if
	// not necessary.  H only fills the secondary column, so it is never
	// part of a solution, and CFG is excluded because it would cover the
	// secondary column twice.
	primary := [][]int{
		{1, 1, 0, 0}, // A
		{0, 0, 1, 1}, // B
		{0, 1, 1, 0}, // C
		{1, 0, 0, 1}, // D
		{1, 0, 0, 1}, // E
		{1, 0, 0, 0}, // F
		{0, 0, 0, 1}, // G
		{0, 0, 0, 0}, // H
	}
	secondary := [][]int{
		{0}, {0}, {0}, {0}, {1}, {1}, {1}, {1},
	}
	rowNames := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	m, err := FromDense(primary, secondary, rowNames, nil, nil)
	require.NoError(t, err)

	solns := sortedSolutions(m)
	assert.Equal(t, []string{"AB", "CD", "CE"}, solns)
	for _, s := range solns {
		assert.NotContains(t, s, "H")
	}
}

func TestFromDenseDefaults(t *testing.T) {
	m, err := FromDense(
		[][]int{{0, 0, 0}},
		[][]int{{0, 0}},
		nil, nil, nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"0"}, m.RowNames())
	assert.Equal(t, []string{"primary_0", "primary_1", "primary_2"}, m.PrimaryColumns())
	assert.Equal(t, []string{"secondary_0", "secondary_1"}, m.SecondaryColumns())
}

func TestFromDenseTranslation(t *testing.T) {
	m, err := FromDense(
		[][]int{{1, 0}, {0, 1}},
		[][]int{{1}, {0}},
		[]string{"row1", "row2"},
		[]string{"col1", "col2"},
		[]string{"col3"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"row1", "row2"}, m.RowNames())
	assert.Equal(t, []string{"col1", "col2"}, m.PrimaryColumns())
	assert.Equal(t, []string{"col3"}, m.SecondaryColumns())
	assert.Equal(t, []string{"col1", "col3"}, m.entries["row1"])
	assert.Equal(t, []string{"col2"}, m.entries["row2"])
}

func TestFromDenseChecks(t *testing.T) {
	tests := []struct {
		name           string
		primary        [][]int
		secondary      [][]int
		rowNames       []string
		primaryNames   []string
		secondaryNames []string
		wantMsg        string
	}{
		{
			name:      "row count mismatch between blocks",
			primary:   [][]int{{0, 0}, {0, 0}},
			secondary: [][]int{{0}},
			rowNames:  []string{"row1", "row2"},
			wantMsg:   "primary has 2 rows while secondary has 1 rows",
		},
		{
			name:     "ragged primary block",
			primary:  [][]int{{0, 0}, {0}},
			rowNames: []string{"row1", "row2"},
			wantMsg:  "primary row 1 has 1 columns, expected 2",
		},
		{
			name:      "wrong row name count",
			primary:   [][]int{{0, 0}, {0, 0}},
			secondary: [][]int{{0}, {0}},
			rowNames:  []string{"row"},
			wantMsg:   "1 rows specified, expected 2",
		},
		{
			name:         "wrong column name count",
			primary:      [][]int{{0, 0}, {0, 0}},
			secondary:    [][]int{{0}, {0}},
			rowNames:     []string{"row1", "row2"},
			primaryNames: []string{"col"},
			wantMsg:      "1 columns specified, expected 2",
		},
		{
			name:           "wrong secondary column name count",
			primary:        [][]int{{0, 0}, {0, 0}},
			secondary:      [][]int{{0}, {0}},
			rowNames:       []string{"row1", "row2"},
			primaryNames:   []string{"col1", "col2"},
			secondaryNames: []string{"col3", "col4"},
			wantMsg:        "2 secondary columns specified, expected 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDense(tt.primary, tt.secondary, tt.rowNames, tt.primaryNames, tt.secondaryNames)
			require.Error(t, err)
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	// Successful construction.
	_, err := FromDense(
		[][]int{{0, 0}, {0, 0}},
		[][]int{{0}, {0}},
		[]string{"row1", "row2"},
		[]string{"col1", "col2"},
		[]string{"col3"},
	)
	assert.NoError(t, err)
}

func TestFromDenseMatchesSparse(t *testing.T) {
	// The same problem phrased sparse and dense must enumerate the same
	// solution sets.
	primary := [][]int{
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 1, 1, 0},
		{1, 0, 0, 1},
	}
	rowNames := []string{"A", "B", "C", "D"}

	dense, err := FromDense(primary, nil, rowNames, []string{"w", "x", "y", "z"}, nil)
	require.NoError(t, err)

	sparse, err := New(rowNames, []string{"w", "x", "y", "z"}, nil, map[string][]string{
		"A": {"w", "x"},
		"B": {"y", "z"},
		"C": {"x", "y"},
		"D": {"w", "z"},
	})
	require.NoError(t, err)

	assert.Equal(t, sortedSolutions(sparse), sortedSolutions(dense))
}
