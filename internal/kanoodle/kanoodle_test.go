package kanoodle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceInventory(t *testing.T) {
	pieces := Pieces()
	require.Len(t, pieces, 12)

	names := make(map[string]bool)
	total := 0
	for _, p := range pieces {
		assert.False(t, names[p.Name()], "duplicate piece %s", p.Name())
		names[p.Name()] = true
		total += p.Size()
	}

	// The twelve pieces exactly tile the 11 x 5 board.
	assert.Equal(t, 55, total)
}

func TestFullBoardFirstSolution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full Kanoodle search in short mode")
	}

	board := Board()
	found := false
	for sol, err := range board.Solutions() {
		require.NoError(t, err)
		require.NotNil(t, sol)
		assert.Len(t, sol.Placed, 12)
		found = true
		break
	}
	assert.True(t, found, "Kanoodle board has no solution")
}
