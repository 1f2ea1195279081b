package spots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkingspot/internal/entities"
)

func TestGenerate(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 25, 100} {
		board := Generate(capacity)
		require.Len(t, board, capacity)
		for i, s := range board {
			assert.Equal(t, i+1, s.ID)
			assert.Equal(t, entities.SpotFree, s.Status)
		}
	}
}

func TestGenerateNegativeCapacity(t *testing.T) {
	assert.Empty(t, Generate(-5))
}

func TestFirstFree(t *testing.T) {
	board := Generate(3)
	first, ok := FirstFree(board)
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	board[0].Status = entities.SpotOccupied
	first, ok = FirstFree(board)
	require.True(t, ok)
	assert.Equal(t, 2, first.ID)
}

func TestFirstFreeEmptyBoard(t *testing.T) {
	_, ok := FirstFree(Generate(0))
	assert.False(t, ok)

	board := Generate(2)
	board[0].Status = entities.SpotOccupied
	board[1].Status = entities.SpotOccupied
	_, ok = FirstFree(board)
	assert.False(t, ok)
}
