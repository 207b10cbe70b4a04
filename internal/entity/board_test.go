package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Accepts contiguous tiles with plain ends", func(t *testing.T) {
		// Given: plain tiles with a hotel in the middle
		tiles := PlainTiles(5)
		tiles[2] = NewSkipStructure(3)

		// When: building the board
		board, err := NewBoard(tiles)

		// Then: the board keeps every tile in order
		require.NoError(t, err)
		assert.Equal(t, 5, board.Size())
		assert.Equal(t, 1, board.CountStructures())
		for i, tile := range board.Tiles() {
			assert.Equal(t, i+1, tile.Position)
		}
	})

	t.Run("Rejects boards below the minimum size", func(t *testing.T) {
		_, err := NewBoard(PlainTiles(2))
		assert.ErrorIs(t, err, ErrBoardTooSmall)
	})

	t.Run("Rejects misnumbered tiles", func(t *testing.T) {
		tiles := PlainTiles(4)
		tiles[2] = NewPlainTile(2)

		_, err := NewBoard(tiles)
		assert.ErrorIs(t, err, ErrInvalidPosition)
	})

	t.Run("Rejects structures on the first or last tile", func(t *testing.T) {
		first := PlainTiles(4)
		first[0] = NewSkipStructure(1)
		_, err := NewBoard(first)
		assert.ErrorIs(t, err, ErrStructureOnEdge)

		last := PlainTiles(4)
		last[3] = NewSkipStructure(4)
		_, err = NewBoard(last)
		assert.ErrorIs(t, err, ErrStructureOnEdge)
	})

	t.Run("Does not share the caller's slice", func(t *testing.T) {
		// Given: a board built from a slice
		tiles := PlainTiles(4)
		board, err := NewBoard(tiles)
		require.NoError(t, err)

		// When: the caller mutates the slice and the returned copy
		tiles[1] = NewSkipStructure(2)
		board.Tiles()[2] = NewSkipStructure(3)

		// Then: the board is unchanged
		assert.Zero(t, board.CountStructures())
	})
}

func TestBoard_Bounce(t *testing.T) {
	board, err := NewBoard(PlainTiles(DefaultBoardSize))
	require.NoError(t, err)

	tests := []struct {
		name     string
		position int
		expected int
	}{
		{"inside stays", 30, 30},
		{"last tile stays", 64, 64},
		{"overflow mirrors", 68, 60},
		{"overflow by one", 65, 63},
		{"below one floors", 0, 1},
		{"negative floors", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, board.Bounce(tt.position))
		})
	}

	t.Run("Reflection past the start floors at one", func(t *testing.T) {
		small, err := NewBoard(PlainTiles(3))
		require.NoError(t, err)

		assert.Equal(t, 1, small.Bounce(9))
	})
}
