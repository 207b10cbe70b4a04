package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultBoardSize = 64
	MinBoardSize     = 3
)

var (
	ErrBoardTooSmall   = errors.New("board is too small")
	ErrInvalidPosition = errors.New("tile position does not match its index")
	ErrStructureOnEdge = errors.New("first and last tiles must be plain")
)

// Board is an ordered sequence of tiles numbered 1..Size. It is not modified
// after construction.
type Board struct {
	tiles []Tile
}

// PlainTiles returns size plain tiles numbered 1..size.
func PlainTiles(size int) []Tile {
	tiles := make([]Tile, size)
	for i := range tiles {
		tiles[i] = NewPlainTile(i + 1)
	}

	return tiles
}

func NewBoard(tiles []Tile) (*Board, error) {
	if len(tiles) < MinBoardSize {
		return nil, fmt.Errorf("%w: %d tiles, need at least %d", ErrBoardTooSmall, len(tiles), MinBoardSize)
	}

	for i, tile := range tiles {
		if tile.Position != i+1 {
			return nil, fmt.Errorf("%w: tile %d at index %d", ErrInvalidPosition, tile.Position, i)
		}
	}

	if tiles[0].IsStructure() || tiles[len(tiles)-1].IsStructure() {
		return nil, ErrStructureOnEdge
	}

	owned := make([]Tile, len(tiles))
	copy(owned, tiles)

	return &Board{tiles: owned}, nil
}

func (that *Board) Size() int {
	return len(that.tiles)
}

// Tile returns the tile at a 1-based position. The position must be within 1..Size.
func (that *Board) Tile(position int) Tile {
	return that.tiles[position-1]
}

// Tiles returns a copy of the tiles in board order.
func (that *Board) Tiles() []Tile {
	tiles := make([]Tile, len(that.tiles))
	copy(tiles, that.tiles)

	return tiles
}

func (that *Board) CountStructures() int {
	count := 0
	for _, tile := range that.tiles {
		if tile.IsStructure() {
			count++
		}
	}

	return count
}

// Bounce folds a position back onto the board: overflow past the last tile is
// mirrored back from it, and anything below the first tile is floored at 1.
func (that *Board) Bounce(position int) int {
	last := len(that.tiles)
	if position > last {
		position = last - (position - last)
	}

	if position < 1 {
		position = 1
	}

	return position
}

func (that *Board) Contains(position int) bool {
	return position >= 1 && position <= len(that.tiles)
}
