package goose

import (
	"fmt"

	"github.com/rocketscienceinc/goose-backend/internal/entity"
)

// Source is the random source used for board generation and dice.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type BoardGenerator struct {
	rng Source
}

func NewBoardGenerator(rng Source) *BoardGenerator {
	return &BoardGenerator{rng: rng}
}

func (that *BoardGenerator) Generate(size int) (*entity.Board, error) {
	return GenerateBoard(size, that.rng)
}

// GenerateBoard builds a board of size tiles and replaces between 1 and
// floor(0.8*size) distinct interior tiles with hotels or bridges, chosen 50/50.
func GenerateBoard(size int, rng Source) (*entity.Board, error) {
	if size < entity.MinBoardSize {
		return nil, fmt.Errorf("%w: %d tiles, need at least %d", entity.ErrBoardTooSmall, size, entity.MinBoardSize)
	}

	tiles := entity.PlainTiles(size)

	interior := make([]int, size-2)
	for i := range interior {
		interior[i] = i + 2
	}

	count := 1 + rng.IntN(size*4/5)
	if count > len(interior) {
		count = len(interior)
	}

	// partial Fisher-Yates: the first count entries become a sample without replacement
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(interior)-i)
		interior[i], interior[j] = interior[j], interior[i]

		structure, err := newStructure(interior[i], rng)
		if err != nil {
			return nil, fmt.Errorf("failed to place structure: %w", err)
		}
		tiles[interior[i]-1] = structure
	}

	board, err := entity.NewBoard(tiles)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	return board, nil
}

func newStructure(position int, rng Source) (entity.Tile, error) {
	if rng.IntN(2) == 0 {
		return entity.NewSkipStructure(position), nil
	}

	offset := entity.MinJumpOffset + rng.IntN(entity.MaxJumpOffset-entity.MinJumpOffset+1)

	return entity.NewJumpStructure(position, offset)
}
