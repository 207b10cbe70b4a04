package goose

import "github.com/rocketscienceinc/goose-backend/internal/entity"

type Dice struct {
	rng Source
}

func NewDice(rng Source) *Dice {
	return &Dice{rng: rng}
}

// Roll returns a uniform value in 1..6.
func (that *Dice) Roll() int {
	return entity.MinRoll + that.rng.IntN(entity.MaxRoll-entity.MinRoll+1)
}
