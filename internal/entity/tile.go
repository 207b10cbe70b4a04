package entity

import (
	"errors"
	"fmt"
)

const (
	MinJumpOffset = 1
	MaxJumpOffset = 6

	hotelName  = "Hotel"
	bridgeName = "Bridge"
)

var ErrInvalidOffset = errors.New("jump offset out of range")

// TileKind tags the variant carried by a Tile.
type TileKind int

const (
	PlainTile TileKind = iota
	SkipStructure
	JumpStructure
)

func (k TileKind) String() string {
	switch k {
	case PlainTile:
		return "plain"
	case SkipStructure:
		return "skip"
	case JumpStructure:
		return "jump"
	default:
		return fmt.Sprintf("TileKind(%d)", int(k))
	}
}

// Tile is a single board square. Only jump structures carry an Offset.
type Tile struct {
	Position int      `json:"position"`
	Kind     TileKind `json:"kind"`
	Offset   int      `json:"offset,omitempty"`
}

func NewPlainTile(position int) Tile {
	return Tile{Position: position, Kind: PlainTile}
}

// NewSkipStructure returns a hotel: the occupant forfeits their next turn.
func NewSkipStructure(position int) Tile {
	return Tile{Position: position, Kind: SkipStructure}
}

// NewJumpStructure returns a bridge that moves the occupant by offset squares.
func NewJumpStructure(position, offset int) (Tile, error) {
	if offset < MinJumpOffset || offset > MaxJumpOffset {
		return Tile{}, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}

	return Tile{Position: position, Kind: JumpStructure, Offset: offset}, nil
}

func (that Tile) IsStructure() bool {
	return that.Kind == SkipStructure || that.Kind == JumpStructure
}

// Name returns the capitalized structure name, or an empty string for plain tiles.
func (that Tile) Name() string {
	switch that.Kind {
	case SkipStructure:
		return hotelName
	case JumpStructure:
		return bridgeName
	default:
		return ""
	}
}

// Label is the display form: the position for plain tiles, the structure
// initial followed by the position otherwise (e.g. "H12").
func (that Tile) Label() string {
	if !that.IsStructure() {
		return fmt.Sprintf("%d", that.Position)
	}

	return fmt.Sprintf("%c%d", that.Name()[0], that.Position)
}

func (that Tile) String() string {
	return that.Label()
}
