package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/goose-backend/internal/entity"
)

const cellWidth = 6

var ErrNotSquare = errors.New("board size is not a perfect square")

type Renderer struct {
	au aurora.Aurora
}

// NewRenderer returns a board renderer; colors toggles ANSI styling.
func NewRenderer(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

// Board lays the snapshot's tiles out as a clockwise inward spiral. Each cell
// shows the occupying player, or the tile label when nobody stands on it.
func (that *Renderer) Board(snapshot entity.Snapshot) (string, error) {
	size := snapshot.Board.Size()

	side := int(math.Sqrt(float64(size)))
	if side*side != size {
		return "", fmt.Errorf("%w: %d", ErrNotSquare, size)
	}

	var b strings.Builder
	for _, row := range Spiral(side) {
		for i, position := range row {
			b.WriteString(" ")
			b.WriteString(that.cell(snapshot, position))
			if i < len(row)-1 {
				b.WriteString(" |")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func (that *Renderer) cell(snapshot entity.Snapshot, position int) string {
	if player, ok := snapshot.Occupant(position); ok {
		return that.au.Bold(that.au.Green(center(player, cellWidth))).String()
	}

	tile := snapshot.Board.Tile(position)
	label := center(tile.Label(), cellWidth)

	switch tile.Kind {
	case entity.SkipStructure:
		return that.au.Yellow(label).String()
	case entity.JumpStructure:
		return that.au.Cyan(label).String()
	default:
		return label
	}
}

// center pads s to width, putting the odd space on the right.
func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}

	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
