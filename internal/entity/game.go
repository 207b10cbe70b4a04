package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/goose-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	MinRoll = 1
	MaxRoll = 6
)

// Game owns every piece of mutable session state: positions, pending skips and
// the turn order. Positions only change through ResolveMove.
type Game struct {
	ID string

	board     *Board
	players   []string
	positions map[string]int
	skipTurn  map[string]struct{}

	current int
	turns   int
	rounds  int
	winner  string
	status  string
}

// Move describes how a single roll was resolved.
type Move struct {
	Player  string `json:"player"`
	Roll    int    `json:"roll"`
	From    int    `json:"from"`
	Landed  int    `json:"landed"`
	Path    []Tile `json:"path,omitempty"`
	To      int    `json:"to"`
	Bounced bool   `json:"bounced,omitempty"`
	Skipped bool   `json:"skipped,omitempty"`
	Looped  bool   `json:"looped,omitempty"`
}

// Snapshot is an immutable copy of the game state handed to display code.
type Snapshot struct {
	ID      string        `json:"id"`
	Board   *Board        `json:"-"`
	Players []PlayerState `json:"players"`
	Current string        `json:"current,omitempty"`
	Turns   int           `json:"turns"`
	Rounds  int           `json:"rounds"`
	Winner  string        `json:"winner,omitempty"`
	Status  string        `json:"status"`
}

// Result is the recorded outcome of a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner"`
	Players    []string  `json:"players"`
	Turns      int       `json:"turns"`
	Rounds     int       `json:"rounds"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewGame places every player on tile 1. Turn order follows the argument order.
func NewGame(id string, board *Board, players ...string) (*Game, error) {
	if len(players) == 0 {
		return nil, apperror.ErrNotEnoughPlayers
	}

	positions := make(map[string]int, len(players))
	for _, player := range players {
		if _, exists := positions[player]; exists {
			return nil, fmt.Errorf("%w: %q", apperror.ErrDuplicatePlayer, player)
		}
		positions[player] = 1
	}

	roster := make([]string, len(players))
	copy(roster, players)

	return &Game{
		ID:        id,
		board:     board,
		players:   roster,
		positions: positions,
		skipTurn:  make(map[string]struct{}),
		status:    StatusOngoing,
	}, nil
}

func (that *Game) Board() *Board {
	return that.board
}

func (that *Game) Players() []string {
	players := make([]string, len(that.players))
	copy(players, that.players)

	return players
}

func (that *Game) Position(player string) (int, error) {
	position, ok := that.positions[player]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, player)
	}

	return position, nil
}

func (that *Game) IsSkipping(player string) bool {
	_, ok := that.skipTurn[player]
	return ok
}

// ConsumeSkip clears a pending skip and reports whether there was one.
func (that *Game) ConsumeSkip(player string) bool {
	if _, ok := that.skipTurn[player]; !ok {
		return false
	}

	delete(that.skipTurn, player)

	return true
}

// CurrentPlayer returns the player whose turn it is.
func (that *Game) CurrentPlayer() string {
	return that.players[that.current]
}

// EndTurn hands the turn to the next player in roster order.
func (that *Game) EndTurn() {
	that.turns++
	that.current++

	if that.current == len(that.players) {
		that.current = 0
		that.rounds++
	}
}

// ResolveMove advances player by roll and follows any chain of structures
// until it rests on a plain tile, hits a hotel, or revisits a tile.
func (that *Game) ResolveMove(player string, roll int) (Move, error) {
	if that.IsFinished() {
		return Move{}, apperror.ErrGameFinished
	}

	from, err := that.Position(player)
	if err != nil {
		return Move{}, err
	}

	if roll < MinRoll || roll > MaxRoll {
		return Move{}, fmt.Errorf("%w: %d", apperror.ErrInvalidRoll, roll)
	}

	move := Move{Player: player, Roll: roll, From: from}

	position := from + roll
	if !that.board.Contains(position) {
		// an overshoot bounces back and the tile it lands on is not evaluated
		position = that.board.Bounce(position)
		that.positions[player] = position

		move.Landed, move.To, move.Bounced = position, position, true

		return move, nil
	}

	move.Landed = position
	tile := that.board.Tile(position)
	visited := make(map[int]struct{})

	for tile.IsStructure() {
		if _, seen := visited[position]; seen {
			move.Looped = true
			break
		}
		visited[position] = struct{}{}
		move.Path = append(move.Path, tile)

		if tile.Kind == SkipStructure {
			that.skipTurn[player] = struct{}{}
			move.Skipped = true
			break
		}

		position = that.board.Bounce(position + tile.Offset)
		tile = that.board.Tile(position)
	}

	that.positions[player] = position
	move.To = position

	return move, nil
}

// UpdateGameState finishes the game if player stands on the last tile.
func (that *Game) UpdateGameState(player string) bool {
	if that.IsFinished() {
		return false
	}

	if that.positions[player] != that.board.Size() {
		return false
	}

	that.winner = player
	that.status = StatusFinished

	return true
}

func (that *Game) Winner() string {
	return that.winner
}

func (that *Game) Turns() int {
	return that.turns
}

func (that *Game) Rounds() int {
	return that.rounds
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}

func (that *Game) Snapshot() Snapshot {
	players := make([]PlayerState, len(that.players))
	for i, name := range that.players {
		players[i] = PlayerState{
			Name:     name,
			Position: that.positions[name],
			Skipping: that.IsSkipping(name),
		}
	}

	snapshot := Snapshot{
		ID:      that.ID,
		Board:   that.board,
		Players: players,
		Turns:   that.turns,
		Rounds:  that.rounds,
		Winner:  that.winner,
		Status:  that.status,
	}

	if that.IsOngoing() {
		snapshot.Current = that.CurrentPlayer()
	}

	return snapshot
}

// Result builds the outcome record of a finished game.
func (that *Game) Result(finishedAt time.Time) Result {
	return Result{
		GameID:     that.ID,
		Winner:     that.winner,
		Players:    that.Players(),
		Turns:      that.turns,
		Rounds:     that.rounds,
		FinishedAt: finishedAt,
	}
}

// Occupant returns the first player, in turn order, standing on position.
func (that Snapshot) Occupant(position int) (string, bool) {
	for _, player := range that.Players {
		if player.Position == position {
			return player.Name, true
		}
	}

	return "", false
}
