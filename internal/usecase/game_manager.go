package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/goose-backend/internal/entity"
	"github.com/rocketscienceinc/goose-backend/internal/pkg"
)

type boardGenerator interface {
	Generate(size int) (*entity.Board, error)
}

type dice interface {
	Roll() int
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

// TurnReport describes what happened during one player's turn.
type TurnReport struct {
	Player  string       `json:"player"`
	Skipped bool         `json:"skipped,omitempty"`
	Move    *entity.Move `json:"move,omitempty"`
	Winner  string       `json:"winner,omitempty"`
}

type GameManager struct {
	logger *slog.Logger

	boards     boardGenerator
	dice       dice
	resultRepo resultRepo
}

// NewGameManager wires the turn protocol. resultRepo may be nil, in which case
// finished games are not recorded.
func NewGameManager(logger *slog.Logger, boards boardGenerator, dice dice, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		boards:     boards,
		dice:       dice,
		resultRepo: resultRepo,
	}
}

func (that *GameManager) NewGame(_ context.Context, players ...string) (*entity.Game, error) {
	board, err := that.boards.Generate(entity.DefaultBoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate board: %w", err)
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), board, players...)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created",
		"game_id", game.ID,
		"players", players,
		"structures", board.CountStructures(),
	)

	return game, nil
}

// PlayTurn runs the current player's turn: a pending skip is consumed instead
// of rolling, otherwise the roll is resolved and the win condition checked.
func (that *GameManager) PlayTurn(ctx context.Context, game *entity.Game) (*TurnReport, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	player := game.CurrentPlayer()
	report := &TurnReport{Player: player}

	if game.ConsumeSkip(player) {
		report.Skipped = true
		game.EndTurn()

		that.logger.Debug("turn skipped", "game_id", game.ID, "player", player)

		return report, nil
	}

	move, err := game.ResolveMove(player, that.dice.Roll())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve move: %w", err)
	}
	report.Move = &move

	won := game.UpdateGameState(player)
	game.EndTurn()

	that.logger.Debug("turn played",
		"game_id", game.ID,
		"player", player,
		"roll", move.Roll,
		"from", move.From,
		"to", move.To,
		"bounced", move.Bounced,
		"skipped", move.Skipped,
		"looped", move.Looped,
	)

	if !won {
		return report, nil
	}

	report.Winner = player
	that.logger.Info("game finished", "game_id", game.ID, "winner", player, "turns", game.Turns())

	if err = that.recordResult(ctx, game); err != nil {
		return report, err
	}

	return report, nil
}

func (that *GameManager) recordResult(ctx context.Context, game *entity.Game) error {
	if that.resultRepo == nil {
		return nil
	}

	result := game.Result(time.Now().UTC())
	if err := that.resultRepo.Save(ctx, &result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}
