package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/goose-backend/internal/apperror"
	"github.com/rocketscienceinc/goose-backend/internal/entity"
	"github.com/rocketscienceinc/goose-backend/internal/usecase"
)

type gameManager interface {
	PlayTurn(ctx context.Context, game *entity.Game) (*usecase.TurnReport, error)
}

type boardRenderer interface {
	Board(snapshot entity.Snapshot) (string, error)
}

type Options struct {
	TurnDelay time.Duration
	MaxTurns  int
}

// Driver plays a game to the end, narrating every turn to out.
type Driver struct {
	logger *slog.Logger

	manager  gameManager
	renderer boardRenderer
	out      io.Writer
	opts     Options
}

func New(logger *slog.Logger, manager gameManager, renderer boardRenderer, out io.Writer, opts Options) *Driver {
	return &Driver{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: renderer,
		out:      out,
		opts:     opts,
	}
}

// Run plays turns until someone wins, the context is cancelled or the
// optional turn limit is hit.
func (that *Driver) Run(ctx context.Context, game *entity.Game) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := that.showTurn(game); err != nil {
			return err
		}

		report, err := that.manager.PlayTurn(ctx, game)
		if report != nil {
			that.narrate(report)
		}

		if err != nil {
			return fmt.Errorf("failed to play turn: %w", err)
		}

		if report.Winner != "" {
			that.printf("\nCongratulations, %s wins!\n", report.Winner)
			return nil
		}

		if that.opts.MaxTurns > 0 && game.Turns() >= that.opts.MaxTurns {
			return fmt.Errorf("%w: %d turns", apperror.ErrTurnLimitReached, game.Turns())
		}

		if err = that.wait(ctx); err != nil {
			return err
		}
	}
}

func (that *Driver) showTurn(game *entity.Game) error {
	snapshot := game.Snapshot()

	position, err := game.Position(snapshot.Current)
	if err != nil {
		return err
	}

	board, err := that.renderer.Board(snapshot)
	if err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	that.printf("\n%s's turn! Current position: %d\n", snapshot.Current, position)
	that.printf("%s\n", board)

	return nil
}

func (that *Driver) narrate(report *usecase.TurnReport) {
	if report.Skipped {
		that.printf("%s is skipping their turn (Hotel).\n", report.Player)
		return
	}

	move := report.Move
	that.printf("%s rolled a %d!\n", report.Player, move.Roll)

	if move.Bounced {
		that.printf("%s overshot the finish and bounced back to %d.\n", report.Player, move.To)
		return
	}

	landed := entity.NewPlainTile(move.Landed)
	if len(move.Path) > 0 {
		landed = move.Path[0]
	}

	that.printf("%s landed on %s\n", report.Player, landed.Label())
	for _, tile := range move.Path {
		if tile.Kind == entity.JumpStructure {
			that.printf("%s takes action: %d\n", report.Player, tile.Offset)
		}
	}

	switch {
	case move.Looped:
		that.printf("%s is stuck in a loop at position %d. Breaking recursion.\n", report.Player, move.To)
	case move.Skipped:
		that.printf("%s will skip their next turn...\n", report.Player)
	}
}

func (that *Driver) wait(ctx context.Context) error {
	if that.opts.TurnDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.opts.TurnDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (that *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
