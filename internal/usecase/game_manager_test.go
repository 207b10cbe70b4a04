package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/goose-backend/internal/apperror"
	"github.com/rocketscienceinc/goose-backend/internal/entity"
)

var errStorageIsDown = errors.New("storage is down")

type scriptedDice struct {
	rolls []int
}

func (that *scriptedDice) Roll() int {
	roll := that.rolls[0]
	that.rolls = that.rolls[1:]

	return roll
}

type fixedBoards struct {
	board *entity.Board
	err   error
}

func (that *fixedBoards) Generate(int) (*entity.Board, error) {
	return that.board, that.err
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	args := that.Called(ctx, result)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBoard(t *testing.T, structures ...entity.Tile) *entity.Board {
	t.Helper()

	tiles := entity.PlainTiles(entity.DefaultBoardSize)
	for _, structure := range structures {
		tiles[structure.Position-1] = structure
	}

	board, err := entity.NewBoard(tiles)
	require.NoError(t, err)

	return board
}

func TestGameManager_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a game on a generated board", func(t *testing.T) {
		// Given: a generator returning a fixed board
		board := newTestBoard(t, entity.NewSkipStructure(5))
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: board}, &scriptedDice{}, nil)

		// When: creating a game
		game, err := manager.NewGame(ctx, "Ann", "Bob")

		// Then: the game uses that board and has an id
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Same(t, board, game.Board())
		assert.Equal(t, "Ann", game.CurrentPlayer())
	})

	t.Run("Returns error when the board cannot be generated", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), &fixedBoards{err: entity.ErrBoardTooSmall}, &scriptedDice{}, nil)

		game, err := manager.NewGame(ctx, "Ann")

		require.ErrorIs(t, err, entity.ErrBoardTooSmall)
		assert.Nil(t, game)
	})

	t.Run("Returns error for an empty roster", func(t *testing.T) {
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: newTestBoard(t)}, &scriptedDice{}, nil)

		_, err := manager.NewGame(ctx)

		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
	})
}

func TestGameManager_PlayTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Rolls, resolves and hands over the turn", func(t *testing.T) {
		// Given: two players on an empty board
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: newTestBoard(t)}, &scriptedDice{rolls: []int{4}}, nil)
		game, err := manager.NewGame(ctx, "Ann", "Bob")
		require.NoError(t, err)

		// When: Ann plays her turn
		report, err := manager.PlayTurn(ctx, game)

		// Then: she moved by the roll and it is Bob's turn
		require.NoError(t, err)
		assert.Equal(t, "Ann", report.Player)
		require.NotNil(t, report.Move)
		assert.Equal(t, 5, report.Move.To)
		assert.Empty(t, report.Winner)
		assert.Equal(t, "Bob", game.CurrentPlayer())
	})

	t.Run("Hotel costs exactly one turn", func(t *testing.T) {
		// Given: a hotel on tile 3 and rolls Ann:2, Bob:1, (Ann skips), Bob:1, Ann:1
		board := newTestBoard(t, entity.NewSkipStructure(3))
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: board}, &scriptedDice{rolls: []int{2, 1, 1, 1}}, nil)
		game, err := manager.NewGame(ctx, "Ann", "Bob")
		require.NoError(t, err)

		// When: Ann lands on the hotel
		report, err := manager.PlayTurn(ctx, game)
		require.NoError(t, err)
		assert.True(t, report.Move.Skipped)
		assert.True(t, game.IsSkipping("Ann"))

		_, err = manager.PlayTurn(ctx, game)
		require.NoError(t, err)

		// Then: her next turn is forfeited without a roll
		report, err = manager.PlayTurn(ctx, game)
		require.NoError(t, err)
		assert.Equal(t, "Ann", report.Player)
		assert.True(t, report.Skipped)
		assert.Nil(t, report.Move)
		assert.False(t, game.IsSkipping("Ann"))
		position, _ := game.Position("Ann")
		assert.Equal(t, 3, position)

		// And: the turn after that she rolls again
		_, err = manager.PlayTurn(ctx, game)
		require.NoError(t, err)
		report, err = manager.PlayTurn(ctx, game)
		require.NoError(t, err)
		assert.False(t, report.Skipped)
		require.NotNil(t, report.Move)
		assert.Equal(t, 4, report.Move.To)
	})

	t.Run("Landing on the last tile wins and records the result", func(t *testing.T) {
		// Given: a lone player on an empty board and ten sixes followed by a three
		repo := &mockResultRepo{}
		rolls := []int{6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 3}
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: newTestBoard(t)}, &scriptedDice{rolls: rolls}, repo)
		game, err := manager.NewGame(ctx, "Ann")
		require.NoError(t, err)

		repo.On("Save", mock.Anything, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Winner == "Ann" && result.GameID == game.ID && result.Turns == 11
		})).Return(nil).Once()

		// When: Ann plays eleven turns
		var report *TurnReport
		for range 11 {
			report, err = manager.PlayTurn(ctx, game)
			require.NoError(t, err)
		}

		// Then: she wins and the result is saved
		assert.Equal(t, "Ann", report.Winner)
		assert.Equal(t, "Ann", game.Winner())
		assert.True(t, game.IsFinished())
		repo.AssertExpectations(t)

		// And: no further turns are played
		_, err = manager.PlayTurn(ctx, game)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns the report and an error when the result cannot be saved", func(t *testing.T) {
		// Given: a result repository that fails and Ann one roll away from winning
		repo := &mockResultRepo{}
		repo.On("Save", mock.Anything, mock.Anything).Return(errStorageIsDown).Once()
		rolls := []int{6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 3}
		manager := NewGameManager(newTestLogger(), &fixedBoards{board: newTestBoard(t)}, &scriptedDice{rolls: rolls}, repo)
		game, err := manager.NewGame(ctx, "Ann")
		require.NoError(t, err)

		for range 10 {
			_, err = manager.PlayTurn(ctx, game)
			require.NoError(t, err)
		}

		// When: the winning turn is played
		report, err := manager.PlayTurn(ctx, game)

		// Then: the win stands but the storage error is returned
		require.ErrorIs(t, err, errStorageIsDown)
		require.NotNil(t, report)
		assert.Equal(t, "Ann", report.Winner)
		repo.AssertExpectations(t)
	})
}
