package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/goose-backend/internal/config"
	"github.com/rocketscienceinc/goose-backend/internal/goose"
	"github.com/rocketscienceinc/goose-backend/internal/render"
	"github.com/rocketscienceinc/goose-backend/internal/repository"
	"github.com/rocketscienceinc/goose-backend/internal/repository/storage"
	"github.com/rocketscienceinc/goose-backend/internal/usecase"
	"github.com/rocketscienceinc/goose-backend/transport/console"
)

// RunApp - plays one game in the terminal.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage.Connection)
	}

	rng := NewSource(conf.Seed)
	gameManager := usecase.NewGameManager(logger, goose.NewBoardGenerator(rng), goose.NewDice(rng), results)

	game, err := gameManager.NewGame(ctx, conf.Players...)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	driver := console.New(logger, gameManager, render.NewRenderer(!conf.NoColor), out, console.Options{
		TurnDelay: conf.TurnDelay,
		MaxTurns:  conf.MaxTurns,
	})

	if err = driver.Run(ctx, game); err != nil {
		return fmt.Errorf("game %s stopped: %w", game.ID, err)
	}

	if results != nil {
		wins, err := results.Wins(ctx, game.Winner())
		if err != nil {
			log.Error("could not read win tally", "error", err)
			return nil
		}
		log.Info("Win tally updated", "player", game.Winner(), "wins", wins)
	}

	return nil
}

// NewSource returns a seeded random source; seed 0 seeds from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1^0x5851f42d4c957f2d))
}
