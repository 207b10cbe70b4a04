package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/goose-backend/internal"
	"github.com/rocketscienceinc/goose-backend/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and logger, and plays a game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// a missing .env is fine, configuration also comes from config.yml and the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "could not load .env: %v\n", err)
	}

	cmd := &cli.Command{
		Name:  "goose",
		Usage: "play the Game of the Goose in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yml", Usage: "path to the YAML config file"},
			&cli.StringSliceFlag{Name: "player", Aliases: []string{"p"}, Usage: "player name, repeat for each player"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 seeds from the clock"},
			&cli.DurationFlag{Name: "turn-delay", Usage: "pause between turns"},
			&cli.IntFlag{Name: "max-turns", Usage: "stop after this many turns, 0 for no limit"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored board output"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	conf, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	applyFlags(cmd, conf)
	logger := initLogger(conf)

	return app.RunApp(ctx, logger, conf, os.Stdout)
}

// applyFlags overrides file and environment settings with explicitly set flags.
func applyFlags(cmd *cli.Command, conf *config.Config) {
	if cmd.IsSet("player") {
		conf.Players = cmd.StringSlice("player")
	}

	if cmd.IsSet("seed") {
		conf.Seed = cmd.Int64("seed")
	}

	if cmd.IsSet("turn-delay") {
		conf.TurnDelay = cmd.Duration("turn-delay")
	}

	if cmd.IsSet("max-turns") {
		conf.MaxTurns = cmd.Int("max-turns")
	}

	if cmd.IsSet("no-color") {
		conf.NoColor = cmd.Bool("no-color")
	}

	if cmd.IsSet("log-level") {
		conf.LogLevel = cmd.String("log-level")
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// game narration goes to stdout, so logs go to stderr
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
