// Package play parses hot-seat command flags and starts a console match.
package play

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/louisbranch/starhold/internal/cli"
	"github.com/louisbranch/starhold/internal/galaxy/setup"
	entrypoint "github.com/louisbranch/starhold/internal/platform/cmd"
	"github.com/louisbranch/starhold/internal/platform/logging"
	"github.com/louisbranch/starhold/internal/platform/random"
)

// Config holds play command configuration. A zero seed means a fresh one is
// drawn and logged so the match can be replayed.
type Config struct {
	Width         int    `env:"STARHOLD_WIDTH"          envDefault:"10"`
	Height        int    `env:"STARHOLD_HEIGHT"         envDefault:"5"`
	Players       int    `env:"STARHOLD_PLAYERS"        envDefault:"2"`
	NeutralBodies int    `env:"STARHOLD_NEUTRAL_BODIES" envDefault:"8"`
	Seed          int64  `env:"STARHOLD_SEED"`
	LogLevel      string `env:"STARHOLD_LOG_LEVEL"      envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	fs.IntVar(&cfg.Players, "players", cfg.Players, "number of players")
	fs.IntVar(&cfg.NeutralBodies, "neutral", cfg.NeutralBodies, "number of neutral bodies")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 draws a fresh one)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates a randomized map and hands it to the hot-seat console.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if in == nil || out == nil {
		return errors.New("input and output streams are required")
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Players < 1 {
		return errors.New("at least one player is required")
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePlay, func(ctx context.Context) error {
		log := logging.New(errOut, cfg.LogLevel)

		rng, seed, err := random.NewSeededRNG(cfg.Seed)
		if err != nil {
			return err
		}
		log.Info().Int64("seed", seed).Msg("match seeded")

		game, err := setup.NewGame(setup.Config{
			Width:         cfg.Width,
			Height:        cfg.Height,
			Players:       setup.Commanders(rng, cfg.Players),
			NeutralBodies: cfg.NeutralBodies,
		}, rng)
		if err != nil {
			return err
		}

		return cli.NewConsole(game, in, out, log).Play(ctx)
	})
}
