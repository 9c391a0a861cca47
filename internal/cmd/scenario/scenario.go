// Package scenario parses scenario command flags and replays a Lua script.
package scenario

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/starhold/internal/platform/logging"
	"github.com/louisbranch/starhold/internal/scenario"

	entrypoint "github.com/louisbranch/starhold/internal/platform/cmd"
)

// Config holds scenario command configuration.
type Config struct {
	Script   string `env:"STARHOLD_SCENARIO_SCRIPT"`
	LogLevel string `env:"STARHOLD_LOG_LEVEL"      envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config. The script path
// may also be given as the first positional argument.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Script, "script", cfg.Script, "path to scenario lua file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Script == "" && fs.NArg() > 0 {
		cfg.Script = fs.Arg(0)
	}
	return cfg, nil
}

// Run loads the script, replays it, and reports the outcome on out.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Script == "" {
		return errors.New("scenario script path is required")
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScenario, func(ctx context.Context) error {
		log := logging.New(errOut, cfg.LogLevel)

		script, err := scenario.LoadFile(cfg.Script)
		if err != nil {
			return err
		}
		result, err := scenario.Run(ctx, script, log)
		if err != nil {
			return err
		}

		if result.Won {
			fmt.Fprintf(out, "%s: %s wins after %d turns (seed %d)\n",
				result.Scenario, result.Winner, result.Turns, result.Seed)
		} else {
			fmt.Fprintf(out, "%s: no winner after %d turns (seed %d)\n",
				result.Scenario, result.Turns, result.Seed)
		}
		return nil
	})
}
