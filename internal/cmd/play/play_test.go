package play

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 5 {
		t.Fatalf("grid defaults = %dx%d, want 10x5", cfg.Width, cfg.Height)
	}
	if cfg.Players != 2 || cfg.NeutralBodies != 8 {
		t.Fatalf("population defaults = %d players, %d neutrals", cfg.Players, cfg.NeutralBodies)
	}
	if cfg.Seed != 0 || cfg.LogLevel != "info" {
		t.Fatalf("seed/log defaults = %d/%q", cfg.Seed, cfg.LogLevel)
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("STARHOLD_PLAYERS", "4")
	t.Setenv("STARHOLD_SEED", "99")

	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-players", "3"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Players != 3 {
		t.Fatalf("players = %d, want flag value 3", cfg.Players)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed = %d, want env value 99", cfg.Seed)
	}
}

func TestRunRequiresStreams(t *testing.T) {
	cfg := Config{Width: 4, Height: 4, Players: 2}
	if err := Run(context.Background(), cfg, nil, nil, nil); err == nil {
		t.Fatal("expected an error without streams")
	}
}

func TestRunRequiresPlayers(t *testing.T) {
	cfg := Config{Width: 4, Height: 4}
	err := Run(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected an error without players")
	}
}

// TestRunEndsOnClosedInput starts a real match and lets the input run out
// immediately: the console should prompt once and exit cleanly.
func TestRunEndsOnClosedInput(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := Config{Width: 6, Height: 4, Players: 2, NeutralBodies: 3, Seed: 11, LogLevel: "error"}
	if err := Run(context.Background(), cfg, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Player ") {
		t.Fatalf("expected a player prompt, got:\n%s", out.String())
	}
}
