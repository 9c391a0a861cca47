package scenario

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigPositionalScript(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"match.lua"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Script != "match.lua" {
		t.Fatalf("script = %q, want match.lua", cfg.Script)
	}
}

func TestParseConfigFlagWinsOverPositional(t *testing.T) {
	fs := flag.NewFlagSet("scenario", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-script", "flagged.lua", "ignored.lua"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Script != "flagged.lua" {
		t.Fatalf("script = %q, want flagged.lua", cfg.Script)
	}
}

func TestRunRequiresScript(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected an error without a script path")
	}
}

func TestRunReportsOutcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rout.lua")
	script := `
local s = Scenario.new("rout")
s:grid(2, 1)
s:seed(1)
s:player("Ada")
s:player("Grace")
s:body{owner = "Ada", units = 10, power = 100, x = 0, y = 0}
s:body{owner = "Grace", units = 0, power = 0, x = 1, y = 0}
s:turn{
  {player = "Ada", from = "A", to = "B", units = 5},
}
return s
`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatalf("write script: %v", err)
	}

	var out, errOut bytes.Buffer
	cfg := Config{Script: path, LogLevel: "error"}
	if err := Run(context.Background(), cfg, &out, &errOut); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "rout: Ada wins after 1 turns (seed 1)") {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
}

func TestRunRejectsMissingFile(t *testing.T) {
	cfg := Config{Script: filepath.Join(t.TempDir(), "absent.lua"), LogLevel: "error"}
	if err := Run(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected an error for a missing script file")
	}
}
