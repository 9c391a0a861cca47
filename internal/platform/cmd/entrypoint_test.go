package cmd

import (
	"context"
	"flag"
	"testing"
)

type testConfig struct {
	Width int    `env:"CMD_TEST_WIDTH" envDefault:"8"`
	Mode  string `env:"CMD_TEST_MODE" envDefault:"hotseat"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_WIDTH", "10")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.IntVar(&cfg.Width, "width", cfg.Width, "width")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-width", "12"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Width != 12 {
		t.Fatalf("expected flag value for width, got %d", cfg.Width)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfg.Mode)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_WIDTH", "9")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", 0, "width")
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-width", "11"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Width != 11 {
		t.Fatalf("expected parsed flag width, got %d", cfg.Width)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatalf("expected error for nil flag parser")
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatalf("expected error for empty service name")
	}
}

func TestRunWithTelemetryRequiresRunFunc(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), ServicePlay, nil); err == nil {
		t.Fatalf("expected error for nil run function")
	}
}

func TestRunWithTelemetryExecutesRun(t *testing.T) {
	t.Setenv("STARHOLD_OTEL_ENDPOINT", "")

	ran := false
	err := RunWithTelemetry(context.Background(), ServiceScenario, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !ran {
		t.Fatalf("run function was not executed")
	}
}
