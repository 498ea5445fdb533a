package config

import (
	"testing"

	"github.com/atomicstack/calc-prank/internal/app"
	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/google/go-cmp/cmp"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{Mode: calc.AngleDeg, Sound: true}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envMode + "=grad",
		envSound + "=false",
		envSeed + "=9",
		envTrace + "=1",
	}
	cfg, err := LoadArgs([]string{"-width", "60", "-mode", "RAD", "-footer"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{Width: 60, ShowFooter: true, Mode: calc.AngleRad, Sound: false, Seed: 9}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("app config mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from environment")
	}
	if cfg.Flags["mode"] != "rad" || cfg.Flags["seed"] != "9" {
		t.Fatalf("unexpected flags %v", cfg.Flags)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := map[string][]string{
		"negative width":  {"-width", "-1"},
		"negative height": {"-height", "-5"},
		"unknown mode":    {"-mode", "turns"},
		"unknown flag":    {"-verbose"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadArgs(args, nil); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envSound + "=maybe", "garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || !cfg.App.Sound {
		t.Fatalf("expected defaults, got %+v", cfg.App)
	}
}
