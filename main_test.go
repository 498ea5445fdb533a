package main

import (
	"testing"

	"github.com/atomicstack/calc-prank/internal/app"
	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Mode:       calc.AngleRad,
			Sound:      true,
			Seed:       42,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":  "80",
			"height": "24",
			"footer": "true",
			"mode":   "rad",
			"seed":   "42",
		},
		Args: []string{"--mode", "rad", "--seed", "42"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["mode"] != "rad" {
		t.Fatalf("expected mode flag %q, got %v", "rad", flagsValue["mode"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["seed"] != "42" {
		t.Fatalf("expected seed 42, got %v", flagsValue["seed"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	calcValue, ok := payload["calculator"].(calculatorDetails)
	if !ok {
		t.Fatalf("expected calculator details in payload")
	}
	want := calculatorDetails{Mode: "rad", Cue: "bell", Seed: 42, Seeded: true, Viewport: "80x24", Legend: true}
	if calcValue != want {
		t.Fatalf("expected calculator details %#v, got %#v", want, calcValue)
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestDescribeCalculatorDefaults(t *testing.T) {
	got := describeCalculator(app.Config{})
	want := calculatorDetails{Mode: "deg", Cue: "off", Viewport: "terminal"}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
