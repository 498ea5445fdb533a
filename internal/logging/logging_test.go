package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("hidden.event", map[string]interface{}{"k": "v"})
	SetTraceEnabled(true)
	Trace("calc.apply", map[string]interface{}{"entry": "5"})
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden.event") {
		t.Fatalf("expected disabled trace to be skipped, got %s", out)
	}
	if !strings.Contains(out, `"event":"calc.apply"`) {
		t.Fatalf("expected trace event in log, got %s", out)
	}
	if !strings.Contains(out, `"entry":"5"`) {
		t.Fatalf("expected payload in log, got %s", out)
	}
}

func TestErrorAlwaysWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("boom"))
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error message in log, got %s", data)
	}
}
