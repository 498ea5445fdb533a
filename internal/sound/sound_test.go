package sound

import (
	"errors"
	"strings"
	"testing"
)

func TestBellRingsOncePerRewind(t *testing.T) {
	var out strings.Builder
	b := NewBellWriter(&out, func() bool { return true })

	b.Rewind()
	if err := b.Play(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Play(); err != nil {
		t.Fatalf("unexpected error on repeat: %v", err)
	}
	if out.String() != "\a" {
		t.Fatalf("expected a single bell, got %q", out.String())
	}

	b.Rewind()
	_ = b.Play()
	if out.String() != "\a\a" {
		t.Fatalf("expected bell after rewind, got %q", out.String())
	}
}

func TestBellRejectsWithoutTerminal(t *testing.T) {
	var out strings.Builder
	b := NewBellWriter(&out, func() bool { return false })
	b.Rewind()
	if err := b.Play(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	p := New(false)
	if _, ok := p.(Nop); !ok {
		t.Fatalf("expected Nop player, got %T", p)
	}
	p.Rewind()
	if err := p.Play(); err != nil {
		t.Fatalf("expected nil error from Nop, got %v", err)
	}
}
