// Package sound plays the audio cue that accompanies the prank overlay.
// Playback is best effort: callers are expected to drop any error.
package sound

import (
	"errors"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the bell has nowhere audible to go.
var ErrNotTerminal = errors.New("sound: output is not a terminal")

// Player exposes the two operations a media handle needs for the cue.
type Player interface {
	Rewind()
	Play() error
}

// Nop never makes a sound.
type Nop struct{}

func (Nop) Rewind() {}

func (Nop) Play() error { return nil }

// Bell rings the terminal bell. The cue is a single BEL, so rewinding only
// resets the count of bells written since the last rewind.
type Bell struct {
	mu      sync.Mutex
	out     io.Writer
	isTTY   func() bool
	written int
}

// NewBell rings on stderr when stderr is a terminal.
func NewBell() *Bell {
	return NewBellWriter(os.Stderr, func() bool { return term.IsTerminal(int(os.Stderr.Fd())) })
}

// NewBellWriter rings on out; isTTY gates playback.
func NewBellWriter(out io.Writer, isTTY func() bool) *Bell {
	return &Bell{out: out, isTTY: isTTY}
}

func (b *Bell) Rewind() {
	b.mu.Lock()
	b.written = 0
	b.mu.Unlock()
}

func (b *Bell) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil || (b.isTTY != nil && !b.isTTY()) {
		return ErrNotTerminal
	}
	if b.written > 0 {
		return nil
	}
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		return err
	}
	b.written++
	return nil
}

// New returns a Bell when enabled and Nop otherwise.
func New(enabled bool) Player {
	if !enabled {
		return Nop{}
	}
	return NewBell()
}
