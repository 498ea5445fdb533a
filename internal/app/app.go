package app

import (
	"errors"

	"github.com/atomicstack/calc-prank/internal/calc"
	"github.com/atomicstack/calc-prank/internal/dispatcher"
	"github.com/atomicstack/calc-prank/internal/logging"
	"github.com/atomicstack/calc-prank/internal/sound"
	"github.com/atomicstack/calc-prank/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Mode       calc.AngleMode
	Sound      bool
	Seed       uint64
}

// NewModel builds the UI model for cfg without starting a program.
func NewModel(cfg Config) *ui.Model {
	session := calc.NewSession()
	if cfg.Mode != "" {
		session = calc.SetAngleMode(session, cfg.Mode)
	}
	d := dispatcher.New(session, calc.NewController(calc.NewRand(cfg.Seed)))
	return ui.NewModel(d, sound.New(cfg.Sound), cfg.Width, cfg.Height, cfg.ShowFooter)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	defer logging.Close()
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
