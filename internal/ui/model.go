package ui

import (
	"reflect"

	"github.com/atomicstack/calc-prank/internal/dispatcher"
	"github.com/atomicstack/calc-prank/internal/keypad"
	"github.com/atomicstack/calc-prank/internal/sound"
	"github.com/atomicstack/calc-prank/internal/theme"
	"github.com/atomicstack/calc-prank/internal/ui/command"
	uistate "github.com/atomicstack/calc-prank/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the calculator.
type Model struct {
	calc        *dispatcher.Dispatcher
	player      sound.Player
	registry    *keypad.Registry
	grid        keypad.Grid
	bus         *command.Bus
	keys        keyMap
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	palette     *uistate.Palette
	paletteOpen bool
	query       textinput.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the dispatcher and audio player into a fresh model. Zero
// width or height means "follow the terminal".
func NewModel(d *dispatcher.Dispatcher, player sound.Player, width, height int, showFooter bool) *Model {
	if player == nil {
		player = sound.Nop{}
	}
	registry := keypad.BuildRegistry()
	m := &Model{
		calc:       d,
		player:     player,
		registry:   registry,
		grid:       keypad.DefaultGrid,
		bus:        command.New(),
		keys:       defaultKeyMap(),
		showFooter: showFooter,
		palette:    uistate.NewPalette(registry.Buttons()),
		query:      newQueryInput(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.paletteOpen {
		if handled, cmd := m.handlePaletteMsg(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(cueResultMsg{}):      m.handleCueResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// apply hands a dispatcher result to the side-effect layer.
func (m *Model) apply(res dispatcher.Result) tea.Cmd {
	if res.PlayCue {
		return m.playCueCmd()
	}
	return nil
}
