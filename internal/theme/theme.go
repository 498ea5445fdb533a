package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	History       *lipgloss.Style
	Entry         *lipgloss.Style
	EntryFault    *lipgloss.Style
	Digit         *lipgloss.Style
	Operator      *lipgloss.Style
	Function      *lipgloss.Style
	Action        *lipgloss.Style
	Equals        *lipgloss.Style
	Mode          *lipgloss.Style
	ModeActive    *lipgloss.Style
	Overlay       *lipgloss.Style
	Gesture       *lipgloss.Style
	OverlayClose  *lipgloss.Style
	Footer        *lipgloss.Style
	Palette       *lipgloss.Style
	PaletteItem   *lipgloss.Style
	PaletteActive *lipgloss.Style
	PaletteHint   *lipgloss.Style
	PalettePrompt *lipgloss.Style
	PaletteEmpty  *lipgloss.Style
}

var defaultStyles = Styles{
	History: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Entry: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	EntryFault: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Digit: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	Operator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
	),
	Function: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Background(lipgloss.Color("236")),
	),
	Action: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("240")),
	),
	Equals: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Mode: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ModeActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52")),
	),
	Gesture: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("52")).Bold(true),
	),
	OverlayClose: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("250")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Palette: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PaletteItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PaletteActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PaletteHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PalettePrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PaletteEmpty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
