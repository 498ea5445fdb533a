// Package ui contains the Bubble Tea program that renders the calculator.
// The Model type focuses on message orchestration while dedicated helpers own
// input classification, rendering, the overlay, and the command palette.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - When the command palette is open, key presses go to the palette first
//     (internal/ui/palette.go). Otherwise each tea.Msg is routed through a
//     typed handler registry so key presses, mouse clicks, resizes, and cue
//     results each land in a focused function.
//   - Key presses are classified by the dispatcher (internal/dispatcher) and
//     mouse clicks are resolved to keypad buttons (internal/keypad). Both end
//     up as a calc.Action handed to Dispatcher.Handle.
//
// State ownership:
//   - The calculator record and the overlay live in the dispatcher; the model
//     only reads them back when rendering.
//   - Palette filtering and cursor state lives in internal/ui/state.Palette.
//
// Side effects:
//   - The only asynchronous work is the audio cue. A surprise returns a
//     tea.Cmd built by the command bus; its result message is dropped.
package ui
