// Package status provides the status bar component for the watch dashboard.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/styles"
)

// State represents the watch state for display.
type State string

const (
	StateWatching   State = "watching"
	StateConverting State = "converting"
	StateError      State = "error"
	StateStopped    State = "stopped"
)

// Bar displays the watch state, run counters and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	runs    int
	failed  int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateWatching,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	counts := fmt.Sprintf("%d runs, %d failed", s.runs, s.failed)
	switch s.state {
	case StateConverting:
		return s.styles.Normal.Render("Converting... ") + s.styles.Muted.Render(counts)
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateStopped:
		return s.styles.Muted.Render("Stopped " + counts)
	case StateWatching:
		return s.styles.Muted.Render("Watching " + counts)
	}
	return s.styles.Muted.Render(counts)
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, hint(b))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown in the error state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetCounts sets the number of runs and how many of them failed.
func (s *Bar) SetCounts(runs, failed int) {
	s.runs = runs
	s.failed = failed
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
