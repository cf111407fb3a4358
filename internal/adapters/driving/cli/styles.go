package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jinzhu/inflection"
	"golang.org/x/term"
)

// styles holds the lipgloss styles for human-readable output.
// All styles are plain when the writer is not a terminal.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, success: plain, failure: plain, muted: plain}
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("14")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// countNoun formats n with the noun pluralised when n != 1.
func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, inflection.Plural(noun))
}
