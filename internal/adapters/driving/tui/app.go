package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jinzhu/inflection"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sbml2biopax/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
)

// historySize is the number of runs kept on screen.
const historySize = 10

// run is one entry of the history panel.
type run struct {
	at     time.Time
	report *domain.ConversionReport
	err    error
}

// App is the watch dashboard following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	input  string
	output string

	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model
	help    help.Model
	status  *status.Bar
	now     func() time.Time

	// runs holds the most recent runs, newest first.
	runs   []run
	total  int
	failed int

	converting bool
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a dashboard for converting input to output.
func NewApp(ports *Ports, input, output string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		input:   input,
		output:  output,
		styles:  s,
		keymap:  km,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.Title)),
		help:    help.New(),
		status:  status.NewBar(s, km),
		now:     time.Now,
	}, nil
}

// WithContext sets the context for on-demand conversions.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sbml2biopax - "+a.input),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.status.SetWidth(msg.Width)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.RunFinished:
		a.record(msg)
		return a, nil

	case messages.WatchStopped:
		a.err = msg.Err
		if msg.Err != nil {
			a.status.SetState(status.StateError)
			a.status.SetMessage(msg.Err.Error())
		} else {
			a.status.SetState(status.StateStopped)
		}
		return a, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keymap.Clear):
		a.runs = nil
	case key.Matches(msg, a.keymap.Convert):
		if a.converting {
			return a, nil
		}
		a.converting = true
		a.status.SetState(status.StateConverting)
		return a, a.convert()
	}
	return a, nil
}

// convert runs a conversion outside the watch loop.
func (a *App) convert() tea.Cmd {
	ctx, conversion := a.ctx, a.ports.Conversion
	input, output := a.input, a.output
	return func() tea.Msg {
		report, err := conversion.Convert(ctx, input, output)
		return messages.RunFinished{Report: report, Err: err}
	}
}

func (a *App) record(msg messages.RunFinished) {
	a.converting = false
	a.status.SetState(status.StateWatching)

	a.total++
	if msg.Failed() {
		a.failed++
	}
	a.status.SetCounts(a.total, a.failed)

	a.runs = append([]run{{at: a.now(), report: msg.Report, err: msg.Err}}, a.runs...)
	if len(a.runs) > historySize {
		a.runs = a.runs[:historySize]
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("sbml2biopax watch"))
	b.WriteString("\n")
	b.WriteString(a.styles.Path.Render(a.input))
	b.WriteString(a.styles.Muted.Render(" -> "))
	b.WriteString(a.styles.Path.Render(a.output))
	b.WriteString("\n\n")

	if a.converting {
		b.WriteString(a.spinner.View() + " converting\n\n")
	} else {
		b.WriteString(a.spinner.View() + " waiting for changes\n\n")
	}

	b.WriteString(a.styles.Panel.Render(a.renderHistory()))
	b.WriteString("\n")
	if a.help.ShowAll {
		b.WriteString(a.help.View(a.keymap))
		b.WriteString("\n")
	}
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) renderHistory() string {
	if len(a.runs) == 0 {
		return a.styles.Muted.Render("No runs yet")
	}

	lines := make([]string, 0, len(a.runs))
	for _, r := range a.runs {
		stamp := a.styles.Muted.Render(r.at.Format("15:04:05"))
		if r.err != nil {
			lines = append(lines, fmt.Sprintf("%s %s %v", stamp, a.styles.Error.Render("FAIL"), r.err))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", stamp, a.styles.Success.Render("OK"), summary(r.report)))
	}
	return strings.Join(lines, "\n")
}

func summary(report *domain.ConversionReport) string {
	if report == nil {
		return ""
	}
	e := report.Emitted
	return fmt.Sprintf("%s, %s, %d bytes in %s",
		plural(e.Reactions, "reaction"),
		plural(e.Proteins+e.SmallMolecules, "entity"),
		report.Bytes,
		report.Duration.Round(time.Millisecond))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, inflection.Plural(noun))
}

// Runs returns the number of recorded runs and how many failed.
func (a *App) Runs() (total, failed int) {
	return a.total, a.failed
}

// History returns the number of runs currently on screen.
func (a *App) History() int {
	return len(a.runs)
}

// Converting reports whether an on-demand conversion is in flight.
func (a *App) Converting() bool {
	return a.converting
}

// Err returns the error the watch loop stopped with.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its first window size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

// Run starts the watch loop and the dashboard. It returns when the user
// quits, ctx is cancelled or the watch loop fails.
func Run(ctx context.Context, ports *Ports, input, output string, opts ...tea.ProgramOption) error {
	app, err := NewApp(ports, input, output)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.WithContext(ctx)

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(app, options...)

	done := make(chan error, 1)
	go func() {
		err := ports.Watch.Watch(ctx, input, output, func(report *domain.ConversionReport, err error) {
			p.Send(messages.RunFinished{Report: report, Err: err})
		})
		p.Send(messages.WatchStopped{Err: err})
		done <- err
	}()

	_, runErr := p.Run()
	cancel()
	watchErr := <-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return watchErr
}
