package tui

import (
	"context"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/lineq/equation"
	"github.com/katalvlaran/lineq/internal/history"
	"github.com/katalvlaran/lineq/linform"
	"github.com/katalvlaran/lineq/logger"
)

// maxScrollback bounds the number of retained exchanges.
const maxScrollback = 100

// exchange is one solved (or rejected) prompt line.
type exchange struct {
	input  string
	output string
	failed bool
}

// entrySaved reports the outcome of an asynchronous history write.
type entrySaved struct {
	err error
}

// App is the interactive solve loop following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// styles holds the REPL styles.
	styles *Styles

	// input is the equation prompt.
	input textinput.Model

	// history records solves when non-nil.
	history *history.Store

	// variable is the letter denoting the unknown.
	variable rune

	// exchanges is the scrollback, oldest first.
	exchanges []exchange

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the REPL. A nil store disables history recording; a
// non-letter variable falls back to the default.
func NewApp(variable rune, store *history.Store) *App {
	if !unicode.IsLetter(variable) {
		variable = linform.DefaultVariable
	}

	ti := textinput.New()
	ti.Placeholder = "2x+3=x+1"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &App{
		styles:   DefaultStyles(),
		input:    ti,
		history:  store,
		variable: variable,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("lineq"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if w := msg.Width - 8; w >= 20 {
			a.input.Width = w
		}
		return a, nil

	case entrySaved:
		if msg.err != nil {
			logger.Logger().Debug().Err(msg.err).Msg("recording solve failed")
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit solves the current prompt value, appends the exchange, and
// schedules the history write.
func (a *App) submit() tea.Cmd {
	raw := strings.TrimSpace(a.input.Value())
	if raw == "" {
		return nil
	}
	a.input.Reset()

	sol, err := equation.Solve(raw, equation.WithVariable(a.variable))
	if err != nil {
		a.push(exchange{input: raw, output: err.Error(), failed: true})
		return nil
	}
	a.push(exchange{input: raw, output: sol.String()})

	if a.history == nil {
		return nil
	}
	entry := history.NewEntry(raw, sol)
	store := a.history
	return func() tea.Msg {
		_, saveErr := store.Save(context.Background(), entry)
		return entrySaved{err: saveErr}
	}
}

// push appends one exchange, trimming the scrollback to its cap.
func (a *App) push(e exchange) {
	a.exchanges = append(a.exchanges, e)
	if len(a.exchanges) > maxScrollback {
		a.exchanges = a.exchanges[len(a.exchanges)-maxScrollback:]
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var sb strings.Builder
	sb.WriteString(a.styles.Title.Render("lineq interactive solver"))
	sb.WriteString("\n\n")

	for _, e := range a.exchanges {
		sb.WriteString(a.styles.Muted.Render("> " + e.input))
		sb.WriteByte('\n')
		if e.failed {
			sb.WriteString(a.styles.Error.Render(e.output))
		} else {
			sb.WriteString(a.styles.Success.Render(e.output))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(a.styles.InputField.Render(a.input.View()))
	sb.WriteByte('\n')
	sb.WriteString(a.styles.Muted.Render("[enter] solve  [esc] quit"))
	return sb.String()
}

// Run starts the REPL.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
