package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/routecmp/pkg/lca"
	"github.com/dkoosis/routecmp/pkg/mapper"
	"github.com/dkoosis/routecmp/pkg/pattern"
	"github.com/dkoosis/routecmp/pkg/render"
)

// chromeHeight is the title line plus the footer line.
const chromeHeight = 2

// Model is the bubbletea model for the live viewer.
type Model struct {
	path  string
	theme render.Theme
	load  func(string) (*lca.AssessmentResult, error)

	changes <-chan struct{}
	errs    <-chan error

	patterns []pattern.Pattern // last good render input
	err      error             // last load or watch error
	loads    int
	loadedAt time.Time

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

type changedMsg struct{}
type watchClosedMsg struct{}
type watchErrMsg struct{ err error }

type loadedMsg struct {
	result *lca.AssessmentResult
	err    error
	at     time.Time
}

// NewModel creates a viewer for path. changes and errs may be nil, in
// which case the file is rendered once and never reloaded.
func NewModel(path string, theme render.Theme, changes <-chan struct{}, errs <-chan error) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading route comparison...")
	return Model{
		path:     path,
		theme:    theme,
		load:     lca.ReadFile,
		changes:  changes,
		errs:     errs,
		viewport: vp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitForChange(), m.waitForError())
}

func (m Model) loadCmd() tea.Cmd {
	path, load := m.path, m.load
	return func() tea.Msg {
		res, err := load(path)
		return loadedMsg{result: res, err: err, at: time.Now()}
	}
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return changedMsg{}
	}
}

func (m Model) waitForError() tea.Cmd {
	if m.errs == nil {
		return nil
	}
	ch := m.errs
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return watchErrMsg{err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.ready = true
		m.refresh()
		return m, nil
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.patterns = mapper.FromAssessment(msg.result)
			m.loads++
			m.loadedAt = msg.at
		}
		m.refresh()
		return m, nil
	case changedMsg:
		return m, tea.Batch(m.loadCmd(), m.waitForChange())
	case watchErrMsg:
		m.err = fmt.Errorf("watch: %w", msg.err)
		return m, m.waitForError()
	case watchClosedMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.patterns == nil {
		if m.err != nil {
			m.viewport.SetContent(m.theme.Error.Render("cannot render " + m.path + ": " + m.err.Error()))
		}
		return
	}
	m.viewport.SetContent(render.NewTerminal(m.theme, m.width).Render(m.patterns))
}

func (m Model) View() string {
	if !m.ready {
		return "Loading route comparison..."
	}
	title := m.theme.Bold.Render("routecmp") + m.theme.Muted.Render(" "+m.theme.Icons.Bullet+" "+m.path)

	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), m.footer())
}

func (m Model) footer() string {
	style := m.statusStyle()
	switch {
	case m.err != nil && m.patterns != nil:
		return style.Render(m.theme.Icons.Warn + " reload failed: " + m.err.Error() + " (showing last good render)")
	case m.err != nil:
		return style.Render(m.theme.Icons.Warn + " " + m.err.Error())
	}
	status := "watching"
	if !m.loadedAt.IsZero() {
		status = fmt.Sprintf("rendered %s (#%d)", m.loadedAt.Format("15:04:05"), m.loads)
	}
	help := m.theme.Muted.Render(" " + m.theme.Icons.Bullet + " ↑/↓ scroll " + m.theme.Icons.Bullet + " q quit")
	return style.Render(status) + help
}

// statusStyle colours the footer status: success after a clean render,
// warning while showing a stale render, error when nothing rendered.
func (m Model) statusStyle() lipgloss.Style {
	switch {
	case m.err != nil && m.patterns != nil:
		return m.theme.Warning
	case m.err != nil:
		return m.theme.Error
	case m.loads > 0:
		return m.theme.Success
	default:
		return m.theme.Muted
	}
}

// Run watches path and shows the live viewer until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, path string, theme render.Theme) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, errs, err := Watch(ctx, path, DefaultDebounce)
	if err != nil {
		return err
	}
	program := tea.NewProgram(NewModel(path, theme, changes, errs), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
