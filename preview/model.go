// Package preview drives a shell.Shell from the keyboard and draws its
// state in the terminal, to inspect routing, the menu and the page
// transitions without a browser.
package preview

import (
	"strconv"
	"time"

	"settleedge_web/config"
	"settleedge_web/services/shell"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollStep is the offset change per scroll key press.
const scrollStep = 120

// transitionDoneMsg stands in for the browser's animationend event.
type transitionDoneMsg struct {
	mountID string
}

// Model is the bubbletea model for the preview.
type Model struct {
	shell    *shell.Shell
	nav      *config.Navigation
	keys     keyMap
	help     help.Model
	wide     bool
	quitting bool
}

// NewModel wraps sh. wide selects the desktop layout.
func NewModel(sh *shell.Shell, nav *config.Navigation, wide bool) Model {
	return Model{
		shell: sh,
		nav:   nav,
		keys:  defaultKeyMap(),
		help:  help.New(),
		wide:  wide,
	}
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Init() tea.Cmd {
	return m.completeAfter(m.shell.Active())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case transitionDoneMsg:
		m.shell.Complete(msg.mountID)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Navigate):
		i, err := strconv.Atoi(msg.String())
		if err != nil || i < 1 || i > len(shell.Routes) {
			return m, nil
		}
		tr, err := m.shell.Navigate(shell.Routes[i-1])
		if err != nil || !tr.Changed {
			return m, nil
		}
		cmds := []tea.Cmd{m.completeAfter(*tr.Entering)}
		if tr.Exiting != nil {
			cmds = append(cmds, m.completeAfter(*tr.Exiting))
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.Menu):
		m.shell.ToggleMenu()

	case key.Matches(msg, m.keys.Wide):
		m.wide = !m.wide

	case key.Matches(msg, m.keys.Down):
		m.shell.ReportScroll(m.shell.ScrollOffset() + scrollStep)

	case key.Matches(msg, m.keys.Up):
		m.shell.ReportScroll(m.shell.ScrollOffset() - scrollStep)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// completeAfter signals the end of mount's transition once the configured
// duration has passed. Settled mounts need no signal.
func (m Model) completeAfter(mount shell.Mount) tea.Cmd {
	if mount.Phase != shell.PhaseEntering && mount.Phase != shell.PhaseExiting {
		return nil
	}
	id := mount.ID
	return tea.Tick(m.shell.TransitionDuration(), func(time.Time) tea.Msg {
		return transitionDoneMsg{mountID: id}
	})
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(m.shell.Snapshot(), m.nav, m.wide) + "\n" + m.help.View(m.keys)
}
