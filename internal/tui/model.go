package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndarilek/tma/internal/session"
	"github.com/ndarilek/tma/internal/tmux"
)

const (
	pollInterval = 1500 * time.Millisecond
	previewDepth = 50
)

type tickMsg time.Time

// sessionsMsg carries a refreshed session list from a single host.
// Entries for that host get replaced, everything else is kept.
type sessionsMsg struct {
	Host     string
	Sessions []session.Session
}

type previewOutputMsg struct {
	Output string
}

type previewState struct {
	Name   string
	Host   string
	Output string
}

type confirmAction struct {
	Name string
	Host string
}

type Model struct {
	sessions      []session.Session
	filtered      []session.Session
	cursor        int
	scrollOffset  int
	input         textinput.Model
	preview       *previewState
	confirmKill   *confirmAction
	runners       []tmux.Runner
	width, height int
	AttachTarget  string // set when user confirms attach
	AttachHost    string // host of session to attach
	quitting      bool
}

func NewModel(runners []tmux.Runner) Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{
		input:   ti,
		runners: runners,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tickCmd()}
	cmds = append(cmds, m.refreshCmds()...)
	return tea.Batch(cmds...)
}

// refreshCmds returns commands that fetch each host in parallel.
func (m Model) refreshCmds() []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range m.runners {
		r := r // capture
		cmds = append(cmds, func() tea.Msg {
			return sessionsMsg{Host: r.Host(), Sessions: session.List(r)}
		})
	}
	return cmds
}

func (m Model) capturePreviewCmd(name, host string) tea.Cmd {
	r := m.findRunner(host)
	return func() tea.Msg {
		output, err := r.Output(tmux.CapturePane(name, previewDepth)...)
		if err != nil {
			return previewOutputMsg{Output: "Error: " + err.Error()}
		}
		return previewOutputMsg{Output: strings.TrimRight(output, "\n")}
	}
}

func (m Model) findRunner(host string) tmux.Runner {
	for _, r := range m.runners {
		if r.Host() == host {
			return r
		}
	}
	return m.runners[0]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case sessionsMsg:
		var kept []session.Session
		for _, s := range m.sessions {
			if s.Host != msg.Host {
				kept = append(kept, s)
			}
		}
		m.sessions = append(kept, msg.Sessions...)
		session.Sort(m.sessions)
		if m.preview == nil {
			m.applyFilter()
		}
		return m, nil

	case tickMsg:
		cmds := append([]tea.Cmd{tickCmd()}, m.refreshCmds()...)
		if m.preview != nil {
			cmds = append(cmds, m.capturePreviewCmd(m.preview.Name, m.preview.Host))
		}
		return m, tea.Batch(cmds...)

	case previewOutputMsg:
		if m.preview != nil {
			m.preview.Output = msg.Output
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if key.Matches(msg, keys.CtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	// Escape
	if key.Matches(msg, keys.Escape) {
		if m.confirmKill != nil {
			m.confirmKill = nil
			return m, nil
		}
		if m.preview != nil {
			m.preview = nil
			m.input.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	// If kill confirmation is pending, only Enter proceeds
	if m.confirmKill != nil {
		if key.Matches(msg, keys.Enter) {
			return m.executeKill()
		}
		// Any other key cancels
		m.confirmKill = nil
		return m, nil
	}

	// Ctrl+K: kill selected session
	if key.Matches(msg, keys.Kill) {
		if sel := m.selectedSession(); sel != nil {
			m.confirmKill = &confirmAction{Name: sel.Name, Host: sel.Host}
		}
		return m, nil
	}

	// q quits only when input is empty and no preview
	if key.Matches(msg, keys.Quit) && m.input.Value() == "" && m.preview == nil {
		m.quitting = true
		return m, tea.Quit
	}

	if m.preview != nil {
		return m.handlePreviewKey(msg)
	}

	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Navigation: only when input is empty
	if m.input.Value() == "" {
		if key.Matches(msg, keys.Up) {
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
			return m, nil
		}
		if key.Matches(msg, keys.Down) {
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
			return m, nil
		}
	}

	// Enter opens the preview for the selected session
	if key.Matches(msg, keys.Enter) {
		sel := m.selectedSession()
		if sel == nil {
			return m, nil
		}
		m.preview = &previewState{Name: sel.Name, Host: sel.Host}
		m.input.SetValue("")
		return m, m.capturePreviewCmd(sel.Name, sel.Host)
	}

	// Default: update text input and refilter
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Navigation: switch between sessions while previewing
	if m.input.Value() == "" {
		if key.Matches(msg, keys.Up) {
			if m.cursor > 0 {
				m.cursor--
				m.ensureCursorVisible()
			}
			return m.switchPreview()
		}
		if key.Matches(msg, keys.Down) {
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.ensureCursorVisible()
			}
			return m.switchPreview()
		}
	}

	// Enter attaches on an empty line, otherwise types the line
	// into the previewed session
	if key.Matches(msg, keys.Enter) {
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.AttachTarget = m.preview.Name
			m.AttachHost = m.preview.Host
			m.preview = nil
			m.quitting = true
			return m, tea.Quit
		}
		r := m.findRunner(m.preview.Host)
		for _, args := range tmux.TypeKeys(m.preview.Name, text) {
			_ = r.Run(args...)
		}
		m.input.SetValue("")
		return m, m.capturePreviewCmd(m.preview.Name, m.preview.Host)
	}

	// Default: update text input (no filtering in preview mode)
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) switchPreview() (tea.Model, tea.Cmd) {
	sel := m.selectedSession()
	if sel == nil {
		return m, nil
	}
	m.preview.Name = sel.Name
	m.preview.Host = sel.Host
	m.preview.Output = ""
	return m, m.capturePreviewCmd(sel.Name, sel.Host)
}

func (m Model) executeKill() (Model, tea.Cmd) {
	if m.confirmKill == nil {
		return m, nil
	}
	r := m.findRunner(m.confirmKill.Host)
	_ = r.Run(tmux.KillSession(m.confirmKill.Name)...)
	m.confirmKill = nil
	m.preview = nil
	return m, tea.Batch(m.refreshCmds()...)
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.sessions
	} else {
		m.filtered = nil
		for _, s := range m.sessions {
			if strings.Contains(strings.ToLower(s.Name), query) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.ensureCursorVisible()
}

func (m Model) maxVisibleSessions() int {
	if m.preview == nil {
		return len(m.filtered)
	}
	maxVis := m.height / 10
	if maxVis < 5 {
		maxVis = 5
	}
	if maxVis > len(m.filtered) {
		maxVis = len(m.filtered)
	}
	return maxVis
}

func (m *Model) ensureCursorVisible() {
	maxVis := m.maxVisibleSessions()
	if maxVis <= 0 {
		m.scrollOffset = 0
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+maxVis {
		m.scrollOffset = m.cursor - maxVis + 1
	}
	maxOffset := len(m.filtered) - maxVis
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
}

func (m Model) hasRemoteHosts() bool {
	for _, r := range m.runners {
		if r.Host() != "" {
			return true
		}
	}
	return false
}

func (m Model) selectedSession() *session.Session {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	s := m.filtered[m.cursor]
	return &s
}
