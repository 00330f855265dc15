package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ndarilek/tma/internal/session"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	attachedStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	confirmLabelStyle = lipgloss.NewStyle().
				Foreground(redColor).
				Bold(true).
				PaddingLeft(1)

	confirmKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Background(redColor).
			Bold(true).
			Padding(0, 1)

	confirmDimStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	previewBorderStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	previewContentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#444444", Dark: "#BBBBBB"})
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

// shortenPath abbreviates a path for display (replaces $HOME with ~, truncates).
func shortenPath(path string, maxLen int) string {
	if path == "" {
		return ""
	}
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	if len(path) <= maxLen {
		return path
	}
	return "…" + path[len(path)-(maxLen-1):]
}

func renderAttached(s session.Session) string {
	if s.Attached > 0 {
		return attachedStyle.Render("attached")
	}
	return dimStyle.Render("-")
}

func renderAge(s session.Session) string {
	if s.Created.IsZero() {
		return dimStyle.Render("-")
	}
	return dimStyle.Render(session.FormatDuration(time.Since(s.Created)))
}

func (m Model) View() string {
	if m.quitting && m.AttachTarget == "" {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString(titleStyle.Render("tma"))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString("  No sessions. Run tma in a project directory to start one.\n\n")
	} else {
		showHost := m.hasRemoteHosts()

		// Rows (windowed when previewing)
		maxVis := m.maxVisibleSessions()
		end := m.scrollOffset + maxVis
		if end > len(m.filtered) {
			end = len(m.filtered)
		}
		scrollable := len(m.filtered) > maxVis

		// Precompute cell values for visible rows
		type rowData struct {
			host, name, dir, attached, age string
		}
		rows := make([]rowData, 0, end-m.scrollOffset)
		for i := m.scrollOffset; i < end; i++ {
			s := m.filtered[i]
			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			host := s.Host
			if host == "" && showHost {
				host = "local"
			}
			rows = append(rows, rowData{
				host:     host,
				name:     name,
				dir:      shortenPath(s.WorkDir, 24),
				attached: renderAttached(s),
				age:      renderAge(s),
			})
		}

		// Measure column widths (lipgloss.Width is ANSI-aware)
		type colSpec struct {
			min, max, width int
			header          string
		}
		cols := []colSpec{
			{min: 4, max: 32, header: "NAME"},
			{min: 4, max: 24, header: "DIR"},
			{min: 8, max: 8, header: "ATTACHED"},
		}
		hostCol := colSpec{min: 4, max: 10, header: "HOST"}

		for _, r := range rows {
			vals := []string{r.name, r.dir, r.attached}
			for j, v := range vals {
				w := lipgloss.Width(v)
				if w > cols[j].width {
					cols[j].width = w
				}
			}
			if showHost {
				w := lipgloss.Width(r.host)
				if w > hostCol.width {
					hostCol.width = w
				}
			}
		}
		// Also measure headers, then clamp
		clamp := func(c *colSpec) {
			if hw := len(c.header); hw > c.width {
				c.width = hw
			}
			if c.width < c.min {
				c.width = c.min
			}
			if c.width > c.max {
				c.width = c.max
			}
		}
		for j := range cols {
			clamp(&cols[j])
		}
		clamp(&hostCol)

		wName, wDir, wAttached := cols[0].width, cols[1].width, cols[2].width

		// Render header
		header := "    "
		if showHost {
			header += pad("HOST", hostCol.width) + "  "
		}
		header += pad("NAME", wName) + "  " + pad("DIR", wDir) + "  " + pad("ATTACHED", wAttached) + "  AGE"
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		// Reserve constant height: when scrollable, always show both indicator lines
		if scrollable {
			if m.scrollOffset > 0 {
				b.WriteString(helpStyle.Render(fmt.Sprintf("    ↑ %d more", m.scrollOffset)))
			}
			b.WriteString("\n")
		}

		// Render rows
		for ri, r := range rows {
			i := m.scrollOffset + ri
			row := " "
			if showHost {
				row += pad(r.host, hostCol.width) + "  "
			}
			row += pad(r.name, wName) + "  " + pad(r.dir, wDir) + "  " + pad(r.attached, wAttached) + "  " + r.age

			if i == m.cursor {
				b.WriteString(cursorStyle.Render(" >"))
				b.WriteString(selectedRowStyle.Render(row))
			} else {
				b.WriteString("  ")
				b.WriteString(row)
			}
			b.WriteString("\n")
		}

		if scrollable {
			if end < len(m.filtered) {
				b.WriteString(helpStyle.Render(fmt.Sprintf("    ↓ %d more", len(m.filtered)-end)))
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	// Preview panel (height-limited to keep session list visible)
	if m.preview != nil {
		borderTitle := fmt.Sprintf(" ─── %s ", m.preview.Name)
		titleWidth := lipgloss.Width(borderTitle)
		remaining := m.width - titleWidth - 2
		if remaining > 0 {
			borderTitle += strings.Repeat("─", remaining)
		}
		b.WriteString(previewBorderStyle.Render(" " + borderTitle))
		b.WriteString("\n")

		if m.preview.Output != "" {
			previewLines := strings.Split(m.preview.Output, "\n")

			// Budget: title+blank(2) + header(1) + visible sessions + scroll indicators(0 or 2) + gap(1) + borders(2) + input(1) + help(1) + safety(1)
			visibleRows := m.maxVisibleSessions()
			scrollIndicators := 0
			if len(m.filtered) > visibleRows {
				scrollIndicators = 2
			}
			overhead := 9 + visibleRows + scrollIndicators
			maxPreview := m.height - overhead
			if maxPreview < 3 {
				maxPreview = 3
			}

			// Show the last N lines (most recent output)
			start := len(previewLines) - maxPreview
			if start < 0 {
				start = 0
			}
			for _, line := range previewLines[start:] {
				b.WriteString(previewContentStyle.Render(" " + line))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(previewContentStyle.Render(" Loading..."))
			b.WriteString("\n")
		}

		borderBottom := strings.Repeat("─", max(0, m.width-2))
		b.WriteString(previewBorderStyle.Render(" " + borderBottom))
		b.WriteString("\n")
	}

	// Input line (placeholder changes based on mode)
	if m.preview != nil {
		m.input.Placeholder = "Type and press enter to send keys to the session..."
	} else {
		m.input.Placeholder = "Type to filter..."
	}
	b.WriteString(inputLabelStyle.Render(" > "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Help bar / kill confirmation (same slot to avoid layout shift)
	if m.confirmKill != nil {
		b.WriteString(confirmLabelStyle.Render(fmt.Sprintf("Kill '%s'?", m.confirmKill.Name)))
		b.WriteString("  ")
		b.WriteString(confirmKeyStyle.Render("Enter"))
		b.WriteString(confirmDimStyle.Render("confirm"))
		b.WriteString("  ")
		b.WriteString(confirmKeyStyle.Render("Esc"))
		b.WriteString(confirmDimStyle.Render("cancel"))
	} else if m.preview != nil {
		b.WriteString(helpStyle.Render("enter attach  type+enter send  esc close  j/k navigate  ctrl+k kill"))
	} else {
		b.WriteString(helpStyle.Render("enter preview  j/k navigate  ctrl+k kill  q quit"))
	}
	b.WriteString("\n")

	return b.String()
}
