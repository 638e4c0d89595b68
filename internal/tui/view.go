package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/tickr/internal/theme"
	"github.com/jmylchreest/tickr/internal/widget"
)

// View renders the TUI.
func (m Model) View() string {
	st := m.styles[m.currentTheme()]

	var b strings.Builder
	b.WriteString(m.viewTabs(st))
	b.WriteString("\n\n")

	switch m.modes.Mode() {
	case widget.ModeClock:
		b.WriteString(m.viewClock(st))
	case widget.ModeStopwatch:
		b.WriteString(m.viewStopwatch(st))
	}

	b.WriteString("\n\n")
	b.WriteString(st.Help.Render(m.help.View(m.keys)))

	content := st.App.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewTabs(st theme.Styles) string {
	clockTab, swTab := st.TabOn, st.Tab
	if m.modes.Mode() == widget.ModeStopwatch {
		clockTab, swTab = st.Tab, st.TabOn
	}

	themeLabel := "light"
	if m.currentTheme() == theme.Dark {
		themeLabel = "dark"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		clockTab.Render("Clock"),
		swTab.Render("Stopwatch"),
		st.Sep.Render("  ["+themeLabel+"]"),
	)
}

func (m Model) viewClock(st theme.Styles) string {
	face := m.clockEngine.Face()
	return renderFields(st, ":", face.Hours, face.Minutes, face.Seconds)
}

func (m Model) viewStopwatch(st theme.Styles) string {
	face := m.stopwatch.Face()
	digits := renderFields(st, ":", face.Hours, face.Minutes, face.Seconds) +
		st.Sep.Render(".") + renderField(st, face.Milliseconds)

	buttons := m.stopwatch.Buttons()
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		renderButton(st, "[s] Start", buttons.Start),
		renderButton(st, "[x] Stop", buttons.Stop),
		renderButton(st, "[r] Reset", buttons.Reset),
	)

	return digits + "\n\n" + row
}

func renderFields(st theme.Styles, sep string, fields ...widget.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = renderField(st, f)
	}
	return strings.Join(parts, st.Sep.Render(sep))
}

func renderField(st theme.Styles, f widget.Field) string {
	if f.Ticking {
		return st.Tick.Render(f.Text)
	}
	return st.Digit.Render(f.Text)
}

func renderButton(st theme.Styles, label string, enabled bool) string {
	if enabled {
		return st.ButtonOn.Render(label)
	}
	return st.Button.Render(label)
}
