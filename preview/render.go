package preview

import (
	"fmt"
	"strings"

	"settleedge_web/config"
	"settleedge_web/services/shell"

	"github.com/charmbracelet/lipgloss"
)

var (
	brandStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("214"))
	linkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	phaseStyles = map[shell.Phase]lipgloss.Style{
		shell.PhaseEntering: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		shell.PhaseSettled:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		shell.PhaseExiting:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
)

// Render draws the navigation bar, the mobile menu when visible and the
// page mounts for a shell state.
func Render(st shell.State, nav *config.Navigation, wide bool) string {
	var b strings.Builder

	b.WriteString(brandStyle.Render("SettleEdge Legal"))
	b.WriteString("  ")
	if wide {
		b.WriteString(renderLinks(nav.Desktop, st.Route, "  "))
		b.WriteString("  ")
		b.WriteString(linkStyle.Render("[" + nav.CTA.Label + "]"))
	} else {
		icon := "☰"
		if st.Menu.Expanded() {
			icon = "✕"
		}
		b.WriteString(icon)
	}
	b.WriteString("\n")

	if st.Menu.Visible(wide) {
		b.WriteString(menuStyle.Render(renderLinks(nav.Mobile, st.Route, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, m := range st.Mounts {
		style, ok := phaseStyles[m.Phase]
		if !ok {
			style = dimStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%-9s %-10s %s", m.Phase, m.Route, shortID(m.ID))))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("route %s  menu %s  scroll %d", st.Route.Fragment(), st.Menu, st.Scroll)))
	b.WriteString("\n")
	return b.String()
}

func renderLinks(links []shell.NavLink, current shell.Route, sep string) string {
	active := shell.ActiveLinkIndex(links, current)
	parts := make([]string, len(links))
	for i, l := range links {
		if i == active {
			parts[i] = activeStyle.Render("▸ " + l.Label)
		} else {
			parts[i] = linkStyle.Render(l.Label)
		}
	}
	return strings.Join(parts, sep)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
