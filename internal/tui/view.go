package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW int
	contentH int
	originX  int
	originY  int
	mapW     int
	mapH     int
}

func (m Model) layout() layout {
	headerHeight := 1
	footerHeight := 2
	l := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		originY:  headerHeight,
	}
	if m.showSidebar {
		l.originX = sidebarWidth + 1
	}
	l.mapW = max(10, l.contentW-l.originX)
	l.mapH = l.contentH
	return l
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	header := titleStyle.Render(" armamap ─ " + m.modeTitle() + " ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	var mapView string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(l.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.inspectPopup != "":
		box := boxStyle.MaxWidth(min(48, l.mapW)).Render(m.inspectPopup)
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.mode == modePaste:
		m.ta.SetWidth(l.mapW)
		m.ta.SetHeight(min(l.mapH, 12))
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(m.renderMap(l.mapW, l.mapH))
	}

	body := mapView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	readout := coordStyle.Render(" " + m.readout() + " ")
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(readout))
	right := lipgloss.Place(spacerW+lipgloss.Width(readout), 1, lipgloss.Right, lipgloss.Center, readout)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) modeTitle() string {
	switch m.mode {
	case modeDraw:
		return "draw"
	case modeMeasure:
		return "measure"
	case modePaste:
		return "paste"
	}
	return "view"
}

// readout is the bottom-right status: grid reference, zoom, base layer,
// and the measured length while measuring.
func (m Model) readout() string {
	parts := []string{m.ctl.Coords(), fmt.Sprintf("z%d", m.ctl.Zoom()), m.surf.base.String()}
	if m.mode == modeMeasure {
		parts = append(parts, fmt.Sprintf("%.0f m", pathLength(m.measure, m.ctl.Config())))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"right-click copy",
		"d draw",
		"m measure",
		"p paste",
		"Tab groups",
		"o files",
		"a drawn",
		"b base",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
