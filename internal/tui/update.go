package tui

import (
	"fmt"
	"slices"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"armamap/internal/capture"
	"armamap/internal/controller"
	"armamap/internal/coords"
	"armamap/internal/geom"
	"armamap/internal/overlay"
)

const drawnGroup = "drawn"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

// resize fits the canvas and sidebar to the current layout.
func (m *Model) resize() {
	l := m.layout()
	m.surf.view.w, m.surf.view.h = l.mapW, l.mapH
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// while the list filters, keys belong to it
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	switch m.mode {
	case modePaste:
		return m.updatePaste(msg)
	case modeDraw:
		switch msg.String() {
		case "enter":
			m.completeDraft()
			return m, nil
		case "esc":
			m.draft = nil
			m.mode = modeView
			m.status = "draw cancelled"
			return m, nil
		case "backspace":
			if n := len(m.draft); n > 0 {
				m.draft = m.draft[:n-1]
			}
			m.status = fmt.Sprintf("draw: %d vertices", len(m.draft))
			return m, nil
		}
	case modeMeasure:
		switch msg.String() {
		case "esc", "m":
			m.measure = nil
			m.mode = modeView
			m.status = "view mode"
			return m, nil
		case "backspace":
			if n := len(m.measure); n > 0 {
				m.measure = m.measure[:n-1]
			}
			return m, nil
		}
	}

	if m.showAttrs {
		switch msg.String() {
		case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
	}

	if m.showSidebar {
		switch msg.String() {
		case "up", "down", "k", "j", "/", "pgup", "pgdown":
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "+", "=":
		m.zoomTo(m.surf.view.zoom + 1)
	case "-", "_":
		m.zoomTo(m.surf.view.zoom - 1)
	case "up":
		m.surf.view.pan(0, -0.125)
	case "down":
		m.surf.view.pan(0, 0.125)
	case "left":
		m.surf.view.pan(-0.125, 0)
	case "right":
		m.surf.view.pan(0.125, 0)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshGroups()
		}
		m.resize()
	case "o":
		m.showSidebar = true
		m.refreshDir()
		m.resize()
	case "enter":
		if m.showSidebar {
			m.selectSidebarItem()
		}
	case "e":
		m.reg.SetAll(true)
		m.refreshGroups()
		m.status = "all groups shown"
	case "x":
		m.reg.SetAll(false)
		m.refreshGroups()
		m.status = "all groups hidden"
	case "d":
		m.mode = modeDraw
		m.draft = nil
		m.measure = nil
		m.status = "draw: click vertices, Enter to finish, Esc to cancel"
	case "m":
		m.mode = modeMeasure
		m.measure = nil
		m.draft = nil
		m.status = "measure: click points, Esc to finish"
	case "p":
		m.mode = modePaste
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case "b":
		if m.surf.base == BaseSatellite {
			m.surf.base = BaseTopography
		} else {
			m.surf.base = BaseSatellite
		}
		m.status = "base layer: " + m.surf.base.String()
		if url := m.tiles[m.surf.base]; url != "" {
			m.status += " (" + url + ")"
		}
	case "a":
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrs()
		}
	case "h":
		m.helpVisible = !m.helpVisible
	case "esc":
		m.inspectPopup = ""
		m.showAttrs = false
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeView
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		w, err := pastedTarget(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.surf.view.recentre(coords.ToMapPoint(w, m.ctl.Config()))
		m.status = "centred on " + m.ctl.Grid().Format(w)
		m.mode = modeView
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// pastedTarget reads a world position from "[x, y]" or the bounding box
// centre of a WKT geometry.
func pastedTarget(text string) (coords.WorldCoordinate, error) {
	if strings.HasPrefix(text, "[") {
		return coords.ParsePair(text)
	}
	d, err := geom.ParseWKTGeometry(text)
	if err != nil {
		return coords.WorldCoordinate{}, err
	}
	return coords.WorldCoordinate{
		X: (d.BBox.MinX + d.BBox.MaxX) / 2,
		Y: (d.BBox.MinY + d.BBox.MaxY) / 2,
	}, nil
}

func (m *Model) zoomTo(z int) {
	if m.surf.view.setZoom(z) {
		m.ctl.OnZoomEnd(m.surf.view.zoom)
	}
	m.status = fmt.Sprintf("zoom: %d", m.surf.view.zoom)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()
	cx, cy := msg.X-l.originX, msg.Y-l.originY
	inMap := cx >= 0 && cx < l.mapW && cy >= 0 && cy < l.mapH &&
		m.mode != modePaste && !m.showAttrs
	if !inMap {
		m.hovering = false
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy
	p := m.surf.view.cellToMap(cx, cy)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.ctl.OnPointerMove(p)
	case tea.MouseActionPress:
		if m.inspectPopup != "" {
			m.inspectPopup = ""
			return m, nil
		}
		m.press(msg.Button, p)
	}
	return m, nil
}

// press forwards a button press to the controller and runs the surface's
// own action for it unless the controller consumed it.
func (m *Model) press(b tea.MouseButton, p coords.MapPoint) {
	switch b {
	case tea.MouseButtonWheelUp:
		m.zoomTo(m.surf.view.zoom + 1)
		return
	case tea.MouseButtonWheelDown:
		m.zoomTo(m.surf.view.zoom - 1)
		return
	}
	btn, ok := pointerButton(b)
	if !ok {
		return
	}
	if m.ctl.OnPointerDown(controller.PointerEvent{Point: p, Button: btn}) {
		if err := m.ctl.CopyErr(); err != nil {
			m.status = "copy failed: " + err.Error()
			return
		}
		m.status = "copied " + coords.CompactPair(coords.ToWorld(p, m.ctl.Config()))
		return
	}
	switch btn {
	case controller.ButtonPrimary:
		m.primaryAction(p)
	case controller.ButtonMiddle:
		m.surf.view.recentre(p)
	}
}

func pointerButton(b tea.MouseButton) (controller.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return controller.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return controller.ButtonMiddle, true
	case tea.MouseButtonRight:
		return controller.ButtonSecondary, true
	}
	return 0, false
}

func (m *Model) primaryAction(p coords.MapPoint) {
	switch m.mode {
	case modeDraw:
		m.draft = append(m.draft, p)
		m.status = fmt.Sprintf("draw: %d vertices", len(m.draft))
	case modeMeasure:
		m.measure = append(m.measure, p)
		m.status = fmt.Sprintf("measure: %.0f m", pathLength(m.measure, m.ctl.Config()))
	default:
		m.inspectPopup = m.inspect(p)
	}
}

// completeDraft hands the drawn vertices to the controller as a finished
// shape: a marker for one vertex, a polyline for two, a polygon otherwise.
func (m *Model) completeDraft() {
	n := len(m.draft)
	m.mode = modeView
	if n == 0 {
		m.status = "draw: nothing drawn"
		return
	}
	typ := capture.ShapePolygon
	switch n {
	case 1:
		typ = capture.ShapeMarker
	case 2:
		typ = capture.ShapePolyline
	}
	shape := &overlay.Shape{
		ID:    uuid.NewString(),
		Kind:  overlay.KindDrawn,
		Group: drawnGroup,
		Name:  fmt.Sprintf("%s %d", typ, m.drawn.Len()+1),
		Rings: [][]coords.MapPoint{slices.Clone(m.draft)},
	}
	m.draft = nil
	m.ctl.OnShapeCreated(capture.ShapeCreated{Type: typ, Layer: shape})
	if typ == capture.ShapePolygon {
		m.status = fmt.Sprintf("polygon captured: %d vertices copied", n)
	} else {
		m.status = string(typ) + " kept"
	}
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// inspect describes the visible marker or shape vertex nearest p within
// a few cells.
func (m Model) inspect(p coords.MapPoint) string {
	v := m.surf.view
	px, py := v.toMicro(p)
	const reach = 8 * 8
	best := reach + 1
	var hit *overlay.Shape
	m.surf.layers.Each(func(o overlay.Overlay) {
		s, ok := o.(*overlay.Shape)
		if !ok || s.Kind == overlay.KindLabel {
			return
		}
		for _, ring := range s.Rings {
			for _, q := range ring {
				qx, qy := v.toMicro(q)
				dx, dy := qx-px, qy-py
				if d := dx*dx + dy*dy; d < best {
					best, hit = d, s
				}
			}
		}
	})
	if hit == nil {
		m.log.Debug().Msg("inspect: nothing nearby")
		return ""
	}
	cfg := m.ctl.Config()
	anchor, _ := hit.Anchor()
	w := coords.Round(coords.ToWorld(anchor, cfg), capture.Precision)
	return strings.Join([]string{
		"name:  " + hit.Name,
		"group: " + hit.Group,
		"kind:  " + hit.Kind.String(),
		"grid:  " + m.ctl.Grid().Format(w),
		"world: " + coords.CompactPair(w),
	}, "\n")
}
