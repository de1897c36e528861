package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"armamap/internal/coords"
	"armamap/internal/overlay"
)

// renderMap draws the visible overlays, the base layer, the shape being
// drawn and the measured path onto a w x h cell canvas.
func (m Model) renderMap(w, h int) string {
	v := m.surf.view
	v.w, v.h = w, h
	br := newBrailleBuf(w, h)

	if m.surf.base == BaseTopography {
		m.drawGrid(br, v)
	}
	m.drawMapEdge(br, v)

	type label struct {
		cx, cy int
		text   string
	}
	var labels []label
	m.surf.layers.Each(func(o overlay.Overlay) {
		s, ok := o.(*overlay.Shape)
		if !ok {
			return
		}
		switch s.Kind {
		case overlay.KindIcon:
			if p, ok := s.Anchor(); ok {
				br.plus(v.toMicro(p))
			}
		case overlay.KindLabel:
			if p, ok := s.Anchor(); ok {
				mx, my := v.toMicro(p)
				labels = append(labels, label{cx: mx/2 + 2, cy: my / 4, text: s.Name})
			}
		case overlay.KindPath:
			for _, ring := range s.Rings {
				br.polyline(project(v, ring), false)
			}
		case overlay.KindPolygon:
			for _, ring := range s.Rings {
				br.polyline(project(v, ring), true)
			}
		case overlay.KindDrawn:
			rings := s.Rings
			if len(rings) > 0 && len(rings[0]) >= 3 {
				br.fill(project(v, rings[0]))
			}
			for _, ring := range rings {
				br.polyline(project(v, ring), len(ring) >= 3)
			}
		}
	})

	draft := project(v, m.draft)
	br.polyline(draft, false)
	for _, p := range draft {
		br.plus(p[0], p[1])
	}
	br.polyline(project(v, m.measure), false)

	lines := br.toLines()
	for _, lb := range labels {
		if lb.cy < 0 || lb.cy >= h {
			continue
		}
		row := lines[lb.cy]
		for i, r := range []rune(lb.text) {
			x := lb.cx + i
			if x < 0 {
				continue
			}
			if x >= w {
				break
			}
			row[x] = r
		}
	}

	out := make([]string, h)
	for y := range lines {
		out[y] = string(lines[y])
	}
	// pointer marker
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < h && m.hoverCellX >= 0 && m.hoverCellX < w {
		r := lines[m.hoverCellY]
		out[m.hoverCellY] = string(r[:m.hoverCellX]) + pointerStyle.Render("◯") + string(r[m.hoverCellX+1:])
	}
	return strings.Join(out, "\n")
}

func project(v viewport, ring []coords.MapPoint) [][2]int {
	if len(ring) == 0 {
		return nil
	}
	out := make([][2]int, len(ring))
	for i, p := range ring {
		x, y := v.toMicro(p)
		out[i] = [2]int{x, y}
	}
	return out
}

// drawMapEdge outlines the map image.
func (m Model) drawMapEdge(br *brailleBuf, v viewport) {
	s := v.mapSize
	br.polyline(project(v, []coords.MapPoint{
		{Row: 0, Col: 0}, {Row: 0, Col: s}, {Row: s, Col: s}, {Row: s, Col: 0},
	}), true)
}

// drawGrid dots the kilometre grid intersections that fall on the canvas.
// The spacing doubles until dots are at least four micro-pixels apart.
func (m Model) drawGrid(br *brailleBuf, v viewport) {
	cfg := m.ctl.Config()
	step := 1000 * cfg.MapSize / cfg.MaxBounds
	for step*v.scale() < 4 {
		step *= 2
	}
	tl := v.cellToMap(0, 0)
	bot := v.cellToMap(v.w-1, v.h-1)
	startRow := math.Max(0, math.Floor(tl.Row/step)*step)
	startCol := math.Max(0, math.Floor(tl.Col/step)*step)
	endRow := math.Min(v.mapSize, bot.Row)
	endCol := math.Min(v.mapSize, bot.Col)
	// rows are counted from the bottom edge so grid lines match world metres
	offset := math.Mod(v.mapSize, step)
	for row := startRow + offset; row <= endRow; row += step {
		for col := startCol; col <= endCol; col += step {
			br.setPixel(v.toMicro(coords.MapPoint{Row: row, Col: col}))
		}
	}
}

var pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
