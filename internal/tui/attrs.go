package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"armamap/internal/capture"
	"armamap/internal/coords"
	"armamap/internal/overlay"
)

// drawnColumns are the attribute table columns for drawn shapes.
var drawnColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "id", Width: 10},
	{Title: "name", Width: 16},
	{Title: "vertices", Width: 8},
	{Title: "first vertex", Width: 22},
	{Title: "grid", Width: 13},
}

// refreshAttrs rebuilds the table from the drawn items.
func (m *Model) refreshAttrs() {
	rows := m.drawnRows()
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no drawn shapes"
		return
	}
	// clear rows first so they never mismatch the columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(drawnColumns)
	m.tbl.SetRows(rows)
}

func (m *Model) drawnRows() []table.Row {
	cfg := m.ctl.Config()
	grid := m.ctl.Grid()
	var rows []table.Row
	for i, o := range m.drawn.Items() {
		s, ok := o.(*overlay.Shape)
		if !ok {
			continue
		}
		ring := capture.WorldRing(s.OuterRing(), cfg)
		first, ref := "", ""
		if len(ring) > 0 {
			first = coords.CompactPair(ring[0])
			ref = grid.Format(ring[0])
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			truncate(s.ID, 10),
			s.Name,
			fmt.Sprintf("%d", len(ring)),
			first,
			ref,
		})
	}
	return rows
}
