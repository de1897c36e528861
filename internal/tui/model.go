// Package tui is the terminal map surface: a bubbletea model that renders
// overlays on a braille canvas and forwards pointer events to the
// interaction controller.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"armamap/internal/clipboard"
	"armamap/internal/config"
	"armamap/internal/controller"
	"armamap/internal/coords"
	"armamap/internal/overlay"
	"armamap/internal/registry"
	"armamap/internal/signal"
)

type mode int

const (
	modeView mode = iota
	modeDraw
	modeMeasure
	modePaste
)

type sidebarMode int

const (
	sidebarGroups sidebarMode = iota
	sidebarFiles
)

// Options wires a Model to its collaborators.
type Options struct {
	Config   config.Config
	Registry *registry.Registry
	Sink     clipboard.Sink
	Log      zerolog.Logger
}

type Model struct {
	width  int
	height int

	showSidebar bool
	sidebar     sidebarMode
	helpVisible bool
	mode        mode

	status string

	reg     *registry.Registry
	ctl     *controller.Controller
	surf    *surface
	tiles   [2]string
	drawn   *overlay.Group
	zoomSub *signal.Subscription
	log     zerolog.Logger

	// sidebar
	cwd string
	l   list.Model

	// paste mode
	ta textarea.Model

	// vertices of the shape being drawn, and of the measured path
	draft   []coords.MapPoint
	measure []coords.MapPoint

	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int

	// drawn items table
	showAttrs bool
	tbl       table.Model
}

// New builds the map surface, hands it to a new controller and publishes
// the registry's current group state onto it.
func New(opts Options) Model {
	mc := opts.Config.Map
	center := coords.MapPoint{Row: mc.MapSize / 2, Col: mc.MapSize / 2}
	if len(mc.Center) == 2 {
		center = coords.MapPoint{Row: mc.Center[0], Col: mc.Center[1]}
	}
	surf := newSurface(viewport{
		center:  center,
		zoom:    mc.InitZoom,
		minZoom: mc.MinZoom,
		maxZoom: mc.MaxZoom,
		mapSize: mc.MapSize,
		w:       80,
		h:       24,
	})
	drawn := overlay.NewGroup(surf)

	m := Model{
		helpVisible: true,
		status:      "armamap ready",
		reg:         opts.Registry,
		surf:        surf,
		tiles:       [2]string{mc.SatURL, mc.TopoURL},
		drawn:       drawn,
		log:         opts.Log,
	}
	m.ctl = controller.New(controller.Options{
		Config:  opts.Config.Coords(),
		Sink:    opts.Sink,
		Drawn:   drawn,
		Filters: opts.Registry.Filters(),
		Log:     opts.Log,
	})
	m.zoomSub = m.ctl.ZoomChanged.Subscribe(func(z int) {
		opts.Log.Debug().Int("zoom", z).Msg("zoom changed")
	})
	m.ctl.OnMapReady(surf)
	m.reg.Sync()

	m.cwd, _ = os.Getwd()
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste world WKT (POINT, POLYGON, ...) or [x, y]. Enter to centre the map; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshGroups()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close releases the controller's subscriptions. Call it once the program
// has exited.
func (m Model) Close() {
	m.zoomSub.Unsubscribe()
	m.ctl.Close()
}

// Coords returns the grid reference under the pointer.
func (m Model) Coords() string { return m.ctl.Coords() }
