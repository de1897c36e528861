package tui

import "armamap/internal/overlay"

// BaseLayer is the background drawn under the overlays.
type BaseLayer int

const (
	BaseSatellite BaseLayer = iota
	BaseTopography
)

func (b BaseLayer) String() string {
	if b == BaseTopography {
		return "topo"
	}
	return "sat"
}

// surface is the map the controller drives. The model keeps a pointer so
// that value copies made by bubbletea share one set of layers.
type surface struct {
	layers *overlay.Layers
	view   viewport
	base   BaseLayer
}

func newSurface(v viewport) *surface {
	return &surface{layers: overlay.NewLayers(), view: v}
}

func (s *surface) AddLayer(o overlay.Overlay)      { s.layers.AddLayer(o) }
func (s *surface) RemoveLayer(o overlay.Overlay)   { s.layers.RemoveLayer(o) }
func (s *surface) HasLayer(o overlay.Overlay) bool { return s.layers.HasLayer(o) }
func (s *surface) Zoom() int                       { return s.view.zoom }
