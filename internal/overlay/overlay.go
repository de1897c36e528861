// Package overlay models the drawable objects shown over the map and keeps
// the map surface's layer membership in step with the requested visibility.
//
// Membership on the surface is the visibility state: an object is on the
// surface if and only if it is meant to be visible. Nothing here stores a
// separate visible flag.
package overlay

import (
	"armamap/internal/coords"
)

// Overlay is anything that can be added to or removed from a Surface.
type Overlay interface {
	OverlayID() string
}

// Surface is the layer-membership contract of the map surface.
type Surface interface {
	AddLayer(o Overlay)
	RemoveLayer(o Overlay)
	HasLayer(o Overlay) bool
}

// Kind identifies how a Shape is drawn.
type Kind int

const (
	KindIcon Kind = iota
	KindLabel
	KindPolygon
	KindDrawn
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindIcon:
		return "icon"
	case KindLabel:
		return "label"
	case KindPolygon:
		return "polygon"
	case KindDrawn:
		return "drawn"
	case KindPath:
		return "path"
	}
	return "unknown"
}

// Shape is a single overlay object. Icons and labels use the first vertex
// of the first ring; polygons use Rings[0] as the outer ring and any further
// rings as holes.
type Shape struct {
	ID    string
	Kind  Kind
	Group string
	Name  string
	Rings [][]coords.MapPoint
}

func (s *Shape) OverlayID() string { return s.ID }

// Anchor returns the first vertex, or false for an empty shape.
func (s *Shape) Anchor() (coords.MapPoint, bool) {
	if len(s.Rings) == 0 || len(s.Rings[0]) == 0 {
		return coords.MapPoint{}, false
	}
	return s.Rings[0][0], true
}

// OuterRing returns the first ring in its original vertex order.
func (s *Shape) OuterRing() []coords.MapPoint {
	if len(s.Rings) == 0 {
		return nil
	}
	return s.Rings[0]
}

// Marker is one logical marker. It owns several overlay objects (its icon
// and its label) that are always shown or hidden together.
type Marker struct {
	Name     string
	Group    string
	Position coords.WorldCoordinate
	Shapes   []*Shape
}

// Overlays returns the marker's objects as Overlays.
func (m *Marker) Overlays() []Overlay {
	out := make([]Overlay, len(m.Shapes))
	for i, s := range m.Shapes {
		out[i] = s
	}
	return out
}
