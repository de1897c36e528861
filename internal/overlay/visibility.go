package overlay

import "github.com/rs/zerolog"

// Change counts the membership operations performed by one call.
type Change struct {
	Added   int
	Removed int
}

// Visibility applies requested visibility to a surface with the fewest
// add/remove calls: present objects are only removed, absent ones are only
// added, everything else is left alone.
type Visibility struct {
	surface Surface
	log     zerolog.Logger
}

func NewVisibility(s Surface, log zerolog.Logger) *Visibility {
	return &Visibility{surface: s, log: log}
}

// Set shows or hides each object.
func (v *Visibility) Set(objs []Overlay, visible bool) Change {
	var c Change
	for _, o := range objs {
		v.apply(o, visible, &c)
	}
	return c
}

// SetMarkers shows or hides every object owned by each marker.
func (v *Visibility) SetMarkers(markers []*Marker, visible bool) Change {
	var c Change
	for _, m := range markers {
		for _, s := range m.Shapes {
			v.apply(s, visible, &c)
		}
	}
	v.log.Debug().
		Int("markers", len(markers)).
		Bool("visible", visible).
		Int("added", c.Added).
		Int("removed", c.Removed).
		Msg("marker visibility")
	return c
}

// SetPolygons shows or hides each polygon.
func (v *Visibility) SetPolygons(polygons []*Shape, visible bool) Change {
	var c Change
	for _, p := range polygons {
		v.apply(p, visible, &c)
	}
	v.log.Debug().
		Int("polygons", len(polygons)).
		Bool("visible", visible).
		Int("added", c.Added).
		Int("removed", c.Removed).
		Msg("polygon visibility")
	return c
}

func (v *Visibility) apply(o Overlay, visible bool, c *Change) {
	has := v.surface.HasLayer(o)
	switch {
	case has && !visible:
		v.surface.RemoveLayer(o)
		c.Removed++
	case !has && visible:
		v.surface.AddLayer(o)
		c.Added++
	}
}
