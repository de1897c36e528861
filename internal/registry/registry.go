// Package registry owns the overlay groups shown on the map and publishes
// requests to show or hide them.
package registry

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"armamap/internal/coords"
	"armamap/internal/geom"
	"armamap/internal/overlay"
	"armamap/internal/signal"
)

// Group is a named set of markers and polygons.
type Group struct {
	Name     string
	Markers  []*overlay.Marker
	Polygons []*overlay.Shape
}

// Filters is the set of signal sources a map listens to.
type Filters struct {
	EnableMarkers   *signal.Signal[[]*overlay.Marker]
	DisableMarkers  *signal.Signal[[]*overlay.Marker]
	EnablePolygons  *signal.Signal[[]*overlay.Shape]
	DisablePolygons *signal.Signal[[]*overlay.Shape]
}

// Registry builds overlay objects from loaded features and remembers which
// groups were last enabled.
type Registry struct {
	cfg     coords.Config
	groups  map[string]*Group
	enabled map[string]bool
	nextID  int
	log     zerolog.Logger

	enableMarkers   signal.Signal[[]*overlay.Marker]
	disableMarkers  signal.Signal[[]*overlay.Marker]
	enablePolygons  signal.Signal[[]*overlay.Shape]
	disablePolygons signal.Signal[[]*overlay.Shape]
}

func New(cfg coords.Config, log zerolog.Logger) *Registry {
	return &Registry{
		cfg:     cfg,
		groups:  make(map[string]*Group),
		enabled: make(map[string]bool),
		log:     log,
	}
}

// Filters returns the registry's four signal sources.
func (r *Registry) Filters() Filters {
	return Filters{
		EnableMarkers:   &r.enableMarkers,
		DisableMarkers:  &r.disableMarkers,
		EnablePolygons:  &r.enablePolygons,
		DisablePolygons: &r.disablePolygons,
	}
}

// LoadFile loads an overlay file and adds its features.
func (r *Registry) LoadFile(path string) error {
	d, err := geom.Load(path)
	if err != nil {
		return err
	}
	r.Add(d)
	pts, paths, polys := d.Counts()
	r.log.Info().
		Str("path", path).
		Int("points", pts).
		Int("paths", paths).
		Int("polygons", polys).
		Msg("loaded overlays")
	return nil
}

// Add converts features to overlay objects in map space. Points become
// markers with an icon and a label; paths and polygons become one shape
// each. New groups start enabled.
func (r *Registry) Add(d geom.Data) {
	for _, f := range d.Features {
		g := r.group(f.Group)
		switch f.Kind {
		case geom.FeaturePoint:
			g.Markers = append(g.Markers, r.marker(f))
		case geom.FeaturePath:
			g.Polygons = append(g.Polygons, r.shape(f, overlay.KindPath))
		case geom.FeaturePolygon:
			g.Polygons = append(g.Polygons, r.shape(f, overlay.KindPolygon))
		}
	}
}

func (r *Registry) group(name string) *Group {
	g, ok := r.groups[name]
	if !ok {
		g = &Group{Name: name}
		r.groups[name] = g
		r.enabled[name] = true
	}
	return g
}

func (r *Registry) id(group, kind string) string {
	r.nextID++
	return fmt.Sprintf("%s/%s/%d", group, kind, r.nextID)
}

func (r *Registry) marker(f geom.Feature) *overlay.Marker {
	pos := f.Rings[0][0]
	ring := [][]coords.MapPoint{{coords.ToMapPoint(pos, r.cfg)}}
	return &overlay.Marker{
		Name:     f.Name,
		Group:    f.Group,
		Position: pos,
		Shapes: []*overlay.Shape{
			{ID: r.id(f.Group, "icon"), Kind: overlay.KindIcon, Group: f.Group, Name: f.Name, Rings: ring},
			{ID: r.id(f.Group, "label"), Kind: overlay.KindLabel, Group: f.Group, Name: f.Name, Rings: ring},
		},
	}
}

func (r *Registry) shape(f geom.Feature, kind overlay.Kind) *overlay.Shape {
	rings := make([][]coords.MapPoint, len(f.Rings))
	for i, ring := range f.Rings {
		rings[i] = make([]coords.MapPoint, len(ring))
		for j, w := range ring {
			rings[i][j] = coords.ToMapPoint(w, r.cfg)
		}
	}
	return &overlay.Shape{ID: r.id(f.Group, kind.String()), Kind: kind, Group: f.Group, Name: f.Name, Rings: rings}
}

// Names returns group names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.groups))
	for n := range r.groups {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Group returns the named group.
func (r *Registry) Group(name string) (*Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Enabled reports whether the group was last enabled.
func (r *Registry) Enabled(name string) bool { return r.enabled[name] }

// Enable emits the group's markers and polygons on the enable signals.
func (r *Registry) Enable(name string) bool {
	g, ok := r.groups[name]
	if !ok {
		return false
	}
	r.enabled[name] = true
	r.enableMarkers.Emit(g.Markers)
	r.enablePolygons.Emit(g.Polygons)
	return true
}

// Disable emits the group's markers and polygons on the disable signals.
func (r *Registry) Disable(name string) bool {
	g, ok := r.groups[name]
	if !ok {
		return false
	}
	r.enabled[name] = false
	r.disableMarkers.Emit(g.Markers)
	r.disablePolygons.Emit(g.Polygons)
	return true
}

// Toggle flips a group and returns its new state.
func (r *Registry) Toggle(name string) bool {
	if r.enabled[name] {
		r.Disable(name)
		return false
	}
	return r.Enable(name)
}

// SetAll enables or disables every group.
func (r *Registry) SetAll(enabled bool) {
	for _, n := range r.Names() {
		if enabled {
			r.Enable(n)
		} else {
			r.Disable(n)
		}
	}
}

// Sync re-emits the current state of every group, used once a map is
// attached.
func (r *Registry) Sync() {
	for _, n := range r.Names() {
		if r.enabled[n] {
			r.Enable(n)
		} else {
			r.Disable(n)
		}
	}
}
