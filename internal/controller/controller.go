// Package controller binds map surface events and registry filter signals
// to coordinate readout, clipboard copying, visibility and draw capture.
//
// Every handler runs to completion on the caller's goroutine; the map
// surface is expected to deliver events one at a time, in input order.
package controller

import (
	"github.com/rs/zerolog"

	"armamap/internal/capture"
	"armamap/internal/clipboard"
	"armamap/internal/coords"
	"armamap/internal/overlay"
	"armamap/internal/registry"
	"armamap/internal/signal"
)

// Surface is the part of the map surface the controller drives.
type Surface interface {
	overlay.Surface
	Zoom() int
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is a pointer press at a map point.
type PointerEvent struct {
	Point  coords.MapPoint
	Button Button
}

// Options configures a Controller.
type Options struct {
	Config  coords.Config
	Sink    clipboard.Sink
	Drawn   capture.Retainer
	Filters registry.Filters
	Log     zerolog.Logger
}

// Controller is the top-level interaction handler for one map.
type Controller struct {
	cfg     coords.Config
	grid    coords.GridFormat
	sink    clipboard.Sink
	capture *capture.Capture
	log     zerolog.Logger

	surface    Surface
	visibility *overlay.Visibility
	zoom       int
	coords     string
	copyErr    error

	subs signal.Group

	// ZoomChanged is emitted when the map becomes ready and after every
	// zoom change.
	ZoomChanged signal.Signal[int]
}

// New creates a controller and subscribes it to the registry filters.
// Close releases those subscriptions.
func New(opts Options) *Controller {
	c := &Controller{
		cfg:     opts.Config,
		grid:    coords.GridFormatFor(opts.Config),
		sink:    opts.Sink,
		capture: capture.New(opts.Config, opts.Drawn, opts.Sink, opts.Log),
		log:     opts.Log,
	}
	c.coords = c.grid.Blank()
	c.subscribe(opts.Filters)
	return c
}

func (c *Controller) subscribe(f registry.Filters) {
	if f.DisableMarkers != nil {
		c.subs = append(c.subs, f.DisableMarkers.Subscribe(func(ms []*overlay.Marker) { c.changeMarkerVisibility(ms, false) }))
	}
	if f.EnableMarkers != nil {
		c.subs = append(c.subs, f.EnableMarkers.Subscribe(func(ms []*overlay.Marker) { c.changeMarkerVisibility(ms, true) }))
	}
	if f.EnablePolygons != nil {
		c.subs = append(c.subs, f.EnablePolygons.Subscribe(func(ps []*overlay.Shape) { c.changePolygonVisibility(ps, true) }))
	}
	if f.DisablePolygons != nil {
		c.subs = append(c.subs, f.DisablePolygons.Subscribe(func(ps []*overlay.Shape) { c.changePolygonVisibility(ps, false) }))
	}
}

// Close releases every filter subscription. No filter handler runs after
// Close returns. It is safe to call more than once.
func (c *Controller) Close() {
	c.subs.Unsubscribe()
	c.subs = nil
	c.surface = nil
	c.visibility = nil
}

// OnMapReady records the surface and its current zoom.
func (c *Controller) OnMapReady(s Surface) {
	c.surface = s
	c.visibility = overlay.NewVisibility(s, c.log)
	c.zoom = s.Zoom()
	c.ZoomChanged.Emit(c.zoom)
}

// OnZoomEnd records a finished zoom.
func (c *Controller) OnZoomEnd(zoom int) {
	c.zoom = zoom
	c.ZoomChanged.Emit(zoom)
}

// OnPointerMove updates the live grid reference.
func (c *Controller) OnPointerMove(p coords.MapPoint) {
	c.coords = c.grid.Format(coords.ToWorld(p, c.cfg))
}

// OnPointerDown copies the world coordinate under a secondary press as
// "[x, y]". It reports true when the press was consumed and the surface
// must not run its default action for it. A failed copy still consumes
// the press; CopyErr reports it.
func (c *Controller) OnPointerDown(e PointerEvent) bool {
	if e.Button != ButtonSecondary {
		return false
	}
	out := coords.CompactPair(coords.ToWorld(e.Point, c.cfg))
	c.copyErr = c.sink.Copy(out)
	if c.copyErr != nil {
		c.log.Warn().Err(c.copyErr).Msg("failed to copy coordinates to clipboard")
		return true
	}
	c.log.Info().Str("coords", out).Msg("copied coordinates")
	return true
}

// CopyErr returns the error of the last coordinate copy, or nil.
func (c *Controller) CopyErr() error { return c.copyErr }

// OnShapeCreated hands a finished drawing to capture.
func (c *Controller) OnShapeCreated(e capture.ShapeCreated) {
	c.capture.OnShapeCompleted(e)
}

func (c *Controller) changeMarkerVisibility(markers []*overlay.Marker, visible bool) {
	if c.visibility == nil {
		c.log.Warn().Int("markers", len(markers)).Msg("marker filter before map ready")
		return
	}
	c.visibility.SetMarkers(markers, visible)
}

func (c *Controller) changePolygonVisibility(polygons []*overlay.Shape, visible bool) {
	if c.visibility == nil {
		c.log.Warn().Int("polygons", len(polygons)).Msg("polygon filter before map ready")
		return
	}
	c.visibility.SetPolygons(polygons, visible)
}

// Coords returns the grid reference under the pointer.
func (c *Controller) Coords() string { return c.coords }

// Zoom returns the last known zoom level.
func (c *Controller) Zoom() int { return c.zoom }

// Grid returns the grid format used for Coords.
func (c *Controller) Grid() coords.GridFormat { return c.grid }

// Config returns the coordinate config.
func (c *Controller) Config() coords.Config { return c.cfg }
