// Package capture turns completed drawings into world coordinates on the
// clipboard.
package capture

import (
	"github.com/rs/zerolog"

	"armamap/internal/clipboard"
	"armamap/internal/coords"
	"armamap/internal/overlay"
)

// ShapeType names the drawing tool that produced a shape.
type ShapeType string

const (
	ShapePolygon      ShapeType = "polygon"
	ShapePolyline     ShapeType = "polyline"
	ShapeRectangle    ShapeType = "rectangle"
	ShapeCircle       ShapeType = "circle"
	ShapeMarker       ShapeType = "marker"
	ShapeCircleMarker ShapeType = "circlemarker"
)

// Precision is the number of decimals kept in captured coordinates.
const Precision = 2

// ShapeCreated is delivered when the operator finishes a drawing.
type ShapeCreated struct {
	Type  ShapeType
	Layer *overlay.Shape
}

// Retainer keeps drawn shapes on the map after the drawing ends.
type Retainer interface {
	AddLayer(o overlay.Overlay)
}

// Capture handles completed drawings.
type Capture struct {
	cfg   coords.Config
	drawn Retainer
	sink  clipboard.Sink
	log   zerolog.Logger
}

func New(cfg coords.Config, drawn Retainer, sink clipboard.Sink, log zerolog.Logger) *Capture {
	return &Capture{cfg: cfg, drawn: drawn, sink: sink, log: log}
}

// OnShapeCompleted retains the shape and, for polygons, copies the outer
// ring's world coordinates as JSON. Other shape types are ignored.
// Clipboard failures are logged, not returned.
func (c *Capture) OnShapeCompleted(e ShapeCreated) {
	if e.Layer == nil {
		return
	}
	if c.drawn != nil {
		c.drawn.AddLayer(e.Layer)
	}

	switch e.Type {
	case ShapePolygon:
		ring := WorldRing(e.Layer.OuterRing(), c.cfg)
		out, err := coords.MarshalRing(ring)
		if err != nil {
			c.log.Error().Err(err).Msg("failed to serialize polygon")
			return
		}
		if err := c.sink.Copy(out); err != nil {
			c.log.Warn().Err(err).Msg("failed to copy polygon to clipboard")
			return
		}
		c.log.Info().
			Str("id", e.Layer.ID).
			Int("vertices", len(ring)).
			Msg("copied polygon")
		if c.log.GetLevel() <= zerolog.DebugLevel {
			wkt, err := RingWKT(ring)
			if err != nil {
				c.log.Debug().Err(err).Str("ring", out).Msg("captured polygon")
			} else {
				c.log.Debug().Str("wkt", wkt).Msg("captured polygon")
			}
		}
	default:
		c.log.Debug().Str("type", string(e.Type)).Msg("ignoring drawn shape")
	}
}

// WorldRing converts a ring to world coordinates rounded to Precision,
// keeping vertex order and any closing vertex as given.
func WorldRing(ring []coords.MapPoint, cfg coords.Config) []coords.WorldCoordinate {
	out := make([]coords.WorldCoordinate, len(ring))
	for i, p := range ring {
		out[i] = coords.Round(coords.ToWorld(p, cfg), Precision)
	}
	return out
}
