package capture

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armamap/internal/clipboard"
	"armamap/internal/coords"
	"armamap/internal/overlay"
)

type recordingSink struct {
	copies []string
	err    error
}

func (r *recordingSink) Copy(text string) error {
	r.copies = append(r.copies, text)
	return r.err
}

var _ clipboard.Sink = (*recordingSink)(nil)

func square() *overlay.Shape {
	return &overlay.Shape{
		ID:   "drawn-1",
		Kind: overlay.KindDrawn,
		Rings: [][]coords.MapPoint{{
			{Row: 0, Col: 0},
			{Row: 100, Col: 0},
			{Row: 100, Col: 100},
			{Row: 0, Col: 100},
		}},
	}
}

func newCapture(t *testing.T, mapSize, maxBounds float64, drawn Retainer, sink clipboard.Sink) *Capture {
	t.Helper()
	cfg, err := coords.NewConfig(mapSize, maxBounds)
	require.NoError(t, err)
	return New(cfg, drawn, sink, zerolog.Nop())
}

func TestOnShapeCompleted_PolygonCopiesRing(t *testing.T) {
	sink := &recordingSink{}
	drawn := overlay.NewGroup(nil)
	c := newCapture(t, 200, 200, drawn, sink)

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: square()})

	require.Len(t, sink.copies, 1)
	want := `[
  [
    0,
    200
  ],
  [
    0,
    100
  ],
  [
    100,
    100
  ],
  [
    100,
    200
  ]
]`
	assert.Equal(t, want, sink.copies[0])
	assert.Equal(t, 1, drawn.Len())
}

func TestOnShapeCompleted_KeepsOrderAndClosingVertex(t *testing.T) {
	sink := &recordingSink{}
	c := newCapture(t, 256, 30720, nil, sink)
	ring := []coords.MapPoint{
		{Row: 10.123, Col: 5.5},
		{Row: 200.777, Col: 17.01},
		{Row: 50, Col: 250},
		{Row: 10.123, Col: 5.5},
	}

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: &overlay.Shape{ID: "p", Rings: [][]coords.MapPoint{ring}}})

	require.Len(t, sink.copies, 1)
	var pairs [][2]float64
	require.NoError(t, json.Unmarshal([]byte(sink.copies[0]), &pairs))
	require.Len(t, pairs, 4)
	assert.Equal(t, pairs[0], pairs[3])
	assert.Equal(t, [2]float64{660, 29505.24}, pairs[0])
	assert.Equal(t, [2]float64{2041.2, 6626.76}, pairs[1])
	assert.Equal(t, [2]float64{30000, 24720}, pairs[2])
	for _, p := range pairs {
		assert.Equal(t, coords.RoundFloat(p[0], Precision), p[0])
		assert.Equal(t, coords.RoundFloat(p[1], Precision), p[1])
	}
}

func TestOnShapeCompleted_OtherTypesIgnored(t *testing.T) {
	for _, typ := range []ShapeType{ShapeMarker, ShapeCircle, ShapeRectangle, ShapeCircleMarker, ShapePolyline, "unknown"} {
		t.Run(string(typ), func(t *testing.T) {
			sink := &recordingSink{}
			drawn := overlay.NewGroup(nil)
			c := newCapture(t, 200, 200, drawn, sink)

			c.OnShapeCompleted(ShapeCreated{Type: typ, Layer: square()})

			assert.Empty(t, sink.copies)
			assert.Equal(t, 1, drawn.Len())
		})
	}
}

func TestOnShapeCompleted_ClipboardErrorIsSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("no clipboard")}
	c := newCapture(t, 200, 200, nil, sink)

	assert.NotPanics(t, func() {
		c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: square()})
	})
	assert.Len(t, sink.copies, 1)
}

func TestOnShapeCompleted_NilLayer(t *testing.T) {
	sink := &recordingSink{}
	drawn := overlay.NewGroup(nil)
	c := newCapture(t, 200, 200, drawn, sink)

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon})

	assert.Empty(t, sink.copies)
	assert.Equal(t, 0, drawn.Len())
}

func TestOnShapeCompleted_RetainsOnSurface(t *testing.T) {
	layers := overlay.NewLayers()
	drawn := overlay.NewGroup(layers)
	c := newCapture(t, 200, 200, drawn, &recordingSink{})
	s := square()

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: s})

	assert.True(t, layers.HasLayer(s))
}

func TestRingWKT(t *testing.T) {
	ring := []coords.WorldCoordinate{{X: 0, Y: 200}, {X: 0, Y: 100}, {X: 100, Y: 100}}

	poly, err := RingWKT(ring)
	require.NoError(t, err)
	assert.Contains(t, poly, "POLYGON")

	line, err := RingWKT(ring[:2])
	require.NoError(t, err)
	assert.Contains(t, line, "LINESTRING")

	empty, err := RingWKT(nil)
	require.NoError(t, err)
	assert.Equal(t, "POLYGON EMPTY", empty)
}

func TestRingWKT_Degenerate(t *testing.T) {
	same := []coords.WorldCoordinate{{X: 5, Y: 5}, {X: 5, Y: 5}}
	_, err := RingWKT(same)
	assert.Error(t, err)
}

func TestOnShapeCompleted_DegenerateRingLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := coords.NewConfig(200, 200)
	require.NoError(t, err)
	sink := &recordingSink{}
	c := New(cfg, overlay.NewGroup(nil), sink, zerolog.New(&buf).Level(zerolog.DebugLevel))
	dot := &overlay.Shape{ID: "dot", Kind: overlay.KindDrawn, Rings: [][]coords.MapPoint{{
		{Row: 10, Col: 10}, {Row: 10, Col: 10}, {Row: 10, Col: 10},
	}}}

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: dot})

	require.Len(t, sink.copies, 1)
	assert.Contains(t, buf.String(), `"ring"`)
	assert.NotContains(t, buf.String(), `"wkt"`)
}

func TestOnShapeCompleted_NoNegativeZero(t *testing.T) {
	sink := &recordingSink{}
	c := newCapture(t, 200, 200, overlay.NewGroup(nil), sink)
	edge := &overlay.Shape{ID: "edge", Kind: overlay.KindDrawn, Rings: [][]coords.MapPoint{{
		{Row: 0, Col: -0.001}, {Row: 200.001, Col: 50}, {Row: 50, Col: 50},
	}}}

	c.OnShapeCompleted(ShapeCreated{Type: ShapePolygon, Layer: edge})

	require.Len(t, sink.copies, 1)
	assert.NotContains(t, sink.copies[0], "-0")
	assert.JSONEq(t, `[[0,200],[50,0],[50,150]]`, sink.copies[0])
}
