package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"armamap/internal/coords"
)

func testViewport() viewport {
	return viewport{
		center:  coords.MapPoint{Row: 48, Col: 48},
		zoom:    0,
		minZoom: 0,
		maxZoom: 4,
		mapSize: 96,
		w:       80,
		h:       24,
	}
}

func TestViewport_WholeMapFitsAtMinZoom(t *testing.T) {
	v := testViewport()
	assert.Equal(t, 1.0, v.scale())

	x0, y0 := v.toMicro(coords.MapPoint{Row: 0, Col: 0})
	x1, y1 := v.toMicro(coords.MapPoint{Row: 96, Col: 96})
	assert.GreaterOrEqual(t, x0, 0)
	assert.GreaterOrEqual(t, y0, 0)
	assert.LessOrEqual(t, x1, v.w*2)
	assert.LessOrEqual(t, y1, v.h*4)
}

func TestViewport_CellRoundTrip(t *testing.T) {
	for _, zoom := range []int{0, 1, 3} {
		v := testViewport()
		v.zoom = zoom
		for _, c := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 7}} {
			x, y := v.toMicro(v.cellToMap(c[0], c[1]))
			assert.Equal(t, c[0], x/2, "zoom %d cell %v", zoom, c)
			assert.Equal(t, c[1], y/4, "zoom %d cell %v", zoom, c)
		}
	}
}

func TestViewport_CellToMap(t *testing.T) {
	v := testViewport()
	assert.Equal(t, coords.MapPoint{Row: 50, Col: 49}, v.cellToMap(40, 12))

	v.zoom = 1
	assert.Equal(t, coords.MapPoint{Row: 49, Col: 48.5}, v.cellToMap(40, 12))
}

func TestViewport_SetZoomClamps(t *testing.T) {
	v := testViewport()
	assert.True(t, v.setZoom(2))
	assert.False(t, v.setZoom(2))
	assert.True(t, v.setZoom(9))
	assert.Equal(t, 4, v.zoom)
	assert.True(t, v.setZoom(-3))
	assert.Equal(t, 0, v.zoom)
}

func TestViewport_PanStaysOnMap(t *testing.T) {
	v := testViewport()
	v.pan(0.125, 0)
	assert.Equal(t, 68.0, v.center.Col)

	for i := 0; i < 10; i++ {
		v.pan(-0.125, -0.125)
	}
	assert.Equal(t, coords.MapPoint{Row: 0, Col: 0}, v.center)
	assert.True(t, v.onMap(v.center))
	assert.False(t, v.onMap(coords.MapPoint{Row: -1, Col: 3}))
}
