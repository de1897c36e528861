package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, mapSize, maxBounds float64) Config {
	t.Helper()
	c, err := NewConfig(mapSize, maxBounds)
	require.NoError(t, err)
	return c
}

func TestToWorld_AxisConvention(t *testing.T) {
	c := mustConfig(t, 1024, 1024)

	w := ToWorld(MapPoint{Row: 512, Col: 256}, c)

	assert.Equal(t, 256.0, w.X)
	assert.Equal(t, 512.0, w.Y)
	assert.Equal(t, "002 | 005", Format(w))
}

func TestToWorld_Corners(t *testing.T) {
	c := mustConfig(t, 256, 30720)

	tests := []struct {
		name string
		in   MapPoint
		want WorldCoordinate
	}{
		{"top-left is north-west", MapPoint{Row: 0, Col: 0}, WorldCoordinate{X: 0, Y: 30720}},
		{"bottom-left is origin", MapPoint{Row: 256, Col: 0}, WorldCoordinate{X: 0, Y: 0}},
		{"bottom-right is south-east", MapPoint{Row: 256, Col: 256}, WorldCoordinate{X: 30720, Y: 0}},
		{"centre", MapPoint{Row: 128, Col: 128}, WorldCoordinate{X: 15360, Y: 15360}},
		{"outside the map is not clamped", MapPoint{Row: 300, Col: -10}, WorldCoordinate{X: -1200, Y: -5280}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToWorld(tt.in, c)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestToMapPoint_InvertsToWorld(t *testing.T) {
	sizes := []struct{ mapSize, maxBounds float64 }{
		{1024, 1024},
		{200, 200},
		{256, 30720},
		{8192, 12800},
		{3.5, 81920.25},
	}
	for _, sz := range sizes {
		c := mustConfig(t, sz.mapSize, sz.maxBounds)
		for i := 0; i <= 16; i++ {
			for j := 0; j <= 16; j++ {
				p := MapPoint{
					Row: sz.mapSize * float64(i) / 16,
					Col: sz.mapSize * float64(j) / 16,
				}
				back := ToMapPoint(ToWorld(p, c), c)
				assert.InDelta(t, p.Row, back.Row, 1e-9*sz.mapSize, "row %v", p)
				assert.InDelta(t, p.Col, back.Col, 1e-9*sz.mapSize, "col %v", p)
			}
		}
	}
}

func TestNewConfig_Rejects(t *testing.T) {
	tests := []struct {
		name               string
		mapSize, maxBounds float64
	}{
		{"zero map size", 0, 1024},
		{"negative map size", -1, 1024},
		{"zero bounds", 1024, 0},
		{"negative bounds", 1024, -5},
		{"nan", math.NaN(), 1024},
		{"inf", 1024, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.mapSize, tt.maxBounds)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestToWorld_PanicsOnZeroConfig(t *testing.T) {
	assert.Panics(t, func() { ToWorld(MapPoint{Row: 1, Col: 1}, Config{}) })
	assert.Panics(t, func() { ToMapPoint(WorldCoordinate{X: 1, Y: 1}, Config{MaxBounds: 10}) })
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(WorldCoordinate{X: 0, Y: 0}, WorldCoordinate{X: 3, Y: 4}))
}
