package tui

import (
	"math"

	"armamap/internal/coords"
)

// viewport projects map space onto a braille canvas of w x h cells, each
// cell holding 2 x 4 micro-pixels. At minZoom the whole map fits.
type viewport struct {
	center  coords.MapPoint
	zoom    int
	minZoom int
	maxZoom int
	mapSize float64
	w, h    int
}

// scale is micro-pixels per map unit.
func (v viewport) scale() float64 {
	fit := math.Min(float64(v.w*2), float64(v.h*4)) / v.mapSize
	return fit * math.Exp2(float64(v.zoom-v.minZoom))
}

// toMicro returns the micro-pixel under p. Points off the canvas are
// returned as is; the braille buffer clips them.
func (v viewport) toMicro(p coords.MapPoint) (int, int) {
	s := v.scale()
	x := (p.Col-v.center.Col)*s + float64(v.w)
	y := (p.Row-v.center.Row)*s + float64(v.h*2)
	return int(math.Floor(x)), int(math.Floor(y))
}

// cellToMap returns the map point at the centre of cell (cx, cy).
func (v viewport) cellToMap(cx, cy int) coords.MapPoint {
	s := v.scale()
	mx := float64(cx*2 + 1)
	my := float64(cy*4 + 2)
	return coords.MapPoint{
		Row: v.center.Row + (my-float64(v.h*2))/s,
		Col: v.center.Col + (mx-float64(v.w))/s,
	}
}

// onMap reports whether p lies within the map image.
func (v viewport) onMap(p coords.MapPoint) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row <= v.mapSize && p.Col <= v.mapSize
}

// setZoom clamps z to the zoom range and reports whether it changed.
func (v *viewport) setZoom(z int) bool {
	z = max(v.minZoom, min(v.maxZoom, z))
	if z == v.zoom {
		return false
	}
	v.zoom = z
	return true
}

// pan moves the centre by a fraction of the visible extent and keeps it
// on the map.
func (v *viewport) pan(dCols, dRows float64) {
	s := v.scale()
	v.center.Col += dCols * float64(v.w*2) / s
	v.center.Row += dRows * float64(v.h*4) / s
	v.clampCenter()
}

func (v *viewport) recentre(p coords.MapPoint) {
	v.center = p
	v.clampCenter()
}

func (v *viewport) clampCenter() {
	v.center.Col = math.Max(0, math.Min(v.mapSize, v.center.Col))
	v.center.Row = math.Max(0, math.Min(v.mapSize, v.center.Row))
}
