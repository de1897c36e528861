package tui

import (
	sf "github.com/peterstace/simplefeatures/geom"

	"armamap/internal/coords"
)

// pathLength returns the length in metres of the path through pts.
func pathLength(pts []coords.MapPoint, cfg coords.Config) float64 {
	if len(pts) < 2 {
		return 0
	}
	flat := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		w := coords.ToWorld(p, cfg)
		flat = append(flat, w.X, w.Y)
	}
	ls, err := sf.NewLineString(sf.NewSequence(flat, sf.DimXY))
	if err != nil {
		// all points coincide
		return 0
	}
	return ls.Length()
}
