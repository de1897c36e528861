package capture

import (
	"fmt"

	sf "github.com/peterstace/simplefeatures/geom"

	"armamap/internal/coords"
)

// RingWKT renders a world ring as WKT. Rings with three or more vertices
// become a closed POLYGON; shorter ones a LINESTRING. Degenerate rings
// that the geometry constructors reject return an error.
func RingWKT(ring []coords.WorldCoordinate) (string, error) {
	if len(ring) == 0 {
		return "POLYGON EMPTY", nil
	}
	flat := make([]float64, 0, 2*len(ring)+2)
	for _, w := range ring {
		flat = append(flat, w.X, w.Y)
	}
	if len(ring) < 3 {
		ls, err := sf.NewLineString(sf.NewSequence(flat, sf.DimXY))
		if err != nil {
			return "", fmt.Errorf("ring wkt: %w", err)
		}
		return ls.AsText(), nil
	}
	if first, last := ring[0], ring[len(ring)-1]; first != last {
		flat = append(flat, first.X, first.Y)
	}
	outer, err := sf.NewLineString(sf.NewSequence(flat, sf.DimXY))
	if err != nil {
		return "", fmt.Errorf("ring wkt: %w", err)
	}
	poly, err := sf.NewPolygon([]sf.LineString{outer})
	if err != nil {
		return "", fmt.Errorf("ring wkt: %w", err)
	}
	return poly.AsText(), nil
}
