package geom

import (
	sf "github.com/peterstace/simplefeatures/geom"

	"armamap/internal/coords"
)

// addGeometry flattens g into features named name. Multi-geometries and
// collections yield one feature per member.
func (d *Data) addGeometry(g sf.Geometry, group, name string) {
	switch g.Type() {
	case sf.TypePoint:
		pt, ok := g.AsPoint()
		if !ok {
			return
		}
		if xy, ok := pt.XY(); ok {
			d.add(Feature{Group: group, Name: name, Kind: FeaturePoint, Rings: [][]coords.WorldCoordinate{{world(xy)}}})
		}
	case sf.TypeMultiPoint:
		mp, ok := g.AsMultiPoint()
		if !ok {
			return
		}
		for i := 0; i < mp.NumPoints(); i++ {
			d.addGeometry(mp.PointN(i).AsGeometry(), group, name)
		}
	case sf.TypeLineString:
		ls, ok := g.AsLineString()
		if !ok {
			return
		}
		if ring := sequence(ls.Coordinates()); len(ring) > 0 {
			d.add(Feature{Group: group, Name: name, Kind: FeaturePath, Rings: [][]coords.WorldCoordinate{ring}})
		}
	case sf.TypeMultiLineString:
		mls, ok := g.AsMultiLineString()
		if !ok {
			return
		}
		for i := 0; i < mls.NumLineStrings(); i++ {
			d.addGeometry(mls.LineStringN(i).AsGeometry(), group, name)
		}
	case sf.TypePolygon:
		if p, ok := g.AsPolygon(); ok {
			d.addPolygon(p, group, name)
		}
	case sf.TypeMultiPolygon:
		mp, ok := g.AsMultiPolygon()
		if !ok {
			return
		}
		for i := 0; i < mp.NumPolygons(); i++ {
			d.addPolygon(mp.PolygonN(i), group, name)
		}
	case sf.TypeGeometryCollection:
		gc, ok := g.AsGeometryCollection()
		if !ok {
			return
		}
		for i := 0; i < gc.NumGeometries(); i++ {
			d.addGeometry(gc.GeometryN(i), group, name)
		}
	}
}

func (d *Data) addPolygon(p sf.Polygon, group, name string) {
	outer := sequence(p.ExteriorRing().Coordinates())
	if len(outer) == 0 {
		return
	}
	rings := [][]coords.WorldCoordinate{outer}
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, sequence(p.InteriorRingN(i).Coordinates()))
	}
	d.add(Feature{Group: group, Name: name, Kind: FeaturePolygon, Rings: rings})
}

func sequence(seq sf.Sequence) []coords.WorldCoordinate {
	out := make([]coords.WorldCoordinate, seq.Length())
	for i := range out {
		out[i] = world(seq.GetXY(i))
	}
	return out
}

func world(xy sf.XY) coords.WorldCoordinate {
	return coords.WorldCoordinate{X: xy.X, Y: xy.Y}
}
