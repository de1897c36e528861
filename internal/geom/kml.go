package geom

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"armamap/internal/coords"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
	Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
}

type kmlPlacemark struct {
	Name       string      `xml:"name"`
	Point      *kmlCoords  `xml:"Point"`
	LineString *kmlCoords  `xml:"LineString"`
	Polygon    *kmlPolygon `xml:"Polygon"`
}

type kmlFolder struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Folders    []kmlFolder    `xml:"Document>Folder"`
	Top        []kmlPlacemark `xml:"Placemark"`
}

// LoadKML extracts Point, LineString and Polygon placemarks. Coordinates are
// "x,y[,z]" tuples in world metres; z is ignored. A Folder's name becomes
// the group of the placemarks inside it.
func LoadKML(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseKML(b)
}

func ParseKML(b []byte) (Data, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		return Data{}, err
	}
	var d Data
	for _, pm := range doc.Top {
		d.addPlacemark(pm, "")
	}
	for _, pm := range doc.Placemarks {
		d.addPlacemark(pm, "")
	}
	for _, f := range doc.Folders {
		for _, pm := range f.Placemarks {
			d.addPlacemark(pm, f.Name)
		}
	}
	if len(d.Features) == 0 {
		return Data{}, ErrNoFeatures
	}
	return d, nil
}

func (d *Data) addPlacemark(pm kmlPlacemark, group string) {
	switch {
	case pm.Point != nil:
		if pts := parseKMLCoords(pm.Point.Coordinates); len(pts) > 0 {
			d.add(Feature{Group: group, Name: pm.Name, Kind: FeaturePoint, Rings: [][]coords.WorldCoordinate{pts[:1]}})
		}
	case pm.LineString != nil:
		if pts := parseKMLCoords(pm.LineString.Coordinates); len(pts) > 0 {
			d.add(Feature{Group: group, Name: pm.Name, Kind: FeaturePath, Rings: [][]coords.WorldCoordinate{pts}})
		}
	case pm.Polygon != nil:
		outer := parseKMLCoords(pm.Polygon.Outer.Coordinates)
		if len(outer) == 0 {
			return
		}
		rings := [][]coords.WorldCoordinate{outer}
		for _, in := range pm.Polygon.Inner {
			rings = append(rings, parseKMLCoords(in.Coordinates))
		}
		d.add(Feature{Group: group, Name: pm.Name, Kind: FeaturePolygon, Rings: rings})
	}
}

// coordinates may contain multiple tuples separated by whitespace
func parseKMLCoords(s string) []coords.WorldCoordinate {
	var out []coords.WorldCoordinate
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, coords.WorldCoordinate{X: x, Y: y})
	}
	return out
}
