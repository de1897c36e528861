// Package geom loads overlay features, in world coordinates, from GeoJSON,
// WKT, CSV and KML files.
package geom

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"armamap/internal/coords"
)

// ErrUnsupportedFormat is returned for file extensions with no loader.
var ErrUnsupportedFormat = errors.New("unsupported overlay format")

// ErrNoFeatures is returned when a file parses but holds nothing drawable.
var ErrNoFeatures = errors.New("no features found")

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// FeatureKind is the geometry class of a feature.
type FeatureKind int

const (
	FeaturePoint FeatureKind = iota
	FeaturePath
	FeaturePolygon
)

// Feature is one named geometry. Points have a single one-vertex ring,
// paths a single open ring, polygons an outer ring followed by holes.
type Feature struct {
	Group string
	Name  string
	Kind  FeatureKind
	Rings [][]coords.WorldCoordinate
}

// Data is the content of one overlay file.
type Data struct {
	Features []Feature
	BBox     BBox

	hasBBox bool
}

func (d *Data) add(f Feature) {
	for _, ring := range f.Rings {
		for _, w := range ring {
			d.extend(w)
		}
	}
	d.Features = append(d.Features, f)
}

func (d *Data) extend(w coords.WorldCoordinate) {
	if !d.hasBBox {
		d.BBox = BBox{MinX: w.X, MinY: w.Y, MaxX: w.X, MaxY: w.Y}
		d.hasBBox = true
		return
	}
	if w.X < d.BBox.MinX {
		d.BBox.MinX = w.X
	}
	if w.Y < d.BBox.MinY {
		d.BBox.MinY = w.Y
	}
	if w.X > d.BBox.MaxX {
		d.BBox.MaxX = w.X
	}
	if w.Y > d.BBox.MaxY {
		d.BBox.MaxY = w.Y
	}
}

// Counts returns the number of point, path and polygon features.
func (d Data) Counts() (points, paths, polygons int) {
	for _, f := range d.Features {
		switch f.Kind {
		case FeaturePoint:
			points++
		case FeaturePath:
			paths++
		case FeaturePolygon:
			polygons++
		}
	}
	return points, paths, polygons
}

// Load picks a loader by file extension. Features without a group are put
// in a group named after the file.
func Load(path string) (Data, error) {
	var (
		d   Data
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		d, err = LoadGeoJSON(path)
	case ".wkt":
		d, err = LoadWKT(path)
	case ".csv":
		d, err = LoadCSV(path)
	case ".kml":
		d, err = LoadKML(path)
	default:
		return Data{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Data{}, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	def := DefaultGroup(path)
	for i := range d.Features {
		if d.Features[i].Group == "" {
			d.Features[i].Group = def
		}
	}
	return d, nil
}

// DefaultGroup is the group name used for features loaded from path.
func DefaultGroup(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
