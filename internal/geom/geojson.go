package geom

import (
	"encoding/json"
	"fmt"
	"os"

	sf "github.com/peterstace/simplefeatures/geom"
)

// LoadGeoJSON reads a FeatureCollection whose coordinates are world metres.
// The "group" and "name" properties label each feature.
func LoadGeoJSON(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseGeoJSON(b)
}

// ParseGeoJSON parses a FeatureCollection, a single Feature, or a bare
// geometry.
func ParseGeoJSON(b []byte) (Data, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	switch probe.Type {
	case "FeatureCollection":
		var fc sf.GeoJSONFeatureCollection
		if err := json.Unmarshal(b, &fc); err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		for i, f := range fc {
			group, name := labels(f.Properties, i)
			d.addGeometry(f.Geometry, group, name)
		}
	case "Feature":
		var f sf.GeoJSONFeature
		if err := json.Unmarshal(b, &f); err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		group, name := labels(f.Properties, 0)
		d.addGeometry(f.Geometry, group, name)
	default:
		g, err := sf.UnmarshalGeoJSON(b)
		if err != nil {
			return Data{}, fmt.Errorf("geojson: %w", err)
		}
		d.addGeometry(g, "", "")
	}
	if len(d.Features) == 0 {
		return Data{}, ErrNoFeatures
	}
	return d, nil
}

func labels(props map[string]interface{}, i int) (group, name string) {
	group, _ = props["group"].(string)
	name, _ = props["name"].(string)
	if name == "" {
		name = fmt.Sprintf("#%d", i+1)
	}
	return group, name
}
