package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armamap/internal/coords"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const towns = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"group": "towns", "name": "Kavala"},
     "geometry": {"type": "Point", "coordinates": [3560.5, 13100]}},
    {"type": "Feature", "properties": {"group": "zones", "name": "AO"},
     "geometry": {"type": "Polygon", "coordinates": [[[0,0],[100,0],[100,100],[0,100],[0,0]]]}},
    {"type": "Feature", "properties": {"name": "MSR"},
     "geometry": {"type": "LineString", "coordinates": [[10,10],[20,30]]}}
  ]
}`

func TestLoad_GeoJSON(t *testing.T) {
	p := writeFile(t, "altis.geojson", towns)

	d, err := Load(p)
	require.NoError(t, err)

	require.Len(t, d.Features, 3)
	assert.Equal(t, Feature{
		Group: "towns", Name: "Kavala", Kind: FeaturePoint,
		Rings: [][]coords.WorldCoordinate{{{X: 3560.5, Y: 13100}}},
	}, d.Features[0])
	assert.Equal(t, FeaturePolygon, d.Features[1].Kind)
	assert.Len(t, d.Features[1].Rings[0], 5)
	assert.Equal(t, "altis", d.Features[2].Group)
	assert.Equal(t, FeaturePath, d.Features[2].Kind)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 3560.5, MaxY: 13100}, d.BBox)

	pts, paths, polys := d.Counts()
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{pts, paths, polys})
}

func TestParseGeoJSON_MultiPolygonAndBareGeometry(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{"type": "Feature", "properties": {"group": "g"},
	  "geometry": {"type": "MultiPolygon", "coordinates": [
	    [[[0,0],[1,0],[1,1],[0,0]]],
	    [[[5,5],[6,5],[6,6],[5,5]], [[5.5,5.2],[5.8,5.2],[5.8,5.4],[5.5,5.2]]]
	  ]}}`))
	require.NoError(t, err)
	require.Len(t, d.Features, 2)
	assert.Len(t, d.Features[1].Rings, 2)
	assert.Equal(t, "#1", d.Features[0].Name)

	d, err = ParseGeoJSON([]byte(`{"type": "MultiPoint", "coordinates": [[1,2],[3,4]]}`))
	require.NoError(t, err)
	assert.Len(t, d.Features, 2)
}

func TestParseGeoJSON_Errors(t *testing.T) {
	_, err := ParseGeoJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseGeoJSON([]byte(`{"type": "FeatureCollection", "features": []}`))
	assert.ErrorIs(t, err, ErrNoFeatures)
}

func TestLoad_WKT(t *testing.T) {
	p := writeFile(t, "ops.wkt", `# objectives
Alpha; POINT(6069.06 5627.81)
POLYGON((0 0, 10 0, 10 10, 0 0))

LINESTRING(0 0, 5 5)
`)

	d, err := Load(p)
	require.NoError(t, err)

	require.Len(t, d.Features, 3)
	assert.Equal(t, "Alpha", d.Features[0].Name)
	assert.Equal(t, coords.WorldCoordinate{X: 6069.06, Y: 5627.81}, d.Features[0].Rings[0][0])
	assert.Equal(t, "#2", d.Features[1].Name)
	assert.Equal(t, FeaturePolygon, d.Features[1].Kind)
	assert.Equal(t, "ops", d.Features[2].Group)
}

func TestParseWKT_Invalid(t *testing.T) {
	_, err := ParseWKT([]byte("POLYGON((0 0, 1"))
	assert.Error(t, err)

	_, err = ParseWKT([]byte("# nothing\n\n"))
	assert.ErrorIs(t, err, ErrNoFeatures)
}

func TestParseWKTGeometry(t *testing.T) {
	d, err := ParseWKTGeometry("  POINT (10 20) ")
	require.NoError(t, err)
	require.Len(t, d.Features, 1)
	assert.Equal(t, coords.WorldCoordinate{X: 10, Y: 20}, d.Features[0].Rings[0][0])
}

func TestLoad_CSV(t *testing.T) {
	p := writeFile(t, "vehicles.csv", "Name,PosX,PosY,Category\nHunter,100.5,200,blufor\nIfrit,oops,1,opfor\n,5,6,\n")

	d, err := Load(p)
	require.NoError(t, err)

	require.Len(t, d.Features, 2)
	assert.Equal(t, Feature{
		Group: "blufor", Name: "Hunter", Kind: FeaturePoint,
		Rings: [][]coords.WorldCoordinate{{{X: 100.5, Y: 200}}},
	}, d.Features[0])
	assert.Equal(t, "#3", d.Features[1].Name)
	assert.Equal(t, "vehicles", d.Features[1].Group)
}

func TestLoad_CSVMissingColumns(t *testing.T) {
	p := writeFile(t, "bad.csv", "lat,lon\n1,2\n")
	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoad_KML(t *testing.T) {
	p := writeFile(t, "sites.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><name>HQ</name><Point><coordinates>1000,2000,0</coordinates></Point></Placemark>
    <Folder>
      <name>sectors</name>
      <Placemark>
        <name>North</name>
        <Polygon><outerBoundaryIs><LinearRing>
          <coordinates>0,0 10,0 10,10 0,0</coordinates>
        </LinearRing></outerBoundaryIs></Polygon>
      </Placemark>
    </Folder>
  </Document>
</kml>`)

	d, err := Load(p)
	require.NoError(t, err)

	require.Len(t, d.Features, 2)
	assert.Equal(t, "HQ", d.Features[0].Name)
	assert.Equal(t, "sites", d.Features[0].Group)
	assert.Equal(t, coords.WorldCoordinate{X: 1000, Y: 2000}, d.Features[0].Rings[0][0])
	assert.Equal(t, "sectors", d.Features[1].Group)
	assert.Len(t, d.Features[1].Rings[0], 4)
}

func TestLoad_Unsupported(t *testing.T) {
	_, err := Load("markers.shp")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
