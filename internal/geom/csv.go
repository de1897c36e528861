package geom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"armamap/internal/coords"
)

// LoadCSV reads point markers from a CSV file with a header row.
// Column detection (case-insensitive): x|posx|easting, y|posy|northing,
// and optional name|label and group|layer|category.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	idxX, idxY, idxName, idxGroup := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "posx", "easting":
			if idxX == -1 {
				idxX = i
			}
		case "y", "posy", "northing":
			if idxY == -1 {
				idxY = i
			}
		case "name", "label":
			if idxName == -1 {
				idxName = i
			}
		case "group", "layer", "category":
			if idxGroup == -1 {
				idxGroup = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var d Data
	for n, row := range recs[1:] {
		x, err1 := strconv.ParseFloat(cell(row, idxX), 64)
		y, err2 := strconv.ParseFloat(cell(row, idxY), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		name := cell(row, idxName)
		if name == "" {
			name = fmt.Sprintf("#%d", n+1)
		}
		d.add(Feature{
			Group: cell(row, idxGroup),
			Name:  name,
			Kind:  FeaturePoint,
			Rings: [][]coords.WorldCoordinate{{{X: x, Y: y}}},
		})
	}
	if len(d.Features) == 0 {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	return d, nil
}
