package geom

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	sf "github.com/peterstace/simplefeatures/geom"
)

// LoadWKT reads one WKT geometry per line. A line may be prefixed with
// "name;" to label the feature. Blank lines and lines starting with '#' are
// skipped.
func LoadWKT(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	return ParseWKT(b)
}

func ParseWKT(b []byte) (Data, error) {
	var d Data
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n++
		name := fmt.Sprintf("#%d", n)
		if i := strings.Index(line, ";"); i >= 0 {
			name = strings.TrimSpace(line[:i])
			line = strings.TrimSpace(line[i+1:])
		}
		g, err := sf.UnmarshalWKT(line)
		if err != nil {
			return Data{}, fmt.Errorf("wkt line %d: %w", n, err)
		}
		d.addGeometry(g, "", name)
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	if len(d.Features) == 0 {
		return Data{}, ErrNoFeatures
	}
	return d, nil
}

// ParseWKTGeometry parses a single WKT string, as typed into paste mode.
func ParseWKTGeometry(s string) (Data, error) {
	g, err := sf.UnmarshalWKT(strings.TrimSpace(s))
	if err != nil {
		return Data{}, fmt.Errorf("wkt: %w", err)
	}
	var d Data
	d.addGeometry(g, "", "pasted")
	if len(d.Features) == 0 {
		return Data{}, ErrNoFeatures
	}
	return d, nil
}
