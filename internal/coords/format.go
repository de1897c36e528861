package coords

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GridFormat renders world coordinates as a grid reference: each axis is
// floored to Unit-sized squares and zero-padded to Digits.
type GridFormat struct {
	Digits int
	Unit   float64
	Sep    string
}

// DefaultGrid is the 6-figure grid reference (100 m squares).
var DefaultGrid = GridFormat{Digits: 3, Unit: 100, Sep: " | "}

// GridFormatFor widens DefaultGrid so that every coordinate in
// [0, MaxBounds) renders at the same width.
func GridFormatFor(c Config) GridFormat {
	g := DefaultGrid
	last := int(math.Ceil(c.MaxBounds/g.Unit)) - 1
	if n := len(strconv.Itoa(last)); n > g.Digits {
		g.Digits = n
	}
	return g
}

// Format renders w with DefaultGrid.
func Format(w WorldCoordinate) string {
	return DefaultGrid.Format(w)
}

func (g GridFormat) Format(w WorldCoordinate) string {
	return g.square(w.X) + g.Sep + g.square(w.Y)
}

func (g GridFormat) square(v float64) string {
	n := int(math.Floor(v / g.Unit))
	if n < 0 {
		return "-" + fmt.Sprintf("%0*d", g.Digits, -n)
	}
	return fmt.Sprintf("%0*d", g.Digits, n)
}

// Blank is the display value before the pointer has entered the map.
func (g GridFormat) Blank() string {
	z := strings.Repeat("0", g.Digits)
	return z + g.Sep + z
}

// CompactPair renders w as "[x, y]" using the shortest decimal form of each
// component.
func CompactPair(w WorldCoordinate) string {
	return "[" + formatNumber(w.X) + ", " + formatNumber(w.Y) + "]"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(unsignedZero(v), 'f', -1, 64)
}

// MarshalRing renders a vertex sequence as a JSON array of [x, y] pairs
// with two-space indentation.
func MarshalRing(ring []WorldCoordinate) (string, error) {
	pairs := make([][2]float64, len(ring))
	for i, w := range ring {
		pairs[i] = [2]float64{unsignedZero(w.X), unsignedZero(w.Y)}
	}
	b, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal ring: %w", err)
	}
	return string(b), nil
}

// ParsePair parses "[x, y]" or "x,y" into a world coordinate.
func ParsePair(s string) (WorldCoordinate, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return WorldCoordinate{}, fmt.Errorf("parse pair %q: want two components", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return WorldCoordinate{}, fmt.Errorf("parse pair x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return WorldCoordinate{}, fmt.Errorf("parse pair y: %w", err)
	}
	return WorldCoordinate{X: x, Y: y}, nil
}
