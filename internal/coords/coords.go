// Package coords converts between map-projection points and game world
// coordinates and formats world coordinates for display and copying.
package coords

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when map or world sizes cannot be used for
// transforms.
var ErrInvalidConfig = errors.New("invalid map config")

// MapPoint is a position in the rendered map image. Row grows downward
// from the top edge of the image, Col grows rightward from the left edge.
type MapPoint struct {
	Row float64
	Col float64
}

// WorldCoordinate is a position in the game world, in metres. X grows
// east, Y grows north, the origin is the south-west corner.
type WorldCoordinate struct {
	X float64
	Y float64
}

// Config holds the two fixed sizes that relate the map image to the world.
// It is a value; transforms never read global state.
type Config struct {
	MapSize   float64 // span of the map image in map units
	MaxBounds float64 // span of the world in metres
}

// NewConfig validates and returns a Config.
func NewConfig(mapSize, maxBounds float64) (Config, error) {
	c := Config{MapSize: mapSize, MaxBounds: maxBounds}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports sizes that would make transforms produce Inf or NaN.
func (c Config) Validate() error {
	if !(c.MapSize > 0) || math.IsInf(c.MapSize, 0) {
		return fmt.Errorf("%w: mapSize must be positive and finite, got %v", ErrInvalidConfig, c.MapSize)
	}
	if !(c.MaxBounds > 0) || math.IsInf(c.MaxBounds, 0) {
		return fmt.Errorf("%w: maxBounds must be positive and finite, got %v", ErrInvalidConfig, c.MaxBounds)
	}
	return nil
}

// scale is metres per map unit.
func (c Config) scale() float64 {
	if c.MapSize == 0 || c.MaxBounds == 0 {
		panic("coords: transform with unvalidated zero-sized config")
	}
	return c.MaxBounds / c.MapSize
}

// ToWorld converts a map point into world coordinates. Values outside the
// map are not clamped.
func ToWorld(p MapPoint, c Config) WorldCoordinate {
	s := c.scale()
	return WorldCoordinate{
		X: p.Col * s,
		Y: (c.MapSize - p.Row) * s,
	}
}

// ToMapPoint is the inverse of ToWorld.
func ToMapPoint(w WorldCoordinate, c Config) MapPoint {
	s := c.scale()
	return MapPoint{
		Row: c.MapSize - w.Y/s,
		Col: w.X / s,
	}
}

// Distance returns the planar distance between two world coordinates.
func Distance(a, b WorldCoordinate) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
