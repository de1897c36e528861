// Package config loads armamap settings from a file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"armamap/internal/coords"
)

// EnvPrefix is prepended to environment overrides, e.g. ARMAMAP_LOGLEVEL
// or ARMAMAP_MAP_MAPSIZE.
const EnvPrefix = "ARMAMAP"

// MapConfig holds map geometry and view settings.
type MapConfig struct {
	MapSize   float64   `json:"mapSize" mapstructure:"mapSize"`
	MaxBounds float64   `json:"maxBounds" mapstructure:"maxBounds"`
	InitZoom  int       `json:"initZoom" mapstructure:"initZoom"`
	MinZoom   int       `json:"minZoom" mapstructure:"minZoom"`
	MaxZoom   int       `json:"maxZoom" mapstructure:"maxZoom"`
	TileSize  int       `json:"tileSize" mapstructure:"tileSize"`
	Center    []float64 `json:"center" mapstructure:"center"`
	SatURL    string    `json:"satURL" mapstructure:"satURL"`
	TopoURL   string    `json:"topoURL" mapstructure:"topoURL"`
}

// Config is the full application configuration.
type Config struct {
	Map       MapConfig `json:"map" mapstructure:"map"`
	Overlays  []string  `json:"overlays" mapstructure:"overlays"`
	Clipboard string    `json:"clipboard" mapstructure:"clipboard"`
	LogLevel  string    `json:"logLevel" mapstructure:"logLevel"`
	LogFile   string    `json:"logFile" mapstructure:"logFile"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.mapSize", 256)
	v.SetDefault("map.maxBounds", 30720)
	v.SetDefault("map.initZoom", 2)
	v.SetDefault("map.minZoom", 0)
	v.SetDefault("map.maxZoom", 6)
	v.SetDefault("map.tileSize", 256)
	v.SetDefault("map.center", []float64{128, 128})
	v.SetDefault("map.satURL", "tiles/sat/{z}/{x}/{y}.png")
	v.SetDefault("map.topoURL", "tiles/topo/{z}/{x}/{y}.png")

	v.SetDefault("overlays", []string{})
	v.SetDefault("clipboard", "auto")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "armamap.log")
}

// Load reads configuration from path, if given, applies ARMAMAP_*
// environment overrides and validates the result. An empty path uses
// defaults and the environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Coords returns the coordinate transform settings.
func (c Config) Coords() coords.Config {
	return coords.Config{MapSize: c.Map.MapSize, MaxBounds: c.Map.MaxBounds}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := c.Coords().Validate(); err != nil {
		return err
	}
	m := c.Map
	if m.MinZoom > m.MaxZoom {
		return fmt.Errorf("%w: minZoom %d above maxZoom %d", coords.ErrInvalidConfig, m.MinZoom, m.MaxZoom)
	}
	if m.InitZoom < m.MinZoom || m.InitZoom > m.MaxZoom {
		return fmt.Errorf("%w: initZoom %d outside [%d, %d]", coords.ErrInvalidConfig, m.InitZoom, m.MinZoom, m.MaxZoom)
	}
	if m.TileSize <= 0 {
		return fmt.Errorf("%w: tileSize %d", coords.ErrInvalidConfig, m.TileSize)
	}
	if len(m.Center) != 2 {
		return fmt.Errorf("%w: center needs 2 values, got %d", coords.ErrInvalidConfig, len(m.Center))
	}
	for i, v := range m.Center {
		if v < 0 || v > m.MapSize {
			return fmt.Errorf("%w: center[%d] %g outside map", coords.ErrInvalidConfig, i, v)
		}
	}
	switch strings.ToLower(c.Clipboard) {
	case "", "auto", "system", "osc52":
	default:
		return fmt.Errorf("%w: clipboard %q", ErrUnknownClipboard, c.Clipboard)
	}
	return nil
}

// ErrUnknownClipboard is returned for a clipboard mode other than
// system, osc52 or auto.
var ErrUnknownClipboard = errors.New("unknown clipboard mode")
