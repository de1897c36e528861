package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"armamap/internal/clipboard"
	"armamap/internal/config"
	"armamap/internal/logging"
	"armamap/internal/registry"
	"armamap/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "config file (json, yaml or toml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "armamap:", err)
		os.Exit(1)
	}

	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "armamap: open log:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// stdout belongs to the renderer
	sink, err := clipboard.New(cfg.Clipboard, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up clipboard")
	}

	reg := registry.New(cfg.Coords(), log)
	// overlay files may also be given as arguments
	for _, p := range append(cfg.Overlays, flag.Args()...) {
		if err := reg.LoadFile(p); err != nil {
			log.Warn().Err(err).Str("path", p).Msg("Failed to load overlays")
		}
	}

	m := tui.New(tui.Options{Config: cfg, Registry: reg, Sink: sink, Log: log})
	defer m.Close()

	log.Info().
		Float64("mapSize", cfg.Map.MapSize).
		Float64("maxBounds", cfg.Map.MaxBounds).
		Int("tileSize", cfg.Map.TileSize).
		Strs("groups", reg.Names()).
		Msg("Starting map")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("Program exited with error")
		fmt.Fprintln(os.Stderr, "armamap:", err)
	}
	log.Info().Msg("Map closed")
}
