package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armamap/internal/coords"
)

func TestPathLength(t *testing.T) {
	cfg, err := coords.NewConfig(96, 9600)
	require.NoError(t, err)

	assert.Equal(t, 0.0, pathLength(nil, cfg))
	assert.Equal(t, 0.0, pathLength([]coords.MapPoint{{Row: 1, Col: 1}}, cfg))

	pts := []coords.MapPoint{{Row: 10, Col: 0}, {Row: 10, Col: 3}, {Row: 6, Col: 3}}
	assert.InDelta(t, 700, pathLength(pts, cfg), 1e-9)

	diag := []coords.MapPoint{{Row: 0, Col: 0}, {Row: 4, Col: 3}}
	assert.InDelta(t, 500, pathLength(diag, cfg), 1e-9)

	same := []coords.MapPoint{{Row: 2, Col: 2}, {Row: 2, Col: 2}}
	assert.Equal(t, 0.0, pathLength(same, cfg))
}
