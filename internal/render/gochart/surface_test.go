package gochart

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"TradeScope/internal/domain/models"
)

func TestRenderWritesFullSizePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	s := NewSurface(path)
	require.Equal(t, path, s.Path())

	plan := &models.RenderPlan{
		Title:         "Market Data and Asset History",
		Labels:        []string{"2024-01-02", "2024-01-03", "2024-01-04"},
		Benchmark:     []float64{1.0, 1.05, 1.1},
		AssetValue:    []float64{1.0, 1.1, 1.21},
		PositionValue: []float64{0.5, 0.6, 0.7},
		XMax:          3,
		YMin:          0.5,
		YMax:          1.21,
		TextX:         0,
		Lines: []models.TextLine{
			{Text: "Market Return: 10.00%", Y: 2.1},
			{Text: "Portfolio Return: 21.00%", Y: 2.0},
		},
	}

	require.NoError(t, s.Render(context.Background(), plan))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 3840, cfg.Width)
	require.Equal(t, 2160, cfg.Height)
}
