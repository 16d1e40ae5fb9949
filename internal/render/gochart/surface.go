package gochart

import (
	"context"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"TradeScope/internal/domain/models"
	"TradeScope/pkg/util"
)

const (
	canvasWidth  = 3840
	canvasHeight = 2160

	titleFontSize = canvasWidth / 52
	labelFontSize = canvasWidth / 71
	textFontSize  = canvasWidth / 77

	labelMaxChars = 10
)

// Surface renders a plan to a PNG file with go-chart. It is the only place
// in the module that touches pixels or fonts.
type Surface struct {
	path string
}

// NewSurface creates a surface writing to the given output path.
func NewSurface(path string) *Surface {
	return &Surface{path: path}
}

// Path returns the output file path.
func (s *Surface) Path() string {
	return s.path
}

// Render draws the plan and writes the PNG.
func (s *Surface) Render(_ context.Context, plan *models.RenderPlan) error {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	var series []chart.Series
	if len(plan.Benchmark) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Market Data",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("0000ff"),
				StrokeWidth: 3.0,
			},
			XValues: indices(len(plan.Benchmark)),
			YValues: plan.Benchmark,
		})
	}
	if len(plan.AssetValue) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Total Asset Value",
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("ff0000"),
				StrokeWidth: 3.0,
			},
			XValues: indices(len(plan.AssetValue)),
			YValues: plan.AssetValue,
		})
	}
	if len(plan.PositionValue) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Position Value",
			Style: chart.Style{
				StrokeColor: drawing.Color{R: 0, G: 128, B: 0, A: 255},
				StrokeWidth: 1.0,
				FillColor:   drawing.Color{R: 0, G: 128, B: 0, A: 102},
			},
			XValues: indices(len(plan.PositionValue)),
			YValues: plan.PositionValue,
		})
	}

	yTop := plan.YMax + 1.0

	graph := chart.Chart{
		Title:  plan.Title,
		Width:  canvasWidth,
		Height: canvasHeight,
		TitleStyle: chart.Style{
			FontSize: titleFontSize,
			Font:     font,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 120, Left: 40, Right: 60, Bottom: 40},
		},
		XAxis: chart.XAxis{
			Name: "Date",
			Style: chart.Style{
				FontSize: labelFontSize,
				Font:     font,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(plan.XMax)},
			ValueFormatter: func(v interface{}) string {
				f, ok := v.(float64)
				if !ok {
					return ""
				}
				i := int(f)
				if i < 0 || i >= len(plan.Labels) {
					return ""
				}
				return util.TruncateLabel(plan.Labels[i], labelMaxChars)
			},
		},
		YAxis: chart.YAxis{
			Name: "Value",
			Style: chart.Style{
				FontSize: labelFontSize,
				Font:     font,
			},
			Range: &chart.ContinuousRange{Min: plan.YMin, Max: yTop},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FontSize: textFontSize,
			Font:     font,
		}),
		metricsBlock(plan, font),
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// metricsBlock draws the metric text lines, translating the plan's
// value-axis coordinates into canvas pixels.
func metricsBlock(plan *models.RenderPlan, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		yTop := plan.YMax + 1.0
		ySpan := yTop - plan.YMin
		if ySpan <= 0 || plan.XMax <= 0 {
			return
		}

		style := chart.Style{
			FontSize:  textFontSize,
			FontColor: chart.ColorBlack,
			Font:      font,
		}

		x := canvasBox.Left + int(float64(plan.TextX)/float64(plan.XMax)*float64(canvasBox.Width()))
		for _, line := range plan.Lines {
			y := canvasBox.Top + int((yTop-line.Y)/ySpan*float64(canvasBox.Height()))
			chart.Draw.Text(r, line.Text, x, y, style)
		}
	}
}

func indices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
