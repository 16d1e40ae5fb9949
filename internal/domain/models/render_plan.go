package models

// TextLine is one formatted metric line with its vertical position in
// value-axis units.
type TextLine struct {
	Text string
	Y    float64
}

// RenderPlan is everything a rendering surface needs to draw the summary
// chart. All series are standardized (divided by their own first value) and
// indexed; the surface never sees raw prices or touches layout math.
type RenderPlan struct {
	Title string

	// Labels holds the market timestamp labels for the x axis, index-aligned
	// with Benchmark.
	Labels []string

	Benchmark     []float64
	AssetValue    []float64
	PositionValue []float64

	// XMax is the upper x-axis bound, including the right-hand headroom.
	XMax int
	// YMin and YMax span the standardized values; surfaces add the fixed
	// +1.0 headroom above YMax.
	YMin float64
	YMax float64

	// TextX is the x index of the metric text block.
	TextX int
	Lines []TextLine
}
