package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Chart is one drawing surface.  Callers create it, draw onto it with the
// Plot* methods and then own saving it; nothing here touches shared state.
type Chart struct {
	p *plot.Plot
}

func New() *Chart {
	return &Chart{p: plot.New()}
}

// SetParameters sets the title, the axis labels and the x tick label
// rotation (in degrees, clockwise like matplotlib's xticks rotation).
func (c *Chart) SetParameters(title, xlabel, ylabel string, rotation float64) {
	c.p.Title.Text = title
	c.p.X.Label.Text = xlabel
	c.p.Y.Label.Text = ylabel

	c.p.X.Tick.Label.Rotation = -rotation * math.Pi / 180
	c.p.X.Tick.Label.XAlign = draw.XRight
	c.p.X.Tick.Label.YAlign = draw.YCenter

	c.p.Legend.Top = true
	c.p.Legend.Left = true
}

// Save renders the chart to the named file, format chosen by extension
func (c *Chart) Save(width, height vg.Length, file string) error {
	return c.p.Save(width, height, file)
}
