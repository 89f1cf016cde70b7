package chart

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// PlotDifferences draws one line per key over the shared date axis, labeled
// by key in the legend.  Every series uses its own y values from yaxis and
// the x positions 0..len-1 with the shared dates as nominal tick labels.
// Mismatched series lengths are the caller's problem and surface from the
// plotting layer, not here.
func (c *Chart) PlotDifferences(keys []string, xaxis []string, yaxis map[string][]float64) error {
	for i, key := range keys {
		values := yaxis[key]

		pts := make(plotter.XYs, len(values))
		for j, v := range values {
			pts[j].X = float64(j)
			pts[j].Y = v
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)

		c.p.Add(line)
		c.p.Legend.Add(key, line)
	}

	c.p.NominalX(xaxis...)
	return nil
}
