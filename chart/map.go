package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jayhlee/kcov-tools/dataset"
	"github.com/jayhlee/kcov-tools/geo"
)

// Dataset columns used by the map plot
const (
	LongitudeColumn = `longitude`
	LatitudeColumn  = `latitude`
	ConfirmedColumn = `confirmed`
)

var (
	landColor     = color.NRGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	boundaryColor = color.NRGBA{A: 0xff}
	markerColor   = color.NRGBA{R: 0xff, A: 0x7f}
)

// PlotMap draws the base map, the province boundaries, the labeled major
// places and the observation points sized by their confirmed counts.  The
// axes are clipped to the observation points' bounding box padded by zoom
// degrees on every side.
func (c *Chart) PlotMap(src *geo.Source, points dataset.Table, zoom float64) error {
	country, countryErr := src.Country()
	provinces, provinceErr := src.Provinces()
	places, placesErr := src.Places()

	var errs *multierror.Error
	for _, err := range []error{countryErr, provinceErr, placesErr} {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	lons, err := points.Floats(LongitudeColumn)
	if err != nil {
		return err
	}
	lats, err := points.Floats(LatitudeColumn)
	if err != nil {
		return err
	}
	confirmed, err := points.Floats(ConfirmedColumn)
	if err != nil {
		return err
	}
	if len(lons) == 0 {
		return fmt.Errorf("no observation points to map")
	}

	// Base map
	for _, boundary := range country {
		for _, ring := range boundary.Rings {
			polygon, err := plotter.NewPolygon(ringXYs(ring))
			if err != nil {
				return err
			}
			polygon.Color = landColor
			polygon.LineStyle.Color = landColor
			c.p.Add(polygon)
		}
	}

	// Province boundaries, edges only
	for _, boundary := range provinces {
		for _, ring := range boundary.Rings {
			line, err := plotter.NewLine(ringXYs(ring))
			if err != nil {
				return err
			}
			line.Color = boundaryColor
			c.p.Add(line)
		}
	}

	// Place markers and their name labels
	placeXYs := make(plotter.XYs, len(places))
	names := make([]string, len(places))
	for i, place := range places {
		placeXYs[i].X = place.Lon
		placeXYs[i].Y = place.Lat
		names[i] = place.Name
	}
	markers, err := plotter.NewScatter(placeXYs)
	if err != nil {
		return err
	}
	markers.GlyphStyle.Color = boundaryColor
	markers.GlyphStyle.Radius = vg.Points(1.5)
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	c.p.Add(markers)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: placeXYs, Labels: names})
	if err != nil {
		return err
	}
	c.p.Add(labels)

	// The observations, sized by confirmed count
	obsXYs := make(plotter.XYs, len(lons))
	for i := range lons {
		obsXYs[i].X = lons[i]
		obsXYs[i].Y = lats[i]
	}
	obs, err := plotter.NewScatter(obsXYs)
	if err != nil {
		return err
	}
	obs.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		radius := vg.Points(math.Sqrt(confirmed[i] / math.Pi))
		if radius < vg.Points(1) {
			radius = vg.Points(1)
		}
		return draw.GlyphStyle{
			Color:  markerColor,
			Radius: radius,
			Shape:  draw.CircleGlyph{},
		}
	}
	c.p.Add(obs)

	// Clip to the observations plus the zoom margin
	c.p.X.Min, c.p.X.Max = extent(lons, zoom)
	c.p.Y.Min, c.p.Y.Max = extent(lats, zoom)

	return nil
}

func ringXYs(ring []geo.Point) plotter.XYs {
	xys := make(plotter.XYs, len(ring))
	for i, p := range ring {
		xys[i].X = p.Lon
		xys[i].Y = p.Lat
	}
	return xys
}

func extent(values []float64, margin float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min - margin, max + margin
}
