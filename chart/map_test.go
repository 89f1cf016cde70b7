package chart

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"gonum.org/v1/plot/vg"

	"github.com/jayhlee/kcov-tools/dataset"
	"github.com/jayhlee/kcov-tools/geo"
)

// Minimal Natural Earth style layer files for map rendering
func writeMapLayers(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()

	korea := shp.Polygon{
		Box:       shp.Box{MinX: 126, MinY: 34, MaxX: 129, MaxY: 38},
		NumParts:  1,
		NumPoints: 5,
		Parts:     []int32{0},
		Points: []shp.Point{
			{X: 126, Y: 34}, {X: 129, Y: 34}, {X: 129, Y: 38},
			{X: 126, Y: 38}, {X: 126, Y: 34},
		},
	}

	countries, err := shp.Create(filepath.Join(dir, "ne_10m_admin_0_countries.shp"), shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}
	countries.SetFields([]shp.Field{
		shp.StringField(`SOVEREIGNT`, 32),
		shp.StringField(`NAME`, 32),
	})
	countries.Write(&korea)
	countries.WriteAttribute(0, 0, `South Korea`)
	countries.WriteAttribute(0, 1, `South Korea`)
	countries.Close()

	provinces, err := shp.Create(filepath.Join(dir, "ne_10m_admin_1_states_provinces.shp"), shp.POLYGON)
	if err != nil {
		t.Fatal(err)
	}
	provinces.SetFields([]shp.Field{
		shp.StringField(`iso_a2`, 8),
		shp.StringField(`name`, 32),
	})
	provinces.Write(&korea)
	provinces.WriteAttribute(0, 0, `KR`)
	provinces.WriteAttribute(0, 1, `Seoul`)
	provinces.Close()

	places, err := shp.Create(filepath.Join(dir, "ne_10m_populated_places.shp"), shp.POINT)
	if err != nil {
		t.Fatal(err)
	}
	places.SetFields([]shp.Field{
		shp.NumberField(`SCALERANK`, 4),
		shp.StringField(`NAME`, 32),
	})
	seoul := shp.Point{X: 126.98, Y: 37.57}
	places.Write(&seoul)
	places.WriteAttribute(0, 0, 1)
	places.WriteAttribute(0, 1, `Seoul`)
	places.Close()

	return dir
}

func getTestMapPoints() dataset.Table {
	return dataset.FromRecords([][]string{
		{`region`, `latitude`, `longitude`, `confirmed`},
		{`Seoul`, `37.57`, `126.98`, `120`},
		{`Busan`, `35.18`, `129.08`, `40`},
	})
}

func TestPlotMap(t *testing.T) {
	src := geo.NewSource(writeMapLayers(t))
	c := New()

	if err := c.PlotMap(src, getTestMapPoints(), 0.5); err != nil {
		t.Fatal(err)
	}

	// Extent is the points' bounding box padded by the zoom margin
	if c.p.X.Min != 126.98-0.5 || c.p.X.Max != 129.08+0.5 {
		t.Errorf(`unexpected x extent: %f %f`, c.p.X.Min, c.p.X.Max)
	}
	if c.p.Y.Min != 35.18-0.5 || c.p.Y.Max != 37.57+0.5 {
		t.Errorf(`unexpected y extent: %f %f`, c.p.Y.Min, c.p.Y.Max)
	}

	out := filepath.Join(t.TempDir(), "map.png")
	if err := c.Save(8*vg.Inch, 8*vg.Inch, out); err != nil {
		t.Fatalf(`save error: %v`, err)
	}
}

func TestPlotMapMissingLayers(t *testing.T) {
	src := geo.NewSource(t.TempDir())
	c := New()

	if err := c.PlotMap(src, getTestMapPoints(), 0.5); err == nil {
		t.Error(`expected error for missing layers`)
	}
}

func TestPlotMapNoPoints(t *testing.T) {
	src := geo.NewSource(writeMapLayers(t))
	c := New()

	empty := dataset.FromRecords([][]string{
		{`region`, `latitude`, `longitude`, `confirmed`},
	})
	if err := c.PlotMap(src, empty, 0.5); err == nil {
		t.Error(`expected error for empty points`)
	}
}
