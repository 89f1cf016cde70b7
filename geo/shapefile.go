// Package geo loads the Natural Earth shapefile layers used for the map
// plots: the South Korea country outline, its province boundaries and the
// major populated places.
package geo

import (
	"fmt"
	"path/filepath"
	"strconv"

	shp "github.com/jonas-p/go-shp"
)

// Natural Earth 10m layer files expected under the source directory
const (
	countryFile  = `ne_10m_admin_0_countries.shp`
	provinceFile = `ne_10m_admin_1_states_provinces.shp`
	placesFile   = `ne_10m_populated_places.shp`
)

// Fixed layer filters
const (
	countryName  = `South Korea`
	provinceISO  = `KR`
	maxScaleRank = 6
)

// A Point is a lon/lat coordinate pair
type Point struct {
	Lon, Lat float64
}

// A Boundary is one polygon feature, split into its rings
type Boundary struct {
	Name  string
	Rings [][]Point
}

// A Place is a labeled populated-place marker
type Place struct {
	Name string
	Lon  float64
	Lat  float64
}

// Source reads map layers from a directory of Natural Earth shapefiles
type Source struct {
	dir string
}

func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Country returns the national boundary polygons
func (s *Source) Country() ([]Boundary, error) {
	return s.readBoundaries(countryFile, `SOVEREIGNT`, `NAME`, func(v string) bool {
		return v == countryName
	})
}

// Provinces returns the first-level administrative boundaries
func (s *Source) Provinces() ([]Boundary, error) {
	return s.readBoundaries(provinceFile, `iso_a2`, `name`, func(v string) bool {
		return v == provinceISO
	})
}

// Places returns the populated places big enough to label on the map
func (s *Source) Places() ([]Place, error) {
	r, err := shp.Open(filepath.Join(s.dir, placesFile))
	if err != nil {
		return nil, fmt.Errorf("error opening places layer: %v", err)
	}
	defer r.Close()

	rankIdx, err := fieldIndex(r, `SCALERANK`)
	if err != nil {
		return nil, err
	}
	nameIdx, err := fieldIndex(r, `NAME`)
	if err != nil {
		return nil, err
	}

	var places []Place
	for r.Next() {
		row, shape := r.Shape()

		rank, err := strconv.Atoi(r.ReadAttribute(row, rankIdx))
		if err != nil || rank > maxScaleRank {
			continue
		}

		point, ok := shape.(*shp.Point)
		if !ok {
			continue
		}

		places = append(places, Place{
			Name: r.ReadAttribute(row, nameIdx),
			Lon:  point.X,
			Lat:  point.Y,
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("error reading places layer: %v", err)
	}

	if len(places) == 0 {
		return nil, fmt.Errorf("no places with scalerank <= %d in %s", maxScaleRank, placesFile)
	}
	return places, nil
}

// Read the polygon features of one layer whose filter attribute matches
func (s *Source) readBoundaries(file, filterField, nameField string, match func(string) bool) ([]Boundary, error) {
	r, err := shp.Open(filepath.Join(s.dir, file))
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", file, err)
	}
	defer r.Close()

	filterIdx, err := fieldIndex(r, filterField)
	if err != nil {
		return nil, err
	}
	nameIdx, err := fieldIndex(r, nameField)
	if err != nil {
		return nil, err
	}

	var boundaries []Boundary
	for r.Next() {
		row, shape := r.Shape()

		if !match(r.ReadAttribute(row, filterIdx)) {
			continue
		}

		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		boundaries = append(boundaries, Boundary{
			Name:  r.ReadAttribute(row, nameIdx),
			Rings: splitRings(polygon.Parts, polygon.Points),
		})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %v", file, err)
	}

	if len(boundaries) == 0 {
		return nil, fmt.Errorf("no features matched in %s", file)
	}
	return boundaries, nil
}

// Find the named attribute column, case sensitive
func fieldIndex(r *shp.Reader, name string) (int, error) {
	for i, field := range r.Fields() {
		if field.String() == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("attribute %s not found", name)
}

// Split a shapefile point list into rings using the part start offsets
func splitRings(parts []int32, points []shp.Point) [][]Point {
	rings := make([][]Point, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}

		ring := make([]Point, 0, end-int(start))
		for _, p := range points[start:end] {
			ring = append(ring, Point{Lon: p.X, Lat: p.Y})
		}
		rings = append(rings, ring)
	}
	return rings
}
