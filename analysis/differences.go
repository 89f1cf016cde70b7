package analysis

import (
	"github.com/jayhlee/kcov-tools/dataset"
)

// Fixed columns of the regional dataset export
const (
	DateColumn       = `date`
	FatalitiesColumn = `fatalities, %`
)

// Differences computes the day-over-day change of the value column and of the
// fatality-rate column for each distinct key in the index column.
//
// Keys come back in first-occurrence order and each key's rows are taken in
// table order.  A key with fewer than two rows gets an empty difference
// slice.  The returned date axis belongs to the LAST key processed, shortened
// by its first date; it is shared across all series and is not guaranteed to
// line up with any other key's own dates.
func Differences(data dataset.Table, indexColumn, valueColumn string) (map[string][]float64, map[string][]float64, []string, []string, error) {
	indexValues, err := data.Strings(indexColumn)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	// Distinct keys, first-occurrence order
	seen := make(map[string]bool)
	var keys []string
	for _, value := range indexValues {
		if !seen[value] {
			seen[value] = true
			keys = append(keys, value)
		}
	}

	differences := make(map[string][]float64)
	fatalities := make(map[string][]float64)
	var dates []string

	for _, key := range keys {
		subset := data.EqString(indexColumn, key)

		values, err := subset.Floats(valueColumn)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		fatalityValues, err := subset.Floats(FatalitiesColumn)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		differences[key] = diff(values)
		fatalities[key] = diff(fatalityValues)

		subsetDates, err := subset.Strings(DateColumn)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if len(subsetDates) > 0 {
			dates = subsetDates[1:]
		} else {
			dates = nil
		}
	}

	return differences, fatalities, dates, keys, nil
}

// First differences, one element shorter than the input.  Zero or one input
// values yield an empty slice.
func diff(values []float64) []float64 {
	if len(values) <= 1 {
		return []float64{}
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}
