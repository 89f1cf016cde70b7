package analysis

import (
	"time"

	"github.com/jayhlee/kcov-tools/dataset"
)

// Date strings in the dataset and on the CLI use this layout
const DateLayout = `2006-01-02`

// WindowLength is the fixed number of dates in a matching window.  The days
// argument to DateRange only shifts the window start back from the chosen
// date; it does not change the window length.
const WindowLength = 7

// DateRange returns the WindowLength consecutive calendar dates starting
// days before the chosen date.
//
// DateRange(2023-05-01, 7) covers 2023-04-24 through 2023-04-30.
func DateRange(chosen time.Time, days int) []time.Time {
	start := chosen.AddDate(0, 0, -days)

	dates := make([]time.Time, 0, WindowLength)
	for i := 0; i < WindowLength; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// MatchingEntries collects every row of data whose date column falls inside
// the window of any of the dates of interest (given as YYYY-MM-DD strings).
// Windows are processed in argument order and matched rows keep their table
// order; rows inside overlapping windows appear once per window.  A date that
// does not parse stops the collection and returns the parse error.
func MatchingEntries(datesOfInterest []string, data dataset.Table, dateColumn string, days int) (dataset.Table, error) {
	var matching dataset.Table

	for _, dateStr := range datesOfInterest {
		chosen, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return dataset.Table{}, err
		}

		window := DateRange(chosen, days)
		labels := make([]string, len(window))
		for i, date := range window {
			labels[i] = date.Format(DateLayout)
		}

		matched := data.InStrings(dateColumn, labels)
		if err := matched.Err(); err != nil {
			return dataset.Table{}, err
		}

		matching = matching.Append(matched)
	}

	return matching, matching.Err()
}
