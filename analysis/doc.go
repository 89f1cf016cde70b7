// Package analysis holds the computations behind the reports: date-window
// row matching over the regional dataset (DateRange, MatchingEntries),
// day-over-day differences grouped by region (Differences), and whole-word
// search plus trailing-word frequency counts over the policy text columns
// (FindWord, CountWords).
package analysis
