package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jayhlee/kcov-tools/dataset"
)

// FindWord filters the table down to rows whose text column contains the
// given word as a whole word, singular or trailing-s plural.  "cat" matches
// "cat" and "cats" but not "category".
func FindWord(data dataset.Table, column, word string) (dataset.Table, error) {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `s?\b`)
	if err != nil {
		return dataset.Table{}, fmt.Errorf("bad search word %q: %v", word, err)
	}

	matched := data.MatchRows(column, re)
	return matched, matched.Err()
}

// CountWords takes the last whitespace-separated token of every cell in the
// text column and returns the n most frequent, most frequent first.  Ties
// keep first-encounter order.  Empty cells contribute nothing.
func CountWords(data dataset.Table, column string, n int) ([]string, error) {
	cells, err := data.Strings(column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, cell := range cells {
		tokens := strings.Fields(cell)
		if len(tokens) == 0 {
			continue
		}
		last := tokens[len(tokens)-1]
		if counts[last] == 0 {
			order = append(order, last)
		}
		counts[last]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	if n < 0 {
		n = 0
	}
	return order[:n], nil
}
