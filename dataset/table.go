package dataset

import (
	"fmt"
	"regexp"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// A Table holds the observation rows for one dataset: one date column in
// YYYY-MM-DD form, a group key column (usually the region), and any number of
// numeric or text measures.  It wraps a gota DataFrame so callers get
// row-order preserving filters without touching gota directly.
type Table struct {
	df dataframe.DataFrame
}

// Wrap an existing DataFrame
func New(df dataframe.DataFrame) Table {
	return Table{df: df}
}

// Build a Table from records, first row is the header
func FromRecords(records [][]string) Table {
	return Table{df: dataframe.LoadRecords(records)}
}

// Any error carried by the underlying frame.  A zero Table has no error.
func (t Table) Err() error {
	return t.df.Error()
}

// Number of observation rows
func (t Table) Nrow() int {
	return t.df.Nrow()
}

// Column names in table order
func (t Table) Names() []string {
	return t.df.Names()
}

func (t Table) HasCol(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// The underlying frame, for callers that need raw gota access
func (t Table) Frame() dataframe.DataFrame {
	return t.df
}

// Records returns the header row followed by all data rows
func (t Table) Records() [][]string {
	return t.df.Records()
}

// Get a column as strings, in row order
func (t Table) Strings(name string) ([]string, error) {
	col, err := t.col(name)
	if err != nil {
		return nil, err
	}
	return col.Records(), nil
}

// Get a column as floats, in row order
func (t Table) Floats(name string) ([]float64, error) {
	col, err := t.col(name)
	if err != nil {
		return nil, err
	}
	return col.Float(), nil
}

func (t Table) col(name string) (series.Series, error) {
	if err := t.df.Error(); err != nil {
		return series.Series{}, err
	}
	if !t.HasCol(name) {
		return series.Series{}, fmt.Errorf("column %s not found", name)
	}
	col := t.df.Col(name)
	return col, col.Err
}

// Head returns the first n rows, or the whole table when it has fewer
func (t Table) Head(n int) Table {
	if n >= t.Nrow() {
		return t
	}
	if n < 0 {
		n = 0
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	return Table{df: t.df.Subset(indexes)}
}

// Rows whose named column equals the given value, preserving row order
func (t Table) EqString(name, value string) Table {
	return Table{df: t.df.Filter(dataframe.F{
		Colname:    name,
		Comparator: series.Eq,
		Comparando: value,
	})}
}

// Rows whose named column is one of the given values, preserving row order
func (t Table) InStrings(name string, values []string) Table {
	return Table{df: t.df.Filter(dataframe.F{
		Colname:    name,
		Comparator: series.In,
		Comparando: values,
	})}
}

// Rows whose named column matches the given pattern, preserving row order
func (t Table) MatchRows(name string, re *regexp.Regexp) Table {
	return Table{df: t.df.Filter(dataframe.F{
		Colname:    name,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return re.MatchString(el.String())
		},
	})}
}

// Append the other table's rows below this table's rows.  Column sets must
// match unless either side is empty.  Duplicate rows are kept as-is.
func (t Table) Append(other Table) Table {
	if t.Nrow() == 0 && t.Err() == nil {
		return other
	}
	if other.Nrow() == 0 && other.Err() == nil {
		return t
	}
	return Table{df: t.df.RBind(other.df)}
}
