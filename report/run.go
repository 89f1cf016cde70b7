package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"github.com/jayhlee/kcov-tools/analysis"
	"github.com/jayhlee/kcov-tools/chart"
	"github.com/jayhlee/kcov-tools/dataset"
	"github.com/jayhlee/kcov-tools/geo"
)

// Run executes the report against the given table.  Chart and map reports
// render a file at outFile (sized in inches from the report definition); word
// reports write their listing to out.
func (r Report) Run(data dataset.Table, outFile string, out io.Writer) error {
	switch r.Kind {
	case DIFFERENCES:
		return r.runDifferences(data, outFile)
	case WORDS:
		return r.runWords(data, out)
	case MAP:
		return r.runMap(data, outFile)
	}
	return fmt.Errorf("report %s has unknown kind", r.Name)
}

// The dataset columns this report reads, for loaders that select columns
func (r Report) Columns() []string {
	switch r.Kind {
	case DIFFERENCES:
		return []string{analysis.DateColumn, r.IndexColumn, r.ValueColumn, analysis.FatalitiesColumn}
	case WORDS:
		return []string{r.TextColumn}
	case MAP:
		return []string{chart.LatitudeColumn, chart.LongitudeColumn, chart.ConfirmedColumn}
	}
	return nil
}

func (r Report) runDifferences(data dataset.Table, outFile string) error {
	differences, fatalities, dates, keys, err := analysis.Differences(data, r.IndexColumn, r.ValueColumn)
	if err != nil {
		return err
	}

	yaxis := differences
	if r.Series == `fatalities` {
		yaxis = fatalities
	}

	c := chart.New()
	c.SetParameters(r.Title, r.XLabel, r.YLabel, r.Rotation)
	if err := c.PlotDifferences(keys, dates, yaxis); err != nil {
		return err
	}

	return c.Save(vg.Length(r.Width)*vg.Inch, vg.Length(r.Height)*vg.Inch, outFile)
}

func (r Report) runWords(data dataset.Table, out io.Writer) error {
	table := data
	if r.Word != "" {
		matched, err := analysis.FindWord(data, r.TextColumn, r.Word)
		if err != nil {
			return err
		}
		table = matched
	}

	words, err := analysis.CountWords(table, r.TextColumn, r.TopWords)
	if err != nil {
		return err
	}

	for _, word := range words {
		fmt.Fprintln(out, word)
	}
	return nil
}

func (r Report) runMap(data dataset.Table, outFile string) error {
	src := geo.NewSource(r.MapDir)

	c := chart.New()
	c.SetParameters(r.Title, r.XLabel, r.YLabel, r.Rotation)
	if err := c.PlotMap(src, data, r.Zoom); err != nil {
		return err
	}

	return c.Save(vg.Length(r.Width)*vg.Inch, vg.Length(r.Height)*vg.Inch, outFile)
}
