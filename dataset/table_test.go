package dataset

import (
	"reflect"
	"regexp"
	"testing"
)

// A small slice of the regional dataset used across the package tests
func getTestTable() Table {
	return FromRecords([][]string{
		{`date`, `region`, `confirmed`, `fatalities, %`},
		{`2023-04-24`, `Seoul`, `120`, `1.1`},
		{`2023-04-25`, `Seoul`, `135`, `1.2`},
		{`2023-04-26`, `Seoul`, `131`, `1.2`},
		{`2023-04-24`, `Busan`, `40`, `0.9`},
		{`2023-04-25`, `Busan`, `45`, `1.0`},
	})
}

func TestFromRecords(t *testing.T) {
	tbl := getTestTable()
	if err := tbl.Err(); err != nil {
		t.Fatalf(`table error: %v`, err)
	}
	if tbl.Nrow() != 5 {
		t.Errorf(`unexpected row count: %d`, tbl.Nrow())
	}
	if !tbl.HasCol(`fatalities, %`) {
		t.Errorf(`missing fatality column: %v`, tbl.Names())
	}
}

func TestStrings(t *testing.T) {
	tbl := getTestTable()
	regions, err := tbl.Strings(`region`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{`Seoul`, `Seoul`, `Seoul`, `Busan`, `Busan`}
	if !reflect.DeepEqual(regions, expected) {
		t.Errorf(`unexpected regions: %v`, regions)
	}

	_, err = tbl.Strings(`nope`)
	if err == nil {
		t.Error(`expected error for missing column`)
	}
}

func TestFloats(t *testing.T) {
	tbl := getTestTable()
	confirmed, err := tbl.Floats(`confirmed`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []float64{120, 135, 131, 40, 45}
	if !reflect.DeepEqual(confirmed, expected) {
		t.Errorf(`unexpected confirmed counts: %v`, confirmed)
	}
}

func TestHead(t *testing.T) {
	tbl := getTestTable()
	head := tbl.Head(2)
	if head.Nrow() != 2 {
		t.Errorf(`unexpected head row count: %d`, head.Nrow())
	}
	dates, _ := head.Strings(`date`)
	if !reflect.DeepEqual(dates, []string{`2023-04-24`, `2023-04-25`}) {
		t.Errorf(`unexpected head rows: %v`, dates)
	}

	if tbl.Head(100).Nrow() != 5 {
		t.Errorf(`oversized head should return all rows`)
	}
}

func TestEqString(t *testing.T) {
	tbl := getTestTable()
	busan := tbl.EqString(`region`, `Busan`)
	if busan.Nrow() != 2 {
		t.Errorf(`unexpected Busan row count: %d`, busan.Nrow())
	}
	dates, _ := busan.Strings(`date`)
	if !reflect.DeepEqual(dates, []string{`2023-04-24`, `2023-04-25`}) {
		t.Errorf(`row order not preserved: %v`, dates)
	}
}

func TestInStrings(t *testing.T) {
	tbl := getTestTable()
	matched := tbl.InStrings(`date`, []string{`2023-04-24`, `2023-04-26`})
	if matched.Nrow() != 3 {
		t.Errorf(`unexpected matched row count: %d`, matched.Nrow())
	}
}

func TestMatchRows(t *testing.T) {
	tbl := getTestTable()
	re := regexp.MustCompile(`^Se`)
	matched := tbl.MatchRows(`region`, re)
	if matched.Nrow() != 3 {
		t.Errorf(`unexpected matched row count: %d`, matched.Nrow())
	}
}

func TestAppend(t *testing.T) {
	tbl := getTestTable()

	// Appending onto a zero Table yields the other table untouched
	var empty Table
	out := empty.Append(tbl)
	if out.Nrow() != 5 {
		t.Errorf(`unexpected row count after empty append: %d`, out.Nrow())
	}

	// Appending a table to itself keeps the duplicates
	out = tbl.Append(tbl)
	if err := out.Err(); err != nil {
		t.Fatalf(`append error: %v`, err)
	}
	if out.Nrow() != 10 {
		t.Errorf(`unexpected row count after self append: %d`, out.Nrow())
	}
}
