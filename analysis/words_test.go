package analysis

import (
	"reflect"
	"testing"

	"github.com/jayhlee/kcov-tools/dataset"
)

func getTestPolicyTable() dataset.Table {
	return dataset.FromRecords([][]string{
		{`start_date`, `policy`},
		{`2023-04-24`, `close all school`},
		{`2023-04-25`, `reopen schools`},
		{`2023-04-26`, `dog barks`},
		{`2023-04-27`, `mask mandate for school`},
		{`2023-04-28`, `lift mask mandate`},
	})
}

func TestFindWord(t *testing.T) {
	data := getTestPolicyTable()

	matched, err := FindWord(data, `policy`, `school`)
	if err != nil {
		t.Fatal(err)
	}

	// Matches "school" and "schools" as whole words only
	if matched.Nrow() != 3 {
		t.Errorf(`unexpected matched rows: %d`, matched.Nrow())
	}

	policies, _ := matched.Strings(`policy`)
	expected := []string{`close all school`, `reopen schools`, `mask mandate for school`}
	if !reflect.DeepEqual(policies, expected) {
		t.Errorf(`unexpected policies: %v`, policies)
	}
}

// "cat" matches "cat" and "cats" but nothing else
func TestFindWordPlural(t *testing.T) {
	data := dataset.FromRecords([][]string{
		{`id`, `text`},
		{`1`, `cat runs`},
		{`2`, `cats jump`},
		{`3`, `dog barks`},
		{`4`, `catalog entry`},
	})

	matched, err := FindWord(data, `text`, `cat`)
	if err != nil {
		t.Fatal(err)
	}
	if matched.Nrow() != 2 {
		t.Errorf(`unexpected matched rows: %d`, matched.Nrow())
	}
}

func TestCountWords(t *testing.T) {
	data := getTestPolicyTable()

	words, err := CountWords(data, `policy`, 3)
	if err != nil {
		t.Fatal(err)
	}

	// Last tokens: school, schools, barks, school, mandate.
	// "school" twice, the rest once in first-encounter order.
	expected := []string{`school`, `schools`, `barks`}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf(`unexpected words: %v`, words)
	}
}

func TestCountWordsShortTable(t *testing.T) {
	data := dataset.FromRecords([][]string{
		{`id`, `text`},
		{`1`, `only entry`},
	})

	words, err := CountWords(data, `text`, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(words, []string{`entry`}) {
		t.Errorf(`unexpected words: %v`, words)
	}
}

func TestCountWordsMissingColumn(t *testing.T) {
	data := getTestPolicyTable()

	_, err := CountWords(data, `nope`, 3)
	if err == nil {
		t.Error(`expected error for missing column`)
	}
}
