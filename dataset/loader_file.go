package dataset

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// Load observation rows from a CSV export of the dataset
type FileLoader struct {
	fileName string
}

func NewFileLoader(fileName string) *FileLoader {
	return &FileLoader{fileName: fileName}
}

// Read and parse the whole file.  The first row is the header.
func (l *FileLoader) Load() (Table, error) {
	f, err := os.Open(l.fileName)
	if err != nil {
		return Table{}, fmt.Errorf("error opening dataset file: %v", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, dataframe.HasHeader(true))
	if df.Error() != nil {
		return Table{}, fmt.Errorf("error parsing %s: %v", l.fileName, df.Error())
	}

	return New(df), nil
}

// Write the table back out as CSV, header included
func WriteFile(t Table, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Frame().WriteCSV(f)
}
