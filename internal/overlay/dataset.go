package overlay

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	sequenceColumn = "Sequence"
	scoreColumn    = "Score"
)

// Record is a single row of an uploaded dataset.
type Record struct {
	Sequence string
	Score    float64
}

// Dataset is a table of scored peptides. Each dataset is its own group.
type Dataset struct {
	// Name is the file's name without its extension, used in the legend
	Name string

	// Records are the rows, in file order
	Records []Record
}

// ReadDataset reads a CSV file with a header that has, at least,
// Sequence and Score columns.
func ReadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return ParseDataset(datasetName(path), f)
}

// ParseDataset parses CSV from r. The Sequence and Score columns are required,
// other columns are ignored. Cells are never read as missing values so
// peptides like NA keep their text, a Score that isn't a number is NaN.
func ParseDataset(name string, r io.Reader) (Dataset, error) {
	df := dataframe.ReadCSV(
		r,
		dataframe.WithTypes(map[string]series.Type{
			sequenceColumn: series.String,
			scoreColumn:    series.Float,
		}),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return Dataset{}, fmt.Errorf("failed to parse dataset %s: %w", name, df.Err)
	}

	names := make(map[string]bool)
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, col := range []string{sequenceColumn, scoreColumn} {
		if !names[col] {
			return Dataset{}, &ColumnError{Dataset: name, Column: col}
		}
	}

	stderr.Debugf("uploaded data %s:\n%v", name, df)

	seqs := df.Col(sequenceColumn).Records()
	scores := df.Col(scoreColumn).Float()

	ds := Dataset{Name: name, Records: make([]Record, len(seqs))}
	for i, s := range seqs {
		ds.Records[i] = Record{Sequence: s, Score: scores[i]}
	}

	return ds, nil
}

// datasetName is the base of the path without its extension: a/run1.csv -> run1
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
