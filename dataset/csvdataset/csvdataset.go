/*
Package csvdataset reads and writes datasets in CSV format: a header row
with the names of the features followed by one row per record.
*/
package csvdataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

/*
Read takes an io.Reader for a CSV stream and returns the dataset.Dataset
parsed from it or an error.

The first row of the CSV content is expected to consist of the names of the
features. The rest of the rows must have one value for every feature.
*/
func Read(ctx context.Context, reader io.Reader) (*dataset.Dataset, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	var rows [][]string
	for l := 2; ; l++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %v", l, err)
		}
		rows = append(rows, row)
	}
	ds, err := dataset.New(header, rows)
	if err != nil {
		return nil, fmt.Errorf("building dataset: %v", err)
	}
	return ds, nil
}

/*
ReadFromFilePath takes a filepath string, opens the file to which it points
and uses Read to return the dataset.Dataset in it or an error. If the
filepath is "", os.Stdin is read instead.
*/
func ReadFromFilePath(ctx context.Context, filepath string) (*dataset.Dataset, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("opening CSV file: %v", err)
		}
	}
	defer f.Close()
	ds, err := Read(ctx, f)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, err
}

/*
Write takes an io.Writer and a dataset.Dataset and dumps to the writer the
dataset in CSV format. It returns the number of written records and an
error if something went wrong when writing.
*/
func Write(ctx context.Context, writer io.Writer, ds *dataset.Dataset) (int, error) {
	w := csv.NewWriter(writer)
	err := w.Write(ds.Header().Names())
	if err != nil {
		return 0, fmt.Errorf("writing CSV header: %v", err)
	}
	var count int
	for _, r := range ds.Records() {
		if err = ctx.Err(); err != nil {
			return count, err
		}
		err = w.Write(r)
		if err != nil {
			return count, fmt.Errorf("writing CSV row for record %d: %v", count+1, err)
		}
		count++
	}
	w.Flush()
	return count, w.Error()
}

/*
WriteToFilePath takes a filepath string and a dataset.Dataset, creates the
file and writes the dataset to it with Write. If the filepath is "",
os.Stdout is written instead.
*/
func WriteToFilePath(ctx context.Context, filepath string, ds *dataset.Dataset) (int, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(filepath)
		if err != nil {
			return 0, fmt.Errorf("creating CSV file: %v", err)
		}
		defer f.Close()
	}
	return Write(ctx, f, ds)
}
