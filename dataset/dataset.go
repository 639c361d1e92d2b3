package dataset

import (
	"fmt"
	"sort"

	"github.com/chardzhong/Congress-Decision-Tree/feature"
)

/*
Record is a sample: one categorical value per feature, aligned positionally
with the header of the dataset it belongs to.
*/
type Record []string

/*
Dataset represents a collection of records sharing a header, along with the
domain of every feature: the sorted set of distinct values it takes on the
records.

A Dataset owns the records it is built with. They are not copied, and
imputing the dataset with a Trimmer rewrites their values in place.
*/
type Dataset struct {
	header  *feature.Header
	records []Record
	domains [][]string
}

/*
New takes a slice of feature names and a slice of rows and returns a dataset
built with them, or an error if the names do not make a valid header or a
row does not have one value per feature.
*/
func New(names []string, rows [][]string) (*Dataset, error) {
	h, err := feature.NewHeader(names)
	if err != nil {
		return nil, err
	}
	return NewWithHeader(h, rows)
}

/*
NewWithHeader takes a feature.Header and a slice of rows and returns a
dataset built with them, or an error if a row does not have one value per
feature in the header.
*/
func NewWithHeader(h *feature.Header, rows [][]string) (*Dataset, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != h.Len() {
			return nil, fmt.Errorf("record %d has %d values, expected %d", i+1, len(row), h.Len())
		}
		records = append(records, Record(row))
	}
	ds := &Dataset{header: h, records: records}
	ds.RecomputeDomains()
	return ds, nil
}

// Header returns the header of the dataset.
func (ds *Dataset) Header() *feature.Header {
	return ds.header
}

// Records returns the records of the dataset.
func (ds *Dataset) Records() []Record {
	return ds.records
}

// Len returns the number of records in the dataset.
func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Domain returns the sorted distinct values of the feature at position i.
func (ds *Dataset) Domain(i int) []string {
	return ds.domains[i]
}

/*
Feature takes a feature name and returns the feature.Feature for it, with
its position and current domain, or an *feature.UnknownFeatureError if the
dataset has no such feature.
*/
func (ds *Dataset) Feature(name string) (*feature.Feature, error) {
	i, err := ds.header.Index(name)
	if err != nil {
		return nil, err
	}
	return ds.FeatureAt(i), nil
}

// FeatureAt returns the feature.Feature at position i.
func (ds *Dataset) FeatureAt(i int) *feature.Feature {
	return feature.NewFeature(ds.header.Name(i), i, ds.domains[i])
}

// Features returns every feature of the dataset in header order.
func (ds *Dataset) Features() []*feature.Feature {
	features := make([]*feature.Feature, ds.header.Len())
	for i := range features {
		features[i] = ds.FeatureAt(i)
	}
	return features
}

/*
RecomputeDomains computes again the domain of every feature from the
current values of the records.
*/
func (ds *Dataset) RecomputeDomains() {
	domains := make([][]string, ds.header.Len())
	for i := range domains {
		encountered := make(map[string]bool)
		values := []string{}
		for _, r := range ds.records {
			if !encountered[r[i]] {
				encountered[r[i]] = true
				values = append(values, r[i])
			}
		}
		sort.Strings(values)
		domains[i] = values
	}
	ds.domains = domains
}

/*
Realign takes a header and returns a new dataset with the same records but
with their values reordered to follow the given header. Every feature in
the given header must be present on the dataset, otherwise an
*feature.UnknownFeatureError is returned. Features of the dataset that are
not in the given header are dropped.
*/
func (ds *Dataset) Realign(h *feature.Header) (*Dataset, error) {
	positions := make([]int, h.Len())
	for i := range positions {
		j, err := ds.header.Index(h.Name(i))
		if err != nil {
			return nil, err
		}
		positions[i] = j
	}
	rows := make([][]string, 0, len(ds.records))
	for _, r := range ds.records {
		row := make([]string, len(positions))
		for i, j := range positions {
			row[i] = r[j]
		}
		rows = append(rows, row)
	}
	return NewWithHeader(h, rows)
}

func (ds *Dataset) String() string {
	return fmt.Sprintf("[ %d records x %d features ]", len(ds.records), ds.header.Len())
}
