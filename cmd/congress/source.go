package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/csvdataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/mongodataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset/pgadapter"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset/sqlite3adapter"
	"github.com/chardzhong/Congress-Decision-Tree/feature"
	"github.com/chardzhong/Congress-Decision-Tree/feature/yaml"
)

const defaultTable = "samples"

type sourceKind int

const (
	csvSource sourceKind = iota
	sqlite3Source
	postgreSQLSource
	mongoDBSource
)

func (sk sourceKind) String() string {
	switch sk {
	case sqlite3Source:
		return "SQLite3"
	case postgreSQLSource:
		return "PostgreSQL"
	case mongoDBSource:
		return "MongoDB"
	}
	return "CSV"
}

/*
kindOf takes the location of a dataset and returns the kind of backend it
is on: PostgreSQL and MongoDB URLs are recognized by their scheme, files
with the .db extension are SQLite3 databases and anything else is taken
as a CSV file.
*/
func kindOf(location string) sourceKind {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgreSQLSource
	case strings.HasPrefix(location, "mongodb://"):
		return mongoDBSource
	case strings.HasSuffix(location, ".db"):
		return sqlite3Source
	}
	return csvSource
}

/*
dataSource describes where to read a dataset from or write it to. The
table is used by SQL backends and the columns by MongoDB ones.
*/
type dataSource struct {
	location string
	table    string
	columns  []string
}

func (src *dataSource) String() string {
	if src.location == "" {
		return "STDIO"
	}
	return src.location
}

func (src *dataSource) read(ctx context.Context, l logger) (*dataset.Dataset, error) {
	kind := kindOf(src.location)
	l.Logf("Reading %s dataset from %v...", kind, src)
	switch kind {
	case sqlite3Source, postgreSQLSource:
		adapter, err := src.sqlAdapter(kind)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sqldataset.ReadTable(ctx, adapter, src.tableName())
	case mongoDBSource:
		session, err := mongodataset.Dial(src.location)
		if err != nil {
			return nil, err
		}
		defer session.Close()
		return mongodataset.Open(session, src.columns).Read(ctx)
	}
	return csvdataset.ReadFromFilePath(ctx, src.location)
}

func (src *dataSource) write(ctx context.Context, l logger, data *dataset.Dataset) (int, error) {
	kind := kindOf(src.location)
	l.Logf("Writing %v as %s dataset to %v...", data, kind, src)
	if len(src.columns) > 0 {
		h, err := feature.NewHeader(src.columns)
		if err != nil {
			return 0, err
		}
		data, err = data.Realign(h)
		if err != nil {
			return 0, fmt.Errorf("reordering columns for output: %v", err)
		}
	}
	switch kind {
	case sqlite3Source, postgreSQLSource:
		adapter, err := src.sqlAdapter(kind)
		if err != nil {
			return 0, err
		}
		defer adapter.Close()
		return sqldataset.WriteTable(ctx, adapter, src.tableName(), data)
	case mongoDBSource:
		session, err := mongodataset.Dial(src.location)
		if err != nil {
			return 0, err
		}
		defer session.Close()
		return mongodataset.Open(session, src.columns).Write(ctx, data)
	}
	return csvdataset.WriteToFilePath(ctx, src.location, data)
}

func (src *dataSource) sqlAdapter(kind sourceKind) (sqldataset.Adapter, error) {
	var adapter sqldataset.Adapter
	var err error
	if kind == postgreSQLSource {
		adapter, err = pgadapter.New(src.location)
	} else {
		adapter, err = sqlite3adapter.New(src.location)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s database at %v: %v", kind, src, err)
	}
	return adapter, nil
}

func (src *dataSource) tableName() string {
	if src.table == "" {
		return defaultTable
	}
	return src.table
}

/*
loadMetadata takes the path to a metadata file and returns the metadata in
it, or empty metadata if the path is empty.
*/
func loadMetadata(path string, l logger) (*yaml.Metadata, error) {
	if path == "" {
		return &yaml.Metadata{}, nil
	}
	l.Logf("Reading metadata at %s...", path)
	return yaml.ReadMetadataFromFile(path)
}
