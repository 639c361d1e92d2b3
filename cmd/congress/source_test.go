package main

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, postgreSQLSource, kindOf("postgresql://localhost/congress"))
	assert.Equal(t, postgreSQLSource, kindOf("postgres://localhost/congress"))
	assert.Equal(t, mongoDBSource, kindOf("mongodb://localhost/congress"))
	assert.Equal(t, sqlite3Source, kindOf("votes.db"))
	assert.Equal(t, csvSource, kindOf("votes.csv"))
	assert.Equal(t, csvSource, kindOf(""))
	assert.Equal(t, "SQLite3", sqlite3Source.String())
}

func TestDataSourceRoundTrips(t *testing.T) {
	ds, err := dataset.New([]string{"Vote1", "Vote2", "Party"}, [][]string{
		{"Yea", "Nay", "D"},
		{"Nay", "Yea", "R"},
	})
	require.NoError(t, err)
	dir := t.TempDir()
	for _, location := range []string{filepath.Join(dir, "votes.csv"), filepath.Join(dir, "votes.db")} {
		src := &dataSource{location: location, table: "house"}
		n, err := src.write(context.Background(), logger(false), ds)
		require.NoError(t, err, location)
		assert.Equal(t, 2, n)
		read, err := src.read(context.Background(), logger(false))
		require.NoError(t, err, location)
		assert.Equal(t, ds.Header().Names(), read.Header().Names())
		assert.Equal(t, ds.Records(), read.Records())
	}
}

func TestDataSourceWritesColumnsInOrder(t *testing.T) {
	ds, err := dataset.New([]string{"Vote1", "Vote2", "Party"}, [][]string{{"Yea", "Nay", "D"}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "votes.csv")
	src := &dataSource{location: path, columns: []string{"Party", "Vote1"}}
	_, err = src.write(context.Background(), logger(false), ds)
	require.NoError(t, err)
	content, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Party,Vote1\nD,Yea\n", string(content))
}

func TestLoadMetadata(t *testing.T) {
	md, err := loadMetadata("", logger(false))
	require.NoError(t, err)
	assert.Equal(t, "", md.Label)

	_, err = loadMetadata(filepath.Join(t.TempDir(), "missing.yml"), logger(false))
	assert.Error(t, err)
}
