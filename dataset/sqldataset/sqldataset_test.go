package sqldataset_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset/pgadapter"
	"github.com/chardzhong/Congress-Decision-Tree/dataset/sqldataset/sqlite3adapter"
)

func sqlite3Adapter(t *testing.T) sqldataset.Adapter {
	a, err := sqlite3adapter.New(filepath.Join(t.TempDir(), "votes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestTableRoundTrip(t *testing.T) {
	rows := make([][]string, 0, 23)
	for i := 0; i < 23; i++ {
		vote := "Yea"
		if i%3 == 0 {
			vote = "Nay"
		}
		rows = append(rows, []string{vote, fmt.Sprintf("member%d", i), "D"})
	}
	rows[5][2] = ""
	ds, err := dataset.New([]string{"Vote1", "Name", "Party"}, rows)
	require.NoError(t, err)

	a := sqlite3Adapter(t)
	n, err := sqldataset.WriteTable(context.Background(), a, "votes", ds)
	require.NoError(t, err)
	assert.Equal(t, 23, n)

	read, err := sqldataset.ReadTable(context.Background(), a, "votes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vote1", "Name", "Party"}, read.Header().Names())
	assert.Equal(t, ds.Records(), read.Records())
}

func TestReadTableMapsNullToEmptyString(t *testing.T) {
	a := sqlite3Adapter(t)
	_, err := a.DB().Exec(`CREATE TABLE "votes" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "Vote1" TEXT, "Party" TEXT)`)
	require.NoError(t, err)
	_, err = a.DB().Exec(`INSERT INTO "votes" ("Vote1", "Party") VALUES (NULL, 'R'), ('Yea', 'D')`)
	require.NoError(t, err)

	ds, err := sqldataset.ReadTable(context.Background(), a, "votes")
	require.NoError(t, err)
	assert.Equal(t, []dataset.Record{{"", "R"}, {"Yea", "D"}}, ds.Records())
}

func TestWriteTableRejectsReservedColumns(t *testing.T) {
	ds, err := dataset.New([]string{"id", "Party"}, [][]string{{"1", "D"}})
	require.NoError(t, err)
	_, err = sqldataset.WriteTable(context.Background(), sqlite3Adapter(t), "votes", ds)
	assert.Error(t, err)

	ds, err = dataset.New([]string{`Vote"1`, "Party"}, [][]string{{"Yea", "D"}})
	require.NoError(t, err)
	_, err = sqldataset.WriteTable(context.Background(), sqlite3Adapter(t), "votes", ds)
	assert.Error(t, err)
}

func TestReadTableFailsOnMissingTable(t *testing.T) {
	_, err := sqldataset.ReadTable(context.Background(), sqlite3Adapter(t), "votes")
	assert.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	pg, err := pgadapter.New("postgres://localhost/congress?sslmode=disable")
	require.NoError(t, err)
	defer pg.Close()
	assert.Equal(t, "$3", pg.Placeholder(3))
	assert.Equal(t, "?", sqlite3Adapter(t).Placeholder(3))
}
