package csvdataset

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

const votesCSV = `Vote1,Vote2,Party
Yea,Yea,D
Nay,Nay,R
Yea,Nay,D
Nay,Yea,R
`

func TestRead(t *testing.T) {
	ds, err := Read(context.Background(), strings.NewReader(votesCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Vote1", "Vote2", "Party"}, ds.Header().Names())
	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, dataset.Record{"Yea", "Nay", "D"}, ds.Records()[2])
	assert.Equal(t, []string{"D", "R"}, ds.Domain(2))
}

func TestReadRejectsInvalidContent(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader(""))
	assert.Error(t, err)

	_, err = Read(context.Background(), strings.NewReader("Vote1,Party\nYea,D\nNay\n"))
	assert.Error(t, err)

	_, err = Read(context.Background(), strings.NewReader("Vote1,Vote1\nYea,Nay\n"))
	assert.Error(t, err)
}

func TestReadHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Read(ctx, strings.NewReader(votesCSV))
	assert.Equal(t, context.Canceled, err)
}

func TestWrite(t *testing.T) {
	ds, err := Read(context.Background(), strings.NewReader(votesCSV))
	require.NoError(t, err)
	var b bytes.Buffer
	n, err := Write(context.Background(), &b, ds)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, votesCSV, b.String())
}

func TestFilePathRoundTrip(t *testing.T) {
	ds, err := Read(context.Background(), strings.NewReader(votesCSV))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "votes.csv")
	_, err = WriteToFilePath(context.Background(), path, ds)
	require.NoError(t, err)

	read, err := ReadFromFilePath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, ds.Records(), read.Records())

	_, err = ReadFromFilePath(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
