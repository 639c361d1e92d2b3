package mongodataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mgo.v2/bson"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

func TestValuesOf(t *testing.T) {
	doc := bson.M{"Vote1": "Yea", "Party": "D", "Session": 101, "Vote2": nil}
	assert.Equal(t, []string{"Yea", "", "D", "101"}, valuesOf(doc, []string{"Vote1", "Vote2", "Party", "Session"}))
}

func TestDocumentFor(t *testing.T) {
	doc := documentFor(dataset.Record{"Yea", "R"}, []string{"Vote1", "Party"})
	assert.Equal(t, bson.M{"Vote1": "Yea", "Party": "R"}, doc)
}

func TestReadRequiresColumns(t *testing.T) {
	_, err := Open(nil, nil).Read(context.Background())
	assert.Error(t, err)
}

func TestWriteHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ds, err := dataset.New([]string{"Vote1"}, [][]string{{"Yea"}})
	assert.NoError(t, err)
	_, err = Open(nil, []string{"Vote1"}).Write(ctx, ds)
	assert.Equal(t, context.Canceled, err)
}
