/*
Package mongodataset reads and writes datasets on the samples collection of
a MongoDB database, one document per record.
*/
package mongodataset

import (
	"context"
	"fmt"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

const (
	samplesCollectionName = "samples"
)

/*
Collection reads and writes datasets on the samples collection of the
default database of a MongoDB session.
*/
type Collection struct {
	session *mgo.Session
	columns []string
}

/*
Dial takes a MongoDB connection URL and returns a session for it or an
error if it fails to connect to it.
*/
func Dial(url string) (*mgo.Session, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return session, nil
}

/*
Open takes a MongoDB database session and the names of the features to read
from the documents and returns a Collection that works on the default
database for that session.
*/
func Open(session *mgo.Session, columns []string) *Collection {
	return &Collection{session, columns}
}

/*
Read takes a context and returns a dataset.Dataset with a record for every
document in the collection, in insertion order, with the values of the
documents for the columns of the Collection. Missing values are read as
empty strings. It returns an error if the Collection has no columns or the
documents cannot be read.
*/
func (c *Collection) Read(ctx context.Context) (*dataset.Dataset, error) {
	if len(c.columns) == 0 {
		return nil, fmt.Errorf("reading documents: no columns to read")
	}
	projection := bson.M{"_id": 0}
	for _, col := range c.columns {
		projection[col] = 1
	}
	iter := c.samplesCollection().Find(nil).Select(projection).Sort("$natural").Iter()
	defer iter.Close()
	var rows [][]string
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows = append(rows, valuesOf(doc, c.columns))
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading documents: %v", err)
	}
	ds, err := dataset.New(c.columns, rows)
	if err != nil {
		return nil, fmt.Errorf("building dataset from documents: %v", err)
	}
	return ds, nil
}

/*
Write takes a context and a dataset.Dataset and inserts a document for every
record of the dataset on the collection. It returns the number of inserted
documents or an error.
*/
func (c *Collection) Write(ctx context.Context, ds *dataset.Dataset) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	names := ds.Header().Names()
	docs := make([]interface{}, 0, ds.Len())
	for _, r := range ds.Records() {
		docs = append(docs, documentFor(r, names))
	}
	if len(docs) == 0 {
		return 0, nil
	}
	err := c.samplesCollection().Insert(docs...)
	if err != nil {
		return 0, fmt.Errorf("inserting %d documents: %v", len(docs), err)
	}
	return len(docs), nil
}

func (c *Collection) samplesCollection() *mgo.Collection {
	return c.session.DB("").C(samplesCollectionName)
}

func valuesOf(doc bson.M, columns []string) []string {
	values := make([]string, len(columns))
	for i, col := range columns {
		if v, ok := doc[col]; ok && v != nil {
			values[i] = fmt.Sprintf("%v", v)
		}
	}
	return values
}

func documentFor(r dataset.Record, names []string) bson.M {
	doc := make(bson.M, len(names))
	for i, name := range names {
		doc[name] = r[i]
	}
	return doc
}
