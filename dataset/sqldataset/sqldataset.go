package sqldataset

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/chardzhong/Congress-Decision-Tree/dataset"
)

const (
	// IDColumn is the name of the column that keeps the order of the records on a table.
	IDColumn = "id"

	/*
		MaxRecordInsertionsPerStatement is the maximum number of records
		that are inserted with a single insert command by WriteTable.
		Writing more will result in making more insertion commands.
	*/
	MaxRecordInsertionsPerStatement = 10
)

/*
Adapter is an interface providing the database specifics needed to read
and write datasets on a SQL database.
*/
type Adapter interface {
	// DB returns the database connection
	DB() *sql.DB
	// ColumnName takes a feature name and returns the name of the column
	// for it or an error if the feature name cannot be used as column name.
	ColumnName(string) (string, error)
	// IDColumnDefinition returns the column definition of the id column
	// for a create table statement.
	IDColumnDefinition() string
	// Placeholder takes the 1-based position of a parameter on a
	// statement and returns the placeholder for it.
	Placeholder(int) string
	Close() error
}

/*
ReadTable takes a context, an Adapter and the name of a table and returns a
dataset.Dataset with the records on the table in id order and a feature for
every column but the id. NULL values are read as empty strings.
*/
func ReadTable(ctx context.Context, a Adapter, table string) (*dataset.Dataset, error) {
	query := fmt.Sprintf(`SELECT * FROM "%s" ORDER BY "%s"`, table, IDColumn)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	idIndex := -1
	header := make([]string, 0, len(columns))
	for i, c := range columns {
		if c == IDColumn {
			idIndex = i
			continue
		}
		header = append(header, c)
	}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	var records [][]string
	for rows.Next() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		err = rows.Scan(dest...)
		if err != nil {
			return nil, fmt.Errorf("scanning record %d of table %s: %v", len(records)+1, table, err)
		}
		record := make([]string, 0, len(header))
		for i, v := range values {
			if i != idIndex {
				record = append(record, v.String)
			}
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	ds, err := dataset.New(header, records)
	if err != nil {
		return nil, fmt.Errorf("building dataset from table %s: %v", table, err)
	}
	return ds, nil
}

/*
WriteTable takes a context, an Adapter, the name of a table and a
dataset.Dataset, creates the table if it does not exist and inserts the
records of the dataset on it. It returns the number of inserted records and
an error if not all of them could be inserted.
*/
func WriteTable(ctx context.Context, a Adapter, table string, ds *dataset.Dataset) (int, error) {
	columns := make([]string, 0, ds.Header().Len())
	for _, name := range ds.Header().Names() {
		c, err := a.ColumnName(name)
		if err != nil {
			return 0, err
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("no features to store")
	}
	err := createTable(ctx, a, table, columns)
	if err != nil {
		return 0, err
	}
	records := ds.Records()
	var count int
	for count < len(records) {
		end := count + MaxRecordInsertionsPerStatement
		if end > len(records) {
			end = len(records)
		}
		err = insertRecords(ctx, a, table, columns, records[count:end])
		if err != nil {
			return count, err
		}
		count = end
	}
	return count, nil
}

func createTable(ctx context.Context, a Adapter, table string, columns []string) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS "%s" (%s`, table, a.IDColumnDefinition()))
	for _, c := range columns {
		createStmtBuf.WriteString(fmt.Sprintf(`, "%s" TEXT`, c))
	}
	createStmtBuf.WriteString(")")
	_, err := a.DB().ExecContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("creating table %s: %v", table, err)
	}
	return nil
}

func insertRecords(ctx context.Context, a Adapter, table string, columns []string, records []dataset.Record) error {
	var insertStmtBuf bytes.Buffer
	insertStmtBuf.WriteString(fmt.Sprintf(`INSERT INTO "%s" ("%s") VALUES `, table, strings.Join(columns, `", "`)))
	args := make([]interface{}, 0, len(records)*len(columns))
	for i, r := range records {
		if i > 0 {
			insertStmtBuf.WriteString(", ")
		}
		placeholders := make([]string, len(columns))
		for j := range columns {
			placeholders[j] = a.Placeholder(len(args) + 1)
			args = append(args, r[j])
		}
		insertStmtBuf.WriteString("(" + strings.Join(placeholders, ", ") + ")")
	}
	_, err := a.DB().ExecContext(ctx, insertStmtBuf.String(), args...)
	if err != nil {
		return fmt.Errorf("inserting %d records: %v", len(records), err)
	}
	return nil
}
