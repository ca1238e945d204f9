package sqlcraft

import (
	"database/sql"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// SelectResult wraps the raw rows of a select statement. Values are held in
// their serial form and deserialized on demand through the value serializer.
type SelectResult struct {
	rows       *sql.Rows
	columns    []ColumnID
	serializer ValueSerializer
}

func newSelectResult(rows *sql.Rows, columns []ColumnID, serializer ValueSerializer) *SelectResult {
	return &SelectResult{rows: rows, columns: columns, serializer: serializer}
}

// First reads the first row and closes the result. An empty result set is
// reported through the second return, not as an error.
func (r *SelectResult) First() (*ResultRow, bool, error) {
	defer r.rows.Close()
	if !r.rows.Next() {
		return nil, false, r.rows.Err()
	}
	row, err := r.scanRow()
	if err != nil {
		return nil, false, err
	}
	return row, true, nil
}

// ForEach reads every row in order and closes the result afterwards.
func (r *SelectResult) ForEach(fn func(row *ResultRow) error) error {
	defer r.rows.Close()
	for r.rows.Next() {
		row, err := r.scanRow()
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return r.rows.Err()
}

// Close releases the underlying rows.
func (r *SelectResult) Close() error {
	return r.rows.Close()
}

func (r *SelectResult) scanRow() (*ResultRow, error) {
	dest := make([]sql.NullString, len(r.columns))
	ptrs := make([]any, len(r.columns))
	for i := range dest {
		ptrs[i] = &dest[i]
	}
	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	serials := make([]*string, len(r.columns))
	for i, d := range dest {
		if d.Valid {
			value := d.String
			serials[i] = &value
		}
	}
	return &ResultRow{columns: r.columns, serials: serials, serializer: r.serializer}, nil
}

// ResultRow is one deserializable result row.
type ResultRow struct {
	columns    []ColumnID
	serials    []*string
	serializer ValueSerializer
}

// Get deserializes the value of the given column. NULL values yield nil.
func (r *ResultRow) Get(column ColumnID) (any, error) {
	for i, col := range r.columns {
		if col == column {
			return r.serializer.FromSerial(column, r.serials[i])
		}
	}
	return nil, sqlerr.ErrUnknownResultColumn(column.Name)
}
