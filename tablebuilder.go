package sqlcraft

import (
	"context"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// TableBuilder is the single table convenience variant of the builder: every
// statement and schema operation is pinned to one table.
type TableBuilder struct {
	builder *Builder
	table   string
}

// TableName is the pinned table of this builder.
func (t *TableBuilder) TableName() string {
	return t.table
}

// Create starts a CREATE TABLE statement for the pinned table.
func (t *TableBuilder) Create() *Create {
	return t.builder.Create().Table(t.table)
}

// Insert starts an INSERT statement into the pinned table.
func (t *TableBuilder) Insert() *Insert {
	return t.builder.Insert().Into(t.table)
}

// Update starts an UPDATE statement on the pinned table.
func (t *TableBuilder) Update() *Update {
	return t.builder.Update().Table(t.table)
}

// Delete starts a DELETE statement on the pinned table.
func (t *TableBuilder) Delete() *Delete {
	return t.builder.Delete().From(t.table)
}

// Select starts a SELECT statement on the pinned table.
func (t *TableBuilder) Select(columns ...ColumnID) *Select {
	return t.builder.Select(columns...).From(t.table)
}

// SelectOneFrom creates a typed single column select on the pinned table of
// a table builder.
func SelectOneFrom[V any](t *TableBuilder, column ColumnID) *SingleSelect[V] {
	return SelectOne[V](t.builder, column).From(t.table)
}

// DropTable drops the pinned table. Unlike the multi table facade, a missing
// table is a hard failure here: the caller explicitly owns this one table.
func (t *TableBuilder) DropTable(ctx context.Context) error {
	existed, err := t.builder.DropTable(ctx, t.table)
	if err != nil {
		return err
	}
	if !existed {
		return sqlerr.ErrTableNotExisting(t.table)
	}
	return nil
}

// AddColumn adds a column to the pinned table.
func (t *TableBuilder) AddColumn(ctx context.Context, def ColumnDef) error {
	return t.builder.AddColumn(ctx, t.table, def)
}

// RemoveColumn removes a column from the pinned table.
func (t *TableBuilder) RemoveColumn(ctx context.Context, column ColumnID) error {
	return t.builder.RemoveColumn(ctx, t.table, column)
}

// HasTable checks whether the pinned table exists.
func (t *TableBuilder) HasTable(ctx context.Context) (bool, error) {
	return t.builder.HasTable(ctx, t.table)
}

// HasColumn checks whether the column is present on the pinned table.
func (t *TableBuilder) HasColumn(ctx context.Context, column string) (bool, error) {
	return t.builder.HasColumn(ctx, t.table, column)
}

// ColumnCount reports the number of columns of the pinned table.
func (t *TableBuilder) ColumnCount(ctx context.Context) (int, error) {
	return t.builder.ColumnCount(ctx, t.table)
}

// CreateIfNotExists executes the configured create statement only when the
// pinned table is absent.
func (t *TableBuilder) CreateIfNotExists(ctx context.Context, configure func(*Create)) error {
	return t.builder.CreateTableIfNotExists(ctx, t.table, configure)
}
