package sqlcraft

import (
	"context"
	"strings"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// Create is a one shot CREATE TABLE statement.
type Create struct {
	baseStatement
	columns []ColumnDef
}

// Table sets the table name to create.
func (c *Create) Table(name string) *Create {
	c.setTable(name)
	return c
}

// Columns adds the columns to create.
func (c *Create) Columns(defs ...ColumnDef) *Create {
	if len(defs) == 0 {
		c.fail(sqlerr.ErrNoColumns)
		return c
	}
	c.columns = append(c.columns, defs...)
	return c
}

// WithIDColumn additionally creates the builder's id column at the front.
func (c *Create) WithIDColumn() *Create {
	idDef := Define(c.builder.idColumn, Int()).
		AsPrimaryKey().
		WithModifiers(NotNull)
	c.columns = append([]ColumnDef{idDef}, c.columns...)
	return c
}

// Execute creates the table. Referenced tables of foreign key columns are
// resolved first: each one is created through its registered creator when
// absent, idempotently, and a cyclic reference chain is reported as an error
// instead of recursing forever.
func (c *Create) Execute(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	table, err := c.tableName()
	if err != nil {
		return err
	}
	if len(c.columns) == 0 {
		return sqlerr.ErrNoColumns
	}

	c.builder.markCreating(table)
	defer c.builder.unmarkCreating(table)
	if err := c.ensureReferencedTables(ctx, table); err != nil {
		return err
	}

	f := c.newFormat(ConstCreateTable).
		AppendTableName(table).
		OpenBracket().
		AppendDefinitions(c.columns, SepComma, SepNewLine).
		AppendFunc(c.primaryKeys).
		AppendFunc(c.foreignKeys).
		CloseBracket()

	if _, err := c.execute(ctx, f, StatementExec, "CREATE"); err != nil {
		return err
	}
	c.builder.noteTableExists(table)
	return nil
}

// ensureReferencedTables is the dependency resolution pass before the actual
// create: check then create for every referenced table that is missing.
func (c *Create) ensureReferencedTables(ctx context.Context, table string) error {
	for _, def := range c.columns {
		if def.ForeignKey == nil {
			continue
		}
		ref := def.ForeignKey.Table
		if ref == table {
			// self references need no resolution
			continue
		}
		if c.builder.isCreating(ref) {
			return sqlerr.ErrCyclicReference(ref)
		}
		exists, err := c.builder.HasTable(ctx, ref)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if def.ForeignKey.Ensure == nil {
			return sqlerr.ErrMissingReferencedTable(ref)
		}
		if err := def.ForeignKey.Ensure(c.builder); err != nil {
			return err
		}
	}
	return nil
}

// primaryKeys appends the trailing primary key clause, if any column is
// marked as a primary key.
func (c *Create) primaryKeys(f *StatementFormatter) {
	var names []string
	for _, def := range c.columns {
		if def.PrimaryKey {
			names = append(names, def.Name)
		}
	}
	if len(names) == 0 {
		return
	}
	f.AppendSeparator(SepComma, SepNewLine)
	f.AppendConstant(ConstPrimaryKey, strings.Join(names, ", "))
}

// foreignKeys appends one trailing foreign key clause per referencing column.
func (c *Create) foreignKeys(f *StatementFormatter) {
	for _, def := range c.columns {
		if def.ForeignKey == nil {
			continue
		}
		f.AppendSeparator(SepComma, SepNewLine)
		f.AppendConstant(ConstForeignKey,
			def.Name, def.ForeignKey.Table, strings.Join(def.ForeignKey.Columns, ", "))
	}
}
