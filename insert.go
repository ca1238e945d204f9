package sqlcraft

import (
	"context"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// Insert is a one shot INSERT statement.
type Insert struct {
	baseStatement
	values  []ColumnValue
	atIndex *int
}

// Into sets the table name to insert into.
func (i *Insert) Into(name string) *Insert {
	i.setTable(name)
	return i
}

// Values adds column value tuples to insert.
func (i *Insert) Values(tuples ...ColumnValue) *Insert {
	if len(tuples) == 0 {
		i.fail(sqlerr.ErrNoValues)
		return i
	}
	i.values = append(i.values, tuples...)
	return i
}

// AtIndex requests insertion at an explicit id position. Every existing row
// with an id greater than or equal to the index is shifted up by one before
// the insertion, keeping the id sequence dense and order significant.
func (i *Insert) AtIndex(index int) *Insert {
	if index < 0 {
		i.fail(sqlerr.ErrNegativeIndex(index))
		return i
	}
	i.atIndex = &index
	return i
}

// Execute performs the insertion. The index shift and the insert are two
// separate statements; callers needing atomicity must wrap them in a
// transaction at the executor boundary.
func (i *Insert) Execute(ctx context.Context) error {
	if i.err != nil {
		return i.err
	}
	table, err := i.tableName()
	if err != nil {
		return err
	}
	if len(i.values) == 0 {
		return sqlerr.ErrNoValues
	}

	values := i.values
	if i.atIndex != nil {
		shift := i.builder.Update().
			Table(table).
			AdjustID(Add, 1).
			WhereID(OpGtEq, *i.atIndex)
		if err := shift.Execute(ctx); err != nil {
			return err
		}
		values = append([]ColumnValue{Val(i.idColumn(), *i.atIndex)}, values...)
	}

	names := make([]string, len(values))
	for n, tuple := range values {
		names[n] = tuple.Column.Name
	}
	f := i.newFormat(ConstInsertInto).
		AppendTableName(table).
		OpenBracket().
		AppendEnumeration(names, SepCommaSpace).
		CloseBracket().
		AppendConstant(ConstValues).
		OpenBracket().
		AppendArguments(values, SepCommaSpace).
		CloseBracket()

	_, err = i.execute(ctx, f, StatementExec, "INSERT")
	return err
}
