package sqlcraft

import (
	"context"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

type numericAdjust struct {
	op     NumericOperation
	amount int
}

// Update is a one shot UPDATE statement.
type Update struct {
	baseStatement
	changes []ColumnValue
	adjusts []numericAdjust
	cond    Condition
}

// Table sets the table name to update.
func (u *Update) Table(name string) *Update {
	u.setTable(name)
	return u
}

// Set adds column value tuples to write.
func (u *Update) Set(tuples ...ColumnValue) *Update {
	if len(tuples) == 0 {
		u.fail(sqlerr.ErrNoChanges)
		return u
	}
	u.changes = append(u.changes, tuples...)
	return u
}

// AdjustID applies an arithmetic operation to the id column, e.g. the row
// shift of an indexed insertion.
func (u *Update) AdjustID(op NumericOperation, amount int) *Update {
	u.adjusts = append(u.adjusts, numericAdjust{op: op, amount: amount})
	return u
}

// Where restricts the rows to update.
func (u *Update) Where(cond Condition) *Update {
	u.cond = cond
	return u
}

// WhereID restricts the update through a condition on the builder's id
// column.
func (u *Update) WhereID(op Op, id int) *Update {
	u.cond = Cond(u.idColumn(), op, id)
	return u
}

// Execute performs the update.
func (u *Update) Execute(ctx context.Context) error {
	if u.err != nil {
		return u.err
	}
	table, err := u.tableName()
	if err != nil {
		return err
	}
	if len(u.changes) == 0 && len(u.adjusts) == 0 {
		return sqlerr.ErrNoChanges
	}

	f := u.newFormat(ConstUpdate).
		AppendTableName(table).
		AppendConstant(ConstSet)

	id := u.idColumn()
	first := true
	for _, adjust := range u.adjusts {
		if !first {
			f.AppendSeparator(SepCommaSpace)
		}
		first = false
		f.pad()
		f.sb.WriteString(id.Name)
		f.sb.WriteString(" = ")
		f.sb.WriteString(id.Name)
		f.sb.WriteByte(' ')
		f.sb.WriteString(string(adjust.op))
		f.sb.WriteByte(' ')
		f.AppendArgument(Val(id, adjust.amount))
	}
	for _, change := range u.changes {
		if !first {
			f.AppendSeparator(SepCommaSpace)
		}
		first = false
		f.AppendAssignment(change)
	}
	f.AppendWhere(u.cond)

	_, err = u.execute(ctx, f, StatementExec, "UPDATE")
	return err
}
