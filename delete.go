package sqlcraft

import "context"

// Delete is a one shot DELETE statement.
type Delete struct {
	baseStatement
	cond Condition
}

// From sets the table name to delete from.
func (d *Delete) From(name string) *Delete {
	d.setTable(name)
	return d
}

// Where restricts the rows to delete. Without a condition every row of the
// table is deleted.
func (d *Delete) Where(cond Condition) *Delete {
	d.cond = cond
	return d
}

// WhereID restricts the deletion through a condition on the builder's id
// column.
func (d *Delete) WhereID(op Op, id int) *Delete {
	d.cond = Cond(d.idColumn(), op, id)
	return d
}

// Execute performs the deletion and reports the number of affected rows.
func (d *Delete) Execute(ctx context.Context) (int64, error) {
	table, err := d.tableName()
	if err != nil {
		return 0, err
	}

	f := d.newFormat(ConstDeleteFrom).
		AppendTableName(table).
		AppendWhere(d.cond)

	res, err := d.execute(ctx, f, StatementExec, "DELETE")
	if err != nil {
		return 0, err
	}
	if res.Result == nil {
		return 0, nil
	}
	affected, err := res.Result.RowsAffected()
	if err != nil {
		// drivers without affected row support still count as success
		return 0, nil
	}
	return affected, nil
}
