package sqlcraft

import (
	"context"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// Select is a one shot SELECT statement over one or more declared output
// columns.
type Select struct {
	baseStatement
	columns   []ColumnID
	cond      Condition
	countOnly bool
	ordered   bool
	orderDesc bool
}

// From sets the table name to select from.
func (s *Select) From(name string) *Select {
	s.setTable(name)
	return s
}

// Where restricts the rows to select.
func (s *Select) Where(cond Condition) *Select {
	s.cond = cond
	return s
}

// WhereID restricts the selection through a condition on the builder's id
// column.
func (s *Select) WhereID(op Op, id int) *Select {
	s.cond = Cond(s.idColumn(), op, id)
	return s
}

// OrderByID orders the result by the builder's id column.
func (s *Select) OrderByID(descending bool) *Select {
	s.ordered = true
	s.orderDesc = descending
	return s
}

func (s *Select) buildFormat() (*StatementFormatter, error) {
	table, err := s.tableName()
	if err != nil {
		return nil, err
	}
	if !s.countOnly && len(s.columns) == 0 {
		return nil, sqlerr.ErrNoSelection
	}

	f := s.newFormat(ConstSelect)
	if s.countOnly {
		f.AppendConstant(ConstCountAll)
	} else {
		names := make([]string, len(s.columns))
		for i, col := range s.columns {
			names[i] = col.Name
		}
		f.AppendEnumeration(names, SepCommaSpace)
	}
	f.AppendConstant(ConstFrom).AppendTableName(table)
	f.AppendWhere(s.cond)
	if s.ordered {
		f.AppendConstant(ConstOrderBy)
		f.pad()
		f.sb.WriteString(s.idColumn().Name)
		if s.orderDesc {
			f.AppendConstant(ConstDescending)
		} else {
			f.AppendConstant(ConstAscending)
		}
	}
	return f, nil
}

// FullResult executes the query and wraps the raw result for on demand
// deserialization. The caller closes the result.
func (s *Select) FullResult(ctx context.Context) (*SelectResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	f, err := s.buildFormat()
	if err != nil {
		return nil, err
	}
	res, err := s.execute(ctx, f, StatementQuery, "SELECT")
	if err != nil {
		return nil, err
	}
	return newSelectResult(res.Rows, s.columns, s.serializer()), nil
}

// FirstResult executes the query and yields the first row. An empty result
// set is not an error: the second return reports presence.
func (s *Select) FirstResult(ctx context.Context) (*ResultRow, bool, error) {
	result, err := s.FullResult(ctx)
	if err != nil {
		return nil, false, err
	}
	return result.First()
}

// CountRows executes the query as SELECT COUNT(*) under the configured
// condition.
func (s *Select) CountRows(ctx context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.countOnly = true
	f, err := s.buildFormat()
	if err != nil {
		return 0, err
	}
	res, err := s.execute(ctx, f, StatementQuery, "SELECT")
	if err != nil {
		return 0, err
	}
	defer res.Rows.Close()
	if !res.Rows.Next() {
		return 0, res.Rows.Err()
	}
	var count int64
	if err := res.Rows.Scan(&count); err != nil {
		return 0, err
	}
	return count, res.Rows.Err()
}

// SingleSelect is a select statement over exactly one column, typed through
// its value parameter.
type SingleSelect[V any] struct {
	sel    *Select
	column ColumnID
}

// SelectOne creates a single column select statement on the builder.
func SelectOne[V any](b *Builder, column ColumnID) *SingleSelect[V] {
	return &SingleSelect[V]{sel: b.Select(column), column: column}
}

func (s *SingleSelect[V]) From(name string) *SingleSelect[V] {
	s.sel.From(name)
	return s
}

func (s *SingleSelect[V]) Where(cond Condition) *SingleSelect[V] {
	s.sel.Where(cond)
	return s
}

func (s *SingleSelect[V]) WhereID(op Op, id int) *SingleSelect[V] {
	s.sel.WhereID(op, id)
	return s
}

func (s *SingleSelect[V]) OrderByID(descending bool) *SingleSelect[V] {
	s.sel.OrderByID(descending)
	return s
}

// FirstResult yields the value of the first row. Absence of a first row is
// not an error.
func (s *SingleSelect[V]) FirstResult(ctx context.Context) (V, bool, error) {
	var zero V
	row, ok, err := s.sel.FirstResult(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	value, err := s.convert(row)
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// All yields the values of every result row in order.
func (s *SingleSelect[V]) All(ctx context.Context) ([]V, error) {
	result, err := s.sel.FullResult(ctx)
	if err != nil {
		return nil, err
	}
	var values []V
	err = result.ForEach(func(row *ResultRow) error {
		value, err := s.convert(row)
		if err != nil {
			return err
		}
		values = append(values, value)
		return nil
	})
	return values, err
}

func (s *SingleSelect[V]) convert(row *ResultRow) (V, error) {
	var zero V
	raw, err := row.Get(s.column)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}
	value, ok := raw.(V)
	if !ok {
		return zero, sqlerr.ErrUnsupportedType(raw)
	}
	return value, nil
}
