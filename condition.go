package sqlcraft

// Condition is a predicate over one or more columns. Conditions form trees:
// a single condition is a leaf, a multi condition wraps an ordered sequence
// of children. Building a condition appends its rendered text to the
// formatter and queues its bind tuples; the argument order of any condition
// is its depth first, left to right traversal order.
type Condition interface {
	// Not returns a negated copy. Negation changes the rendered text only,
	// never the argument count or order.
	Not() Condition

	build(f *StatementFormatter)
}

type singleCondition struct {
	column  ColumnID
	op      Op
	value   any
	negated bool
}

// Cond creates a condition with an explicit operator.
func Cond(column ColumnID, op Op, value any) Condition {
	return &singleCondition{column: column, op: op, value: value}
}

func Eq(column ColumnID, value any) Condition    { return Cond(column, OpEq, value) }
func NotEq(column ColumnID, value any) Condition { return Cond(column, OpNotEq, value) }
func Gt(column ColumnID, value any) Condition    { return Cond(column, OpGt, value) }
func GtEq(column ColumnID, value any) Condition  { return Cond(column, OpGtEq, value) }
func Lt(column ColumnID, value any) Condition    { return Cond(column, OpLt, value) }
func LtEq(column ColumnID, value any) Condition  { return Cond(column, OpLtEq, value) }
func Like(column ColumnID, value any) Condition  { return Cond(column, OpLike, value) }

func IsNull(column ColumnID) Condition {
	return &singleCondition{column: column, op: OpIsNull}
}

func IsNotNull(column ColumnID) Condition {
	return &singleCondition{column: column, op: OpNotNull}
}

func (c *singleCondition) Not() Condition {
	negated := *c
	negated.negated = !negated.negated
	return &negated
}

func (c *singleCondition) build(f *StatementFormatter) {
	if c.negated {
		f.sb.WriteString("NOT (")
	}
	f.sb.WriteString(c.column.Name)
	f.sb.WriteByte(' ')
	f.sb.WriteString(c.op.Keyword)
	if c.op.Type == OpBinary {
		f.sb.WriteByte(' ')
		f.AppendArgument(Val(c.column, c.value))
	}
	if c.negated {
		f.sb.WriteByte(')')
	}
}

type multiCondition struct {
	children  []Condition
	connector string
	negated   bool
}

// And combines conditions with the AND connector.
func And(conditions ...Condition) Condition {
	return &multiCondition{children: conditions, connector: "AND"}
}

// Or combines conditions with the OR connector.
func Or(conditions ...Condition) Condition {
	return &multiCondition{children: conditions, connector: "OR"}
}

func (c *multiCondition) Not() Condition {
	negated := *c
	negated.negated = !negated.negated
	return &negated
}

func (c *multiCondition) build(f *StatementFormatter) {
	if c.negated {
		f.sb.WriteString("NOT (")
	}
	for i, child := range c.children {
		if i > 0 {
			f.sb.WriteByte(' ')
			f.sb.WriteString(c.connector)
			f.sb.WriteByte(' ')
		}
		// nested multi conditions are parenthesized to preserve precedence
		if nested, ok := child.(*multiCondition); ok && !nested.negated {
			f.sb.WriteByte('(')
			nested.build(f)
			f.sb.WriteByte(')')
			continue
		}
		child.build(f)
	}
	if c.negated {
		f.sb.WriteByte(')')
	}
}
