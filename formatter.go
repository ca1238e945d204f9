package sqlcraft

import (
	"fmt"
	"strings"
)

// Separator joins enumerated statement fragments.
type Separator string

const (
	SepComma      Separator = ","
	SepCommaSpace Separator = ", "
	SepNewLine    Separator = "\n"
	SepSpace      Separator = " "
)

// StatementFormatter is the append only builder for one statement. It
// accumulates text fragments and an ordered sequence of deferred bind tuples.
// A formatter is created per statement execution and discarded afterwards.
//
// The core invariant: the number of placeholders in Statement() equals the
// length of SerialArguments(), and argument i corresponds to placeholder i.
// Tuples are collected structurally at append time and serialized only when
// the arguments are resolved.
type StatementFormatter struct {
	dialect  Dialect
	idColumn string
	sb       strings.Builder
	args     []ColumnValue
}

func newFormatter(dialect Dialect, idColumn string, verb FormatConstant) *StatementFormatter {
	f := &StatementFormatter{dialect: dialect, idColumn: idColumn}
	f.sb.WriteString(dialect.Constant(verb))
	return f
}

// pad writes a single space unless the statement is empty or already ends in
// a space, newline or opening bracket.
func (f *StatementFormatter) pad() {
	text := f.sb.String()
	if len(text) == 0 {
		return
	}
	switch text[len(text)-1] {
	case ' ', '\n', '(':
		return
	}
	f.sb.WriteByte(' ')
}

// AppendTableName appends a table name normalized to upper case.
func (f *StatementFormatter) AppendTableName(name string) *StatementFormatter {
	f.pad()
	f.sb.WriteString(strings.ToUpper(name))
	return f
}

func (f *StatementFormatter) OpenBracket() *StatementFormatter {
	f.pad()
	f.sb.WriteByte('(')
	return f
}

func (f *StatementFormatter) CloseBracket() *StatementFormatter {
	f.sb.WriteByte(')')
	return f
}

// AppendConstant appends a dialect resolved phrase. Verb arguments complete
// phrases containing format verbs, e.g. the primary key clause.
func (f *StatementFormatter) AppendConstant(c FormatConstant, verbArgs ...any) *StatementFormatter {
	f.pad()
	phrase := f.dialect.Constant(c)
	if len(verbArgs) > 0 {
		phrase = fmt.Sprintf(phrase, verbArgs...)
	}
	f.sb.WriteString(phrase)
	return f
}

// AppendEnumeration appends items joined by the separator.
func (f *StatementFormatter) AppendEnumeration(items []string, sep Separator) *StatementFormatter {
	f.pad()
	f.sb.WriteString(strings.Join(items, string(sep)))
	return f
}

// AppendDefinitions appends column definitions joined by the separators.
func (f *StatementFormatter) AppendDefinitions(defs []ColumnDef, seps ...Separator) *StatementFormatter {
	for i, def := range defs {
		if i > 0 {
			f.AppendSeparator(seps...)
		}
		def.writeTo(f)
	}
	return f
}

// AppendArgument appends a positional placeholder and queues the tuple.
func (f *StatementFormatter) AppendArgument(tuple ColumnValue) *StatementFormatter {
	f.sb.WriteString(f.dialect.Placeholder(len(f.args) + 1))
	f.args = append(f.args, tuple)
	return f
}

// AppendArguments appends one placeholder per tuple, joined by the separator,
// and queues the tuples in order.
func (f *StatementFormatter) AppendArguments(tuples []ColumnValue, sep Separator) *StatementFormatter {
	for i, tuple := range tuples {
		if i > 0 {
			f.sb.WriteString(string(sep))
		}
		f.AppendArgument(tuple)
	}
	return f
}

// AppendAssignment appends a "column = ?" clause and queues the tuple.
func (f *StatementFormatter) AppendAssignment(tuple ColumnValue) *StatementFormatter {
	f.pad()
	f.sb.WriteString(tuple.Column.Name)
	f.sb.WriteString(" = ")
	return f.AppendArgument(tuple)
}

// AppendCondition renders a condition tree and queues its bind tuples in
// depth first order.
func (f *StatementFormatter) AppendCondition(cond Condition) *StatementFormatter {
	f.pad()
	cond.build(f)
	return f
}

// AppendWhere appends a WHERE clause for the condition, if any.
func (f *StatementFormatter) AppendWhere(cond Condition) *StatementFormatter {
	if cond == nil {
		return f
	}
	f.AppendConstant(ConstWhere)
	return f.AppendCondition(cond)
}

// AppendSeparator appends raw separators.
func (f *StatementFormatter) AppendSeparator(seps ...Separator) *StatementFormatter {
	for _, sep := range seps {
		f.sb.WriteString(string(sep))
	}
	return f
}

// AppendFunc appends the output of a formatting callback. Used for optional
// trailing clauses that only render when applicable.
func (f *StatementFormatter) AppendFunc(fn func(*StatementFormatter)) *StatementFormatter {
	fn(f)
	return f
}

// Statement returns the fully assembled statement text.
func (f *StatementFormatter) Statement() string {
	return f.sb.String()
}

// ArgumentCount is the number of queued bind tuples.
func (f *StatementFormatter) ArgumentCount() int {
	return len(f.args)
}

// SerialArguments resolves the queued tuples through the serializer, in the
// exact order they were appended. A nil element is a SQL NULL.
func (f *StatementFormatter) SerialArguments(serializer ValueSerializer) ([]*string, error) {
	serials := make([]*string, 0, len(f.args))
	for _, tuple := range f.args {
		serial, err := serializer.ToSerial(tuple)
		if err != nil {
			return nil, err
		}
		serials = append(serials, serial)
	}
	return serials, nil
}
