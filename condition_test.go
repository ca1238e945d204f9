package sqlcraft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildCondition(cond Condition) (string, []ColumnValue) {
	f := &StatementFormatter{dialect: Mysql{}}
	cond.build(f)
	return f.sb.String(), f.args
}

func TestCondition_Build(t *testing.T) {
	name := Col("name", ColString)
	age := Col("age", ColInt)

	testCases := []struct {
		name     string
		cond     Condition
		wantText string
		wantArgs []ColumnValue
	}{
		{
			name:     "equals",
			cond:     Eq(name, "ada"),
			wantText: "NAME = ?",
			wantArgs: []ColumnValue{Val(name, "ada")},
		},
		{
			name:     "greater than",
			cond:     Gt(age, 30),
			wantText: "AGE > ?",
			wantArgs: []ColumnValue{Val(age, 30)},
		},
		{
			name:     "unary queues no argument",
			cond:     IsNull(name),
			wantText: "NAME IS NULL",
			wantArgs: nil,
		},
		{
			name:     "negated unary",
			cond:     IsNull(name).Not(),
			wantText: "NOT (NAME IS NULL)",
			wantArgs: nil,
		},
		{
			name:     "and chains in order",
			cond:     And(Eq(name, "ada"), Gt(age, 30), LtEq(age, 60)),
			wantText: "NAME = ? AND AGE > ? AND AGE <= ?",
			wantArgs: []ColumnValue{Val(name, "ada"), Val(age, 30), Val(age, 60)},
		},
		{
			name:     "nested multiple is parenthesized",
			cond:     And(Eq(name, "ada"), Or(Lt(age, 20), Gt(age, 60))),
			wantText: "NAME = ? AND (AGE < ? OR AGE > ?)",
			wantArgs: []ColumnValue{Val(name, "ada"), Val(age, 20), Val(age, 60)},
		},
		{
			name:     "negated multiple",
			cond:     Or(Eq(name, "ada"), Eq(name, "grace")).Not(),
			wantText: "NOT (NAME = ? OR NAME = ?)",
			wantArgs: []ColumnValue{Val(name, "ada"), Val(name, "grace")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, args := buildCondition(tc.cond)
			assert.Equal(t, tc.wantText, text)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestCondition_NegationKeepsArguments(t *testing.T) {
	name := Col("name", ColString)
	age := Col("age", ColInt)

	conds := []Condition{
		Eq(name, "ada"),
		And(Eq(name, "ada"), Gt(age, 30)),
		Or(Eq(name, "ada"), And(Gt(age, 30), Lt(age, 60))),
	}
	for _, cond := range conds {
		_, plain := buildCondition(cond)
		_, negated := buildCondition(cond.Not())
		assert.Equal(t, plain, negated)
	}
}

func TestCondition_ArgumentOrderIsDepthFirst(t *testing.T) {
	age := Col("age", ColInt)

	c1 := Eq(age, 1)
	c2 := And(Eq(age, 2), Eq(age, 3))
	c3 := Eq(age, 4)

	_, args := buildCondition(And(c1, c2, c3))

	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a.Value
	}
	assert.Equal(t, []any{1, 2, 3, 4}, values)
}
