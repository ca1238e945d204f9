package sqlcraft

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// baseStatement carries the shared state of every statement type: the owning
// builder, the executor acquired for this statement and the target table.
// Statements are single use: configure, execute once, done.
type baseStatement struct {
	builder  *Builder
	executor Executor
	handler  Handler
	table    string
	err      error
	executed bool
}

func (s *baseStatement) setTable(name string) {
	s.table = strings.ToUpper(name)
}

func (s *baseStatement) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *baseStatement) tableName() (string, error) {
	if s.table == "" {
		return "", sqlerr.ErrEmptyTableName
	}
	return s.table, nil
}

func (s *baseStatement) dialect() Dialect {
	return s.builder.dialect
}

func (s *baseStatement) serializer() ValueSerializer {
	return s.builder.serializer
}

func (s *baseStatement) idColumn() ColumnID {
	return Col(s.builder.idColumn, ColInt)
}

// newFormat starts a formatter for this statement's dialect.
func (s *baseStatement) newFormat(verb FormatConstant) *StatementFormatter {
	return newFormatter(s.dialect(), s.builder.idColumn, verb)
}

// execute resolves the formatter into text plus serial arguments and sends
// it through the handler chain. Execution errors of the executor pass
// through unmodified. The executor is released afterwards when the builder's
// close after statement policy is set.
func (s *baseStatement) execute(ctx context.Context, f *StatementFormatter, kind StatementKind, verb string) (*StatementResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.executed {
		return nil, sqlerr.ErrStatementConsumed
	}
	s.executed = true
	if s.builder.closeAfterStatement {
		defer s.executor.Close()
	}

	serials, err := f.SerialArguments(s.serializer())
	if err != nil {
		return nil, err
	}
	sc := &StatementContext{
		ID:      uuid.New(),
		Kind:    kind,
		Verb:    verb,
		Dialect: s.dialect().Name(),
		Table:   s.table,
		SQL:     f.Statement(),
		Args:    serialsToArgs(serials),
	}
	return s.handler.HandleStatement(ctx, sc)
}

// Close releases the executor of this statement.
func (s *baseStatement) Close() error {
	return s.executor.Close()
}
