package sqlcraft

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// ConnectionInfo is the opaque configuration used to acquire an executor.
// The core does not interpret it beyond handing it to database/sql.
type ConnectionInfo struct {
	Driver string
	DSN    string
}

// StatementKind distinguishes row returning statements from mutating ones.
type StatementKind uint8

const (
	StatementQuery StatementKind = iota
	StatementExec
)

func (k StatementKind) String() string {
	if k == StatementQuery {
		return "query"
	}
	return "exec"
}

// StatementContext carries one finished statement through the handler chain
// to the executor.
type StatementContext struct {
	ID      uuid.UUID
	Kind    StatementKind
	Verb    string
	Dialect string
	Table   string
	SQL     string
	Args    []any
}

// StatementResult is the raw result of one executed statement.
type StatementResult struct {
	Rows   *sql.Rows
	Result sql.Result
}

// Executor sends statement text plus ordered bind arguments to a database.
// It must preserve argument order. Errors it reports are propagated to the
// caller unmodified.
type Executor interface {
	ExecuteStatement(ctx context.Context, sc *StatementContext) (*StatementResult, error)
	Close() error
}

// sqlExecutor executes statements against a database/sql handle. The handle
// is owned by the builder; Close releases only per statement resources.
type sqlExecutor struct {
	db *sql.DB
}

func (e *sqlExecutor) ExecuteStatement(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
	switch sc.Kind {
	case StatementQuery:
		rows, err := e.db.QueryContext(ctx, sc.SQL, sc.Args...)
		if err != nil {
			return nil, err
		}
		return &StatementResult{Rows: rows}, nil
	default:
		res, err := e.db.ExecContext(ctx, sc.SQL, sc.Args...)
		if err != nil {
			return nil, err
		}
		return &StatementResult{Result: res}, nil
	}
}

func (e *sqlExecutor) Close() error {
	return nil
}

// serialsToArgs converts resolved serial arguments to driver arguments,
// keeping NULL as nil.
func serialsToArgs(serials []*string) []any {
	args := make([]any, len(serials))
	for i, s := range serials {
		if s != nil {
			args[i] = *s
		}
	}
	return args
}
