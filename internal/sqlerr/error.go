package sqlerr

import (
	"errors"
	"fmt"
)

// Configuration errors. They are raised before any statement text is built
// and before the executor is touched.
var (
	ErrEmptyTableName    = errors.New("sqlcraft: no table name set for this statement")
	ErrNoColumns         = errors.New("sqlcraft: at least one column must be defined")
	ErrNoValues          = errors.New("sqlcraft: the values to insert cannot be empty")
	ErrNoChanges         = errors.New("sqlcraft: an update statement needs at least one change")
	ErrNoSelection       = errors.New("sqlcraft: at least one column must be selected")
	ErrStatementConsumed = errors.New("sqlcraft: statement has already been executed")
)

var (
	ErrBuilderClosed = errors.New("sqlcraft: operation on a closed builder")
)

func ErrInvalidDialect(name string) error {
	return fmt.Errorf("sqlcraft: unknown dialect %q", name)
}

func ErrNegativeIndex(index int) error {
	return fmt.Errorf("sqlcraft: the insertion index cannot be negative, got %d", index)
}

func ErrUnsupportedType(value any) error {
	return fmt.Errorf("sqlcraft: unsupported value type %T (%v)", value, value)
}

func ErrDeserialization(column string, serial string, err error) error {
	return fmt.Errorf("sqlcraft: cannot deserialize %q for column %s: %w", serial, column, err)
}

func ErrCyclicReference(table string) error {
	return fmt.Errorf("sqlcraft: cyclic foreign key reference involving table %s", table)
}

func ErrTableNotExisting(table string) error {
	return fmt.Errorf("sqlcraft: the table %s is not existing anymore", table)
}

func ErrUnknownResultColumn(column string) error {
	return fmt.Errorf("sqlcraft: column %s is not part of this result", column)
}

func ErrMissingReferencedTable(table string) error {
	return fmt.Errorf("sqlcraft: referenced table %s does not exist and no creator is registered", table)
}
