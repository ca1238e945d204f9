package sqlcraft

import "strconv"

// FormatConstant is a logical statement phrase resolved through the dialect.
// Phrases with %s verbs are completed by the formatter via AppendConstant.
type FormatConstant uint8

const (
	ConstCreateTable FormatConstant = iota
	ConstInsertInto
	ConstSelect
	ConstUpdate
	ConstDeleteFrom
	ConstDropTable
	ConstAlterTable
	ConstAddColumn
	ConstDropColumn
	ConstValues
	ConstWhere
	ConstSet
	ConstFrom
	ConstPrimaryKey
	ConstForeignKey
	ConstNotNull
	ConstUnique
	ConstAutoIncrement
	ConstDefault
	ConstCountAll
	ConstOrderBy
	ConstAscending
	ConstDescending
)

// basePhrases is the dialect independent phrase table. Dialects override
// single entries through their Constant method.
var basePhrases = map[FormatConstant]string{
	ConstCreateTable:   "CREATE TABLE",
	ConstInsertInto:    "INSERT INTO",
	ConstSelect:        "SELECT",
	ConstUpdate:        "UPDATE",
	ConstDeleteFrom:    "DELETE FROM",
	ConstDropTable:     "DROP TABLE",
	ConstAlterTable:    "ALTER TABLE",
	ConstAddColumn:     "ADD COLUMN",
	ConstDropColumn:    "DROP COLUMN",
	ConstValues:        "VALUES",
	ConstWhere:         "WHERE",
	ConstSet:           "SET",
	ConstFrom:          "FROM",
	ConstPrimaryKey:    "PRIMARY KEY (%s)",
	ConstForeignKey:    "FOREIGN KEY (%s) REFERENCES %s (%s)",
	ConstNotNull:       "NOT NULL",
	ConstUnique:        "UNIQUE",
	ConstAutoIncrement: "AUTO_INCREMENT",
	ConstDefault:       "DEFAULT",
	ConstCountAll:      "COUNT(*)",
	ConstOrderBy:       "ORDER BY",
	ConstAscending:     "ASC",
	ConstDescending:    "DESC",
}

// Dialect resolves phrase text, identifier quoting, placeholders, column
// types and catalog queries for one database variant. The statement types
// never branch on the dialect themselves; every variant specific piece of
// text is resolved through this interface.
type Dialect interface {
	Name() string

	// Placeholder generates the positional bind placeholder with the given
	// one based index.
	Placeholder(index int) string

	// Constant resolves a logical phrase to dialect specific text.
	Constant(c FormatConstant) string

	// ColumnType renders the data type of a column definition.
	ColumnType(def ColumnDef) string

	// TableExistsSQL yields a query returning at least one row iff the
	// table exists.
	TableExistsSQL(table string) string

	// AllTablesSQL yields a query returning one row per table with the
	// table name as first column.
	AllTablesSQL() string

	// ColumnNamesSQL yields a query returning one row per column of the
	// table with the column name as first column.
	ColumnNamesSQL(table string) string
}

var dialects = make(map[string]Dialect)

// RegisterDialect makes a dialect available under the given name. The bundled
// dialects register themselves in their init functions.
func RegisterDialect(name string, dialect Dialect) {
	dialects[name] = dialect
}

func getDialect(name string) (Dialect, bool) {
	d, ok := dialects[name]
	return d, ok
}

// BaseDialect provides default implementations that concrete dialects embed
// and selectively override.
type BaseDialect struct{}

func (b BaseDialect) Placeholder(index int) string {
	return "?"
}

func (b BaseDialect) Constant(c FormatConstant) string {
	return basePhrases[c]
}

func (b BaseDialect) ColumnType(def ColumnDef) string {
	switch def.Type.base {
	case typeInt:
		return "INT"
	case typeBigInt:
		return "BIGINT"
	case typeDouble:
		if def.Type.precision > 0 {
			return "DECIMAL(" + strconv.Itoa(def.Type.precision) + "," + strconv.Itoa(def.Type.scale) + ")"
		}
		return "DOUBLE"
	case typeBool:
		return "BOOLEAN"
	case typeVarchar:
		return "VARCHAR" + def.Type.sizeText()
	case typeChar:
		return "CHAR" + def.Type.sizeText()
	case typeDatetime:
		return "DATETIME"
	}
	return "TEXT"
}

func (b BaseDialect) TableExistsSQL(table string) string {
	return "SELECT 1 FROM information_schema.tables WHERE upper(table_name) = '" + table + "'"
}

func (b BaseDialect) AllTablesSQL() string {
	return "SELECT table_name FROM information_schema.tables"
}

func (b BaseDialect) ColumnNamesSQL(table string) string {
	return "SELECT column_name FROM information_schema.columns WHERE upper(table_name) = '" + table + "'"
}
