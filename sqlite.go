package sqlcraft

type Sqlite struct {
	BaseDialect
}

func (s Sqlite) Name() string {
	return "sqlite"
}

func (s Sqlite) Constant(c FormatConstant) string {
	if c == ConstAutoIncrement {
		return "AUTOINCREMENT"
	}
	return s.BaseDialect.Constant(c)
}

func (s Sqlite) ColumnType(def ColumnDef) string {
	switch def.Type.base {
	case typeInt, typeBigInt, typeBool:
		return "INTEGER"
	case typeDouble:
		return "REAL"
	}
	// sqlite stores varchar, char, text and datetime as TEXT
	return "TEXT"
}

func (s Sqlite) TableExistsSQL(table string) string {
	return "SELECT 1 FROM sqlite_master WHERE type = 'table' AND upper(name) = '" + table + "'"
}

func (s Sqlite) AllTablesSQL() string {
	return "SELECT name FROM sqlite_master WHERE type = 'table'"
}

func (s Sqlite) ColumnNamesSQL(table string) string {
	return "SELECT name FROM pragma_table_info('" + table + "')"
}

func init() {
	RegisterDialect("sqlite", Sqlite{})
}
