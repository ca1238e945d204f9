package sqlcraft

type Mysql struct {
	BaseDialect
}

func (m Mysql) Name() string {
	return "mysql"
}

func (m Mysql) ColumnType(def ColumnDef) string {
	if def.Type.base == typeBool {
		return "TINYINT(1)"
	}
	return m.BaseDialect.ColumnType(def)
}

func (m Mysql) AllTablesSQL() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_schema = database()"
}

func (m Mysql) TableExistsSQL(table string) string {
	return "SELECT 1 FROM information_schema.tables WHERE table_schema = database() AND upper(table_name) = '" + table + "'"
}

func (m Mysql) ColumnNamesSQL(table string) string {
	return "SELECT column_name FROM information_schema.columns WHERE table_schema = database() AND upper(table_name) = '" + table + "'"
}

func init() {
	RegisterDialect("mysql", Mysql{})
}
