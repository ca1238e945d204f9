package sqlcraft

import "strconv"

type Postgresql struct {
	BaseDialect
}

func (p Postgresql) Name() string {
	return "postgresql"
}

// Placeholder uses indexed $n bind parameters.
func (p Postgresql) Placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

func (p Postgresql) Constant(c FormatConstant) string {
	// identity column syntax differs from the base phrase
	if c == ConstAutoIncrement {
		return "GENERATED ALWAYS AS IDENTITY"
	}
	return p.BaseDialect.Constant(c)
}

func (p Postgresql) ColumnType(def ColumnDef) string {
	switch def.Type.base {
	case typeInt:
		return "INTEGER"
	case typeDouble:
		if def.Type.precision > 0 {
			return p.BaseDialect.ColumnType(def)
		}
		return "DOUBLE PRECISION"
	case typeDatetime:
		return "TIMESTAMP"
	}
	return p.BaseDialect.ColumnType(def)
}

func (p Postgresql) AllTablesSQL() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'"
}

func (p Postgresql) TableExistsSQL(table string) string {
	return "SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND upper(table_name) = '" + table + "'"
}

func (p Postgresql) ColumnNamesSQL(table string) string {
	return "SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND upper(table_name) = '" + table + "'"
}

func init() {
	RegisterDialect("postgresql", Postgresql{})
}
