package sqlcraft

import (
	"strconv"
	"strings"
)

// ColumnKind is the value kind of a column. The serializer dispatches on it
// and the formatter uses it to decide literal quoting.
type ColumnKind uint8

const (
	ColString ColumnKind = iota
	ColInt
	ColInt64
	ColFloat
	ColBool
	ColTime
)

// Numeric kinds are emitted without quotes in statement literals.
func (k ColumnKind) Numeric() bool {
	return k == ColInt || k == ColInt64 || k == ColFloat
}

// ColumnID identifies a column by name and value kind. Names are normalized
// to upper case so that identity is stable across statements. Two ColumnID
// values are equal iff name and kind are equal.
type ColumnID struct {
	Name string
	Kind ColumnKind
}

// Col creates a column identification.
func Col(name string, kind ColumnKind) ColumnID {
	return ColumnID{Name: strings.ToUpper(name), Kind: kind}
}

// ColumnValue pairs a column identification with a concrete value to write.
type ColumnValue struct {
	Column ColumnID
	Value  any
}

// Val creates a column value tuple.
func Val(column ColumnID, value any) ColumnValue {
	return ColumnValue{Column: column, Value: value}
}

// DataType describes the SQL data type of a column to create. The concrete
// type text is resolved per dialect.
type DataType struct {
	base      baseType
	size      int
	precision int
	scale     int
}

type baseType uint8

const (
	typeInt baseType = iota
	typeBigInt
	typeDouble
	typeBool
	typeVarchar
	typeChar
	typeText
	typeDatetime
)

func Int() DataType      { return DataType{base: typeInt} }
func BigInt() DataType   { return DataType{base: typeBigInt} }
func Double() DataType   { return DataType{base: typeDouble} }
func Bool() DataType     { return DataType{base: typeBool} }
func Text() DataType     { return DataType{base: typeText} }
func Datetime() DataType { return DataType{base: typeDatetime} }

func Varchar(size int) DataType {
	return DataType{base: typeVarchar, size: size}
}

func Char(size int) DataType {
	return DataType{base: typeChar, size: size}
}

// Decimal describes a fixed precision type. Dialects without a distinct
// decimal type fall back to their double type.
func Decimal(precision, scale int) DataType {
	return DataType{base: typeDouble, precision: precision, scale: scale}
}

// Modifier is a column constraint modifier.
type Modifier uint8

const (
	NotNull Modifier = iota
	Unique
	AutoIncrement
)

// ForeignKey references a column set of another table. Ensure, if set, is
// invoked to create the referenced table when it does not exist yet.
type ForeignKey struct {
	Table   string
	Columns []string
	Ensure  func(b *Builder) error
}

// References creates a foreign key to the given table and columns.
func References(table string, columns ...string) ForeignKey {
	upper := make([]string, len(columns))
	for i, c := range columns {
		upper[i] = strings.ToUpper(c)
	}
	return ForeignKey{Table: strings.ToUpper(table), Columns: upper}
}

// CreatedBy registers a creator for the referenced table. The creator must be
// idempotent towards an already existing table.
func (f ForeignKey) CreatedBy(ensure func(b *Builder) error) ForeignKey {
	f.Ensure = ensure
	return f
}

// ColumnDef describes a column to create. It is an immutable value object:
// every With* method returns a modified copy.
type ColumnDef struct {
	Name         string
	Type         DataType
	Modifiers    []Modifier
	PrimaryKey   bool
	DefaultValue string
	ForeignKey   *ForeignKey
}

// Define creates a column definition with the given name and data type.
func Define(name string, dt DataType) ColumnDef {
	return ColumnDef{Name: strings.ToUpper(name), Type: dt}
}

func (d ColumnDef) WithModifiers(mods ...Modifier) ColumnDef {
	combined := make([]Modifier, 0, len(d.Modifiers)+len(mods))
	combined = append(combined, d.Modifiers...)
	combined = append(combined, mods...)
	d.Modifiers = combined
	return d
}

func (d ColumnDef) AsPrimaryKey() ColumnDef {
	d.PrimaryKey = true
	return d
}

func (d ColumnDef) WithDefault(value string) ColumnDef {
	d.DefaultValue = value
	return d
}

func (d ColumnDef) WithForeignKey(fk ForeignKey) ColumnDef {
	d.ForeignKey = &fk
	return d
}

func (d ColumnDef) hasModifier(m Modifier) bool {
	for _, mod := range d.Modifiers {
		if mod == m {
			return true
		}
	}
	return false
}

// writeTo renders the column declaration for a CREATE or ALTER statement.
func (d ColumnDef) writeTo(f *StatementFormatter) {
	f.pad()
	f.sb.WriteString(d.Name)
	f.sb.WriteByte(' ')
	f.sb.WriteString(f.dialect.ColumnType(d))
	if d.hasModifier(NotNull) {
		f.sb.WriteByte(' ')
		f.sb.WriteString(f.dialect.Constant(ConstNotNull))
	}
	if d.hasModifier(Unique) {
		f.sb.WriteByte(' ')
		f.sb.WriteString(f.dialect.Constant(ConstUnique))
	}
	if d.hasModifier(AutoIncrement) {
		if identity := f.dialect.Constant(ConstAutoIncrement); identity != "" {
			f.sb.WriteByte(' ')
			f.sb.WriteString(identity)
		}
	}
	if d.DefaultValue != "" {
		f.sb.WriteByte(' ')
		f.sb.WriteString(f.dialect.Constant(ConstDefault))
		f.sb.WriteByte(' ')
		f.sb.WriteString(d.DefaultValue)
	}
}

func (t DataType) sizeText() string {
	return "(" + strconv.Itoa(t.size) + ")"
}
