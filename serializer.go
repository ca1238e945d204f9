package sqlcraft

import (
	"strconv"
	"time"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

// serialTimeFormat is the transport format for time values.
const serialTimeFormat = time.RFC3339Nano

// ValueSerializer converts typed values to and from their database agnostic
// serial string form. A nil serial string represents SQL NULL.
type ValueSerializer interface {
	// ToSerial converts the value of a column value tuple to its serial
	// form. An unsupported value type is a serialization error, never a
	// silent coercion.
	ToSerial(tuple ColumnValue) (*string, error)

	// FromSerial converts a serial value back to its original data value.
	// The column identification selects the deserialization path.
	FromSerial(column ColumnID, serial *string) (any, error)
}

// StatementString renders the serial value of a tuple as a statement literal.
// Values of numeric column kinds stay unquoted, every other kind is wrapped
// in single quotes. NULL values stay nil and are never quoted.
func StatementString(serializer ValueSerializer, tuple ColumnValue) (*string, error) {
	serial, err := serializer.ToSerial(tuple)
	if err != nil || serial == nil {
		return serial, err
	}
	if tuple.Column.Kind.Numeric() {
		return serial, nil
	}
	quoted := "'" + *serial + "'"
	return &quoted, nil
}

// DefaultSerializer serializes the built in column kinds.
type DefaultSerializer struct{}

func (DefaultSerializer) ToSerial(tuple ColumnValue) (*string, error) {
	if tuple.Value == nil {
		return nil, nil
	}
	var serial string
	switch v := tuple.Value.(type) {
	case string:
		serial = v
	case int:
		serial = strconv.Itoa(v)
	case int64:
		serial = strconv.FormatInt(v, 10)
	case float64:
		serial = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		serial = strconv.FormatBool(v)
	case time.Time:
		serial = v.Format(serialTimeFormat)
	default:
		return nil, sqlerr.ErrUnsupportedType(tuple.Value)
	}
	return &serial, nil
}

func (DefaultSerializer) FromSerial(column ColumnID, serial *string) (any, error) {
	if serial == nil {
		return nil, nil
	}
	switch column.Kind {
	case ColString:
		return *serial, nil
	case ColInt:
		v, err := strconv.Atoi(*serial)
		if err != nil {
			return nil, sqlerr.ErrDeserialization(column.Name, *serial, err)
		}
		return v, nil
	case ColInt64:
		v, err := strconv.ParseInt(*serial, 10, 64)
		if err != nil {
			return nil, sqlerr.ErrDeserialization(column.Name, *serial, err)
		}
		return v, nil
	case ColFloat:
		v, err := strconv.ParseFloat(*serial, 64)
		if err != nil {
			return nil, sqlerr.ErrDeserialization(column.Name, *serial, err)
		}
		return v, nil
	case ColBool:
		v, err := strconv.ParseBool(*serial)
		if err != nil {
			return nil, sqlerr.ErrDeserialization(column.Name, *serial, err)
		}
		return v, nil
	case ColTime:
		v, err := time.Parse(serialTimeFormat, *serial)
		if err != nil {
			return nil, sqlerr.ErrDeserialization(column.Name, *serial, err)
		}
		return v, nil
	}
	return nil, sqlerr.ErrUnsupportedType(*serial)
}
