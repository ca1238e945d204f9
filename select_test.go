package sqlcraft

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

func TestSelect_FirstResult(t *testing.T) {
	name := Col("name", ColString)
	age := Col("age", ColInt)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT NAME, AGE FROM PEOPLE WHERE ID = ?").
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"NAME", "AGE"}).
			AddRow("ada", 36).
			AddRow("grace", 45))

	row, ok, err := b.Select(name, age).
		From("people").
		WhereID(OpEq, 7).
		FirstResult(context.Background())

	require.NoError(t, err)
	require.True(t, ok)

	gotName, err := row.Get(name)
	require.NoError(t, err)
	assert.Equal(t, "ada", gotName)

	gotAge, err := row.Get(age)
	require.NoError(t, err)
	assert.Equal(t, 36, gotAge)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_FirstResultAbsentIsNotAnError(t *testing.T) {
	name := Col("name", ColString)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT NAME FROM PEOPLE").
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}))

	_, ok, err := b.Select(name).From("people").FirstResult(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelect_FullResultIteratesInOrder(t *testing.T) {
	name := Col("name", ColString)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT NAME FROM PEOPLE ORDER BY ID ASC").
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}).
			AddRow("ada").
			AddRow("grace").
			AddRow(nil))

	result, err := b.Select(name).
		From("people").
		OrderByID(false).
		FullResult(context.Background())
	require.NoError(t, err)

	var values []any
	err = result.ForEach(func(row *ResultRow) error {
		v, err := row.Get(name)
		if err != nil {
			return err
		}
		values = append(values, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"ada", "grace", nil}, values)
}

func TestSelect_UnknownResultColumn(t *testing.T) {
	name := Col("name", ColString)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT NAME FROM PEOPLE").
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}).AddRow("ada"))

	row, ok, err := b.Select(name).From("people").FirstResult(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	_, err = row.Get(Col("age", ColInt))
	assert.Error(t, err)
}

func TestSelect_FailsFastWithoutColumns(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	_, err := b.Select().From("people").FullResult(context.Background())
	assert.ErrorIs(t, err, sqlerr.ErrNoSelection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelect_CountRows(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT COUNT(*) FROM PEOPLE WHERE AGE > ?").
		WithArgs("30").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	count, err := b.Select().
		From("people").
		Where(Gt(Col("age", ColInt), 30)).
		CountRows(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestSingleSelect_Typed(t *testing.T) {
	name := Col("name", ColString)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT NAME FROM PEOPLE WHERE NAME = ?").
		WithArgs("ada").
		WillReturnRows(sqlmock.NewRows([]string{"NAME"}).AddRow("ada"))

	value, ok, err := SelectOne[string](b, name).
		From("people").
		Where(Eq(name, "ada")).
		FirstResult(context.Background())

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ada", value)
}

func TestSingleSelect_All(t *testing.T) {
	age := Col("age", ColInt)

	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT AGE FROM PEOPLE ORDER BY ID DESC").
		WillReturnRows(sqlmock.NewRows([]string{"AGE"}).
			AddRow(45).
			AddRow(36))

	values, err := SelectOne[int](b, age).
		From("people").
		OrderByID(true).
		All(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{45, 36}, values)
}
