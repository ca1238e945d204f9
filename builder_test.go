package sqlcraft

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const peopleExistsSQL = "SELECT 1 FROM information_schema.tables WHERE table_schema = database() AND upper(table_name) = 'PEOPLE'"
const peopleColumnsSQL = "SELECT column_name FROM information_schema.columns WHERE table_schema = database() AND upper(table_name) = 'PEOPLE'"

func TestOpenBuilder_UnknownDialect(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	_, err = OpenBuilder(mockDB, "oracle")
	assert.Error(t, err)
}

func TestBuilder_HasTableIsCached(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	// one catalog query serves both calls
	mock.ExpectQuery(peopleExistsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	for i := 0; i < 2; i++ {
		exists, err := b.HasTable(context.Background(), "people")
		require.NoError(t, err)
		assert.True(t, exists)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuilder_DropTable(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery(peopleExistsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("DROP TABLE PEOPLE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := b.DropTable(context.Background(), "people")
	require.NoError(t, err)
	assert.True(t, existed)

	// the drop is remembered: no further catalog query
	exists, err := b.HasTable(context.Background(), "people")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuilder_DropMissingTableIsNotAnError(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery(peopleExistsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	existed, err := b.DropTable(context.Background(), "people")
	require.NoError(t, err)
	assert.False(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableBuilder_DropMissingTableIsAHardFailure(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery(peopleExistsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := b.ForTable("people").DropTable(context.Background())
	assert.Error(t, err)
}

func TestBuilder_CreateTableIfNotExists(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	configure := func(c *Create) {
		c.WithIDColumn().Columns(Define("name", Varchar(255)))
	}

	// absent: the create runs
	mock.ExpectQuery(peopleExistsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectExec("CREATE TABLE PEOPLE (ID INT NOT NULL,\nNAME VARCHAR(255),\nPRIMARY KEY (ID))").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, b.CreateTableIfNotExists(context.Background(), "people", configure))

	// now present (cached by the create): calling again is a no-op
	require.NoError(t, b.CreateTableIfNotExists(context.Background(), "people", configure))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuilder_AddAndRemoveColumn(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectExec("ALTER TABLE PEOPLE ADD COLUMN NICK VARCHAR(100)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ALTER TABLE PEOPLE DROP COLUMN NICK").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ctx := context.Background()
	require.NoError(t, b.AddColumn(ctx, "people", Define("nick", Varchar(100))))
	require.NoError(t, b.RemoveColumn(ctx, "people", Col("nick", ColString)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuilder_ColumnInspection(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	// one catalog query serves count and both column checks
	mock.ExpectQuery(peopleColumnsSQL).
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
			AddRow("id").
			AddRow("name").
			AddRow("age"))

	ctx := context.Background()
	count, err := b.ColumnCount(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	hasName, err := b.HasColumn(ctx, "people", "name")
	require.NoError(t, err)
	assert.True(t, hasName)

	hasNick, err := b.HasColumn(ctx, "people", "nick")
	require.NoError(t, err)
	assert.False(t, hasNick)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuilder_AllTableNames(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables WHERE table_schema = database()").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("PEOPLE").
			AddRow("PETS"))

	names, err := b.AllTableNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"PEOPLE", "PETS"}, names)
}

func TestTableBuilder_PinsTable(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	mock.ExpectExec("INSERT INTO PEOPLE (NAME) VALUES (?)").
		WithArgs("ada").
		WillReturnResult(sqlmock.NewResult(1, 1))

	people := b.ForTable("people")
	assert.Equal(t, "PEOPLE", people.TableName())

	err := people.Insert().
		Values(Val(Col("name", ColString), "ada")).
		Execute(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
