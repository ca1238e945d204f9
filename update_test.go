package sqlcraft

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisio/sqlcraft/internal/sqlerr"
)

func TestUpdate_Build(t *testing.T) {
	name := Col("name", ColString)
	age := Col("age", ColInt)

	testCases := []struct {
		name      string
		configure func(u *Update) *Update
		wantSQL   string
		wantArgs  []driver.Value
	}{
		{
			name: "set with where",
			configure: func(u *Update) *Update {
				return u.Set(Val(name, "grace")).Where(Eq(age, 36))
			},
			wantSQL:  "UPDATE PEOPLE SET NAME = ? WHERE AGE = ?",
			wantArgs: []driver.Value{"grace", "36"},
		},
		{
			name: "multiple changes keep order",
			configure: func(u *Update) *Update {
				return u.Set(Val(name, "grace"), Val(age, 45))
			},
			wantSQL:  "UPDATE PEOPLE SET NAME = ?, AGE = ?",
			wantArgs: []driver.Value{"grace", "45"},
		},
		{
			name: "id adjustment",
			configure: func(u *Update) *Update {
				return u.AdjustID(Add, 1).WhereID(OpGtEq, 3)
			},
			wantSQL:  "UPDATE PEOPLE SET ID = ID + ? WHERE ID >= ?",
			wantArgs: []driver.Value{"1", "3"},
		},
		{
			name: "id adjustment combined with change",
			configure: func(u *Update) *Update {
				return u.AdjustID(Subtract, 1).Set(Val(name, "grace")).WhereID(OpGt, 5)
			},
			wantSQL:  "UPDATE PEOPLE SET ID = ID - ?, NAME = ? WHERE ID > ?",
			wantArgs: []driver.Value{"1", "grace", "5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, mock, mockDB := newMockBuilder(t, "mysql")
			defer mockDB.Close()

			mock.ExpectExec(tc.wantSQL).
				WithArgs(tc.wantArgs...).
				WillReturnResult(sqlmock.NewResult(0, 1))

			u := tc.configure(b.Update().Table("people"))
			require.NoError(t, u.Execute(context.Background()))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdate_FailsFastWithoutChanges(t *testing.T) {
	b, mock, mockDB := newMockBuilder(t, "mysql")
	defer mockDB.Close()

	err := b.Update().Table("people").Execute(context.Background())
	assert.ErrorIs(t, err, sqlerr.ErrNoChanges)
	assert.NoError(t, mock.ExpectationsWereMet())
}
