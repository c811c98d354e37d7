package gormstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type gadget struct {
	ID   int `gorm:"primaryKey"`
	Name string
}

func (gadget) TableName() string { return "gadgets" }

func newMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "gadgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	g, err := New[gadget](db).Session().FindByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, g)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddIsStagedUntilSaveChanges(t *testing.T) {
	db, mock := newMock(t)
	s := New[gadget](db).Session()

	g := &gadget{Name: "lamp"}
	require.NoError(t, s.Add(context.Background(), g))
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "gadgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(t, s.SaveChanges(context.Background()))
	assert.Equal(t, 1, g.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackedEntityIsSavedOnFlush(t *testing.T) {
	db, mock := newMock(t)
	s := New[gadget](db).Session()

	mock.ExpectQuery(`SELECT \* FROM "gadgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "old"))
	g, err := s.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, g)

	g.Name = "new"
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "gadgets" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SaveChanges(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveDeletesOnFlush(t *testing.T) {
	db, mock := newMock(t)
	s := New[gadget](db).Session()

	mock.ExpectQuery(`SELECT \* FROM "gadgets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "old"))
	g, err := s.FindByID(context.Background(), 3)
	require.NoError(t, err)
	require.NoError(t, s.Remove(context.Background(), g))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "gadgets"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.SaveChanges(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreFailureIsReturnedUnchanged(t *testing.T) {
	db, mock := newMock(t)
	s := New[gadget](db).Session()
	boom := errors.New("connection reset")

	require.NoError(t, s.Add(context.Background(), &gadget{Name: "x"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "gadgets"`).WillReturnError(boom)
	mock.ExpectRollback()

	err := s.SaveChanges(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpty(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(`SELECT \* FROM "gadgets" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	list, err := New[gadget](db).Session().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveChangesWithNothingPendingSkipsStore(t *testing.T) {
	db, mock := newMock(t)
	require.NoError(t, New[gadget](db).Session().SaveChanges(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
