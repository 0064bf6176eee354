package beers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/beerkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 3, 14, 15, 9, 26, 535897000, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db).WithClock(fixedClock), mock, db
}

var (
	insertQuery = regexp.QuoteMeta(`INSERT INTO beers (name,created_at) VALUES ($1,$2) RETURNING id`)
	selectQuery = regexp.QuoteMeta(`SELECT id, name, created_at FROM beers ORDER BY id ASC`)
	countQuery  = regexp.QuoteMeta(`SELECT COUNT(*) FROM beers`)
)

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("IPA", fixedTime).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.Insert(context.Background(), "IPA")
	require.NoError(t, err)

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "IPA", got.Name)
	assert.Equal(t, fixedTime, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_AcceptsEmptyName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("", fixedTime).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	got, err := repo.Insert(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs("IPA", fixedTime).
		WillReturnError(errors.New("db is down"))

	_, err := repo.Insert(context.Background(), "IPA")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStorage))

	var se *common.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpInsert, se.Op)
	assert.Contains(t, err.Error(), "db is down")
}

func TestSelectAll_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	later := fixedTime.Add(time.Minute)
	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(int64(1), "IPA", fixedTime).
		AddRow(int64(2), "Stout", later)
	mock.ExpectQuery(selectQuery).WillReturnRows(rows)

	got, err := repo.SelectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "IPA", got[0].Name)
	assert.True(t, fixedTime.Equal(got[0].CreatedAt))
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, "Stout", got[1].Name)
	assert.True(t, later.Equal(got[1].CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	got, err := repo.SelectAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectAll_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WillReturnError(errors.New("db err"))

	_, err := repo.SelectAll(context.Background())
	var se *common.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpSelectAll, se.Op)
}

func TestSelectAll_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow("not-a-number", "IPA", fixedTime)
	mock.ExpectQuery(selectQuery).WillReturnRows(rows)

	_, err := repo.SelectAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStorage))
}

func TestSelectAll_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(int64(1), "IPA", fixedTime).
		RowError(0, errors.New("row-err"))
	mock.ExpectQuery(selectQuery).WillReturnRows(rows)

	_, err := repo.SelectAll(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStorage))
	assert.Contains(t, err.Error(), "row-err")
}

func TestSelectCount_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countQuery).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.SelectCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectCount_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countQuery).WillReturnError(errors.New("db err"))

	_, err := repo.SelectCount(context.Background())
	var se *common.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, OpSelectCount, se.Op)
}

func TestSQLiteRepository_UsesQuestionPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := NewSQLiteRepository(db).WithClock(fixedClock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO beers (name,created_at) VALUES (?,?) RETURNING id`)).
		WithArgs("Lager", fixedTime).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err = repo.Insert(context.Background(), "Lager")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
