package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) *scheduleRepository {
	t.Helper()
	repo := NewScheduleRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()).(*scheduleRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

const (
	deleteSQL = `DELETE FROM schedules`
	insertSQL = `INSERT INTO schedules (schedule_id,position,document,updated_at) VALUES (?,?,?,?)`
	upsertSQL = `INSERT INTO schedules (schedule_id,position,document,updated_at) VALUES (?,(SELECT COALESCE(MAX(position), -1) + 1 FROM schedules),?,?) ON CONFLICT(schedule_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	selectAllSQL = `SELECT document FROM schedules ORDER BY position`
	selectOneSQL = `SELECT document FROM schedules WHERE schedule_id = ?`
)

// ── ReplaceAll ───────────────────────────────────────────────────────────────

func TestReplaceAll_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	schedules := []models.Schedule{
		{"id": "abc", "name": "nightly"},
		{"name": "no id"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
		WithArgs("abc", 0, `{"id":"abc","name":"nightly"}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
		WithArgs("#1", 1, `{"name":"no id"}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(testContext(), schedules)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_DuplicateIDsUsePositionKeys(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	schedules := []models.Schedule{
		{"id": 1},
		{"id": "1"},
		{"id": "b"},
		{"id": "#1"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	for i, key := range []string{"1", "#1", "b", "#3"} {
		mock.ExpectExec(regexp.QuoteMeta(insertSQL)).
			WithArgs(key, i, sqlmock.AnyArg(), fixedNow).
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(testContext(), schedules))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_EmptyListClearsCache(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(testContext(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_InsertErrorRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertSQL)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(testContext(), []models.Schedule{{"id": "abc"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule_id=abc")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.ReplaceAll(testContext(), []models.Schedule{{"id": "abc"}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Upsert ───────────────────────────────────────────────────────────────────

func TestUpsert_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).
		WithArgs("abc", `{"foo":1}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(testContext(), "abc", models.Schedule{"foo": 1})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(upsertSQL)).WillReturnError(errors.New("boom"))

	err := repo.Upsert(testContext(), "abc", models.Schedule{"foo": 1})
	assert.Error(t, err)
}

func TestUpsert_UnencodableSchedule(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newTestRepo(t, db)

	err := repo.Upsert(testContext(), "abc", models.Schedule{"ch": make(chan int)})
	assert.Error(t, err)
}

// ── GetAll ───────────────────────────────────────────────────────────────────

func TestGetAll_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	rows := sqlmock.NewRows([]string{"document"}).
		AddRow(`{"id":"abc"}`).
		AddRow(`{"id":"def","name":"weekly"}`)
	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnRows(rows)

	got, err := repo.GetAll(testContext())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "abc", got[0].ID())
	assert.Equal(t, "weekly", got[1].Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnRows(sqlmock.NewRows([]string{"document"}))

	got, err := repo.GetAll(testContext())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAll_CorruptDocument(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{broken`))

	_, err := repo.GetAll(testContext())
	assert.Error(t, err)
}

func TestGetAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectAllSQL)).WillReturnError(errors.New("no table"))

	_, err := repo.GetAll(testContext())
	assert.Error(t, err)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow(`{"id":"abc","foo":1}`))

	got, err := repo.Get(testContext(), "abc")

	require.NoError(t, err)
	assert.Equal(t, models.Schedule{"id": "abc", "foo": float64(1)}, got)
}

func TestGet_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectOneSQL)).
		WithArgs("zzz").
		WillReturnRows(sqlmock.NewRows([]string{"document"}))

	_, err := repo.Get(testContext(), "zzz")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "abc", cacheKey("abc", 3))
	assert.Equal(t, "#3", cacheKey("", 3))
}
