package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/models"
)

const testUserID = "0190a6d2-7c3e-7b61-9f2a-3c4d5e6f7a8b"

var testNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestUserRepo(t *testing.T, dialect Dialect) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: dialect, logger: l, errorClassificator: classifier},
		logger: l,
		ids:    fixedID(testUserID),
		now:    func() time.Time { return testNow },
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordDigest: "digest"}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (user_id,username,email,password_digest,created_at) VALUES ($1,$2,$3,$4,$5)")).
		WithArgs(testUserID, "alice", "alice@example.com", "digest", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, testUserID, created.UserID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Equal(t, "alice", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_SQLitePlaceholders(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?,?,?,?,?)")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
	}{
		{name: "postgres", dialect: DialectPostgres, err: pgError(pgerrcode.UniqueViolation)},
		{name: "sqlite", dialect: DialectSQLite, err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.dialect)

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
			assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_NoRowsAffected(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUserNotSaved)
}

func TestCreateUser_DoesNotRetryTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectExec("INSERT INTO users").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT .* FROM users").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT .* FROM users").WillReturnRows(
		sqlmock.NewRows(userColumns).
			AddRow(testUserID, "alice", "alice@example.com", "digest", testNow))

	got, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, testUserID, got.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	rows := sqlmock.NewRows(userColumns).
		AddRow(testUserID, "alice", "alice@example.com", "digest", testNow)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, username, email, password_digest, created_at FROM users WHERE username = $1 LIMIT 1")).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, models.User{
		UserID:         testUserID,
		Username:       "alice",
		Email:          "alice@example.com",
		PasswordDigest: "digest",
		CreatedAt:      testNow,
	}, user)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT").WithArgs("ghost").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	// intentionally wrong shape → scan error
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(testUserID))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// TestFindUserByID_ProjectsPublicColumns verifies that the digest column is
// never selected.
func TestFindUserByID_ProjectsPublicColumns(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectPostgres)

	rows := sqlmock.NewRows(publicUserColumns).
		AddRow(testUserID, "alice", "alice@example.com", testNow)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, username, email, created_at FROM users WHERE user_id = $1 LIMIT 1")).
		WithArgs(testUserID).
		WillReturnRows(rows)

	user, err := repo.FindUserByID(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, testUserID, user.UserID)
	assert.Empty(t, user.PasswordDigest)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, DialectSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = ?")).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
