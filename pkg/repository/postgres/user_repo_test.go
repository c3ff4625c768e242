package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/pkg/auth"
	storage "github.com/artem13815/skillpath/pkg/storage/postgres"
)

func newMockStore(t *testing.T) (*storage.Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return storage.NewStore(mock), mock
}

var (
	insertUserQ = regexp.QuoteMeta("INSERT INTO users (name, email, password_hash)")
	selectUserQ = `(?s)SELECT id, name, email, password_hash, created_at\s+FROM users WHERE email = \$1`
)

func TestUserCreate_ReturnsAssignedID(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(insertUserQ).
		WithArgs("A", "a@x.com", "$2a$10$hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	u, err := repo.Create(context.Background(), auth.User{Name: "A", Email: "a@x.com", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, created, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate_UniqueViolation(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)

	mock.ExpectQuery(insertUserQ).
		WithArgs("A", "a@x.com", "h").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), auth.User{Name: "A", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestUserCreate_OtherError(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)

	mock.ExpectQuery(insertUserQ).
		WithArgs("A", "a@x.com", "h").
		WillReturnError(errors.New("conn reset"))

	_, err := repo.Create(context.Background(), auth.User{Name: "A", Email: "a@x.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUserAlreadyExists)
}

func TestUserGetByEmail_Found(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)
	created := time.Now().UTC().Truncate(time.Second)

	mock.ExpectQuery(selectUserQ).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
			AddRow(int64(7), "A", "a@x.com", "hash", created))

	u, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, auth.User{ID: 7, Name: "A", Email: "a@x.com", PasswordHash: "hash", CreatedAt: created}, u)
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)

	mock.ExpectQuery(selectUserQ).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestUserGetByEmail_DBError(t *testing.T) {
	store, mock := newMockStore(t)
	repo := NewUserRepository(store)

	mock.ExpectQuery(selectUserQ).
		WithArgs("a@x.com").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrNotFound)
}
