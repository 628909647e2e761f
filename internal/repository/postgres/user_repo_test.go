package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"adminhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ada", "ada@example.com", "student", "active", "hash", "salt").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	repo := NewUserRepository(db)
	u := &domain.User{
		Name: "Ada", Email: "ada@example.com", Role: "student", Status: "active",
		PasswordHash: "hash", Salt: "salt",
	}
	require.NoError(t, repo.Create(ctx, u))
	require.Equal(t, int64(1), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, name, email, role, status`).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "status", "password_hash", "salt", "created_at", "updated_at"}).
			AddRow(int64(1), "Ada", "ada@example.com", "admin", "active", "hash", "salt", now, now))

	repo := NewUserRepository(db)
	u, err := repo.GetByEmail(ctx, "  Ada@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, "admin", u.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List_WithSearch(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WithArgs("%ada%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, name, email, role, status`).
		WithArgs("%ada%", 20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "status", "password_hash", "salt", "created_at", "updated_at"}).
			AddRow(int64(1), "Ada", "ada@example.com", "student", "active", "", "", now, now))

	repo := NewUserRepository(db)
	users, total, err := repo.List(ctx, "ada", domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, users, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SoftDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET deleted_at = NOW\(\)`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepository(db)
	err = repo.SoftDelete(ctx, 9)
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateStatus_DBError(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET status = \$1`).
		WithArgs("suspended", int64(2)).
		WillReturnError(sql.ErrConnDone)

	repo := NewUserRepository(db)
	require.Error(t, repo.UpdateStatus(ctx, 2, "suspended"))
	require.NoError(t, mock.ExpectationsWereMet())
}
