package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcdesk/dcdesk/application/port/outbound"
	"github.com/dcdesk/dcdesk/domain/entity"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "user_id", "name", "email", "password", "role", "is_active",
		"created_at", "updated_at", "deleted_at",
	}).AddRow("id-1", "jdoe", "John Doe", "jdoe@example.com", "$2a$10$hash",
		"admin", true, now, now, nil)
}

func TestFindByUserID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, name, email, password, role, is_active, created_at, updated_at, deleted_at FROM users WHERE user_id = $1 AND deleted_at IS NULL")).
		WithArgs("jdoe").
		WillReturnRows(userRows())

	user, err := repo.FindByUserID(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUserID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserID(context.Background(), "ghost")
	assert.ErrorIs(t, err, outbound.ErrUserNotFound)
}

func TestCreateUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	user := entity.NewUser("id-1", "jdoe", "John Doe", "jdoe@example.com", "$2a$10$hash", entity.RoleUser)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.UserID, user.Name, user.Email, user.Password,
			"user", true, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	user := entity.NewUser("missing", "jdoe", "John Doe", "jdoe@example.com", "$2a$10$hash", entity.RoleUser)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), user), outbound.ErrUserNotFound)
}

func TestSoftDeleteUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET deleted_at")).
		WithArgs("id-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SoftDelete(context.Background(), "id-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAll_WithFilters(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WithArgs("%john%", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE deleted_at IS NULL AND name ILIKE").
		WithArgs("%john%", "admin", 10, 0).
		WillReturnRows(userRows())

	users, total, err := repo.FindAll(context.Background(), 0, 10, outbound.UserFilters{
		Name: "john",
		Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "jdoe", users[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE deleted_at IS NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestExistsByUserID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1 AND deleted_at IS NULL)")).
		WithArgs("jdoe").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUserID(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.True(t, exists)
}
