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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	user := models.User{
		Login:              "alice",
		AuthHash:           "$2a$10$bcrypt",
		EncryptionSalt:     "c2FsdA==",
		EncryptedMasterKey: "gpv1:AAAA",
	}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,auth_hash,encryption_salt,encrypted_master_key) VALUES ($1,$2,$3,$4) RETURNING user_id, created_at")).
		WithArgs(user.Login, user.AuthHash, user.EncryptionSalt, user.EncryptedMasterKey).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(1), now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Login)
	assert.True(t, now.Equal(created.CreatedAt))
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestFindUserByLogin_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "auth_hash", "encryption_salt", "encrypted_master_key", "created_at"}).
			AddRow(int64(3), "alice", "hash", "salt", "gpv1:wrapped", now))

	u, err := repo.FindUserByLogin(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.UserID)
	assert.Equal(t, "hash", u.AuthHash)
	assert.Equal(t, "salt", u.EncryptionSalt)
	assert.Equal(t, "gpv1:wrapped", u.EncryptedMasterKey)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByLogin_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByLogin(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}
