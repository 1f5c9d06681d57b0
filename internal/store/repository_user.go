package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the server-assigned
// UserID and CreatedAt.
//
// A unique violation on login maps to [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insertUser(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to create user")

		if r.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByLogin returns the user with the given login or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectUserByLogin(login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = r.withRetry(ctx, func() error {
		return r.QueryRowContext(ctx, query, args...).
			Scan(&u.UserID, &u.Login, &u.AuthHash, &u.EncryptionSalt, &u.EncryptedMasterKey, &u.CreatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByLogin").Msg("failed to find user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return u, nil
}
