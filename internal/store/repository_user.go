package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/utils"
	"github.com/NiharGandhi/pent/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table on
// both PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger. User IDs are UUIDv7 strings.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// CreateUser assigns UserID and CreatedAt and inserts the record.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - zero affected rows → [ErrUserNotSaved].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
//
// The INSERT runs once. A connection lost after commit would make a retry
// hit the unique constraint and report the new user as a duplicate.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now()

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("username already exists")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return models.User{}, ErrUserNotSaved
	}

	return user, nil
}

// FindUserByUsername retrieves the full user record, digest included.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - any other error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(r.db.builder(), username)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = r.queryRow(ctx, "*userRepository.FindUserByUsername", query, args,
		&user.UserID, &user.Username, &user.Email, &user.PasswordDigest, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves a user record without its digest.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserByIDQuery(r.db.builder(), userID)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = r.queryRow(ctx, "*userRepository.FindUserByID", query, args,
		&user.UserID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) queryRow(ctx context.Context, funcName, query string, args []any, dest ...any) error {
	log := logger.FromContext(ctx)

	err := r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(dest...)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	default:
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
