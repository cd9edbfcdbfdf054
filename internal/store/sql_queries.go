package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/NiharGandhi/pent/models"
)

const usersTable = "users"

var (
	// userColumns is the full projection, digest included.
	userColumns = []string{"user_id", "username", "email", "password_digest", "created_at"}

	// publicUserColumns never selects the digest.
	publicUserColumns = []string{"user_id", "username", "email", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Username, user.Email, user.PasswordDigest, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(publicUserColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
