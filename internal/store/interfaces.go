package store

import (
	"context"

	"github.com/NiharGandhi/pent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user credentials.
type UserRepository interface {
	// CreateUser stores a new user and returns it with the server-assigned
	// UserID and CreatedAt.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the full record, including the digest.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns the record without the digest.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// ErrorClassificator inspects driver errors for a specific database backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
