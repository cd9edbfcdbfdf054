package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/NiharGandhi/pent/internal/adapter"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.TrimSpace(c.Email)

	user, err := a.adapter.Register(ctx, c)
	if err != nil {
		a.logger.Err(err).Str("username", c.Username).Msg("register on server failed")
		return models.PublicUser{}, mapAdapterError(err, ErrRegisterOnServer)
	}

	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	c.Username = strings.TrimSpace(c.Username)
	// email is not part of login
	c.Email = ""

	user, err := a.adapter.Login(ctx, c)
	if err != nil {
		a.logger.Err(err).Str("username", c.Username).Msg("login on server failed")
		return models.PublicUser{}, mapAdapterError(err, ErrLoginOnServer)
	}

	return user, nil
}

func (a *clientAuthService) LookupUser(ctx context.Context, userID string) (models.PublicUser, error) {
	user, err := a.adapter.LookupUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		a.logger.Err(err).Str("user_id", userID).Msg("lookup on server failed")
		return models.PublicUser{}, mapAdapterError(err, ErrLookupOnServer)
	}

	return user, nil
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("version request failed: %w", err)
	}

	return version, nil
}
