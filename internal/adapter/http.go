package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/utils"
	"github.com/NiharGandhi/pent/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] targeting adapterCfg.HTTPAddress. An address without a
// scheme is treated as plain HTTP.
//
// Returns [ErrNoAddress] if adapterCfg.HTTPAddress is empty.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, ErrNoAddress
	}

	client := utils.NewHTTPClient(strings.TrimSpace(adapterCfg.HTTPAddress), adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register and decodes the created profile.
func (h *httpServerAdapter) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		SetResult(&user).
		Post("/api/user/register")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: register request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs username and password to
// POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Username: c.Username, Password: c.Password}).
		SetResult(&user).
		Post("/api/user/login")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: login request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// LookupUser implements [ServerAdapter] with GET /api/user/{id}.
func (h *httpServerAdapter) LookupUser(ctx context.Context, userID string) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", userID).
		SetResult(&user).
		Get("/api/user/{id}")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%w: lookup request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

// Version implements [ServerAdapter] with GET /api/version, which answers
// with plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Close() error {
	return nil
}
