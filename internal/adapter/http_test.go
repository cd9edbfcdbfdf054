// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/utils"
	"github.com/NiharGandhi/pent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPublicUser = models.PublicUser{
	UserID:    "0190a6d2-7c3e-7b61-9f2a-3c4d5e6f7a8b",
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	utils.WriteError(w, msg, status)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var got models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "pw123", got.Password)

		_, _ = utils.WriteJSON(w, testPublicUser, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.Credentials{Username: "alice", Email: "alice@example.com", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, testPublicUser, got)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusConflict, "username already exists")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "username already exists", Message(err))
}

func TestRegister_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, "email is required")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "email is required", Message(err))
}

func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "registration failed")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestRegister_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Register(context.Background(), models.Credentials{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success_DoesNotSendEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)

		var raw map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "alice", raw["username"])
		assert.Equal(t, "pw123", raw["password"])
		assert.NotContains(t, raw, "email")

		_, _ = utils.WriteJSON(w, testPublicUser, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Email: "ignored@example.com", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, testPublicUser.UserID, got.UserID)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "invalid username or password", Message(err))
}

func TestLogin_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusTooManyRequests, "too many requests")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// ── LookupUser ───────────────────────────────────────────────────────────────

func TestLookupUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/user/"+testPublicUser.UserID, r.URL.Path)
		_, _ = utils.WriteJSON(w, testPublicUser, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.LookupUser(context.Background(), testPublicUser.UserID)

	require.NoError(t, err)
	assert.Equal(t, testPublicUser, got)
}

func TestLookupUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "user not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.LookupUser(context.Background(), testPublicUser.UserID)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
	assert.NoError(t, a.Close())
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 418: teapot", err.Error())
}
