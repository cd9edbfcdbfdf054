package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/mock"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/models"
)

var testUser = models.PublicUser{
	UserID:    "0190f5b2-7c4d-7a3e-9b1f-2d6c8e4a5b10",
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

type testApp struct {
	*App
	auth   *mock.MockClientAuthService
	cipher *mock.MockCipherService
	out    *bytes.Buffer
}

func newTestApp(t *testing.T, stdin string) testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	cipher := mock.NewMockCipherService(ctrl)
	out := &bytes.Buffer{}

	app := NewApp(
		&service.ClientServices{AuthService: auth, CipherService: cipher},
		out,
		NewReaderPasswordReader(strings.NewReader(stdin)),
		logger.Nop(),
	)

	return testApp{App: app, auth: auth, cipher: cipher, out: out}
}

func decodeUser(t *testing.T, out *bytes.Buffer) models.PublicUser {
	t.Helper()

	var got models.PublicUser
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	return got
}

func TestRun_Register(t *testing.T) {
	t.Run("password as argument", func(t *testing.T) {
		a := newTestApp(t, "")
		a.auth.EXPECT().
			Register(gomock.Any(), models.Credentials{Username: "alice", Email: "alice@example.com", Password: "pw123"}).
			Return(testUser, nil)

		err := a.Run(context.Background(), []string{"register", "alice", "alice@example.com", "pw123"})

		require.NoError(t, err)
		assert.Equal(t, testUser, decodeUser(t, a.out))
	})

	t.Run("password prompted", func(t *testing.T) {
		a := newTestApp(t, "prompted-pw\n")
		a.auth.EXPECT().
			Register(gomock.Any(), models.Credentials{Username: "alice", Email: "alice@example.com", Password: "prompted-pw"}).
			Return(testUser, nil)

		err := a.Run(context.Background(), []string{"register", "alice", "alice@example.com"})

		require.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		a := newTestApp(t, "")
		a.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, service.ErrDuplicateUsername)

		err := a.Run(context.Background(), []string{"register", "alice", "alice@example.com", "pw"})

		assert.ErrorIs(t, err, service.ErrDuplicateUsername)
		assert.Empty(t, a.out.String())
	})
}

func TestRun_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestApp(t, "")
		a.auth.EXPECT().Login(gomock.Any(), models.Credentials{Username: "alice", Password: "pw123"}).Return(testUser, nil)

		err := a.Run(context.Background(), []string{"login", "alice", "pw123"})

		require.NoError(t, err)
		assert.Equal(t, "alice", decodeUser(t, a.out).Username)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		a := newTestApp(t, "wrong\n")
		a.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, service.ErrInvalidCredentials)

		err := a.Run(context.Background(), []string{"login", "alice"})

		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("empty prompted password", func(t *testing.T) {
		a := newTestApp(t, "\n")

		err := a.Run(context.Background(), []string{"login", "alice"})

		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("no input for prompt", func(t *testing.T) {
		a := newTestApp(t, "")

		err := a.Run(context.Background(), []string{"login", "alice"})

		assert.Error(t, err)
	})
}

func TestRun_User(t *testing.T) {
	a := newTestApp(t, "")
	a.auth.EXPECT().LookupUser(gomock.Any(), testUser.UserID).Return(testUser, nil)

	err := a.Run(context.Background(), []string{"user", testUser.UserID})

	require.NoError(t, err)
	assert.Equal(t, testUser, decodeUser(t, a.out))
	assert.NotContains(t, a.out.String(), "password")
}

func TestRun_Version(t *testing.T) {
	a := newTestApp(t, "")
	a.auth.EXPECT().ServerVersion(gomock.Any()).Return("v1.2.3", nil)

	require.NoError(t, a.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "v1.2.3\n", a.out.String())
}

func TestRun_EncryptDecrypt(t *testing.T) {
	a := newTestApp(t, "")
	a.cipher.EXPECT().Encrypt(gomock.Any(), "secret").Return("Y2lwaGVy", nil)
	a.cipher.EXPECT().Decrypt(gomock.Any(), "Y2lwaGVy").Return("secret", nil)

	require.NoError(t, a.Run(context.Background(), []string{"encrypt", "secret"}))
	require.NoError(t, a.Run(context.Background(), []string{"decrypt", " Y2lwaGVy "}))

	assert.Equal(t, "Y2lwaGVy\nsecret\n", a.out.String())
}

func TestRun_CipherNotConfigured(t *testing.T) {
	a := newTestApp(t, "")
	a.cipher.EXPECT().Encrypt(gomock.Any(), "x").Return("", service.ErrCipherNotConfigured)

	err := a.Run(context.Background(), []string{"encrypt", "x"})

	assert.ErrorIs(t, err, service.ErrCipherNotConfigured)
}

func TestRun_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"delete"}, wantErr: ErrUnknownCommand},
		{name: "too few arguments", args: []string{"register", "alice"}, wantErr: ErrWrongArguments},
		{name: "too many arguments", args: []string{"version", "extra"}, wantErr: ErrWrongArguments},
		{name: "help", args: []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, "")

			err := a.Run(context.Background(), tt.args)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Contains(t, a.out.String(), "usage:")
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
