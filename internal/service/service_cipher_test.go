package service

import (
	"context"
	"testing"

	"github.com/NiharGandhi/pent/internal/crypto"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCipherService_DelegatesToCipher(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCipher(ctrl)
	svc := NewCipherService(c, crypto.CipherModeGCM, logger.Nop())

	c.EXPECT().Encrypt("hello").Return("blob", nil)
	c.EXPECT().Decrypt("blob").Return("hello", nil)

	ct, err := svc.Encrypt(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "blob", ct)

	pt, err := svc.Decrypt(context.Background(), ct)
	require.NoError(t, err)
	assert.Equal(t, "hello", pt)
}

func TestCipherService_WrapsDecryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewMockCipher(ctrl)
	svc := NewCipherService(c, crypto.CipherModeGCM, logger.Nop())

	c.EXPECT().Decrypt("bad").Return("", crypto.ErrDecryptionFailed)

	_, err := svc.Decrypt(context.Background(), "bad")

	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestCipherService_NotConfigured(t *testing.T) {
	svc := NewCipherService(nil, "", logger.Nop())

	_, err := svc.Encrypt(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCipherNotConfigured)

	_, err = svc.Decrypt(context.Background(), "x")
	assert.ErrorIs(t, err, ErrCipherNotConfigured)
}

func TestCipherService_RoundTripBothModes(t *testing.T) {
	for _, mode := range []string{crypto.CipherModeGCM, crypto.CipherModeOpenSSL} {
		t.Run(mode, func(t *testing.T) {
			c, err := crypto.NewCipher(mode, "s3cret", crypto.Argon2Params{Time: 1, Memory: 1024, Threads: 1, SaltLen: 16, KeyLen: 32})
			require.NoError(t, err)
			svc := NewCipherService(c, mode, logger.Nop())

			for _, s := range []string{"", "pw123", "ünïcödé ✓", "a longer secret sentence"} {
				ct, err := svc.Encrypt(context.Background(), s)
				require.NoError(t, err)

				pt, err := svc.Decrypt(context.Background(), ct)
				require.NoError(t, err)
				assert.Equal(t, s, pt)
			}
		})
	}
}
