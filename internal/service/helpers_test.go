package service

import (
	"context"
	"crypto/ed25519"
	"errors"
	"testing"

	"delegated-treasury/internal/adapter/storage/memory"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKey returns a deterministic keypair for seed.
func testKey(seed byte) ed25519.PrivateKey {
	s := make([]byte, ed25519.SeedSize)
	for i := range s {
		s[i] = seed
	}
	return ed25519.NewKeyFromSeed(s)
}

func testIdentity(t *testing.T, seed byte) domain.Identity {
	t.Helper()
	id, err := domain.IdentityFromPublicKey(testKey(seed).Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return id
}

// as returns a context authenticated as id.
func as(id domain.Identity) context.Context {
	return domain.WithPrincipal(context.Background(), id)
}

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

// mint credits holder directly in the ledger.
func mint(t *testing.T, store *memory.LedgerStore, asset string, holder domain.Identity, amount string) {
	t.Helper()
	admin := testIdentity(t, 0xAD)
	svc := NewAssetService(store, NewAssetLedger(), NewContextAuthorizer(), admin, newTestLogger())
	_, err := svc.Mint(as(admin), asset, holder, dec(amount))
	require.NoError(t, err)
}
