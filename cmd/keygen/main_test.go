package main

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNew_PrintsUsableKey(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runNew(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	id, err := domain.ParseIdentity(strings.TrimSpace(strings.TrimPrefix(lines[0], "identity:")))
	require.NoError(t, err)
	assert.True(t, id.IsAccount())

	priv, err := privateKeyFromSeed(strings.TrimSpace(strings.TrimPrefix(lines[1], "seed:")))
	require.NoError(t, err)
	derived, err := domain.IdentityFromPublicKey(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	assert.Equal(t, id, derived)
}

func TestSignHeaders_VerifyAgainstService(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = 9
	priv := ed25519.NewKeyFromSeed(seed)
	now := time.Unix(1_700_000_000, 0)
	body := `{"amount":"10"}`

	headers, err := signHeaders(priv, "POST", "/api/v1/vaults/main/deposit", body, now, "nonce-1")
	require.NoError(t, err)
	assert.Equal(t, "1700000000", headers[middleware.HeaderTimestamp])
	assert.Equal(t, "nonce-1", headers[middleware.HeaderNonce])

	svc := service.NewEd25519SignatureService()
	id := domain.Identity(headers[middleware.HeaderIdentity])
	canonical := svc.BuildCanonicalString("POST", "/api/v1/vaults/main/deposit", now.Unix(), "nonce-1", body)
	assert.True(t, svc.Verify(id, canonical, headers[middleware.HeaderSignature]))

	tampered := svc.BuildCanonicalString("POST", "/api/v1/vaults/main/deposit", now.Unix(), "nonce-1", `{"amount":"11"}`)
	assert.False(t, svc.Verify(id, tampered, headers[middleware.HeaderSignature]))
}

func TestRunSign(t *testing.T) {
	seed := base64.StdEncoding.EncodeToString(make([]byte, ed25519.SeedSize))

	var out bytes.Buffer
	err := runSign([]string{"-key", seed, "-method", "PUT", "-path", "/api/v1/vaults/main/paused", "-body", `{"paused":true}`}, &out)
	require.NoError(t, err)
	for _, h := range []string{middleware.HeaderIdentity, middleware.HeaderTimestamp, middleware.HeaderNonce, middleware.HeaderSignature} {
		assert.Contains(t, out.String(), h+": ")
	}

	err = runSign([]string{"-key", "short", "-path", "/x"}, &out)
	assert.Error(t, err)

	err = runSign([]string{"-key", seed}, &out)
	assert.Error(t, err)
}
