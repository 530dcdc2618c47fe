package middleware

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testAuthConfig = AuthConfig{MaxClockDrift: 60 * time.Second, NonceTTL: 120 * time.Second}

func testIdentity(t *testing.T, seed byte) domain.Identity {
	t.Helper()
	s := make([]byte, ed25519.SeedSize)
	s[0] = seed
	pub := ed25519.NewKeyFromSeed(s).Public().(ed25519.PublicKey)
	id, err := domain.IdentityFromPublicKey(pub)
	require.NoError(t, err)
	return id
}

type authMocks struct {
	sig   *mocks.MockSignatureService
	token *mocks.MockTokenService
	nonce *mocks.MockNonceStore
}

func newAuthMocks(t *testing.T) *authMocks {
	ctrl := gomock.NewController(t)
	return &authMocks{
		sig:   mocks.NewMockSignatureService(ctrl),
		token: mocks.NewMockTokenService(ctrl),
		nonce: mocks.NewMockNonceStore(ctrl),
	}
}

// authRouter echoes the principal seen by the handler, both on the gin
// context and on the request context.
func authRouter(m *authMocks, captured *domain.Identity) *gin.Engine {
	router := gin.New()
	router.POST("/test", Authenticate(m.sig, m.token, m.nonce, testAuthConfig, zerolog.Nop()), func(c *gin.Context) {
		id, ok := Principal(c)
		ctxID, ctxOK := domain.PrincipalFrom(c.Request.Context())
		if ok && ctxOK && id == ctxID {
			*captured = id
		}
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func signedRequest(id domain.Identity, ts int64, nonce, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	req.Header.Set(HeaderIdentity, id.String())
	req.Header.Set(HeaderSignature, "sig")
	req.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderNonce, nonce)
	return req
}

// ==================== Signed Request Tests ====================

func TestAuthenticate_MissingCredentials(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_001")
}

func TestAuthenticate_ExpiredTimestamp(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 1)

	req := signedRequest(id, time.Now().Add(-120*time.Second).Unix(), "nonce-1", "")
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_003")
}

func TestAuthenticate_MalformedIdentity(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity

	req := signedRequest("not-an-identity", time.Now().Unix(), "nonce-1", "")
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_006")
}

func TestAuthenticate_InvalidSignatureKeepsNonce(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 1)
	nowTs := time.Now().Unix()

	m.sig.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce-1", "").Return("canonical")
	m.sig.EXPECT().Verify(id, "canonical", "sig").Return(false)
	// no CheckAndSet: a forged request must not burn the caller's nonce

	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, signedRequest(id, nowTs, "nonce-1", ""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_002")
	assert.True(t, captured.IsZero())
}

func TestAuthenticate_ReplayedNonce(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 1)
	nowTs := time.Now().Unix()

	m.sig.EXPECT().BuildCanonicalString(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("canonical")
	m.sig.EXPECT().Verify(id, "canonical", "sig").Return(true)
	m.nonce.EXPECT().CheckAndSet(gomock.Any(), id.String(), "nonce-1", testAuthConfig.NonceTTL).Return(false, nil)

	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, signedRequest(id, nowTs, "nonce-1", ""))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_004")
}

func TestAuthenticate_SignedSuccess(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 1)
	nowTs := time.Now().Unix()
	body := `{"amount":"100"}`

	m.sig.EXPECT().BuildCanonicalString("POST", "/test", nowTs, "nonce-ok", body).Return("canonical")
	m.sig.EXPECT().Verify(id, "canonical", "sig").Return(true)
	m.nonce.EXPECT().CheckAndSet(gomock.Any(), id.String(), "nonce-ok", testAuthConfig.NonceTTL).Return(true, nil)

	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, signedRequest(id, nowTs, "nonce-ok", body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured)
}

func TestAuthenticate_NonceStoreDownAllows(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 1)

	m.sig.EXPECT().BuildCanonicalString(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("canonical")
	m.sig.EXPECT().Verify(id, "canonical", "sig").Return(true)
	m.nonce.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, signedRequest(id, time.Now().Unix(), "nonce-1", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured)
}

// ==================== Bearer Token Tests ====================

func TestAuthenticate_BearerMalformedHeader(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_005")
}

func TestAuthenticate_BearerInvalidToken(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity

	m.token.EXPECT().Validate("bad-token").Return(nil, errors.New("invalid"))

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_BearerSuccess(t *testing.T) {
	m := newAuthMocks(t)
	var captured domain.Identity
	id := testIdentity(t, 2)

	m.token.EXPECT().Validate("good-token").Return(&ports.TokenClaims{
		Subject:   id,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	authRouter(m, &captured).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, captured)
}

func TestSignatureAuth_RejectsBearerOnly(t *testing.T) {
	m := newAuthMocks(t)
	router := gin.New()
	router.POST("/token", SignatureAuth(m.sig, m.nonce, testAuthConfig, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/token", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_001")
}

func TestJWTAuth_Success(t *testing.T) {
	m := newAuthMocks(t)
	id := testIdentity(t, 3)
	m.token.EXPECT().Validate("tok").Return(&ports.TokenClaims{Subject: id}, nil)

	var got domain.Identity
	router := gin.New()
	router.GET("/me", JWTAuth(m.token, zerolog.Nop()), func(c *gin.Context) {
		got, _ = Principal(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, id, got)
}

// ==================== Request ID / Recovery Tests ====================

func TestRequestID_PropagatesHeader(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

func TestRequestLogger_LogsPrincipal(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	id := testIdentity(t, 4)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(log))
	router.GET("/test", func(c *gin.Context) {
		setPrincipal(c, id)
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), id.String())
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}
