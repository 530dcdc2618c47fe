package middleware

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header names for signed requests
	HeaderIdentity  = "X-Identity"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"

	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxPrincipal = "principal"
	CtxRequestID = "request_id"
)

// AuthConfig bounds signed request freshness.
type AuthConfig struct {
	MaxClockDrift time.Duration
	NonceTTL      time.Duration
}

// SignatureAuth verifies Ed25519-signed requests.
// Pipeline: Check timestamp -> Verify signature -> Check nonce.
func SignatureAuth(
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	cfg AuthConfig,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifySignedRequest(c, sigSvc, nonceStore, cfg, log); err != nil {
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}

// JWTAuth validates Bearer tokens issued by POST /api/v1/auth/token.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifyBearer(c, tokenSvc); err != nil {
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}

// Authenticate accepts either a Bearer token or a signed request and makes
// the caller the principal of the request context.
func Authenticate(
	sigSvc ports.SignatureService,
	tokenSvc ports.TokenService,
	nonceStore ports.NonceStore,
	cfg AuthConfig,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var err error
		if c.GetHeader("Authorization") != "" {
			err = verifyBearer(c, tokenSvc)
		} else {
			err = verifySignedRequest(c, sigSvc, nonceStore, cfg, log)
		}
		if err != nil {
			response.Abort(c, err)
			return
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, tokenSvc ports.TokenService) error {
	authHeader := c.GetHeader("Authorization")
	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenStr == "" {
		return apperror.ErrInvalidToken()
	}

	claims, err := tokenSvc.Validate(tokenStr)
	if err != nil {
		return apperror.ErrInvalidToken()
	}
	setPrincipal(c, claims.Subject)
	return nil
}

func verifySignedRequest(
	c *gin.Context,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	cfg AuthConfig,
	log zerolog.Logger,
) error {
	rawIdentity := c.GetHeader(HeaderIdentity)
	signature := c.GetHeader(HeaderSignature)
	timestampStr := c.GetHeader(HeaderTimestamp)
	nonce := c.GetHeader(HeaderNonce)

	if rawIdentity == "" || signature == "" || timestampStr == "" || nonce == "" {
		return apperror.ErrMissingCredentials()
	}

	// Step 1: Timestamp check
	timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
	if err != nil {
		return apperror.ErrTimestampExpired()
	}
	now := time.Now().Unix()
	if math.Abs(float64(now-timestamp)) > cfg.MaxClockDrift.Seconds() {
		return apperror.ErrTimestampExpired()
	}

	identity, err := domain.ParseIdentity(rawIdentity)
	if err != nil {
		return apperror.ErrInvalidIdentity()
	}

	// Step 2: Signature verification
	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return apperror.Validation("cannot read request body")
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	canonical := sigSvc.BuildCanonicalString(
		c.Request.Method,
		c.Request.URL.Path,
		timestamp,
		nonce,
		string(bodyBytes),
	)
	if !sigSvc.Verify(identity, canonical, signature) {
		return apperror.ErrInvalidSignature()
	}

	// Step 3: Nonce replay check
	isNew, err := nonceStore.CheckAndSet(c.Request.Context(), identity.String(), nonce, cfg.NonceTTL)
	if err != nil {
		log.Warn().Err(err).Msg("nonce store error, allowing request")
	} else if !isNew {
		return apperror.ErrNonceUsed()
	}

	setPrincipal(c, identity)
	return nil
}

func setPrincipal(c *gin.Context, id domain.Identity) {
	c.Set(CtxPrincipal, id)
	c.Request = c.Request.WithContext(domain.WithPrincipal(c.Request.Context(), id))
}

// Principal returns the authenticated caller, if any.
func Principal(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(CtxPrincipal)
	if !exists {
		return "", false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

// RequestID propagates X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if id, ok := Principal(c); ok {
			event = event.Str("principal", id.String())
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Abort(c, apperror.New("SYS_001", "Internal server error", http.StatusInternalServerError))
			}
		}()
		c.Next()
	}
}
