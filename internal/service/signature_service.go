package service

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"delegated-treasury/internal/core/domain"
)

// Ed25519SignatureService implements ports.SignatureService. An identity's
// decoded bytes are its Ed25519 public key.
type Ed25519SignatureService struct{}

// NewEd25519SignatureService creates a new Ed25519SignatureService.
func NewEd25519SignatureService() *Ed25519SignatureService {
	return &Ed25519SignatureService{}
}

// Verify checks a base64 (std encoding) Ed25519 signature of message by id.
// Derived addresses have no key and never verify.
func (s *Ed25519SignatureService) Verify(id domain.Identity, message string, signature string) bool {
	if !id.IsAccount() {
		return false
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(id.Bytes()), []byte(message), sig)
}

// BuildCanonicalString constructs the canonical payload for signing.
// Format: METHOD|PATH|TIMESTAMP|NONCE|BODY
func (s *Ed25519SignatureService) BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s", method, path, timestamp, nonce, body)
}

// SignMessage signs message with priv and returns the base64 signature Verify expects.
func SignMessage(priv ed25519.PrivateKey, message string) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(priv, []byte(message)))
}

// HMACSign computes HMAC-SHA256 of payload using secretKey.
// Returns lowercase hex-encoded signature.
func HMACSign(secretKey string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// HMACVerify checks signature in constant time.
func HMACVerify(secretKey string, payload []byte, signature string) bool {
	expected := HMACSign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
