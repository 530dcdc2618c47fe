package domain

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// IdentitySize is the length in bytes of a decoded identity.
const IdentitySize = 32

const addressMarker = "DelegatedTreasuryAddress"

var (
	ErrMalformedIdentity = errors.New("identity must be base58 encoding of 32 bytes")
	ErrNoDerivedAddress  = errors.New("no off-curve address for seeds")
)

// Identity is a principal or ledger holder, encoded as base58 of a 32-byte key.
// Accounts are Ed25519 public keys; derived addresses are off-curve so no
// private key exists for them.
type Identity string

// ParseIdentity validates s and returns it as an Identity.
func ParseIdentity(s string) (Identity, error) {
	raw, err := base58.Decode(s)
	if err != nil || len(raw) != IdentitySize {
		return "", fmt.Errorf("%w: %q", ErrMalformedIdentity, s)
	}
	return Identity(s), nil
}

// IdentityFromPublicKey encodes a raw 32-byte key.
func IdentityFromPublicKey(pub []byte) (Identity, error) {
	if len(pub) != IdentitySize {
		return "", ErrMalformedIdentity
	}
	return Identity(base58.Encode(pub)), nil
}

func (id Identity) String() string { return string(id) }

// IsZero reports whether the identity is unset.
func (id Identity) IsZero() bool { return id == "" }

// Bytes returns the decoded key, or nil when the identity is malformed.
func (id Identity) Bytes() []byte {
	raw, err := base58.Decode(string(id))
	if err != nil || len(raw) != IdentitySize {
		return nil
	}
	return raw
}

// IsAccount reports whether the identity is a point on the Ed25519 curve,
// i.e. a key that can produce signatures.
func (id Identity) IsAccount() bool {
	raw := id.Bytes()
	if raw == nil {
		return false
	}
	return isOnCurve(raw)
}

// DeriveAddress deterministically maps seeds to an off-curve identity.
// Seeds are length-prefixed so ("ab","c") and ("a","bc") differ.
func DeriveAddress(seeds ...string) (Identity, error) {
	for bump := 255; bump >= 0; bump-- {
		data := make([]byte, 0, 64)
		for _, seed := range seeds {
			data = binary.BigEndian.AppendUint32(data, uint32(len(seed)))
			data = append(data, seed...)
		}
		data = append(data, byte(bump))
		data = append(data, addressMarker...)

		hash := blake2b.Sum256(data)
		if !isOnCurve(hash[:]) {
			return Identity(base58.Encode(hash[:])), nil
		}
	}
	return "", ErrNoDerivedAddress
}

func isOnCurve(point []byte) bool {
	if len(point) != IdentitySize {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, principalKey{}, id)
}

// PrincipalFrom returns the authenticated caller stored in ctx.
func PrincipalFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(principalKey{}).(Identity)
	return id, ok && !id.IsZero()
}
