// Command keygen creates Ed25519 identities and signs requests for the
// treasury API.
//
//	keygen new
//	keygen sign -key <base64 seed> -method POST -path /api/v1/vaults -body '{"vault_id":"main",...}'
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/service"

	"github.com/google/uuid"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = runNew(os.Stdout)
	case "sign":
		err = runSign(os.Args[2:], os.Stdout)
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: keygen new | keygen sign -key <seed> -method <METHOD> -path <PATH> [-body <JSON>]")
}

func runNew(w io.Writer) error {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	id, err := domain.IdentityFromPublicKey(pub)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "identity: %s\n", id)
	fmt.Fprintf(w, "seed:     %s\n", base64.StdEncoding.EncodeToString(priv.Seed()))
	return nil
}

func runSign(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	seed := fs.String("key", os.Getenv("DTR_SIGNING_KEY"), "base64 Ed25519 seed (default $DTR_SIGNING_KEY)")
	method := fs.String("method", "POST", "HTTP method")
	path := fs.String("path", "", "request path without query string")
	body := fs.String("body", "", "exact request body")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seed == "" || *path == "" {
		return errors.New("-key and -path are required")
	}

	priv, err := privateKeyFromSeed(*seed)
	if err != nil {
		return err
	}
	headers, err := signHeaders(priv, *method, *path, *body, time.Now(), uuid.New().String())
	if err != nil {
		return err
	}
	for _, name := range []string{middleware.HeaderIdentity, middleware.HeaderTimestamp, middleware.HeaderNonce, middleware.HeaderSignature} {
		fmt.Fprintf(w, "%s: %s\n", name, headers[name])
	}
	return nil
}

func privateKeyFromSeed(encoded string) (ed25519.PrivateKey, error) {
	seed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(seed) != ed25519.SeedSize {
		return nil, errors.New("key must be a base64 32-byte seed")
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// signHeaders returns the authentication headers for one request.
func signHeaders(priv ed25519.PrivateKey, method, path, body string, now time.Time, nonce string) (map[string]string, error) {
	id, err := domain.IdentityFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	ts := now.Unix()
	canonical := service.NewEd25519SignatureService().BuildCanonicalString(method, path, ts, nonce, body)
	return map[string]string{
		middleware.HeaderIdentity:  id.String(),
		middleware.HeaderTimestamp: strconv.FormatInt(ts, 10),
		middleware.HeaderNonce:     nonce,
		middleware.HeaderSignature: service.SignMessage(priv, canonical),
	}, nil
}
