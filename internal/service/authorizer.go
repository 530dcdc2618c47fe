package service

import (
	"context"
	"time"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/pkg/apperror"
)

// ContextAuthorizer implements ports.Authorizer against the principal
// placed in the context by the transport's authentication step.
type ContextAuthorizer struct{}

// NewContextAuthorizer creates a ContextAuthorizer.
func NewContextAuthorizer() *ContextAuthorizer {
	return &ContextAuthorizer{}
}

// Require fails with Unauthorized unless the caller is exactly id.
func (a *ContextAuthorizer) Require(ctx context.Context, id domain.Identity) error {
	principal, ok := domain.PrincipalFrom(ctx)
	if !ok || id.IsZero() || principal != id {
		return apperror.ErrUnauthorized()
	}
	return nil
}

// SystemClock implements ports.Clock with wall-clock UTC time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
