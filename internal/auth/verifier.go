package auth

import (
	"context"
	"errors"
)

// Identity is the verified caller of a request
type Identity struct {
	SubjectID string
	Email     string
	Name      string
}

// Verification outcomes the HTTP layer must distinguish. Expired, revoked
// and structurally invalid credentials all reject with 401, but operators
// need separate signals for each, so they stay separate errors here.
var (
	ErrTokenExpired    = errors.New("credential expired")
	ErrTokenRevoked    = errors.New("credential revoked")
	ErrTokenInvalid    = errors.New("credential invalid")
	ErrSubjectDisabled = errors.New("subject disabled")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrEmailExists     = errors.New("email already in use")
)

// Verifier checks a bearer credential and returns the verified identity
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// Registrar creates a new user record at the identity provider
type Registrar interface {
	Register(ctx context.Context, fullName, email, password string) (string, error)
}
