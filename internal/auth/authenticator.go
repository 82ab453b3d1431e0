// Package auth provides password authentication and JWT session tokens.
package auth

import (
	"context"

	"github.com/mmynk/cashbench/internal/models"
)

// Authenticator registers users and checks their credentials.
// The service layer depends on this interface rather than on bcrypt directly.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// Lookup returns the user with the given ID, or ErrUserNotFound.
	Lookup(ctx context.Context, userID string) (*models.User, error)

	// ValidateCredential checks that a credential is acceptable for registration.
	ValidateCredential(credential string) error
}
