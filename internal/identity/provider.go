// Package identity owns the operator's primary session: who is signed in,
// and the short-lived bearer tokens attached to backend requests.
package identity

import (
	"context"

	"github.com/clothingmenvy-dot/menvy-client/internal/models"
)

// Provider is the identity service the console signs in against.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*models.Profile, error)
	SignUp(ctx context.Context, email, password, displayName string) (*models.Profile, error)
	SignOut(ctx context.Context) error

	// SendPasswordReset mails a reset code to email. The caller never sees
	// the code, and unknown addresses are not reported.
	SendPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)

	// CurrentUser is nil when nobody is signed in.
	CurrentUser() *models.Profile
	SessionID() string

	// Token mints a fresh bearer token for the current session, or "" without one.
	Token(ctx context.Context) (string, error)
	Verify(token string) (*models.Claims, error)
}
