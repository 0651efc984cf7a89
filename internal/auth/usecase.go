package auth

import (
	"context"
	"errors"

	"github.com/evershine/storefront-core/internal/model"
)

// ErrInvalidCredentials is returned for any login mismatch. Wrong email
// and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// UseCase tracks the single session identity. Login and Register each
// suspend once on an artificial delay standing in for a network round
// trip; a concurrent second call is not de-duplicated here. The caller
// disables the triggering control while a call is outstanding.
type UseCase interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Logout(ctx context.Context)

	// CurrentUser returns the active session user, or nil when logged out.
	CurrentUser() *model.User
}
