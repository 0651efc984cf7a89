package auth

import (
	"context"

	"github.com/evershine/storefront-core/internal/model"
)

// Repository is the credential table. The production table is a fixed
// in-memory list; tests substitute their own fixtures.
//
// Find methods return (nil, nil) when nothing matches.
type Repository interface {
	// FindByCredentials matches email and password by exact,
	// case-sensitive comparison.
	FindByCredentials(ctx context.Context, email, password string) (*model.Credential, error)
	FindByEmail(ctx context.Context, email string) (*model.Credential, error)

	// Add appends a newly registered credential. The addition lives only
	// as long as the process; a restart loses registered users.
	Add(ctx context.Context, cred model.Credential) error
}
