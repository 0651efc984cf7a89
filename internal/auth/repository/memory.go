package repository

import (
	"context"
	"sync"

	"github.com/evershine/storefront-core/internal/model"
)

// MemoryRepository is the fixed in-memory credential table. Registered
// users are appended at runtime and lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	creds []model.Credential
}

func NewMemoryRepository(creds []model.Credential) *MemoryRepository {
	return &MemoryRepository{creds: creds}
}

// NewSeededRepository builds the demo credential table: one privileged
// admin account and two ordinary accounts.
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository([]model.Credential{
		{ID: "admin-1", Name: "Admin User", Email: "admin@evershine.com", Password: "evershine123", IsAdmin: true},
		{ID: "1", Name: "John Doe", Email: "john@example.com", Password: "password123"},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Password: "password123"},
	})
}

func (r *MemoryRepository) FindByCredentials(_ context.Context, email, password string) (*model.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.creds {
		if c.Email == email && c.Password == password {
			cred := c
			return &cred, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*model.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.creds {
		if c.Email == email {
			cred := c
			return &cred, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Add(_ context.Context, cred model.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creds = append(r.creds, cred)
	return nil
}
