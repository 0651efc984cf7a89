package model

// User is the single session identity. At most one User is active per
// session; logged-out means nil.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Credential is one row of the fixed credential table. Passwords are kept
// in the clear on purpose: this is mocked demo authentication, compared by
// exact string match.
type Credential struct {
	ID       string
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// User builds the session record for a matched credential.
func (c Credential) User() *User {
	return &User{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
	}
}
