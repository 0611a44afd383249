package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// roleRank defines the privilege ordering for RBAC checks.
var roleRank = map[Role]int{
	RoleUser:  1,
	RoleAdmin: 2,
}

// Valid reports whether the role is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// HasPermission returns true if the role grants at least minRole's privileges.
func (r Role) HasPermission(minRole Role) bool {
	return roleRank[r] >= roleRank[minRole]
}

// Account is the identity record backing authentication.
// PasswordHash and PasswordSalt never leave the service boundary;
// external responses use AccountProjection.
type Account struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash []byte
	PasswordSalt []byte
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountProjection is the externally visible subset of an account.
type AccountProjection struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectAccount maps an account to its public projection.
func ProjectAccount(a *Account) AccountProjection {
	return AccountProjection{
		ID:        a.ID,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
