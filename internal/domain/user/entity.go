// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// Role is the access level attached to a logged-in user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated account for the current session. Password hashes
// never leave the service.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases an email address for comparisons.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountStatus is the admin panel's activity flag for a customer account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account is a customer row in the admin panel's user collection.
type Account struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Orders     int           `json:"orders"`
	Joined     time.Time     `json:"joined"`
	Status     AccountStatus `json:"status"`
	TotalSpent int64         `json:"totalSpent"`
}

func seedDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedAccounts returns the initial customer accounts.
func SeedAccounts() []Account {
	return []Account{
		{ID: 1, Name: "John Doe", Email: "john@zmart.com", Orders: 5, Joined: seedDate("2023-12-01"), Status: AccountActive, TotalSpent: 363995},
		{ID: 2, Name: "Jane Smith", Email: "jane@zmart.com", Orders: 3, Joined: seedDate("2023-11-15"), Status: AccountActive, TotalSpent: 251997},
		{ID: 3, Name: "Bob Johnson", Email: "bob@zmart.com", Orders: 8, Joined: seedDate("2023-10-20"), Status: AccountActive, TotalSpent: 615992},
	}
}
