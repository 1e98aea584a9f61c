package domain

import (
	"time"

	"github.com/tikkaspice/opsboard/pkg/idx"
)

// User is a dashboard account. PasswordHash holds the argon2id PHC string and
// never leaves the server.
type User struct {
	ID           idx.ID
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
