package model

import "time"

// Role distinguishes buyers from marketplace sellers.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
)

// User represents a registered marketplace account.
type User struct {
	ID        int64
	FullName  string
	Email     string
	Role      Role
	CreatedAt time.Time
}
