package domain

import "time"

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// WriterRoles lists the roles allowed to mutate catalog records.
// Viewer accounts are read-only.
var WriterRoles = []string{RoleAdmin, RoleUser, RoleManager, RoleAnalyst}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleManager, RoleAnalyst, RoleViewer:
		return true
	}
	return false
}
