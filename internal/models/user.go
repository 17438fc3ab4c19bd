package models

import "time"

// User owns its todos exclusively; nothing references another user's
// collection. Usernames are unique under case-insensitive comparison,
// enforced at signup.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`

	// Token is the opaque bearer secret issued at signup. It never
	// expires; TokenIssuedAt exists so an expiry check could be added
	// without changing the stored shape.
	Token         string     `json:"token,omitempty"`
	TokenIssuedAt *time.Time `json:"tokenIssuedAt,omitempty"`

	Todos []Todo `json:"todos"`
}
