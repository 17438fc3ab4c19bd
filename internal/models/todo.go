package models

import "time"

// Todo text is trimmed before storage and never empty. UpdatedAt is set
// on the first toggle and absent until then.
type Todo struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
