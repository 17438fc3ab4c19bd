package models

// Document is the single persisted root: every user and every todo lives
// under it, and it is rewritten whole on each mutation.
type Document struct {
	Users []User `json:"users"`
}

// FindUserByToken returns the user holding exactly this token, or nil.
// Linear scan; token counts are tiny at this scale.
func (d *Document) FindUserByToken(token string) *User {
	for i := range d.Users {
		if d.Users[i].Token == token {
			return &d.Users[i]
		}
	}
	return nil
}
