package entity

// User is the session projection of an authenticated user. Role is advisory
// only; the backend enforces authorization.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
}

// CanManageTours reports whether the role unlocks the management screens and
// the update affordances on tour cards.
func (u *User) CanManageTours() bool {
	if u == nil {
		return false
	}
	return u.Role == "admin" || u.Role == "lead-guide"
}
