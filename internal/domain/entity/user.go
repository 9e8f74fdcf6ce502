package entity

import "strings"

// AuthUser is the caller identity taken from a verified ID token.
type AuthUser struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

// NameParts splits the display name into first and last name.
func (u AuthUser) NameParts() (string, string) {
	parts := strings.Fields(u.DisplayName)
	first, last := "", ""
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
