package firebase

import (
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

func TestUserFromToken(t *testing.T) {
	user := UserFromToken(&auth.Token{
		UID: "u1",
		Claims: map[string]interface{}{
			"email":   " ama@example.com ",
			"name":    "Ama Mensah",
			"picture": "https://img/ama.png",
		},
	})

	assert.Equal(t, "u1", user.UID)
	assert.Equal(t, "ama@example.com", user.Email)
	assert.Equal(t, "Ama Mensah", user.DisplayName)
	assert.Equal(t, "https://img/ama.png", user.PhotoURL)
}

func TestUserFromTokenWithoutClaims(t *testing.T) {
	user := UserFromToken(&auth.Token{UID: "u2"})

	assert.Equal(t, "u2", user.UID)
	assert.Empty(t, user.Email)
	assert.Empty(t, user.DisplayName)
}
