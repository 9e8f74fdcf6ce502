package firebase

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"

	"huhu/internal/domain/entity"
)

// healthCheckUID is looked up to prove the Auth API is reachable.
const healthCheckUID = "huhu-health-check"

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks an ID token and returns the caller it identifies.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, idToken string) (*entity.AuthUser, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return UserFromToken(token), nil
}

// TestConnection succeeds when the Auth API answers, even with user-not-found.
func (f *FirebaseAuthClient) TestConnection(ctx context.Context) error {
	_, err := f.client.GetUser(ctx, healthCheckUID)
	if err != nil && !auth.IsUserNotFound(err) {
		return err
	}
	return nil
}

// UserFromToken reads the standard profile claims of a verified token.
func UserFromToken(token *auth.Token) *entity.AuthUser {
	user := &entity.AuthUser{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = strings.TrimSpace(email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		user.DisplayName = strings.TrimSpace(name)
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		user.PhotoURL = picture
	}
	return user
}
