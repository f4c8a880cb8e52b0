package auth

import (
	"context"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/projectify-app/projectify-backend/internal/auth/domain"
)

// FirebaseProvider implements Provider against the Firebase Admin SDK.
type FirebaseProvider struct {
	client *fbauth.Client
}

func NewFirebaseProvider(client *fbauth.Client) *FirebaseProvider {
	return &FirebaseProvider{client: client}
}

func (p *FirebaseProvider) VerifyToken(ctx context.Context, idToken string) (*Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	id := &Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = email
	}
	return id, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", domain.ErrEmailAlreadyExists
		}
		return "", err
	}
	return record.UID, nil
}

func (p *FirebaseProvider) CustomToken(ctx context.Context, uid string) (string, error) {
	return p.client.CustomToken(ctx, uid)
}

func (p *FirebaseProvider) RevokeTokens(ctx context.Context, uid string) error {
	return p.client.RevokeRefreshTokens(ctx, uid)
}
