package auth

import "context"

// Identity is the provider-verified part of a caller: the stable UID and the
// email baked into the credential. Profile fields (name, role) come from the
// users collection and are merged by the auth service.
type Identity struct {
	UID   string
	Email string
}

// Provider is the external identity provider: credential verification and
// token issuance live there, never in this process.
type Provider interface {
	VerifyToken(ctx context.Context, idToken string) (*Identity, error)
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	// RevokeTokens invalidates every session issued to the identity.
	RevokeTokens(ctx context.Context, uid string) error
}
