package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"linkspace/app/domain"
)

// IdentityClient is the raw identity provider client. Implemented by
// the Kratos driver; transforms provider responses into domain types.
type IdentityClient interface {
	WhoAmI(ctx context.Context, cookieHeader string) (*domain.Session, error)
	GetSession(ctx context.Context, sessionToken string) (*domain.Session, error)
	HealthCheck(ctx context.Context) error
}

// IdentityGateway defines the identity lookup interface the usecases
// and middleware consume. It wraps IdentityClient with application
// error mapping.
type IdentityGateway interface {
	// WhoAmI resolves the session attached to the request's cookies.
	WhoAmI(ctx context.Context, cookieHeader string) (*domain.Session, error)

	// GetSession resolves a bearer session token.
	GetSession(ctx context.Context, sessionToken string) (*domain.Session, error)
}
