package gateway

import (
	"context"
	"log/slog"

	"linkspace/app/domain"
	"linkspace/app/port"
	apperrors "linkspace/app/utils/errors"
)

// IdentityGateway implements port.IdentityGateway. It is the
// anti-corruption layer between the domain and the identity provider:
// provider failures come out as application errors, and sessions that
// resolve but are inactive are treated as no session at all.
type IdentityGateway struct {
	client port.IdentityClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.IdentityClient, logger *slog.Logger) port.IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// WhoAmI resolves the session attached to the request's cookies
func (g *IdentityGateway) WhoAmI(ctx context.Context, cookieHeader string) (*domain.Session, error) {
	session, err := g.client.WhoAmI(ctx, cookieHeader)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnauthorized, "authentication required", err)
	}

	return g.checkActive(session)
}

// GetSession resolves a bearer session token
func (g *IdentityGateway) GetSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	session, err := g.client.GetSession(ctx, sessionToken)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnauthorized, "authentication required", err)
	}

	return g.checkActive(session)
}

func (g *IdentityGateway) checkActive(session *domain.Session) (*domain.Session, error) {
	if session == nil || session.Identity == nil {
		return nil, apperrors.ErrInvalidSession
	}

	if !session.Active {
		g.logger.Debug("rejecting inactive session", "session_id", session.ID)
		return nil, apperrors.ErrInvalidSession
	}

	return session, nil
}
