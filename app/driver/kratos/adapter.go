package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"linkspace/app/domain"
	"linkspace/app/port"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
)

// ClientAdapter adapts the Kratos client to port.IdentityClient,
// transforming provider responses into domain types.
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.IdentityClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// WhoAmI resolves the session carried by the request's cookie header
func (a *ClientAdapter) WhoAmI(ctx context.Context, cookieHeader string) (*domain.Session, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		Cookie(cookieHeader).
		Execute()
	if err != nil {
		a.logger.Debug("whoami lookup failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	return toDomainSession(resp)
}

// GetSession resolves a bearer session token
func (a *ClientAdapter) GetSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		a.logger.Debug("session token lookup failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	return toDomainSession(resp)
}

// HealthCheck checks provider reachability
func (a *ClientAdapter) HealthCheck(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

// toDomainSession transforms a Kratos session into the domain model
func toDomainSession(session *kratosclient.Session) (*domain.Session, error) {
	if session == nil {
		return nil, fmt.Errorf("kratos returned an empty session")
	}

	identity, err := toDomainIdentity(session.Identity)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		ID:       session.Id,
		Active:   session.Active != nil && *session.Active,
		Identity: identity,
	}, nil
}

// toDomainIdentity transforms a Kratos identity. The identity ID is
// the subject UUID the rest of the system keys on, so a malformed ID
// is an error, not something to paper over.
func toDomainIdentity(kratosIdentity *kratosclient.Identity) (*domain.Identity, error) {
	if kratosIdentity == nil {
		return nil, fmt.Errorf("session has no identity")
	}

	id, err := uuid.Parse(kratosIdentity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity ID %q: %w", kratosIdentity.Id, err)
	}

	traits, _ := kratosIdentity.Traits.(map[string]interface{})
	traitEmail := stringTrait(traits, "email")

	identity := &domain.Identity{
		ID:        id,
		AvatarURL: stringTrait(traits, "picture"),
	}

	if name, ok := traits["name"].(map[string]interface{}); ok {
		identity.FirstName = stringTrait(name, "first")
		identity.LastName = stringTrait(name, "last")
	}

	for _, address := range kratosIdentity.VerifiableAddresses {
		identity.Emails = append(identity.Emails, domain.IdentityEmail{
			Address:  address.Value,
			Verified: address.Verified,
			Primary:  address.Value == traitEmail,
		})
	}

	// Schemas without verifiable addresses still carry the email trait.
	if len(identity.Emails) == 0 && traitEmail != "" {
		identity.Emails = append(identity.Emails, domain.IdentityEmail{
			Address: traitEmail,
			Primary: true,
		})
	}

	return identity, nil
}

func stringTrait(traits map[string]interface{}, key string) string {
	if traits == nil {
		return ""
	}
	value, _ := traits[key].(string)
	return value
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
