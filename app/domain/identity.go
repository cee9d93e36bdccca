package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// IdentityEmail is one address attached to an external identity.
type IdentityEmail struct {
	Address  string `json:"address"`
	Verified bool   `json:"verified"`
	Primary  bool   `json:"primary"`
}

// Identity is the identity provider's view of a user, as returned by a
// session lookup. It is the input to the user-sync reconciler.
type Identity struct {
	ID        uuid.UUID       `json:"id"`
	Emails    []IdentityEmail `json:"emails"`
	FirstName string          `json:"first_name,omitempty"`
	LastName  string          `json:"last_name,omitempty"`
	AvatarURL string          `json:"avatar_url,omitempty"`
}

// PrimaryEmail selects the address to index locally. Preference order:
// verified primary, any verified, first listed. The provider does not
// guarantee ordering, so position alone is never trusted when a
// verified address exists.
func (i *Identity) PrimaryEmail() (string, error) {
	if len(i.Emails) == 0 {
		return "", fmt.Errorf("identity %s has no email addresses", i.ID)
	}

	for _, e := range i.Emails {
		if e.Primary && e.Verified {
			return e.Address, nil
		}
	}
	for _, e := range i.Emails {
		if e.Verified {
			return e.Address, nil
		}
	}
	return i.Emails[0].Address, nil
}

// DisplayName concatenates the identity's name fields.
func (i *Identity) DisplayName() string {
	return concatName(i.FirstName, i.LastName)
}

// Session is an identity-provider session attached to a request.
type Session struct {
	ID       string    `json:"id"`
	Active   bool      `json:"active"`
	Identity *Identity `json:"identity"`
}
