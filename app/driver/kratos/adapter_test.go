package kratos

import (
	"testing"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestToDomainSession(t *testing.T) {
	identityID := uuid.New()

	tests := []struct {
		name      string
		session   *kratosclient.Session
		expectErr bool
		check     func(*testing.T, *kratosclient.Session)
	}{
		{
			name: "full session transforms",
			session: &kratosclient.Session{
				Id:     "session-123",
				Active: boolPtr(true),
				Identity: &kratosclient.Identity{
					Id: identityID.String(),
					Traits: map[string]interface{}{
						"email":   "ada@example.com",
						"picture": "https://example.com/ada.png",
						"name": map[string]interface{}{
							"first": "Ada",
							"last":  "Lovelace",
						},
					},
					VerifiableAddresses: []kratosclient.VerifiableIdentityAddress{
						{Value: "ada@example.com", Verified: true},
						{Value: "old@example.com", Verified: false},
					},
				},
			},
		},
		{
			name:      "nil session rejected",
			session:   nil,
			expectErr: true,
		},
		{
			name: "missing identity rejected",
			session: &kratosclient.Session{
				Id:     "session-123",
				Active: boolPtr(true),
			},
			expectErr: true,
		},
		{
			name: "malformed identity ID rejected",
			session: &kratosclient.Session{
				Id:     "session-123",
				Active: boolPtr(true),
				Identity: &kratosclient.Identity{
					Id: "not-a-uuid",
				},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := toDomainSession(tt.session)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "session-123", session.ID)
			assert.True(t, session.Active)
			assert.Equal(t, identityID, session.Identity.ID)
			assert.Equal(t, "Ada", session.Identity.FirstName)
			assert.Equal(t, "Lovelace", session.Identity.LastName)
			assert.Equal(t, "https://example.com/ada.png", session.Identity.AvatarURL)

			require.Len(t, session.Identity.Emails, 2)
			assert.True(t, session.Identity.Emails[0].Primary,
				"trait email should be marked primary")
			assert.True(t, session.Identity.Emails[0].Verified)
			assert.False(t, session.Identity.Emails[1].Primary)
		})
	}
}

func TestToDomainIdentity_FallsBackToTraitEmail(t *testing.T) {
	identityID := uuid.New()

	identity, err := toDomainIdentity(&kratosclient.Identity{
		Id: identityID.String(),
		Traits: map[string]interface{}{
			"email": "ada@example.com",
		},
	})

	require.NoError(t, err)
	require.Len(t, identity.Emails, 1)
	assert.Equal(t, "ada@example.com", identity.Emails[0].Address)
	assert.True(t, identity.Emails[0].Primary)
	assert.False(t, identity.Emails[0].Verified,
		"trait-only email is unverified")
}

func TestToDomainSession_InactiveSession(t *testing.T) {
	identityID := uuid.New()

	session, err := toDomainSession(&kratosclient.Session{
		Id: "session-456",
		Identity: &kratosclient.Identity{
			Id:     identityID.String(),
			Traits: map[string]interface{}{"email": "ada@example.com"},
		},
	})

	require.NoError(t, err)
	assert.False(t, session.Active, "nil active flag means inactive")
}
