package gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"linkspace/app/domain"
	mock_port "linkspace/app/mocks"
	apperrors "linkspace/app/utils/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func activeSession() *domain.Session {
	return &domain.Session{
		ID:     "session-123",
		Active: true,
		Identity: &domain.Identity{
			ID: uuid.New(),
			Emails: []domain.IdentityEmail{
				{Address: "ada@example.com", Verified: true, Primary: true},
			},
		},
	}
}

func TestIdentityGateway_WhoAmI(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockIdentityClient)
		expectErr  bool
		errCode    apperrors.ErrorCode
	}{
		{
			name: "active session passes through",
			setupMocks: func(mockClient *mock_port.MockIdentityClient) {
				mockClient.EXPECT().
					WhoAmI(gomock.Any(), "ory_kratos_session=abc").
					Return(activeSession(), nil)
			},
		},
		{
			name: "provider error maps to unauthorized",
			setupMocks: func(mockClient *mock_port.MockIdentityClient) {
				mockClient.EXPECT().
					WhoAmI(gomock.Any(), "ory_kratos_session=abc").
					Return(nil, errors.New("401 from kratos"))
			},
			expectErr: true,
			errCode:   apperrors.ErrCodeUnauthorized,
		},
		{
			name: "inactive session rejected",
			setupMocks: func(mockClient *mock_port.MockIdentityClient) {
				session := activeSession()
				session.Active = false
				mockClient.EXPECT().
					WhoAmI(gomock.Any(), "ory_kratos_session=abc").
					Return(session, nil)
			},
			expectErr: true,
			errCode:   apperrors.ErrCodeInvalidSession,
		},
		{
			name: "session without identity rejected",
			setupMocks: func(mockClient *mock_port.MockIdentityClient) {
				mockClient.EXPECT().
					WhoAmI(gomock.Any(), "ory_kratos_session=abc").
					Return(&domain.Session{ID: "session-123", Active: true}, nil)
			},
			expectErr: true,
			errCode:   apperrors.ErrCodeInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock_port.NewMockIdentityClient(ctrl)
			tt.setupMocks(mockClient)

			g := NewIdentityGateway(mockClient, slog.Default())
			session, err := g.WhoAmI(context.Background(), "ory_kratos_session=abc")

			if tt.expectErr {
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, tt.errCode, appErr.Code)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "session-123", session.ID)
		})
	}
}

func TestIdentityGateway_GetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_port.NewMockIdentityClient(ctrl)
	mockClient.EXPECT().
		GetSession(gomock.Any(), "token-abc").
		Return(activeSession(), nil)

	g := NewIdentityGateway(mockClient, slog.Default())
	session, err := g.GetSession(context.Background(), "token-abc")

	require.NoError(t, err)
	assert.True(t, session.Active)
}
