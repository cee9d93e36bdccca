package usecase

import (
	"context"
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

func newTagUsecase(t *testing.T) (*TagUsecase, *mock_port.MockTagRepositoryPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tagRepo := mock_port.NewMockTagRepositoryPort(ctrl)

	uc := NewTagUsecase(tagRepo, slog.Default()).(*TagUsecase)
	return uc, tagRepo
}

func TestTagUsecase_ListTags(t *testing.T) {
	uc, tagRepo := newTagUsecase(t)

	tagRepo.EXPECT().
		List(gomock.Any(), 20, 0).
		Return([]*domain.Tag{{ID: uuid.New(), Name: "golang"}}, nil)

	tags, err := uc.ListTags(context.Background(), domain.ListOptions{})

	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestTagUsecase_ListLinksByTag(t *testing.T) {
	t.Run("normalizes the name before lookup", func(t *testing.T) {
		uc, tagRepo := newTagUsecase(t)

		tagID := uuid.New()
		viewerID := uuid.New()
		tagRepo.EXPECT().
			GetByName(gomock.Any(), "golang").
			Return(&domain.Tag{ID: tagID, Name: "golang"}, nil)
		tagRepo.EXPECT().
			ListLinksByTag(gomock.Any(), tagID, viewerID, 20, 0).
			Return([]*domain.Link{{ID: uuid.New(), Title: "The Go Blog"}}, nil)

		links, err := uc.ListLinksByTag(context.Background(), viewerID, "  GoLang ", domain.ListOptions{})

		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("unknown tag yields an empty list", func(t *testing.T) {
		uc, tagRepo := newTagUsecase(t)

		tagRepo.EXPECT().
			GetByName(gomock.Any(), "nosuchtag").
			Return(nil, domain.ErrNotFound)

		links, err := uc.ListLinksByTag(context.Background(), uuid.Nil, "nosuchtag", domain.ListOptions{})

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("invalid tag name rejected", func(t *testing.T) {
		uc, _ := newTagUsecase(t)

		_, err := uc.ListLinksByTag(context.Background(), uuid.Nil, "", domain.ListOptions{})

		assertErrCode(t, err, apperrors.ErrCodeValidationFailed)
	})
}
