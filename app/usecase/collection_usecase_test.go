package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"linkspace/app/domain"
	mock_port "linkspace/app/mocks"
	apperrors "linkspace/app/utils/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCollectionUsecase(t *testing.T) (*CollectionUsecase, *mock_port.MockCollectionRepositoryPort, *mock_port.MockLinkRepositoryPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	collectionRepo := mock_port.NewMockCollectionRepositoryPort(ctrl)
	linkRepo := mock_port.NewMockLinkRepositoryPort(ctrl)

	uc := NewCollectionUsecase(collectionRepo, linkRepo, slog.Default()).(*CollectionUsecase)
	return uc, collectionRepo, linkRepo
}

func storedCollection(ownerID uuid.UUID, isPublic bool) *domain.Collection {
	now := time.Now()
	return &domain.Collection{
		ID:        uuid.New(),
		Name:      "Reading list",
		IsPublic:  isPublic,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCollectionUsecase_CreateCollection(t *testing.T) {
	ownerID := uuid.New()

	t.Run("collections default to private", func(t *testing.T) {
		uc, collectionRepo, _ := newCollectionUsecase(t)

		collectionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		collection, err := uc.CreateCollection(context.Background(), ownerID, &domain.CreateCollectionRequest{
			Name: "Reading list",
		})

		require.NoError(t, err)
		assert.False(t, collection.IsPublic)
		assert.Equal(t, ownerID, collection.UserID)
	})

	t.Run("anonymous caller rejected", func(t *testing.T) {
		uc, _, _ := newCollectionUsecase(t)

		_, err := uc.CreateCollection(context.Background(), uuid.Nil, &domain.CreateCollectionRequest{
			Name: "Reading list",
		})

		assertErrCode(t, err, apperrors.ErrCodeUnauthorized)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		uc, _, _ := newCollectionUsecase(t)

		_, err := uc.CreateCollection(context.Background(), ownerID, &domain.CreateCollectionRequest{})

		assertErrCode(t, err, apperrors.ErrCodeValidationFailed)
	})
}

func TestCollectionUsecase_GetCollection_Visibility(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name     string
		actorID  uuid.UUID
		isPublic bool
		wantCode apperrors.ErrorCode
	}{
		{"owner sees private collection", ownerID, false, ""},
		{"stranger sees public collection", strangerID, true, ""},
		{"stranger gets not found for private collection", strangerID, false, apperrors.ErrCodeCollectionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, collectionRepo, _ := newCollectionUsecase(t)

			collection := storedCollection(ownerID, tt.isPublic)
			collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)

			got, err := uc.GetCollection(context.Background(), tt.actorID, collection.ID)

			if tt.wantCode != "" {
				assert.Nil(t, got)
				assertErrCode(t, err, tt.wantCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, collection.ID, got.ID)
		})
	}
}

func TestCollectionUsecase_AddLink(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	t.Run("owner adds a visible public link", func(t *testing.T) {
		uc, collectionRepo, linkRepo := newCollectionUsecase(t)

		collection := storedCollection(ownerID, false)
		link := storedLink(strangerID, true)

		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
		linkRepo.EXPECT().GetByID(gomock.Any(), link.ID).Return(link, nil)
		collectionRepo.EXPECT().AddLink(gomock.Any(), collection.ID, link.ID).Return(nil)

		err := uc.AddLink(context.Background(), ownerID, collection.ID, link.ID)

		assert.NoError(t, err)
	})

	t.Run("someone else's private link is invisible", func(t *testing.T) {
		uc, collectionRepo, linkRepo := newCollectionUsecase(t)

		collection := storedCollection(ownerID, false)
		link := storedLink(strangerID, false)

		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
		linkRepo.EXPECT().GetByID(gomock.Any(), link.ID).Return(link, nil)

		err := uc.AddLink(context.Background(), ownerID, collection.ID, link.ID)

		assertErrCode(t, err, apperrors.ErrCodeLinkNotFound)
	})

	t.Run("stranger cannot add to a public collection", func(t *testing.T) {
		uc, collectionRepo, _ := newCollectionUsecase(t)

		collection := storedCollection(ownerID, true)
		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)

		err := uc.AddLink(context.Background(), strangerID, collection.ID, uuid.New())

		assertErrCode(t, err, apperrors.ErrCodeForbidden)
	})

	t.Run("missing link", func(t *testing.T) {
		uc, collectionRepo, linkRepo := newCollectionUsecase(t)

		collection := storedCollection(ownerID, false)
		linkID := uuid.New()

		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
		linkRepo.EXPECT().GetByID(gomock.Any(), linkID).Return(nil, domain.ErrNotFound)

		err := uc.AddLink(context.Background(), ownerID, collection.ID, linkID)

		assertErrCode(t, err, apperrors.ErrCodeLinkNotFound)
	})
}

func TestCollectionUsecase_RemoveLink(t *testing.T) {
	ownerID := uuid.New()
	uc, collectionRepo, _ := newCollectionUsecase(t)

	collection := storedCollection(ownerID, false)
	linkID := uuid.New()

	collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
	collectionRepo.EXPECT().RemoveLink(gomock.Any(), collection.ID, linkID).Return(nil)

	err := uc.RemoveLink(context.Background(), ownerID, collection.ID, linkID)

	assert.NoError(t, err)
}

func TestCollectionUsecase_ListCollectionLinks(t *testing.T) {
	ownerID := uuid.New()

	t.Run("public collection listable by anyone", func(t *testing.T) {
		uc, collectionRepo, _ := newCollectionUsecase(t)

		collection := storedCollection(ownerID, true)
		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
		collectionRepo.EXPECT().
			ListLinks(gomock.Any(), collection.ID, 20, 0).
			Return([]*domain.Link{storedLink(ownerID, true)}, nil)

		links, err := uc.ListCollectionLinks(context.Background(), uuid.Nil, collection.ID, domain.ListOptions{})

		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("private collection hidden from strangers", func(t *testing.T) {
		uc, collectionRepo, _ := newCollectionUsecase(t)

		collection := storedCollection(ownerID, false)
		collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)

		_, err := uc.ListCollectionLinks(context.Background(), uuid.New(), collection.ID, domain.ListOptions{})

		assertErrCode(t, err, apperrors.ErrCodeCollectionNotFound)
	})
}

func TestCollectionUsecase_DeleteCollection_OwnershipMatrix(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	tests := []struct {
		name     string
		actorID  uuid.UUID
		isPublic bool
		wantCode apperrors.ErrorCode
	}{
		{"owner may delete", ownerID, false, ""},
		{"anonymous rejected", uuid.Nil, true, apperrors.ErrCodeUnauthorized},
		{"stranger forbidden on public collection", strangerID, true, apperrors.ErrCodeForbidden},
		{"stranger forbidden on private collection", strangerID, false, apperrors.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, collectionRepo, _ := newCollectionUsecase(t)

			collection := storedCollection(ownerID, tt.isPublic)
			collectionRepo.EXPECT().GetByID(gomock.Any(), collection.ID).Return(collection, nil)
			if tt.wantCode == "" {
				collectionRepo.EXPECT().Delete(gomock.Any(), collection.ID).Return(nil)
			}

			err := uc.DeleteCollection(context.Background(), tt.actorID, collection.ID)

			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assertErrCode(t, err, tt.wantCode)
			}
		})
	}
}
