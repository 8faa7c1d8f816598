package impl

import (
	"context"
	"testing"

	"farha/internal/domain/entity"
	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAdd(t *testing.T) {
	txManager, factory := newStubTxManager()
	customerID := uuid.New()

	factory.favorite.On("Create", mock.Anything, mock.MatchedBy(func(f *entity.FavoriteService) bool {
		return f.CustomerID == customerID && f.ServiceID == 7
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.FavoriteService).ID = 3
	}).Return(nil)

	srv := NewFavoriteService(txManager, testLogger())

	resp := srv.Add(context.Background(), customerID, 7)

	require.True(t, resp.Succeeded)
	require.NotNil(t, resp.Data)
	assert.Equal(t, uint(3), resp.Data.ID)
	assert.Equal(t, uint(7), resp.Data.ServiceID)
}

func TestFavoriteAdd_DuplicatePairIsConflict(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.favorite.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.ErrFavoriteExists.WrapMessage("favorite pair already exists"))

	srv := NewFavoriteService(txManager, testLogger())

	resp := srv.Add(context.Background(), uuid.New(), 7)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "could not add favorite", resp.Message)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "already favorited")
}

func TestFavoriteRemove(t *testing.T) {
	txManager, factory := newStubTxManager()
	customerID := uuid.New()

	factory.favorite.On("Delete", mock.Anything, customerID, uint(7)).Return(nil)

	srv := NewFavoriteService(txManager, testLogger())

	resp := srv.Remove(context.Background(), customerID, 7)

	require.True(t, resp.Succeeded)
	assert.Equal(t, "favorite removed successfully", resp.Message)
}

func TestFavoriteRemove_MissingPairIsSoftFailure(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.favorite.On("Delete", mock.Anything, mock.Anything, uint(7)).
		Return(repository.ErrFavoriteNotFound)

	srv := NewFavoriteService(txManager, testLogger())

	resp := srv.Remove(context.Background(), uuid.New(), 7)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "favorite not found", resp.Message)
}
