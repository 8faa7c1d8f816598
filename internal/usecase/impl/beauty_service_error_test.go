package impl

import (
	"context"
	"testing"

	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/service"
	"farha/internal/errors"
	"farha/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBeautyList_StoreFailureEnvelope(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.beauty.On("FindAll", mock.Anything).
		Return(nil, errors.New("connection refused"))

	srv := NewBeautyService(txManager, new(MockMediaStorage), testLogger())

	resp := srv.List(context.Background(), uuid.Nil, 1, 10, 0, 0)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "could not load beauty centers", resp.Message)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "connection refused")
}

func TestBeautyAdd_MediaFailureSkipsPersistence(t *testing.T) {
	txManager, factory := newStubTxManager()
	media := new(MockMediaStorage)

	media.On("SaveImages", mock.Anything, mock.Anything, "beauty-centers").
		Return(nil, domainerrors.NewMediaStorageError(errors.New("bucket unreachable"), "failed to store front.jpg"))

	srv := NewBeautyService(txManager, media, testLogger())

	resp := srv.Add(context.Background(), &usecase.AddBeautyCenterInput{
		Name:    "Shine",
		OwnerID: uuid.New(),
	})

	require.False(t, resp.Succeeded)
	assert.Equal(t, "could not add beauty center", resp.Message)
	factory.beauty.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBeautyAdd_PersistenceFailureSurfacesDeepestCause(t *testing.T) {
	txManager, factory := newStubTxManager()
	media := new(MockMediaStorage)

	media.On("SaveImages", mock.Anything, mock.Anything, "beauty-centers").
		Return([]string{}, nil)
	factory.beauty.On("Create", mock.Anything, mock.Anything).
		Return(errors.Wrap(errors.New("owner does not exist"), "failed to create beauty center"))

	srv := NewBeautyService(txManager, media, testLogger())

	resp := srv.Add(context.Background(), &usecase.AddBeautyCenterInput{
		Name:    "Shine",
		OwnerID: uuid.New(),
	})

	require.False(t, resp.Succeeded)
	require.NotEmpty(t, resp.Errors)
	// Wrapping layers are peeled off; the envelope carries the root cause.
	assert.Equal(t, "owner does not exist", resp.Errors[0])
}

func TestBeautyUpdate_MediaFailureRollsBackUnit(t *testing.T) {
	txManager, factory := newStubTxManager()
	media := new(MockMediaStorage)

	existing := center(9, "Old", 1, 10)
	factory.beauty.On("FindByID", mock.Anything, uint(9)).Return(existing, nil)
	factory.beauty.On("Update", mock.Anything, mock.Anything).Return(nil)
	factory.beauty.On("ImagePaths", mock.Anything, uint(9)).Return([]string{}, nil)
	media.On("SaveImages", mock.Anything, mock.Anything, "beauty-centers").
		Return(nil, domainerrors.NewMediaStorageError(errors.New("disk full"), "failed to store c.jpg"))

	srv := NewBeautyService(txManager, media, testLogger())

	resp := srv.Update(context.Background(), &usecase.AddBeautyCenterInput{
		Name:   "New",
		Images: []service.Upload{{Filename: "c.jpg", Content: []byte("x")}},
	}, 9)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "could not update beauty center", resp.Message)
	factory.beauty.AssertNotCalled(t, "AddImages", mock.Anything, mock.Anything, mock.Anything)
}
