package impl

import (
	"context"
	"testing"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serviceRoot(id uint, kind entity.ServiceKind, name string) *entity.Service {
	return &entity.Service{ID: id, Kind: kind, Name: name}
}

func TestCatalogListByKind(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.services.On("FindByKind", mock.Anything, entity.KindHall).
		Return([]*entity.Service{
			serviceRoot(4, entity.KindHall, "Grand Hall"),
			serviceRoot(2, entity.KindHall, "Garden Hall"),
		}, nil)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.ListByKind(context.Background(), entity.KindHall, 1, 10)

	require.True(t, resp.Succeeded)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, uint(2), resp.Data[0].ID)
	assert.Equal(t, "hall", resp.Data[0].Kind)
	require.NotNil(t, resp.PaginationInfo)
	assert.Equal(t, 2, resp.PaginationInfo.TotalCount)
}

func TestCatalogListByKind_UnknownKind(t *testing.T) {
	txManager, factory := newStubTxManager()

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.ListByKind(context.Background(), entity.ServiceKind("boats"), 1, 10)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "unknown service kind", resp.Message)
	factory.services.AssertNotCalled(t, "FindByKind", mock.Anything, mock.Anything)
}

func TestCatalogListByKind_EmptyIsSoftFailure(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.services.On("FindByKind", mock.Anything, entity.KindCar).
		Return([]*entity.Service{}, nil)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.ListByKind(context.Background(), entity.KindCar, 1, 10)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "no services found", resp.Message)
}

func TestCatalogListByKind_Pagination(t *testing.T) {
	txManager, factory := newStubTxManager()

	roots := make([]*entity.Service, 0, 25)
	for i := 1; i <= 25; i++ {
		roots = append(roots, serviceRoot(uint(i), entity.KindPhotography, "Studio"))
	}
	factory.services.On("FindByKind", mock.Anything, entity.KindPhotography).
		Return(roots, nil)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.ListByKind(context.Background(), entity.KindPhotography, 3, 10)

	require.True(t, resp.Succeeded)
	require.Len(t, resp.Data, 5)
	assert.Equal(t, uint(21), resp.Data[0].ID)
	require.NotNil(t, resp.PaginationInfo)
	assert.Equal(t, 25, resp.PaginationInfo.TotalCount)
	assert.Equal(t, 3, resp.PaginationInfo.TotalPages)
}

func TestCatalogGetByID(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.services.On("FindByID", mock.Anything, uint(7)).
		Return(serviceRoot(7, entity.KindHall, "Grand Hall"), nil)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.GetByID(context.Background(), entity.KindHall, 7)

	require.True(t, resp.Succeeded)
	require.NotNil(t, resp.Data)
	assert.Equal(t, uint(7), resp.Data.ID)
	assert.Equal(t, "hall", resp.Data.Kind)
	assert.Equal(t, "Grand Hall", resp.Data.Name)
}

func TestCatalogGetByID_KindMismatchIsNotFound(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.services.On("FindByID", mock.Anything, uint(7)).
		Return(serviceRoot(7, entity.KindHall, "Grand Hall"), nil)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.GetByID(context.Background(), entity.KindCar, 7)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "service not found", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	txManager, factory := newStubTxManager()

	factory.services.On("FindByID", mock.Anything, uint(404)).
		Return(nil, repository.ErrServiceNotFound)

	srv := NewCatalogService(txManager, testLogger())

	resp := srv.GetByID(context.Background(), entity.KindHall, 404)

	require.False(t, resp.Succeeded)
	assert.Equal(t, "service not found", resp.Message)
}
