package impl

import (
	"context"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBeautyRepository mocks the BeautyRepository interface
type MockBeautyRepository struct {
	mock.Mock
}

func (m *MockBeautyRepository) FindAll(ctx context.Context) ([]*entity.BeautyCenter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BeautyCenter), args.Error(1)
}

func (m *MockBeautyRepository) FindByName(ctx context.Context, name string) ([]*entity.BeautyCenter, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BeautyCenter), args.Error(1)
}

func (m *MockBeautyRepository) FindByID(ctx context.Context, id uint) (*entity.BeautyCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BeautyCenter), args.Error(1)
}

func (m *MockBeautyRepository) Create(ctx context.Context, center *entity.BeautyCenter) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockBeautyRepository) Update(ctx context.Context, center *entity.BeautyCenter) error {
	args := m.Called(ctx, center)
	return args.Error(0)
}

func (m *MockBeautyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBeautyRepository) ImagePaths(ctx context.Context, id uint) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBeautyRepository) AddImages(ctx context.Context, id uint, paths []string) error {
	args := m.Called(ctx, id, paths)
	return args.Error(0)
}

func (m *MockBeautyRepository) CreateSubService(ctx context.Context, sub *entity.SubService) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockBeautyRepository) FindSubService(ctx context.Context, beautyCenterID, subServiceID uint) (*entity.SubService, error) {
	args := m.Called(ctx, beautyCenterID, subServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SubService), args.Error(1)
}

func (m *MockBeautyRepository) RemoveSubService(ctx context.Context, sub *entity.SubService) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// MockServiceRepository mocks the ServiceRepository interface
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindByKind(ctx context.Context, kind entity.ServiceKind) ([]*entity.Service, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uint) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Service), args.Error(1)
}

// MockFavoriteRepository mocks the FavoriteRepository interface
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ServiceIDsOf(ctx context.Context, customerID uuid.UUID) (map[uint]struct{}, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]struct{}), args.Error(1)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteService) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, customerID uuid.UUID, serviceID uint) error {
	args := m.Called(ctx, customerID, serviceID)
	return args.Error(0)
}

// MockOwnerRepository mocks the OwnerRepository interface
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Owner), args.Error(1)
}

// MockOTPRepository mocks the OTPRepository interface
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *entity.UserOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

// MockMediaStorage mocks the MediaStorage collaborator
type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) SaveImages(ctx context.Context, files []service.Upload, category string) ([]string, error) {
	args := m.Called(ctx, files, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockCodeGenerator mocks the CodeGenerator collaborator
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) Code() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// stubFactory hands each mocked repository to the code under test.
type stubFactory struct {
	beauty   *MockBeautyRepository
	services *MockServiceRepository
	favorite *MockFavoriteRepository
	owner    *MockOwnerRepository
	otps     *MockOTPRepository
}

func (f *stubFactory) BeautyRepo() repository.BeautyRepository     { return f.beauty }
func (f *stubFactory) ServiceRepo() repository.ServiceRepository   { return f.services }
func (f *stubFactory) FavoriteRepo() repository.FavoriteRepository { return f.favorite }
func (f *stubFactory) OwnerRepo() repository.OwnerRepository       { return f.owner }
func (f *stubFactory) OTPRepo() repository.OTPRepository           { return f.otps }

// stubTxManager runs the unit of work directly against the stub factory,
// with no transaction underneath.
type stubTxManager struct {
	factory *stubFactory
}

func (tm *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

func newStubTxManager() (*stubTxManager, *stubFactory) {
	factory := &stubFactory{
		beauty:   new(MockBeautyRepository),
		services: new(MockServiceRepository),
		favorite: new(MockFavoriteRepository),
		owner:    new(MockOwnerRepository),
		otps:     new(MockOTPRepository),
	}

	return &stubTxManager{factory: factory}, factory
}
