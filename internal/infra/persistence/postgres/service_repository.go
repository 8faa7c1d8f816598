package postgres

import (
	"context"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serviceRepository implements the domain.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByKind retrieves every service root row of the given kind.
func (repo *serviceRepository) FindByKind(ctx context.Context, kind entity.ServiceKind) ([]*entity.Service, error) {
	var rows []*model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("kind = ?", kind.String()).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services by kind")
	}

	services := make([]*entity.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, toServiceDomain(row))
	}

	return services, nil
}

// FindByID retrieves a service root row regardless of kind.
func (repo *serviceRepository) FindByID(ctx context.Context, id uint) (*entity.Service, error) {
	var row model.ServiceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&row), nil
}

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:            data.ID,
		Kind:          entity.ServiceKind(data.Kind),
		Name:          data.Name,
		Description:   data.Description,
		OwnerID:       data.OwnerID,
		GovernorateID: data.GovernorateID,
		CityID:        data.CityID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
