package postgres

import (
	"context"

	"farha/internal/domain/entity"
	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/repository"
	"farha/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ServiceIDsOf returns the set of service identifiers the customer has favorited.
func (repo *favoriteRepository) ServiceIDsOf(ctx context.Context, customerID uuid.UUID) (map[uint]struct{}, error) {
	var serviceIDs []uint
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteServiceModel{}).
		Where("customer_id = ?", customerID).
		Pluck("service_id", &serviceIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite service ids")
	}

	ids := make(map[uint]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		ids[id] = struct{}{}
	}

	return ids, nil
}

// Create persists a new favorite. The composite unique index turns a racing
// duplicate into a conflict instead of a second row.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteService) error {
	row := &model.FavoriteServiceModel{
		CustomerID: favorite.CustomerID,
		ServiceID:  favorite.ServiceID,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteExists.WrapMessage("favorite pair already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound.WrapMessage("favorited service or customer does not exist")
		}

		return domainerrors.NewPersistenceError(err, "failed to create favorite")
	}

	favorite.ID = row.ID
	favorite.CreatedAt = row.CreatedAt

	return nil
}

// Delete removes the favorite for the given pair.
func (repo *favoriteRepository) Delete(ctx context.Context, customerID uuid.UUID, serviceID uint) error {
	result := repo.db.WithContext(ctx).
		Where("customer_id = ? AND service_id = ?", customerID, serviceID).
		Delete(&model.FavoriteServiceModel{})
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}
