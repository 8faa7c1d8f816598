package postgres

import (
	"context"

	"farha/internal/domain/entity"
	domainerrors "farha/internal/domain/errors"
	"farha/internal/domain/repository"
	"farha/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// beautyRepository implements the domain.BeautyRepository interface using GORM.
type beautyRepository struct {
	db *gorm.DB
}

// NewBeautyRepository is the constructor for beautyRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewBeautyRepository(db *gorm.DB) repository.BeautyRepository {
	return &beautyRepository{db: db}
}

func (repo *beautyRepository) withPreloads(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Service").
		Preload("Images").
		Preload("SubServices").
		Preload("Reviews")
}

// FindAll retrieves every beauty center with its dependent collections.
func (repo *beautyRepository) FindAll(ctx context.Context) ([]*entity.BeautyCenter, error) {
	var rows []*model.BeautyCenterModel
	if err := repo.withPreloads(ctx).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list beauty centers")
	}

	return toBeautyCenterDomains(rows), nil
}

// FindByName retrieves the beauty centers whose root name contains the given
// fragment, case-insensitively.
func (repo *beautyRepository) FindByName(ctx context.Context, name string) ([]*entity.BeautyCenter, error) {
	var serviceIDs []uint
	err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("kind = ? AND name ILIKE ?", entity.KindBeautyCenter.String(), "%"+name+"%").
		Pluck("id", &serviceIDs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search beauty centers by name")
	}
	if len(serviceIDs) == 0 {
		return nil, nil
	}

	var rows []*model.BeautyCenterModel
	if err := repo.withPreloads(ctx).Where("service_id IN ?", serviceIDs).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load beauty centers by name")
	}

	return toBeautyCenterDomains(rows), nil
}

// FindByID retrieves a single beauty center, favorites included so callers
// can tell whether any customer has bookmarked it.
func (repo *beautyRepository) FindByID(ctx context.Context, id uint) (*entity.BeautyCenter, error) {
	var row model.BeautyCenterModel
	err := repo.withPreloads(ctx).
		Preload("Service.Favorites").
		Where("service_id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBeautyCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find beauty center by id")
	}

	return toBeautyCenterDomain(&row), nil
}

// Create persists a new beauty center together with its root row, image rows
// and sub-service rows as one logical unit.
func (repo *beautyRepository) Create(ctx context.Context, center *entity.BeautyCenter) error {
	row := fromBeautyCenterDomain(center)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidOwnerReference.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required beauty center fields")
		}

		return domainerrors.NewPersistenceError(err, "failed to create beauty center")
	}

	center.ID = row.ServiceID
	if row.Service != nil {
		center.CreatedAt = row.Service.CreatedAt
		center.UpdatedAt = row.Service.UpdatedAt
	}
	for i := range row.Images {
		center.Images[i].ID = row.Images[i].ID
		center.Images[i].BeautyCenterID = row.ServiceID
	}
	for i := range row.SubServices {
		center.SubServices[i].ID = row.SubServices[i].ID
		center.SubServices[i].BeautyCenterID = row.ServiceID
	}

	return nil
}

// Update overwrites the scalar fields of the root row. Dependent collections
// are managed through their own operations.
func (repo *beautyRepository) Update(ctx context.Context, center *entity.BeautyCenter) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ? AND kind = ?", center.ID, entity.KindBeautyCenter.String()).
		Updates(map[string]any{
			"name":           center.Name,
			"description":    center.Description,
			"governorate_id": center.GovernorateID,
			"city_id":        center.CityID,
		})
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to update beauty center")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBeautyCenterNotFound
	}

	return nil
}

// Delete removes the root services row; the concrete row and every dependent
// collection follow through the declared referential actions.
func (repo *beautyRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, entity.KindBeautyCenter.String()).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to delete beauty center")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBeautyCenterNotFound
	}

	return nil
}

// ImagePaths returns the stored media paths of a beauty center in attachment order.
func (repo *beautyRepository) ImagePaths(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := repo.db.WithContext(ctx).
		Model(&model.BeautyCenterImageModel{}).
		Where("beauty_center_id = ?", id).
		Order("id").
		Pluck("path", &paths).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load beauty center image paths")
	}

	return paths, nil
}

// AddImages attaches one image row per path to an existing beauty center.
func (repo *beautyRepository) AddImages(ctx context.Context, id uint, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	rows := make([]model.BeautyCenterImageModel, 0, len(paths))
	for _, path := range paths {
		rows = append(rows, model.BeautyCenterImageModel{BeautyCenterID: id, Path: path})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBeautyCenterNotFound
		}

		return domainerrors.NewPersistenceError(err, "failed to attach beauty center images")
	}

	return nil
}

// CreateSubService attaches a named sub-offering to a beauty center.
func (repo *beautyRepository) CreateSubService(ctx context.Context, sub *entity.SubService) error {
	row := &model.SubServiceModel{
		BeautyCenterID: sub.BeautyCenterID,
		Name:           sub.Name,
		Description:    sub.Description,
		Price:          sub.Price,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBeautyCenterNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required sub-service fields")
		}

		return domainerrors.NewPersistenceError(err, "failed to create sub-service")
	}

	sub.ID = row.ID

	return nil
}

// FindSubService retrieves a sub-service by parent and own identifier.
func (repo *beautyRepository) FindSubService(ctx context.Context, beautyCenterID, subServiceID uint) (*entity.SubService, error) {
	var row model.SubServiceModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND beauty_center_id = ?", subServiceID, beautyCenterID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find sub-service")
	}

	return toSubServiceDomain(&row), nil
}

// RemoveSubService detaches a sub-service association.
func (repo *beautyRepository) RemoveSubService(ctx context.Context, sub *entity.SubService) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND beauty_center_id = ?", sub.ID, sub.BeautyCenterID).
		Delete(&model.SubServiceModel{})
	if result.Error != nil {
		return domainerrors.NewPersistenceError(result.Error, "failed to remove sub-service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubServiceNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toBeautyCenterDomain converts a GORM BeautyCenterModel to a domain BeautyCenter entity.
func toBeautyCenterDomain(data *model.BeautyCenterModel) *entity.BeautyCenter {
	if data == nil {
		return nil
	}

	center := &entity.BeautyCenter{}
	if data.Service != nil {
		center.Service = entity.Service{
			ID:            data.Service.ID,
			Kind:          entity.ServiceKind(data.Service.Kind),
			Name:          data.Service.Name,
			Description:   data.Service.Description,
			OwnerID:       data.Service.OwnerID,
			GovernorateID: data.Service.GovernorateID,
			CityID:        data.Service.CityID,
			CreatedAt:     data.Service.CreatedAt,
			UpdatedAt:     data.Service.UpdatedAt,
		}

		center.Favorites = make([]entity.FavoriteService, 0, len(data.Service.Favorites))
		for _, fav := range data.Service.Favorites {
			center.Favorites = append(center.Favorites, entity.FavoriteService{
				ID:         fav.ID,
				CustomerID: fav.CustomerID,
				ServiceID:  fav.ServiceID,
				CreatedAt:  fav.CreatedAt,
			})
		}
	}
	center.ID = data.ServiceID

	center.Images = make([]entity.BeautyCenterImage, 0, len(data.Images))
	for _, img := range data.Images {
		center.Images = append(center.Images, entity.BeautyCenterImage{
			ID:             img.ID,
			BeautyCenterID: img.BeautyCenterID,
			Path:           img.Path,
		})
	}

	center.SubServices = make([]entity.SubService, 0, len(data.SubServices))
	for _, sub := range data.SubServices {
		center.SubServices = append(center.SubServices, *toSubServiceDomain(&sub))
	}

	center.Reviews = make([]entity.Review, 0, len(data.Reviews))
	for _, review := range data.Reviews {
		center.Reviews = append(center.Reviews, entity.Review{
			ID:             review.ID,
			BeautyCenterID: review.BeautyCenterID,
			CustomerID:     review.CustomerID,
			Rating:         review.Rating,
			Comment:        review.Comment,
			CreatedAt:      review.CreatedAt,
		})
	}

	return center
}

func toBeautyCenterDomains(rows []*model.BeautyCenterModel) []*entity.BeautyCenter {
	centers := make([]*entity.BeautyCenter, 0, len(rows))
	for _, row := range rows {
		centers = append(centers, toBeautyCenterDomain(row))
	}

	return centers
}

// toSubServiceDomain converts a GORM SubServiceModel to a domain SubService entity.
func toSubServiceDomain(data *model.SubServiceModel) *entity.SubService {
	if data == nil {
		return nil
	}

	return &entity.SubService{
		ID:             data.ID,
		BeautyCenterID: data.BeautyCenterID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
	}
}

// fromBeautyCenterDomain converts a domain BeautyCenter entity to a GORM model
// for persistence, root row included.
func fromBeautyCenterDomain(data *entity.BeautyCenter) *model.BeautyCenterModel {
	if data == nil {
		return nil
	}

	row := &model.BeautyCenterModel{
		ServiceID: data.ID,
		Service: &model.ServiceModel{
			ID:            data.ID,
			Kind:          entity.KindBeautyCenter.String(),
			Name:          data.Name,
			Description:   data.Description,
			OwnerID:       data.OwnerID,
			GovernorateID: data.GovernorateID,
			CityID:        data.CityID,
		},
	}

	row.Images = make([]model.BeautyCenterImageModel, 0, len(data.Images))
	for _, img := range data.Images {
		row.Images = append(row.Images, model.BeautyCenterImageModel{Path: img.Path})
	}

	row.SubServices = make([]model.SubServiceModel, 0, len(data.SubServices))
	for _, sub := range data.SubServices {
		row.SubServices = append(row.SubServices, model.SubServiceModel{
			Name:        sub.Name,
			Description: sub.Description,
			Price:       sub.Price,
		})
	}

	return row
}
