// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/domain/service"
	"farha/internal/errors"
	"farha/internal/pagination"
	"farha/internal/usecase"

	"github.com/google/uuid"
)

// beautyImageCategory tags beauty center media in the placement store.
const beautyImageCategory = "beauty-centers"

// beautyService implements the BeautyUsecase interface.
type beautyService struct {
	txManager repository.TransactionManager
	media     service.MediaStorage
	logger    *slog.Logger
}

// NewBeautyService is the constructor for beautyService.
func NewBeautyService(
	txManager repository.TransactionManager,
	media service.MediaStorage,
	logger *slog.Logger,
) usecase.BeautyUsecase {
	return &beautyService{
		txManager: txManager,
		media:     media,
		logger:    logger,
	}
}

// List loads every beauty center, applies the optional equality filters,
// computes the requesting customer's favorite set once up front, then orders,
// paginates and maps the surviving rows.
func (srv *beautyService) List(ctx context.Context, customerID uuid.UUID, page, pageSize, governorateID, cityID int) *usecase.Response[[]usecase.BeautyCenterDTO] {
	srv.logger.Debug("Listing beauty centers",
		"customerID", customerID, "page", page, "governorateID", governorateID, "cityID", cityID)

	var (
		centers   []*entity.BeautyCenter
		favorites map[uint]struct{}
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		centers, err = repoFactory.BeautyRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load beauty centers")
		}

		favorites, err = repoFactory.FavoriteRepo().ServiceIDsOf(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to load favorite index")
		}

		return nil
	})
	if err != nil {
		return failure[[]usecase.BeautyCenterDTO]("could not load beauty centers", err)
	}

	filtered := make([]*entity.BeautyCenter, 0, len(centers))
	for _, center := range centers {
		if governorateID > 0 && center.GovernorateID != governorateID {
			continue
		}
		if cityID > 0 && center.CityID != cityID {
			continue
		}
		filtered = append(filtered, center)
	}

	// Zero matches before pagination is a domain outcome, not an error.
	if len(filtered) == 0 {
		return usecase.Fail[[]usecase.BeautyCenterDTO]("no beauty centers found")
	}

	// Deterministic order before slicing; the store does not guarantee one.
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	pageItems, info := pagination.Paginate(filtered, page, pageSize)

	dtos := make([]usecase.BeautyCenterDTO, 0, len(pageItems))
	for _, center := range pageItems {
		_, isFavorite := favorites[center.ID]
		dtos = append(dtos, toBeautyCenterDTO(center, isFavorite))
	}

	return usecase.OkPaged(dtos, "beauty centers retrieved successfully", info)
}

// GetByName searches beauty centers by name fragment.
func (srv *beautyService) GetByName(ctx context.Context, name string) *usecase.Response[[]usecase.BeautyCenterDTO] {
	var centers []*entity.BeautyCenter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		centers, err = repoFactory.BeautyRepo().FindByName(ctx, name)

		return errors.Wrap(err, "failed to search beauty centers by name")
	})
	if err != nil {
		return failure[[]usecase.BeautyCenterDTO]("could not search beauty centers", err)
	}

	if len(centers) == 0 {
		return usecase.Fail[[]usecase.BeautyCenterDTO]("no beauty center matches the given name")
	}

	dtos := make([]usecase.BeautyCenterDTO, 0, len(centers))
	for _, center := range centers {
		dtos = append(dtos, toBeautyCenterDTO(center, false))
	}

	return usecase.Ok(dtos, "beauty centers retrieved successfully")
}

// GetByID serves the detail view.
func (srv *beautyService) GetByID(ctx context.Context, id uint) *usecase.Response[*usecase.BeautyCenterDTO] {
	var center *entity.BeautyCenter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		center, err = repoFactory.BeautyRepo().FindByID(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrBeautyCenterNotFound) {
			return usecase.Fail[*usecase.BeautyCenterDTO]("beauty center not found")
		}

		return failure[*usecase.BeautyCenterDTO]("could not load beauty center", err)
	}

	dto := toBeautyCenterDTO(center, favoritedByAnyCustomer(center))

	return usecase.Ok(&dto, "beauty center retrieved successfully")
}

// Add creates a beauty center: uploaded images go to media placement first,
// then the entity and one image row per returned path are inserted as a
// single unit of work.
//
// If the insert fails after placement succeeded, the stored blobs are
// orphaned; reconciling those is the media boundary's concern, not the
// catalog's.
func (srv *beautyService) Add(ctx context.Context, input *usecase.AddBeautyCenterInput) *usecase.Response[*usecase.BeautyCenterDTO] {
	srv.logger.Info("Adding beauty center", "name", input.Name, "ownerID", input.OwnerID)

	paths, err := srv.media.SaveImages(ctx, input.Images, beautyImageCategory)
	if err != nil {
		return failure[*usecase.BeautyCenterDTO]("could not add beauty center", err)
	}

	center := fromAddBeautyCenterInput(input)
	center.Images = imageRows(paths)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BeautyRepo().Create(ctx, center)
	})
	if err != nil {
		return failure[*usecase.BeautyCenterDTO]("could not add beauty center", err)
	}

	dto := toBeautyCenterDTO(center, false)

	return usecase.Ok(&dto, "beauty center added successfully")
}

// Update overwrites scalar fields unconditionally and reconciles the image
// collection: freshly placed paths not yet attached are appended. Images are
// additive only through this path.
func (srv *beautyService) Update(ctx context.Context, input *usecase.AddBeautyCenterInput, id uint) *usecase.Response[*usecase.BeautyCenterDTO] {
	srv.logger.Info("Updating beauty center", "id", id)

	var updated *entity.BeautyCenter

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.BeautyRepo()

		center, err := repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		center.Name = input.Name
		center.Description = input.Description
		center.GovernorateID = input.GovernorateID
		center.CityID = input.CityID

		if err := repo.Update(ctx, center); err != nil {
			return errors.Wrap(err, "failed to update beauty center")
		}

		if len(input.Images) > 0 {
			existing, err := repo.ImagePaths(ctx, id)
			if err != nil {
				return errors.Wrap(err, "failed to load existing image paths")
			}

			saved, err := srv.media.SaveImages(ctx, input.Images, beautyImageCategory)
			if err != nil {
				return err
			}

			if err := repo.AddImages(ctx, id, missingPaths(existing, saved)); err != nil {
				return errors.Wrap(err, "failed to attach new images")
			}
		}

		updated, err = repo.FindByID(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrBeautyCenterNotFound) {
			return usecase.Fail[*usecase.BeautyCenterDTO]("beauty center not found")
		}

		return failure[*usecase.BeautyCenterDTO]("could not update beauty center", err)
	}

	dto := toBeautyCenterDTO(updated, favoritedByAnyCustomer(updated))

	return usecase.Ok(&dto, "beauty center updated successfully")
}

// DeleteByID removes the beauty center. The store's referential actions
// cascade into images, sub-services, reviews and favorites; the orchestrator
// does not walk dependents itself. Stored media is not cleaned up here.
func (srv *beautyService) DeleteByID(ctx context.Context, id uint) *usecase.Response[*usecase.BeautyCenterDTO] {
	srv.logger.Info("Deleting beauty center", "id", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.BeautyRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrBeautyCenterNotFound) {
			return usecase.Fail[*usecase.BeautyCenterDTO]("beauty center not found")
		}

		return failure[*usecase.BeautyCenterDTO]("could not delete beauty center", err)
	}

	return usecase.Ok[*usecase.BeautyCenterDTO](nil, "beauty center deleted successfully")
}

// AddSubServices attaches each listed sub-offering, all inside one commit.
func (srv *beautyService) AddSubServices(ctx context.Context, inputs []usecase.SubServiceInput) *usecase.Response[[]usecase.SubServiceDTO] {
	subs := make([]*entity.SubService, 0, len(inputs))
	for i := range inputs {
		subs = append(subs, fromSubServiceInput(&inputs[i]))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.BeautyRepo()
		for _, sub := range subs {
			if err := repo.CreateSubService(ctx, sub); err != nil {
				return errors.Wrap(err, "failed to create sub-service")
			}
		}

		return nil
	})
	if err != nil {
		return failure[[]usecase.SubServiceDTO]("could not add sub-services", err)
	}

	dtos := make([]usecase.SubServiceDTO, 0, len(subs))
	for _, sub := range subs {
		dtos = append(dtos, toSubServiceDTO(sub))
	}

	return usecase.Ok(dtos, "sub-services added successfully")
}

// RemoveSubService detaches an existing sub-offering from its parent.
func (srv *beautyService) RemoveSubService(ctx context.Context, beautyCenterID, subServiceID uint) *usecase.Response[*usecase.SubServiceDTO] {
	var removed *entity.SubService

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.BeautyRepo()

		sub, err := repo.FindSubService(ctx, beautyCenterID, subServiceID)
		if err != nil {
			return err
		}
		removed = sub

		return repo.RemoveSubService(ctx, sub)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSubServiceNotFound) {
			return usecase.Fail[*usecase.SubServiceDTO]("requested sub-service not found")
		}

		return failure[*usecase.SubServiceDTO]("could not remove sub-service", err)
	}

	dto := toSubServiceDTO(removed)

	return usecase.Ok(&dto, "sub-service removed successfully")
}
