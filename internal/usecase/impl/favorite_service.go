package impl

import (
	"context"
	"log/slog"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/errors"
	"farha/internal/usecase"

	"github.com/google/uuid"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(txManager repository.TransactionManager, logger *slog.Logger) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager: txManager,
		logger:    logger,
	}
}

// Add bookmarks a service. The store's unique index rejects a duplicate
// (customer, service) pair; a missing service surfaces as a broken reference.
func (srv *favoriteService) Add(ctx context.Context, customerID uuid.UUID, serviceID uint) *usecase.Response[*usecase.FavoriteDTO] {
	srv.logger.Debug("Adding favorite", "customerID", customerID, "serviceID", serviceID)

	favorite := &entity.FavoriteService{
		CustomerID: customerID,
		ServiceID:  serviceID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FavoriteRepo().Create(ctx, favorite)
	})
	if err != nil {
		return failure[*usecase.FavoriteDTO]("could not add favorite", err)
	}

	dto := toFavoriteDTO(favorite)

	return usecase.Ok(&dto, "favorite added successfully")
}

// Remove deletes the bookmark for the given pair.
func (srv *favoriteService) Remove(ctx context.Context, customerID uuid.UUID, serviceID uint) *usecase.Response[*usecase.FavoriteDTO] {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FavoriteRepo().Delete(ctx, customerID, serviceID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return usecase.Fail[*usecase.FavoriteDTO]("favorite not found")
		}

		return failure[*usecase.FavoriteDTO]("could not remove favorite", err)
	}

	return usecase.Ok[*usecase.FavoriteDTO](nil, "favorite removed successfully")
}
