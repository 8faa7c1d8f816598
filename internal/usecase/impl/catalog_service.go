package impl

import (
	"context"
	"log/slog"
	"sort"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/errors"
	"farha/internal/pagination"
	"farha/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListByKind pages through the service roots of a single kind.
func (srv *catalogService) ListByKind(ctx context.Context, kind entity.ServiceKind, page, pageSize int) *usecase.Response[[]usecase.ServiceSummaryDTO] {
	if !kind.Valid() {
		return usecase.Fail[[]usecase.ServiceSummaryDTO]("unknown service kind")
	}

	srv.logger.Debug("Listing services", "kind", kind, "page", page)

	var services []*entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		services, err = repoFactory.ServiceRepo().FindByKind(ctx, kind)

		return errors.Wrap(err, "failed to load services")
	})
	if err != nil {
		return failure[[]usecase.ServiceSummaryDTO]("could not load services", err)
	}

	if len(services) == 0 {
		return usecase.Fail[[]usecase.ServiceSummaryDTO]("no services found")
	}

	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })

	pageItems, info := pagination.Paginate(services, page, pageSize)

	dtos := make([]usecase.ServiceSummaryDTO, 0, len(pageItems))
	for _, svc := range pageItems {
		dtos = append(dtos, toServiceSummaryDTO(svc))
	}

	return usecase.OkPaged(dtos, "services retrieved successfully", info)
}

// GetByID serves the root-level detail of a single offering.
func (srv *catalogService) GetByID(ctx context.Context, kind entity.ServiceKind, id uint) *usecase.Response[*usecase.ServiceSummaryDTO] {
	if !kind.Valid() {
		return usecase.Fail[*usecase.ServiceSummaryDTO]("unknown service kind")
	}

	var svc *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		svc, err = repoFactory.ServiceRepo().FindByID(ctx, id)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return usecase.Fail[*usecase.ServiceSummaryDTO]("service not found")
		}

		return failure[*usecase.ServiceSummaryDTO]("could not load service", err)
	}

	if svc.Kind != kind {
		return usecase.Fail[*usecase.ServiceSummaryDTO]("service not found")
	}

	dto := toServiceSummaryDTO(svc)

	return usecase.Ok(&dto, "service retrieved successfully")
}
