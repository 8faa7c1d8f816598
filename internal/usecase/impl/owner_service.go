package impl

import (
	"context"
	"log/slog"
	"time"

	"farha/internal/domain/entity"
	"farha/internal/domain/repository"
	"farha/internal/domain/service"
	"farha/internal/usecase"

	"github.com/google/uuid"
)

const (
	ownerDocumentCategory = "owner-documents"
	otpValidity           = 10 * time.Minute
)

// ownerService implements the OwnerUsecase interface.
type ownerService struct {
	txManager repository.TransactionManager
	media     service.MediaStorage
	codes     service.CodeGenerator
	logger    *slog.Logger
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(
	txManager repository.TransactionManager,
	media service.MediaStorage,
	codes service.CodeGenerator,
	logger *slog.Logger,
) usecase.OwnerUsecase {
	return &ownerService{
		txManager: txManager,
		media:     media,
		codes:     codes,
		logger:    logger,
	}
}

// Register places both identity documents, persists the pending owner account
// and issues a one-time code row in the same commit. Delivery of the code is
// an external collaborator's concern.
func (srv *ownerService) Register(ctx context.Context, input *usecase.RegisterOwnerInput) *usecase.Response[*usecase.OwnerDTO] {
	srv.logger.Info("Registering owner", "email", input.Email)

	// Both document images are mandatory; an account without them violates
	// the schema, so refuse before touching the media store.
	if len(input.IDFrontImage.Content) == 0 || len(input.IDBackImage.Content) == 0 {
		return usecase.Fail[*usecase.OwnerDTO]("identity document images are required")
	}

	paths, err := srv.media.SaveImages(ctx,
		[]service.Upload{input.IDFrontImage, input.IDBackImage}, ownerDocumentCategory)
	if err != nil {
		return failure[*usecase.OwnerDTO]("could not register owner", err)
	}

	code, err := srv.codes.Code()
	if err != nil {
		return failure[*usecase.OwnerDTO]("could not register owner", err)
	}

	owner := &entity.Owner{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		IDFrontImage: paths[0],
		IDBackImage:  paths[1],
		Status:       entity.OwnerStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OwnerRepo().Create(ctx, owner); err != nil {
			return err
		}

		return repoFactory.OTPRepo().Create(ctx, &entity.UserOTP{
			AccountID: owner.ID,
			Code:      code,
			ExpiresAt: time.Now().Add(otpValidity),
		})
	})
	if err != nil {
		return failure[*usecase.OwnerDTO]("could not register owner", err)
	}

	dto := toOwnerDTO(owner)

	return usecase.Ok(&dto, "owner registered successfully")
}
